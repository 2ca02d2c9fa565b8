// Package srv6 parses and models SRv6 locator configuration blocks.
//
// The input format is the minimal CLI-like syntax emitted by SRv6-capable
// devices:
//
//	source-address 2001:db8::1
//	locator LOC1
//	  prefix 2001:db8:1::/48 behavior End.DX6 psp
//	  prefix 2001:db8:2::/48
//
// Parse produces a Config snapshot; Format renders it back to canonical
// text. Keywords are matched case-insensitively, identifiers and prefixes
// keep the case they were written in.
package srv6

import "fmt"

// FlagState is a three-valued endpoint flag: a flag that was never
// mentioned is distinct from one explicitly disabled.
type FlagState int

const (
	FlagUnspecified FlagState = iota
	FlagEnabled
	FlagDisabled
)

func (f FlagState) String() string {
	switch f {
	case FlagEnabled:
		return "enabled"
	case FlagDisabled:
		return "disabled"
	default:
		return "unspecified"
	}
}

// MarshalText renders the flag for JSON output. FlagUnspecified never
// reaches here: it is the zero value and elided by omitempty.
func (f FlagState) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses a flag state from its textual form.
func (f *FlagState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "enabled":
		*f = FlagEnabled
	case "disabled":
		*f = FlagDisabled
	case "unspecified", "":
		*f = FlagUnspecified
	default:
		return fmt.Errorf("invalid flag state: %q", string(text))
	}
	return nil
}

// MarshalYAML renders the flag for YAML output.
func (f FlagState) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// PrefixEntry is one prefix declaration under a locator.
type PrefixEntry struct {
	// Prefix is the IPv6 CIDR as written, already validated.
	Prefix string `json:"prefix" yaml:"prefix"`

	// Behavior is the endpoint behavior token (e.g. "End.DX6", "uN"),
	// empty when not declared. Case is preserved.
	Behavior string `json:"behavior,omitempty" yaml:"behavior,omitempty"`

	PSP FlagState `json:"psp,omitempty" yaml:"psp,omitempty"`
	USP FlagState `json:"usp,omitempty" yaml:"usp,omitempty"`
}

// Locator is a named SRv6 locator and its prefix declarations, in
// declaration order.
type Locator struct {
	Name     string        `json:"name" yaml:"name"`
	Prefixes []PrefixEntry `json:"prefixes" yaml:"prefixes"`
}

// Config is a parsed SRv6 configuration. It is built fresh by each Parse
// call and not mutated afterwards; concurrent parses share nothing.
type Config struct {
	// SourceAddress is the encapsulation source address, empty when the
	// config does not declare one. Stored verbatim.
	SourceAddress string

	locators map[string]*Locator
	order    []string // locator names, first-seen order
}

// NewConfig returns an empty Config.
func NewConfig() *Config {
	return &Config{locators: make(map[string]*Locator)}
}

// Locator returns the named locator record, or nil if not declared.
func (c *Config) Locator(name string) *Locator {
	return c.locators[name]
}

// LocatorNames returns locator names in declaration order.
func (c *Config) LocatorNames() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Locators returns locator records in declaration order.
func (c *Config) Locators() []*Locator {
	locs := make([]*Locator, 0, len(c.order))
	for _, name := range c.order {
		locs = append(locs, c.locators[name])
	}
	return locs
}

// NumLocators returns the number of declared locators.
func (c *Config) NumLocators() int {
	return len(c.order)
}

// locator returns the record for name, creating it on first reference.
// Re-declaring an existing locator reuses the same record.
func (c *Config) locator(name string) *Locator {
	if loc, ok := c.locators[name]; ok {
		return loc
	}
	loc := &Locator{Name: name}
	c.locators[name] = loc
	c.order = append(c.order, name)
	return loc
}
