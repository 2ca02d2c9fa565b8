package srv6

import "strings"

// Format renders cfg as canonical configuration text. The output parses
// back to an equal Config: keywords lowercase, one declaration per line,
// prefix lines indented two spaces, flags rendered as "psp"/"no psp"
// (resp. usp) and omitted when unspecified.
func Format(cfg *Config) string {
	var b strings.Builder

	if cfg.SourceAddress != "" {
		b.WriteString("source-address ")
		b.WriteString(cfg.SourceAddress)
		b.WriteByte('\n')
	}

	for _, loc := range cfg.Locators() {
		b.WriteString("locator ")
		b.WriteString(loc.Name)
		b.WriteByte('\n')
		for _, entry := range loc.Prefixes {
			b.WriteString("  prefix ")
			b.WriteString(entry.Prefix)
			if entry.Behavior != "" {
				b.WriteString(" behavior ")
				b.WriteString(entry.Behavior)
			}
			writeFlag(&b, "psp", entry.PSP)
			writeFlag(&b, "usp", entry.USP)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func writeFlag(b *strings.Builder, name string, state FlagState) {
	switch state {
	case FlagEnabled:
		b.WriteString(" ")
		b.WriteString(name)
	case FlagDisabled:
		b.WriteString(" no ")
		b.WriteString(name)
	}
}
