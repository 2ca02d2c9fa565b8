package srv6

import (
	"strings"

	"github.com/srv6net/srv6ctl/pkg/util"
)

// parser tracks line-classification state: the locator that subsequent
// prefix lines attach to, nil while at top level.
type parser struct {
	cfg     *Config
	current *Locator
}

// directiveHandler applies one classified line to the parse state.
// args is the token list after the keyword, line is the 1-based physical
// line number, content the line with comment and whitespace stripped.
type directiveHandler func(p *parser, args []string, line int, content string) error

// directiveHandlers maps lowercased keywords to their handler functions.
var directiveHandlers map[string]directiveHandler

func init() {
	directiveHandlers = map[string]directiveHandler{
		"source-address": parseSourceAddress,
		"locator":        parseLocator,
		"prefix":         parsePrefix,
	}
}

// Parse parses an SRv6 configuration blob into a Config.
//
// Lines are processed top to bottom. A trailing #-comment and surrounding
// whitespace are stripped from each line first; blank results are skipped.
// Keywords match case-insensitively. Any non-blank line that fits no
// grammar rule aborts the parse: on error no Config is returned.
func Parse(text string) (*Config, error) {
	p := &parser{cfg: NewConfig()}

	for i, raw := range strings.Split(text, "\n") {
		line := raw
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		handler, ok := directiveHandlers[strings.ToLower(fields[0])]
		if !ok {
			return nil, &UnknownDirectiveError{Line: i + 1, Content: line}
		}
		if err := handler(p, fields[1:], i+1, line); err != nil {
			return nil, err
		}
	}

	util.Debugf("parsed %d locator(s)", p.cfg.NumLocators())
	return p.cfg, nil
}

// parseSourceAddress handles "source-address <addr>". Accepted at top
// level and inside a locator block alike; the locator scope is unchanged
// and the last declaration wins. The address is stored verbatim.
func parseSourceAddress(p *parser, args []string, line int, content string) error {
	if len(args) != 1 {
		return &UnknownDirectiveError{Line: line, Content: content}
	}
	p.cfg.SourceAddress = args[0]
	util.Debugf("line %d: source-address %s", line, args[0])
	return nil
}

// parseLocator handles "locator <name>". A repeated name re-enters the
// existing record instead of creating a duplicate.
func parseLocator(p *parser, args []string, line int, content string) error {
	if len(args) != 1 {
		return &UnknownDirectiveError{Line: line, Content: content}
	}
	p.current = p.cfg.locator(args[0])
	util.Debugf("line %d: locator %s", line, args[0])
	return nil
}

// parsePrefix handles
//
//	prefix <cidr> [behavior <token>] [psp|no psp|psp enable|psp disable]
//	              [usp|no usp|usp enable|usp disable]
//
// with clauses in any order. The CIDR must pass util.IsValidIPv6Prefix.
func parsePrefix(p *parser, args []string, line int, content string) error {
	if p.current == nil {
		return &MissingLocatorError{Line: line, Content: content}
	}
	if len(args) == 0 {
		return &UnknownDirectiveError{Line: line, Content: content}
	}

	cidr := args[0]
	if !util.IsValidIPv6Prefix(cidr) {
		return &InvalidPrefixError{Line: line, Prefix: cidr}
	}

	entry := PrefixEntry{Prefix: cidr}
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		switch strings.ToLower(rest[i]) {
		case "behavior":
			i++
			if i >= len(rest) {
				return &UnknownDirectiveError{Line: line, Content: content}
			}
			entry.Behavior = rest[i]
		case "psp":
			var skip int
			entry.PSP, skip = parseFlagClause(rest[i+1:])
			i += skip
		case "usp":
			var skip int
			entry.USP, skip = parseFlagClause(rest[i+1:])
			i += skip
		case "no":
			i++
			if i >= len(rest) {
				return &UnknownDirectiveError{Line: line, Content: content}
			}
			switch strings.ToLower(rest[i]) {
			case "psp":
				entry.PSP = FlagDisabled
			case "usp":
				entry.USP = FlagDisabled
			default:
				return &UnknownDirectiveError{Line: line, Content: content}
			}
		default:
			return &UnknownDirectiveError{Line: line, Content: content}
		}
	}

	p.current.Prefixes = append(p.current.Prefixes, entry)
	util.Debugf("line %d: locator %s prefix %s", line, p.current.Name, cidr)
	return nil
}

// parseFlagClause resolves the optional enable/disable word after a bare
// "psp" or "usp" token. Returns the flag state and how many tokens beyond
// the keyword were consumed.
func parseFlagClause(following []string) (FlagState, int) {
	if len(following) > 0 {
		switch strings.ToLower(following[0]) {
		case "enable":
			return FlagEnabled, 1
		case "disable":
			return FlagDisabled, 1
		}
	}
	return FlagEnabled, 0
}
