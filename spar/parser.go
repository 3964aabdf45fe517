package spar

import (
	"strconv"

	"github.com/sparlib/go-spar/internal/fuzzy"
)

// suggestMaxDistance bounds the edit distance for OnUnknown suggestions.
const suggestMaxDistance = 2

// Parse consumes a sequence of raw argument tokens (by convention
// os.Args[1:]) and mutates the stored value of every matched flag in place.
// Results are observed through previously issued handles.
//
// Tokens are processed left to right, single pass:
//
//	("-")* ("/")? <name> [ <value-token> ]
//
// Every leading '-' is stripped; a token with no dashes is still treated as
// a flag name. A token that is empty after stripping is skipped. A '/'
// following the dashes marks the occurrence as ignored; the marker only
// takes effect while ignore mode is enabled (SetIgnoreMode). The earliest
// registered flag whose name or short alias equals the remaining characters
// is the match; tokens matching nothing are discarded without consuming a
// value. A matched boolean is toggled (or left alone when ignored) and
// consumes nothing. Any other matched kind consumes exactly one following
// token: when ignored, that token is consumed but not applied, which keeps
// later tokens aligned; otherwise it is converted into the flag's kind.
//
// Parse returns nil, a ParseFailure error when a value token cannot be
// converted, or a StarvedValue error when the token sequence ends where a
// value was required. Values applied before the failing token remain
// applied. The package-level Parse wrapper treats both errors as fatal.
func (c *Context) Parse(args []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := 0; i < len(args); i++ {
		token := args[i]

		j := 0
		for j < len(token) && token[j] == '-' {
			j++
		}
		if j == len(token) {
			// Nothing left after the dashes ("", "-", "--").
			continue
		}

		marked := token[j] == '/'
		if marked {
			j++
		}
		ignore := marked && c.ignorePrefix
		name := token[j:]

		index, ok := c.lookup[name]
		if !ok {
			c.reportUnknown(name)
			continue
		}
		record := &c.records[index]

		if record.value.kind == KindBool {
			if !ignore {
				record.value.boolVal = !record.value.boolVal
			}
			continue
		}

		i++
		if i >= len(args) {
			return &ParseError{
				Type:    ErrorTypeStarvedValue,
				Message: "flag requires a value: " + strconv.Quote(token),
				Flag:    record.name,
				Token:   token,
			}
		}
		if ignore {
			// Consumed but not applied: the token leaves the stream so the
			// remaining tokens keep their flag/value alignment.
			continue
		}
		if err := record.value.parseFrom(args[i]); err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Flag = record.name
			}
			return err
		}
	}

	return nil
}

// reportUnknown feeds the OnUnknown callback, if any. Called with c.mu held.
func (c *Context) reportUnknown(name string) {
	if c.onUnknown == nil {
		return
	}
	candidates := make([]string, 0, len(c.records)*2)
	for i := range c.records {
		candidates = append(candidates, c.records[i].name)
		if c.records[i].short != c.records[i].name {
			candidates = append(candidates, c.records[i].short)
		}
	}
	c.onUnknown(name, fuzzy.FindBest(name, candidates, suggestMaxDistance))
}
