package config

import (
	"strings"

	"go.trai.ch/zerr"
)

// Expand substitutes %-delimited placeholders in the configuration text.
// Supported forms are %NAME, %{NAME}, and %% for a literal percent sign.
// Unknown placeholders and dangling delimiters are errors: a silently
// unexpanded variable would end up verbatim in generated build configuration.
func Expand(text string, vars map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		c := text[i]
		if c != '%' {
			b.WriteByte(c)
			i++
			continue
		}

		if i+1 >= len(text) {
			return "", zerr.New("dangling % at end of configuration")
		}

		switch next := text[i+1]; {
		case next == '%':
			b.WriteByte('%')
			i += 2

		case next == '{':
			end := strings.IndexByte(text[i+2:], '}')
			if end < 0 {
				return "", zerr.New("unterminated %{...} placeholder")
			}
			name := text[i+2 : i+2+end]
			value, ok := vars[name]
			if !ok {
				return "", zerr.With(zerr.New("undefined variable in configuration"), "name", name)
			}
			b.WriteString(value)
			i += 2 + end + 1

		case isIdentByte(next, true):
			j := i + 1
			for j < len(text) && isIdentByte(text[j], j == i+1) {
				j++
			}
			name := text[i+1 : j]
			value, ok := vars[name]
			if !ok {
				return "", zerr.With(zerr.New("undefined variable in configuration"), "name", name)
			}
			b.WriteString(value)
			i = j

		default:
			return "", zerr.With(zerr.New("invalid % placeholder"), "offset", i)
		}
	}

	return b.String(), nil
}

func isIdentByte(c byte, first bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9':
		return !first
	default:
		return false
	}
}
