package bibtex

import (
	"errors"
	"fmt"
	"strings"
)

// Entry is one parsed BibTeX entry. Field values keep their LaTeX markup;
// only the outer delimiters are removed.
type Entry struct {
	Type   string
	Key    string
	Fields map[string]string
}

var errUnexpectedEOF = errors.New("unexpected end of input")

// standard BibTeX month macros
var monthMacros = map[string]string{
	"jan": "January", "feb": "February", "mar": "March", "apr": "April",
	"may": "May", "jun": "June", "jul": "July", "aug": "August",
	"sep": "September", "oct": "October", "nov": "November", "dec": "December",
}

type parser struct {
	s      string
	pos    int
	macros map[string]string
}

// Parse reads every entry in text. @string macros are expanded, @comment and
// @preamble blocks are skipped. Entries may span lines or be packed onto a
// single line.
func Parse(text string) ([]*Entry, error) {
	p := &parser{s: text, macros: make(map[string]string)}
	for k, v := range monthMacros {
		p.macros[k] = v
	}

	var entries []*Entry
	for {
		at := strings.IndexByte(p.s[p.pos:], '@')
		if at < 0 {
			return entries, nil
		}
		p.pos += at + 1

		// An '@' outside an entry, such as an address in a comment,
		// is not the start of one.
		entryType := strings.ToLower(p.ident())
		if entryType == "" {
			continue
		}
		p.skipSpace()
		closer, ok := p.open()
		if !ok {
			continue
		}

		switch entryType {
		case "comment", "preamble":
			if err := p.skipBlock(closer); err != nil {
				return nil, fmt.Errorf("@%s: %w", entryType, err)
			}
		case "string":
			fields, err := p.fields(closer)
			if err != nil {
				return nil, fmt.Errorf("@string: %w", err)
			}
			for k, v := range fields {
				p.macros[k] = v
			}
		default:
			entry, err := p.entry(entryType, closer)
			if err != nil {
				return nil, fmt.Errorf("@%s: %w", entryType, err)
			}
			entries = append(entries, entry)
		}
	}
}

func (p *parser) entry(entryType string, closer byte) (*Entry, error) {
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] != ',' && p.s[p.pos] != closer {
		p.pos++
	}
	if p.pos >= len(p.s) {
		return nil, errUnexpectedEOF
	}
	entry := &Entry{
		Type: entryType,
		Key:  strings.TrimSpace(p.s[start:p.pos]),
	}
	if p.s[p.pos] == closer {
		p.pos++
		entry.Fields = map[string]string{}
		return entry, nil
	}
	p.pos++ // ','

	fields, err := p.fields(closer)
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", entry.Key, err)
	}
	entry.Fields = fields
	return entry, nil
}

// fields reads comma separated name = value pairs up to and including closer.
func (p *parser) fields(closer byte) (map[string]string, error) {
	fields := make(map[string]string)
	for {
		p.skipSpace()
		if p.pos >= len(p.s) {
			return nil, errUnexpectedEOF
		}
		switch p.s[p.pos] {
		case closer:
			p.pos++
			return fields, nil
		case ',':
			p.pos++
			continue
		}

		name := strings.ToLower(p.ident())
		if name == "" {
			return nil, fmt.Errorf("offset %d: expected field name, found %q", p.pos, p.s[p.pos])
		}
		p.skipSpace()
		if p.pos >= len(p.s) || p.s[p.pos] != '=' {
			return nil, fmt.Errorf("field %q: expected '='", name)
		}
		p.pos++

		value, err := p.value()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		fields[name] = value
	}
}

// value reads one or more parts joined with '#'.
func (p *parser) value() (string, error) {
	var sb strings.Builder
	for {
		p.skipSpace()
		if p.pos >= len(p.s) {
			return "", errUnexpectedEOF
		}

		switch c := p.s[p.pos]; {
		case c == '{':
			p.pos++
			part, err := p.balanced('}')
			if err != nil {
				return "", err
			}
			sb.WriteString(part)
		case c == '"':
			p.pos++
			part, err := p.balanced('"')
			if err != nil {
				return "", err
			}
			sb.WriteString(part)
		default:
			word := p.ident()
			if word == "" {
				return "", fmt.Errorf("offset %d: unexpected %q", p.pos, c)
			}
			if expanded, ok := p.macros[strings.ToLower(word)]; ok {
				word = expanded
			}
			sb.WriteString(word)
		}

		p.skipSpace()
		if p.pos < len(p.s) && p.s[p.pos] == '#' {
			p.pos++
			continue
		}
		return sb.String(), nil
	}
}

// balanced reads up to the terminator at brace depth zero and returns the
// text in between. A backslash escapes the next byte.
func (p *parser) balanced(term byte) (string, error) {
	start := p.pos
	depth := 0
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		switch {
		case c == '\\':
			p.pos++
		case c == term && depth == 0:
			out := p.s[start:p.pos]
			p.pos++
			return out, nil
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth < 0 {
				return "", fmt.Errorf("offset %d: unbalanced '}'", p.pos)
			}
		}
		p.pos++
	}
	return "", errUnexpectedEOF
}

func (p *parser) skipBlock(closer byte) error {
	_, err := p.balanced(closer)
	return err
}

// open consumes an opening delimiter and returns its closer.
func (p *parser) open() (byte, bool) {
	if p.pos >= len(p.s) {
		return 0, false
	}
	switch p.s[p.pos] {
	case '{':
		p.pos++
		return '}', true
	case '(':
		p.pos++
		return ')', true
	default:
		return 0, false
	}
}

func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.s) && isIdentByte(p.s[p.pos]) {
		p.pos++
	}
	return p.s[start:p.pos]
}

func isIdentByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("_-:./+", c) >= 0
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}
