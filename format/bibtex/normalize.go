package bibtex

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/lehigh-university-libraries/orcid2vivo/helpers"
)

// combining marks for LaTeX accent commands
var combiningMarks = map[string]rune{
	"`":  '\u0300',
	"'":  '\u0301',
	"^":  '\u0302',
	"~":  '\u0303',
	"=":  '\u0304',
	"u":  '\u0306',
	".":  '\u0307',
	"\"": '\u0308',
	"r":  '\u030A',
	"H":  '\u030B',
	"v":  '\u030C',
	"d":  '\u0323',
	"c":  '\u0327',
	"k":  '\u0328',
	"b":  '\u0331',
}

// named control words that produce a character
var namedSymbols = map[string]string{
	"ss":                "ß",
	"o":                 "ø",
	"O":                 "Ø",
	"ae":                "æ",
	"AE":                "Æ",
	"oe":                "œ",
	"OE":                "Œ",
	"aa":                "å",
	"AA":                "Å",
	"l":                 "ł",
	"L":                 "Ł",
	"i":                 "ı",
	"j":                 "ȷ",
	"textendash":        "–",
	"textemdash":        "—",
	"textquoteleft":     "‘",
	"textquoteright":    "’",
	"textquotedblleft":  "“",
	"textquotedblright": "”",
	"ldots":             "…",
	"dots":              "…",
	"copyright":         "©",
	"textregistered":    "®",
	"texttrademark":     "™",
	"S":                 "§",
	"P":                 "¶",
}

// TeX ligature dashes, longest first
var dashReplacer = strings.NewReplacer("---", "\u2014", "--", "\u2013")

// escaped braces survive brace stripping through these placeholders
const (
	openBrace  = "\uE000"
	closeBrace = "\uE001"
)

var (
	accentBase = `(?:\{\s*(\\[ij]|[A-Za-z])\s*\}|(\\[ij]|[A-Za-z]))`

	symbolAccentRegex = regexp.MustCompile(`\\([` + "`" + `'^"~=.])\s*` + accentBase)
	letterAccentRegex = regexp.MustCompile(`\\([uvHrdckb])(?:\s*\{\s*(\\[ij]|[A-Za-z])\s*\}|\s+(\\[ij]|[A-Za-z]))`)
	escapeRegex       = regexp.MustCompile(`\\([&%$#_{}])`)
	commandRegex      = regexp.MustCompile(`\\([A-Za-z]+)[ \t]*(\{\})?`)
)

// Normalize converts a BibTeX field value to plain text. Accent commands
// become composed Unicode characters and escaped specials become literals.
// Unknown commands and grouping braces are dropped, TeX ligature dashes are
// replaced, and whitespace is collapsed.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = replaceAccents(symbolAccentRegex, s)
	s = replaceAccents(letterAccentRegex, s)
	s = escapeRegex.ReplaceAllStringFunc(s, func(m string) string {
		switch c := m[1:]; c {
		case "{":
			return openBrace
		case "}":
			return closeBrace
		default:
			return c
		}
	})
	s = commandRegex.ReplaceAllStringFunc(s, func(m string) string {
		name := commandRegex.FindStringSubmatch(m)[1]
		return namedSymbols[name]
	})

	s = strings.ReplaceAll(s, "~", " ")
	s = strings.ReplaceAll(s, `\\`, " ")
	s = strings.ReplaceAll(s, `\`, "")
	s = strings.NewReplacer("{", "", "}", "").Replace(s)
	s = strings.NewReplacer(openBrace, "{", closeBrace, "}").Replace(s)
	s = dashReplacer.Replace(s)

	return helpers.NormalizeWhitespace(norm.NFC.String(s))
}

func replaceAccents(re *regexp.Regexp, s string) string {
	return re.ReplaceAllStringFunc(s, func(m string) string {
		sub := re.FindStringSubmatch(m)
		mark, ok := combiningMarks[sub[1]]
		if !ok {
			return m
		}
		base := sub[2]
		if base == "" {
			base = sub[3]
		}
		switch base {
		case `\i`:
			base = "i"
		case `\j`:
			base = "j"
		}
		return base + string(mark)
	})
}
