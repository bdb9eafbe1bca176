package renderer

import (
	"regexp"
	"strings"
)

// Messages carry inline markup of the form TAG{text}
var markupPattern = regexp.MustCompile(`([A-Z_]+)\{([^{}]+)\}`)

var markupStyles = map[string]TextStyle{
	"ACTION": StyleAction,
	"EXIT":   StyleExit,
	"DANGER": StyleDanger,
	"ENEMY":  StyleEnemy,
}

// Segment is a run of message text in a single style
type Segment struct {
	Text   string
	Style  TextStyle
	Strong bool
}

// ParseMarkup splits msg into styled segments. The first letter of an
// ACTION is strong, as it names the key to press. Unknown tags are kept
// as written.
func ParseMarkup(msg string) []Segment {
	var segs []Segment
	last := 0
	for _, m := range markupPattern.FindAllStringSubmatchIndex(msg, -1) {
		if m[0] > last {
			segs = append(segs, Segment{Text: msg[last:m[0]]})
		}
		tag, operand := msg[m[2]:m[3]], msg[m[4]:m[5]]

		style, ok := markupStyles[tag]
		switch {
		case !ok:
			segs = append(segs, Segment{Text: msg[m[0]:m[1]]})
		case style == StyleAction:
			first := []rune(operand)[:1]
			segs = append(segs, Segment{Text: string(first), Style: style, Strong: true})
			if rest := operand[len(string(first)):]; rest != "" {
				segs = append(segs, Segment{Text: rest, Style: style})
			}
		default:
			segs = append(segs, Segment{Text: operand, Style: style})
		}
		last = m[1]
	}
	if last < len(msg) {
		segs = append(segs, Segment{Text: msg[last:]})
	}
	return segs
}

// Plain returns msg with the markup stripped
func Plain(msg string) string {
	var b strings.Builder
	for _, seg := range ParseMarkup(msg) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
