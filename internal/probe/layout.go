package probe

import (
	"strings"
	"unicode"
)

const (
	figureSeparator = ".."
	ignoreMarker    = "!"
	titleDecoration = "**"
)

// Layout is one figure group of the graph list.
type Layout struct {
	Titles []string
	Rows   []string
}

// Title is the title shown for the figure: the last fragment wins.
func (l Layout) Title() string {
	if len(l.Titles) == 0 {
		return ""
	}
	return l.Titles[len(l.Titles)-1]
}

// ParseLayout groups tokens into figures. It never fails: anything that is
// not a separator, an ignored token or a row becomes a title fragment.
func ParseLayout(tokens []string) []Layout {
	layouts := []Layout{{}}
	for _, tok := range tokens {
		cur := &layouts[len(layouts)-1]
		switch {
		case tok == figureSeparator:
			layouts = append(layouts, Layout{})
		case strings.HasPrefix(tok, ignoreMarker):
		case IsRow(tok):
			cur.Rows = append(cur.Rows, tok)
		default:
			cur.Titles = append(cur.Titles, strings.ReplaceAll(tok, titleDecoration, ""))
		}
	}
	return layouts
}

// IsRow reports whether tok references a probe. A token is a row when its
// last two non-punctuation characters are digits, or when it carries a two
// character option suffix ending in a digit or '*' and either a numeric probe
// id or a type code letter after a probe identifier.
func IsRow(tok string) bool {
	if digitTail(tok) {
		return true
	}
	if len(tok) <= suffixLen {
		return false
	}
	probe, suffix := tok[:len(tok)-suffixLen], tok[len(tok)-suffixLen:]
	last := rune(suffix[1])
	if !unicode.IsDigit(last) && last != legendFlag {
		return false
	}
	id := strings.ReplaceAll(probe, ".", "")
	if id != "" && allDigits(id) {
		return true
	}
	return isTypeCode(suffix[0]) && isIdent(id)
}

// isIdent reports whether s can name a probe: letters, digits and '_'.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' && (r > unicode.MaxASCII || (!unicode.IsLetter(r) && !unicode.IsDigit(r))) {
			return false
		}
	}
	return true
}

func digitTail(tok string) bool {
	var kept []rune
	for _, r := range tok {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) < 2 {
		return false
	}
	return unicode.IsDigit(kept[len(kept)-1]) && unicode.IsDigit(kept[len(kept)-2])
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
