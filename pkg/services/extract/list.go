package extract

import "regexp"

type ItemLevel int

const (
	ItemPlain ItemLevel = iota
	ItemTop
	ItemSub
)

const (
	TopMarker = "\u25aa\ufe0f "
	SubMarker = "\u3164\u3164\u2514 "
)

// ListItem is one free-text line classified by its leading list numbering.
type ListItem struct {
	Level ItemLevel
	Text  string
}

var (
	bulletPrefix = regexp.MustCompile(`^\s*(?:[-*]\s*)+`)
	// subItemPrefix must be tried before topItemPrefix: "1-2. " starts like "1".
	subItemPrefix = regexp.MustCompile(`^\s*\d+-\d+\.(?:\s+|$)`)
	topItemPrefix = regexp.MustCompile(`^\s*\d+\.(?:\s+|$)`)
)

// ParseListLine strips leading "-"/"*" bullets, then classifies "N-M. " lines as
// sub-items and "N. " lines as top-level items.
func ParseListLine(line string) ListItem {
	rest := bulletPrefix.ReplaceAllLiteralString(line, "")

	if loc := subItemPrefix.FindStringIndex(rest); loc != nil {
		return ListItem{Level: ItemSub, Text: rest[loc[1]:]}
	}
	if loc := topItemPrefix.FindStringIndex(rest); loc != nil {
		return ListItem{Level: ItemTop, Text: rest[loc[1]:]}
	}
	return ListItem{Level: ItemPlain, Text: rest}
}

// RewriteListLine renders a line with the top-level or sub-item marker in place of its
// numbering. Applying it to its own output is a no-op.
func RewriteListLine(line string) string {
	item := ParseListLine(line)
	switch item.Level {
	case ItemTop:
		return TopMarker + item.Text
	case ItemSub:
		return SubMarker + item.Text
	default:
		return item.Text
	}
}
