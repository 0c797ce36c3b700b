package document

// StyleName identifies a paragraph style.
type StyleName string

const (
	StyleTitle      StyleName = "title"
	StyleSubtitle   StyleName = "subtitle"
	StyleHeading    StyleName = "heading"
	StyleSubheading StyleName = "subheading"
	StyleBody       StyleName = "body"
	StyleItalic     StyleName = "italic"
)

// Align is a horizontal alignment.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
)

// Style describes how a paragraph or heading is set.
type Style struct {
	Font        string
	Bold        bool
	Italic      bool
	Size        float64
	Leading     float64
	Color       Color
	SpaceBefore float64
	SpaceAfter  float64
	Align       Align
}

var black = Color{0, 0, 0}

// Styles is the fixed style sheet.
var Styles = map[StyleName]Style{
	StyleTitle: {
		Font: "Helvetica", Bold: true, Size: 24, Leading: 29,
		Color: Color{0x21, 0xB5, 0xFF}, SpaceAfter: 12, Align: AlignCenter,
	},
	StyleSubtitle: {
		Font: "Helvetica", Bold: true, Size: 16, Leading: 19,
		Color: Color{0x2F, 0x6B, 0xFF}, SpaceAfter: 12, Align: AlignCenter,
	},
	StyleHeading: {
		Font: "Helvetica", Bold: true, Size: 16, Leading: 19,
		Color: Color{0x21, 0xB5, 0xFF}, SpaceBefore: 12, SpaceAfter: 8, Align: AlignLeft,
	},
	StyleSubheading: {
		Font: "Helvetica", Bold: true, Size: 14, Leading: 17,
		Color: Color{0x2F, 0x6B, 0xFF}, SpaceBefore: 10, SpaceAfter: 6, Align: AlignLeft,
	},
	StyleBody: {
		Font: "Helvetica", Size: 10, Leading: 12, Color: black, Align: AlignLeft,
	},
	StyleItalic: {
		Font: "Helvetica", Italic: true, Size: 10, Leading: 12, Color: black, Align: AlignLeft,
	},
}

// HeadingStyle maps a heading level to its style.
func HeadingStyle(level int) StyleName {
	if level <= 1 {
		return StyleHeading
	}
	return StyleSubheading
}

// Lookup returns the style for name, falling back to body text.
func Lookup(name StyleName) Style {
	if s, ok := Styles[name]; ok {
		return s
	}
	return Styles[StyleBody]
}
