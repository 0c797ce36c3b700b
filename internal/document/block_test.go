package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRichText_Plain(t *testing.T) {
	rt := RichText{{Text: "• "}, {Text: "Safety:", Bold: true}, {Text: " tape cables"}}
	assert.Equal(t, "• Safety: tape cables", rt.Plain())

	check := RichText{{Text: "4", Check: true}, {Text: " done"}}
	assert.Equal(t, "✔ done", check.Plain())
}

func TestFlatten(t *testing.T) {
	pages := []Page{
		{Name: "a", Blocks: []Block{Heading{Text: "A", Level: 1}}},
		{Name: "b", Blocks: []Block{Spacer{Height: 10}, Heading{Text: "B", Level: 1}}},
	}

	assert.Equal(t, []Block{
		Heading{Text: "A", Level: 1},
		PageBreak{},
		Spacer{Height: 10},
		Heading{Text: "B", Level: 1},
	}, Flatten(pages))
	assert.Empty(t, Flatten(nil))
}

func TestLookup(t *testing.T) {
	assert.Equal(t, Styles[StyleTitle], Lookup(StyleTitle))
	assert.Equal(t, Styles[StyleBody], Lookup("unknown"))
	assert.Equal(t, StyleHeading, HeadingStyle(1))
	assert.Equal(t, StyleSubheading, HeadingStyle(2))

	for name, s := range Styles {
		assert.Greater(t, s.Size, 0.0, name)
		assert.GreaterOrEqual(t, s.Leading, s.Size, name)
	}
}
