package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboardpdf/internal/document"
	"onboardpdf/internal/model"
)

func sampleRequest() model.OnboardingRequest {
	return model.OnboardingRequest{
		Name:  "Jane Smith",
		Roles: []string{"Photo Team"},
		Email: "jane@x.com",
		Date:  "2026-03-01",
	}
}

func countImages(blocks []document.Block) int {
	n := 0
	for _, b := range blocks {
		if _, ok := b.(document.Image); ok {
			n++
		}
	}
	return n
}

func TestJoinRoles(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  string
	}{
		{name: "nil", roles: nil, want: ""},
		{name: "empty", roles: []string{}, want: ""},
		{name: "single", roles: []string{"Photo Team"}, want: "Photo Team"},
		{name: "order preserved", roles: []string{"Live Team", "Audio Team"}, want: "Live Team, Audio Team"},
		{name: "duplicates kept", roles: []string{"Audio Team", "Audio Team"}, want: "Audio Team, Audio Team"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinRoles(tt.roles))
		})
	}
}

func TestAssemble_PageOrder(t *testing.T) {
	pages := Assemble(sampleRequest(), nil)

	require.Len(t, pages, 6)
	for i, p := range pages {
		assert.Equal(t, PageOrder[i], p.Name)
		assert.NotEmpty(t, p.Blocks, "page %s has no blocks", p.Name)
	}
}

func TestAssemble_PageCountIndependentOfRoles(t *testing.T) {
	for _, roles := range [][]string{nil, {"Live Team"}, {"Live Team", "Photo Team", "Audio Team", "Church Teams"}} {
		req := sampleRequest()
		req.Roles = roles
		assert.Len(t, Assemble(req, nil), 6)
	}
}

func TestAssemble_AcknowledgmentTable(t *testing.T) {
	pages := Assemble(sampleRequest(), nil)
	ack := pages[len(pages)-1]

	var table *document.Table
	for _, b := range ack.Blocks {
		if tb, ok := b.(document.Table); ok {
			table = &tb
		}
	}
	require.NotNil(t, table)
	require.Len(t, table.Rows, 4)

	got := map[string]string{}
	for _, r := range table.Rows {
		got[r[0].Plain()] = r[1].Plain()
	}
	assert.Equal(t, "Jane Smith", got["Name (Print):"])
	assert.Equal(t, "Photo Team", got["Role(s):"])
	assert.Equal(t, "jane@x.com", got["Email:"])
	assert.Equal(t, "2026-03-01", got["Date:"])
	assert.True(t, table.Style.BoldFirstColumn)
}

func TestAssemble_EmptyRolesRenderEmpty(t *testing.T) {
	req := sampleRequest()
	req.Roles = nil

	rows := AcknowledgmentRows(req)
	assert.Equal(t, "Role(s):", rows[1][0].Plain())
	assert.Equal(t, "", rows[1][1].Plain())
}

func TestAssemble_Signature(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		pages := Assemble(sampleRequest(), nil)
		for _, p := range pages {
			assert.Zero(t, countImages(p.Blocks), "page %s", p.Name)
		}
	})

	t.Run("image placed on acknowledgment page only", func(t *testing.T) {
		img := document.Image{Name: "sig", Data: []byte{1}, Width: 100, Height: 20}
		pages := Assemble(sampleRequest(), img)
		for _, p := range pages[:5] {
			assert.Zero(t, countImages(p.Blocks), "page %s", p.Name)
		}
		assert.Equal(t, 1, countImages(pages[5].Blocks))
	})

	t.Run("placeholder follows signature label", func(t *testing.T) {
		placeholder := document.Paragraph{Text: document.Text("[Signature image error: x]"), Style: document.StyleItalic}
		ack := Assemble(sampleRequest(), placeholder)[5]

		idx := -1
		for i, b := range ack.Blocks {
			if p, ok := b.(document.Paragraph); ok && p.Text.Plain() == "Signature:" {
				idx = i
			}
		}
		require.GreaterOrEqual(t, idx, 0)
		require.Greater(t, len(ack.Blocks), idx+2)
		assert.Equal(t, placeholder, ack.Blocks[idx+2])
	})
}

func TestAssemble_StaticPagesUntouchedByRequest(t *testing.T) {
	a := Assemble(sampleRequest(), nil)
	other := model.OnboardingRequest{Name: "John Doe", Roles: []string{"Live Team", "Audio Team"}, Email: "john.doe@example.com", Date: "2026-01-10"}
	b := Assemble(other, nil)

	for i := 0; i < 5; i++ {
		assert.Equal(t, a[i], b[i])
	}
	assert.NotEqual(t, a[5], b[5])
}

func TestStaticContent(t *testing.T) {
	require.Len(t, staticPages, 5)
	for _, name := range PageOrder[:5] {
		blocks, ok := staticPages[name]
		require.True(t, ok, name)
		h, ok := blocks[0].(document.Heading)
		if name == PageCover {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok, "page %s must open with a heading", name)
		assert.Equal(t, 1, h.Level)
	}

	var dress *document.Table
	for _, b := range staticPages[PageConduct] {
		if tb, ok := b.(document.Table); ok {
			dress = &tb
		}
	}
	require.NotNil(t, dress)
	assert.Len(t, dress.Rows, 5)
	assert.Equal(t, "Recommended", dress.Rows[0][0].Plain())
	assert.True(t, dress.Style.HeaderRow)
	assert.NotNil(t, dress.Style.HeaderFill)
}

func TestFlatten_SixPages(t *testing.T) {
	blocks := document.Flatten(Assemble(sampleRequest(), nil))

	breaks := 0
	for _, b := range blocks {
		if _, ok := b.(document.PageBreak); ok {
			breaks++
		}
	}
	assert.Equal(t, 5, breaks)
}
