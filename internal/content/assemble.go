// Package content builds the onboarding packet as a fixed sequence of
// document pages. Only the acknowledgment page carries caller data.
package content

import (
	"strings"

	"onboardpdf/internal/document"
	"onboardpdf/internal/model"
)

// RoleSeparator joins roles on the acknowledgment page.
const RoleSeparator = ", "

// JoinRoles renders roles for display. Order and duplicates are kept; an
// empty list gives "".
func JoinRoles(roles []string) string {
	return strings.Join(roles, RoleSeparator)
}

// Assemble returns the six pages of the packet for req. signature is placed
// under the signature label of the acknowledgment page; nil leaves the space
// blank.
func Assemble(req model.OnboardingRequest, signature document.Block) []document.Page {
	pages := make([]document.Page, 0, len(PageOrder))
	for _, name := range PageOrder {
		var blocks []document.Block
		if name == PageAcknowledgment {
			blocks = acknowledgment(req, signature)
		} else {
			blocks = append(blocks, staticPages[name]...)
		}
		pages = append(pages, document.Page{Name: name, Blocks: blocks})
	}
	return pages
}

// AcknowledgmentRows returns the form table rows for req.
func AcknowledgmentRows(req model.OnboardingRequest) [][]document.RichText {
	return [][]document.RichText{
		row("Name (Print):", req.Name),
		row("Role(s):", JoinRoles(req.Roles)),
		row("Email:", req.Email),
		row("Date:", req.Date),
	}
}

func acknowledgment(req model.OnboardingRequest, signature document.Block) []document.Block {
	blocks := []document.Block{
		heading("Acknowledgment"),
		body("I confirm that I have received and reviewed the Chronos Media onboarding materials, including " +
			"role expectations, code of conduct, and church-specific guidelines."),
		space(0.3),
		document.Table{
			ColumnWidths: []float64{1.5 * document.Inch, 4.5 * document.Inch},
			Style:        formTableStyle,
			Rows:         AcknowledgmentRows(req),
		},
		space(0.3),
		document.Paragraph{
			Style: document.StyleBody,
			Text:  document.RichText{{Text: "Signature:", Bold: true}},
		},
		space(0.1),
	}
	if signature != nil {
		blocks = append(blocks, signature)
	}
	return append(blocks,
		space(0.3),
		document.Paragraph{
			Style: document.StyleBody,
			Text:  document.RichText{{Text: "Return this signed document to " + ContactEmail, Italic: true}},
		},
	)
}
