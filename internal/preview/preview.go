// Package preview draws a document as a phone-frame mockup. It is a pure
// consumer: it never mutates the document and holds no state of its own.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"appcanvas/internal/document"
	"appcanvas/internal/genai"
)

const innerWidth = 38

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(innerWidth)
	selectedStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("39")).
			PaddingLeft(1)
	unselectedStyle = lipgloss.NewStyle().PaddingLeft(2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	subtitleStyle   = lipgloss.NewStyle().Faint(true)
	priceStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	buttonStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 2)
	imageBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Faint(true).
			Align(lipgloss.Center).
			Width(innerWidth - 6)
	emptyStyle = lipgloss.NewStyle().Faint(true).Align(lipgloss.Center).Width(innerWidth)
)

// Render draws the document with the selected element marked. selectedID may
// be empty or dangling; both simply mean nothing is highlighted.
func Render(doc document.Document, selectedID string) string {
	var blocks []string
	blocks = append(blocks, titleStyle.Foreground(lipgloss.Color(doc.ThemeColor)).Width(innerWidth).Align(lipgloss.Center).Render(doc.AppName))
	if len(doc.Elements) == 0 {
		blocks = append(blocks, "", emptyStyle.Render("Empty canvas"), emptyStyle.Render("Add components or ask the AI"))
	}
	for _, el := range doc.Elements {
		body := renderElement(el, doc.ThemeColor)
		if el.ID == selectedID {
			body = selectedStyle.Render(body)
		} else {
			body = unselectedStyle.Render(body)
		}
		blocks = append(blocks, body)
	}
	return frameStyle.Render(strings.Join(blocks, "\n"))
}

func renderElement(el document.Element, theme string) string {
	st := lipgloss.NewStyle().Width(innerWidth - 4).Align(alignFor(el.Style.Align))
	if el.Style.TextColor != "" {
		st = st.Foreground(lipgloss.Color(el.Style.TextColor))
	}
	if el.Style.BackgroundColor != "" {
		st = st.Background(lipgloss.Color(el.Style.BackgroundColor))
	}

	switch el.Kind {
	case document.KindHeader:
		out := titleStyle.Render(el.Content.Title)
		if el.Content.Subtitle != "" {
			out += "\n" + subtitleStyle.Render(el.Content.Subtitle)
		}
		return st.Render(out)
	case document.KindHero:
		out := imageBox(el.Content.ImageRef)
		out += "\n" + titleStyle.Render(el.Content.Title)
		if el.Content.Subtitle != "" {
			out += "\n" + subtitleStyle.Render(el.Content.Subtitle)
		}
		return st.Render(out)
	case document.KindText:
		return st.Render(el.Content.Text)
	case document.KindImage:
		return st.Render(imageBox(el.Content.ImageRef))
	case document.KindButton:
		bg := el.Style.BackgroundColor
		if bg == "" {
			bg = theme
		}
		return st.UnsetBackground().Render(buttonStyle.Background(lipgloss.Color(bg)).Render(el.Content.Label))
	case document.KindProduct:
		out := imageBox(el.Content.ImageRef)
		out += "\n" + titleStyle.Render(el.Content.Title)
		out += "\n" + priceStyle.Render(el.Content.Price)
		return st.Render(out)
	}
	return ""
}

func imageBox(ref string) string {
	switch {
	case ref == "":
		return imageBoxStyle.Render("No Image Selected")
	case genai.IsPendingImage(ref):
		return imageBoxStyle.Render("Generating AI asset...")
	default:
		return imageBoxStyle.Render("Image " + describeRef(ref))
	}
}

// describeRef keeps data URIs out of the preview; they can be megabytes.
func describeRef(ref string) string {
	if strings.HasPrefix(ref, "data:") {
		mime := ref[len("data:"):]
		if i := strings.IndexAny(mime, ";,"); i >= 0 {
			mime = mime[:i]
		}
		return "(" + mime + ")"
	}
	if len(ref) > 24 {
		return "(" + ref[:24] + "...)"
	}
	return "(" + ref + ")"
}

func alignFor(a string) lipgloss.Position {
	switch a {
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	}
	return lipgloss.Left
}
