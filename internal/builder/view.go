package builder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"appcanvas/internal/document"
	"appcanvas/internal/preview"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	tabStyle      = lipgloss.NewStyle().Padding(0, 2).Faint(true)
	activeTab     = lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true)
	sidebarStyle  = lipgloss.NewStyle().Width(42).Padding(0, 1)
	propsStyle    = lipgloss.NewStyle().Width(34).Padding(0, 1)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	statusStyle   = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	swatchStyle   = lipgloss.NewStyle().Padding(0, 1)
	landingStyle  = lipgloss.NewStyle().Padding(2, 4)
)

func (m *Model) View() string {
	if m.view == viewLanding {
		return m.renderLanding()
	}

	header := titleStyle.Render("AI App Builder") + faintStyle.Render("  |  Editing: "+m.doc.AppName)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(m.renderSidebar()),
		preview.Render(m.doc, m.selectedID),
		propsStyle.Render(m.renderProperties()),
	)
	return header + "\n\n" + body + "\n" + statusStyle.Render(m.renderStatus())
}

func (m *Model) renderLanding() string {
	lines := []string{
		titleStyle.Render("AppCanvas"),
		"",
		"Assemble a mobile app mockup from typed blocks,",
		"or describe your dream app and let the AI build",
		"the entire layout in seconds.",
		"",
		faintStyle.Render("enter start building  |  q quit"),
	}
	return landingStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderSidebar() string {
	tabs := make([]string, 0, 3)
	for _, p := range []panelState{panelComponents, panelAI, panelDesign} {
		label := map[panelState]string{panelComponents: "Components", panelAI: "AI Magic", panelDesign: "Design"}[p]
		if p == m.panel {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	out := strings.Join(tabs, "") + "\n\n"

	switch m.panel {
	case panelComponents:
		out += m.renderComponentsPanel()
	case panelAI:
		out += m.renderAIPanel()
	case panelDesign:
		out += m.renderDesignPanel()
	}
	return out
}

func (m *Model) renderComponentsPanel() string {
	var b strings.Builder
	for i, kind := range document.Kinds {
		prefix := "  "
		line := string(kind)
		if i == m.paletteCursor {
			prefix = "> "
			line = cursorStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")
	}
	b.WriteString("\n" + faintStyle.Render("enter add  |  tab next panel"))
	return b.String()
}

func (m *Model) renderAIPanel() string {
	var b strings.Builder
	b.WriteString("Describe your dream app:\n\n")
	b.WriteString(m.prompt.View() + "\n\n")
	if m.isGenerating {
		b.WriteString(m.spin.View() + " Building...\n")
	} else {
		b.WriteString(faintStyle.Render("ctrl+s generate  |  esc back") + "\n")
	}
	return b.String()
}

func (m *Model) renderDesignPanel() string {
	var b strings.Builder

	row := func(idx int, text string) string {
		if idx == m.designCursor {
			return "> " + cursorStyle.Render(text)
		}
		return "  " + text
	}

	if m.editing == editAppName {
		b.WriteString(row(0, "App Name: "+m.input.View()) + "\n")
	} else {
		b.WriteString(row(0, "App Name: "+m.doc.AppName) + "\n")
	}

	swatches := make([]string, 0, len(document.ThemePalette))
	for _, c := range document.ThemePalette {
		mark := " "
		if c == m.doc.ThemeColor {
			mark = "*"
		}
		swatches = append(swatches, swatchStyle.Background(lipgloss.Color(c)).Render(mark))
	}
	b.WriteString(row(1, "Theme: "+strings.Join(swatches, "")) + "\n\n")

	b.WriteString(faintStyle.Render("Layers") + "\n")
	if len(m.doc.Elements) == 0 {
		b.WriteString(faintStyle.Render("  (none)") + "\n")
	}
	for i, el := range m.doc.Elements {
		text := fmt.Sprintf("%s - %d", el.Kind, i+1)
		if el.ID == m.selectedID {
			text = selectedStyle.Render(text + " *")
		}
		b.WriteString(row(2+i, text) + "\n")
	}
	b.WriteString("\n" + faintStyle.Render("enter select/edit  |  d delete selected"))
	return b.String()
}

func (m *Model) renderProperties() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Properties") + "\n\n")

	el := m.doc.Find(m.selectedID)
	if el == nil {
		b.WriteString(faintStyle.Render("Select a component in the\nDesign layers to edit its\nproperties."))
		return b.String()
	}

	b.WriteString(string(el.Kind) + "\n\n")
	fields := kindFields(el.Kind)

	line := func(target editTarget, key, name, value string) {
		if m.editing == target {
			b.WriteString(fmt.Sprintf("%s %s: %s\n", key, name, m.input.View()))
			return
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", key, name, value))
	}

	if fields.title {
		line(editTitle, "t", "Title", el.Content.Title)
	}
	if fields.subtitle {
		line(editSubtitle, "s", "Subtitle", el.Content.Subtitle)
	}
	if fields.text {
		line(editText, "x", "Text", el.Content.Text)
	}
	if fields.label {
		line(editLabel, "l", "Label", el.Content.Label)
	}
	if fields.price {
		line(editPrice, "p", "Price", el.Content.Price)
	}
	if fields.image {
		line(editImageRef, "i", "Image", shortRef(el.Content.ImageRef))
	}
	b.WriteString("\n" + faintStyle.Render("Styling") + "\n")
	b.WriteString("a Align: " + orDefault(el.Style.Align, "left") + "\n")
	line(editBgColor, "b", "Bg", orDefault(el.Style.BackgroundColor, "-"))
	line(editTextColor, "c", "Color", orDefault(el.Style.TextColor, "-"))
	b.WriteString("\n" + faintStyle.Render("d delete component"))
	return b.String()
}

func (m *Model) renderStatus() string {
	parts := []string{}
	if m.isGenerating {
		parts = append(parts, m.spin.View()+" generating layout")
	} else if m.resolving {
		parts = append(parts, m.spin.View()+" resolving images")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, "tab panels | q quit")
	return strings.Join(parts, "  |  ")
}

func shortRef(ref string) string {
	if len(ref) > 20 {
		return ref[:20] + "..."
	}
	if ref == "" {
		return "-"
	}
	return ref
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
