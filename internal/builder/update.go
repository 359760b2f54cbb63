package builder

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"appcanvas/internal/document"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case spinner.TickMsg:
		if m.isGenerating || m.resolving {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	case statusMsg:
		m.status = string(msg)
	case layoutGeneratedMsg:
		return m, m.handleLayoutGenerated(msg)
	case imageResolvedMsg:
		return m, m.handleImageResolved(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.view == viewLanding {
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter":
			m.view = viewBuilder
		}
		return m, nil
	}

	if m.editing != editNone {
		return m.handleEditKey(msg)
	}

	if m.panel == panelAI {
		return m.handleAIPanelKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.view = viewLanding
		m.status = ""
		return m, nil
	case "tab":
		return m, m.cyclePanel()
	}

	if cmd, handled := m.handlePropertyKey(msg); handled {
		return m, cmd
	}

	switch m.panel {
	case panelComponents:
		return m.handleComponentsKey(msg)
	case panelDesign:
		return m.handleDesignKey(msg)
	}
	return m, nil
}

func (m *Model) cyclePanel() tea.Cmd {
	m.prompt.Blur()
	switch m.panel {
	case panelComponents:
		m.panel = panelAI
		m.prompt.Focus()
		return textarea.Blink
	case panelAI:
		m.panel = panelDesign
		m.clampDesignCursor()
	default:
		m.panel = panelComponents
	}
	return nil
}

func (m *Model) handleComponentsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.paletteCursor > 0 {
			m.paletteCursor--
		}
	case "down", "j":
		if m.paletteCursor < len(document.Kinds)-1 {
			m.paletteCursor++
		}
	case "enter":
		kind := document.Kinds[m.paletteCursor]
		m.doc = document.Add(m.doc, kind)
		m.status = "Added " + string(kind)
	}
	return m, nil
}

// Design panel rows: 0 app name, 1 theme color, 2.. layers.
func (m *Model) designRows() int { return 2 + len(m.doc.Elements) }

func (m *Model) clampDesignCursor() {
	if max := m.designRows() - 1; m.designCursor > max {
		m.designCursor = max
	}
}

func (m *Model) handleDesignKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.designCursor > 0 {
			m.designCursor--
		}
	case "down", "j":
		if m.designCursor < m.designRows()-1 {
			m.designCursor++
		}
	case "left", "h":
		if m.designCursor == 1 {
			m.cycleTheme(-1)
		}
	case "right":
		if m.designCursor == 1 {
			m.cycleTheme(1)
		}
	case "enter":
		switch m.designCursor {
		case 0:
			return m, m.startEdit(editAppName)
		case 1:
			m.cycleTheme(1)
		default:
			idx := m.designCursor - 2
			if idx < len(m.doc.Elements) {
				m.selectElement(m.doc.Elements[idx].ID)
			}
		}
	}
	return m, nil
}

func (m *Model) cycleTheme(dir int) {
	cur := 0
	for i, c := range document.ThemePalette {
		if c == m.doc.ThemeColor {
			cur = i
			break
		}
	}
	n := len(document.ThemePalette)
	m.doc.ThemeColor = document.ThemePalette[(cur+dir+n)%n]
}

func (m *Model) handleAIPanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m, m.cyclePanel()
	case "esc":
		m.prompt.Blur()
		m.panel = panelComponents
		return m, nil
	case "ctrl+s":
		if cmd := m.startGeneration(); cmd != nil {
			return m, tea.Batch(cmd, m.spin.Tick)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handlePropertyKey maps single-letter keys to edits of the selected
// element. Keys for fields the kind does not use are ignored.
func (m *Model) handlePropertyKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "d" {
		if m.selectedID != "" {
			m.removeSelected()
			m.status = "Component removed"
		}
		return nil, true
	}

	el := m.doc.Find(m.selectedID)
	if el == nil {
		return nil, false
	}
	fields := kindFields(el.Kind)

	switch msg.String() {
	case "t":
		if fields.title {
			return m.startEdit(editTitle), true
		}
	case "s":
		if fields.subtitle {
			return m.startEdit(editSubtitle), true
		}
	case "x":
		if fields.text {
			return m.startEdit(editText), true
		}
	case "l":
		if fields.label {
			return m.startEdit(editLabel), true
		}
	case "p":
		if fields.price {
			return m.startEdit(editPrice), true
		}
	case "i":
		if fields.image {
			return m.startEdit(editImageRef), true
		}
	case "a":
		m.cycleAlign(el)
		return nil, true
	case "b":
		return m.startEdit(editBgColor), true
	case "c":
		return m.startEdit(editTextColor), true
	}
	return nil, false
}

func (m *Model) cycleAlign(el *document.Element) {
	next := map[string]string{"left": "center", "center": "right", "right": "left", "": "center"}[el.Style.Align]
	m.doc = document.Update(m.doc, el.ID, document.Patch{Style: document.StylePatch{Align: document.StrPtr(next)}})
}

// fieldSet marks which content fields are meaningful for a kind, mirroring
// what the properties panel offers.
type fieldSet struct {
	title, subtitle, text, label, price, image bool
}

func kindFields(k document.Kind) fieldSet {
	switch k {
	case document.KindHeader:
		return fieldSet{title: true, subtitle: true}
	case document.KindHero:
		return fieldSet{title: true, subtitle: true, image: true}
	case document.KindText:
		return fieldSet{text: true}
	case document.KindImage:
		return fieldSet{image: true}
	case document.KindButton:
		return fieldSet{label: true}
	case document.KindProduct:
		return fieldSet{title: true, price: true, image: true}
	}
	return fieldSet{}
}

func (m *Model) startEdit(target editTarget) tea.Cmd {
	m.editing = target
	m.input.SetValue(m.currentEditValue(target))
	m.input.CursorEnd()
	m.input.Focus()
	return textinput.Blink
}

func (m *Model) currentEditValue(target editTarget) string {
	if target == editAppName {
		return m.doc.AppName
	}
	el := m.doc.Find(m.selectedID)
	if el == nil {
		return ""
	}
	switch target {
	case editTitle:
		return el.Content.Title
	case editSubtitle:
		return el.Content.Subtitle
	case editText:
		return el.Content.Text
	case editLabel:
		return el.Content.Label
	case editPrice:
		return el.Content.Price
	case editImageRef:
		return el.Content.ImageRef
	case editBgColor:
		return el.Style.BackgroundColor
	case editTextColor:
		return el.Style.TextColor
	}
	return ""
}

func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = editNone
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.commitEdit()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) commitEdit() {
	value := m.input.Value()
	target := m.editing
	m.editing = editNone
	m.input.Blur()

	if target == editAppName {
		if name := strings.TrimSpace(value); name != "" {
			m.doc.AppName = name
		}
		return
	}

	var patch document.Patch
	v := document.StrPtr(value)
	switch target {
	case editTitle:
		patch.Content.Title = v
	case editSubtitle:
		patch.Content.Subtitle = v
	case editText:
		patch.Content.Text = v
	case editLabel:
		patch.Content.Label = v
	case editPrice:
		patch.Content.Price = v
	case editImageRef:
		patch.Content.ImageRef = v
	case editBgColor:
		patch.Style.BackgroundColor = v
	case editTextColor:
		patch.Style.TextColor = v
	default:
		return
	}
	m.doc = document.Update(m.doc, m.selectedID, patch)
}
