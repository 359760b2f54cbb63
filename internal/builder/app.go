// Package builder is the editor: it turns user intents into document
// mutations and drives the AI generation pipeline. All state changes happen
// on the bubbletea update loop, so document mutations never race.
package builder

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"appcanvas/internal/document"
	"appcanvas/internal/genai"
)

type viewState string

const (
	viewLanding viewState = "landing"
	viewBuilder viewState = "builder"
)

type panelState string

const (
	panelComponents panelState = "components"
	panelAI         panelState = "ai"
	panelDesign     panelState = "design"
)

// editTarget names the field the shared text input is editing.
type editTarget int

const (
	editNone editTarget = iota
	editAppName
	editTitle
	editSubtitle
	editText
	editLabel
	editPrice
	editImageRef
	editBgColor
	editTextColor
)

// Model is the editor. The document is canonical state; everything else is
// transient UI state that would not survive a session anyway.
type Model struct {
	ctx      context.Context
	provider genai.Provider
	log      zerolog.Logger

	doc        document.Document
	view       viewState
	panel      panelState
	selectedID string

	paletteCursor int
	designCursor  int

	prompt  textarea.Model
	input   textinput.Model
	editing editTarget
	spin    spinner.Model

	isGenerating bool
	resolving    bool
	attempted    map[string]bool

	status string
	width  int
	height int
}

// New builds the editor around an empty document and the injected
// generation capability.
func New(ctx context.Context, provider genai.Provider, log zerolog.Logger) *Model {
	ta := textarea.New()
	ta.Placeholder = "e.g. A fitness app with a dark theme, a hero section showing a runner, a list of workout programs, and a subscribe button."
	ta.SetHeight(6)
	ta.CharLimit = 2000

	ti := textinput.New()
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &Model{
		ctx:      ctx,
		provider: provider,
		log:      log,
		doc:      document.New(),
		view:     viewLanding,
		panel:    panelComponents,
		prompt:   ta,
		input:    ti,
		spin:     sp,
	}
}

// Doc exposes the current document snapshot, mainly for tests.
func (m *Model) Doc() document.Document { return m.doc }

// SelectedID exposes the current selection, mainly for tests.
func (m *Model) SelectedID() string { return m.selectedID }

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// selectElement is the selection intent from the preview side; it tolerates
// unknown ids by clearing the selection.
func (m *Model) selectElement(id string) {
	if id != "" && m.doc.Find(id) == nil {
		id = ""
	}
	m.selectedID = id
}

// removeSelected deletes the selected element and clears the selection in
// the same step, so the selection never dangles.
func (m *Model) removeSelected() {
	if m.selectedID == "" {
		return
	}
	m.doc = document.Remove(m.doc, m.selectedID)
	m.selectedID = ""
	m.clampDesignCursor()
}
