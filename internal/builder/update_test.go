package builder

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"appcanvas/internal/document"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestLandingEnterOpensBuilder(t *testing.T) {
	m := New(context.Background(), &fakeProvider{}, zerolog.Nop())
	if m.view != viewLanding {
		t.Fatalf("initial view = %s", m.view)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewBuilder {
		t.Fatalf("view after enter = %s", m.view)
	}
}

func TestAddComponentViaPalette(t *testing.T) {
	m := newTestModel(&fakeProvider{})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // palette cursor starts on header
	doc := m.Doc()
	if len(doc.Elements) != 1 || doc.Elements[0].Kind != document.KindHeader {
		t.Fatalf("expected one header element, got %+v", doc.Elements)
	}
}

func TestRemoveSelectedClearsSelection(t *testing.T) {
	m := newTestModel(&fakeProvider{})
	m.doc = document.Add(m.doc, document.KindButton)
	id := m.doc.Elements[0].ID
	m.selectElement(id)
	if m.SelectedID() != id {
		t.Fatalf("selection not set")
	}

	m.Update(keyRune('d'))

	if m.SelectedID() != "" {
		t.Errorf("selection should clear when the selected component is removed")
	}
	if len(m.Doc().Elements) != 0 {
		t.Errorf("element should be gone")
	}
}

func TestSelectUnknownIDClearsSelection(t *testing.T) {
	m := newTestModel(&fakeProvider{})
	m.selectElement("no-such-id")
	if m.SelectedID() != "" {
		t.Errorf("dangling selection should be cleared")
	}
}

func TestPanelSwitchPreservesPrompt(t *testing.T) {
	m := newTestModel(&fakeProvider{})
	m.prompt.SetValue("a coffee shop app")

	m.Update(tea.KeyMsg{Type: tea.KeyTab}) // components -> ai
	m.Update(tea.KeyMsg{Type: tea.KeyTab}) // ai -> design
	m.Update(tea.KeyMsg{Type: tea.KeyTab}) // design -> components
	m.Update(tea.KeyMsg{Type: tea.KeyTab}) // back to ai

	if got := m.prompt.Value(); got != "a coffee shop app" {
		t.Fatalf("prompt = %q, want preserved text", got)
	}
}

func TestEditTitleCommits(t *testing.T) {
	m := newTestModel(&fakeProvider{})
	m.doc = document.Add(m.doc, document.KindHeader)
	m.selectElement(m.doc.Elements[0].ID)

	m.Update(keyRune('t'))
	if m.editing != editTitle {
		t.Fatalf("editing = %d, want title", m.editing)
	}
	m.input.SetValue("Welcome Home")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.Doc().Elements[0].Content.Title; got != "Welcome Home" {
		t.Errorf("title = %q", got)
	}
	if m.editing != editNone {
		t.Errorf("edit mode should end on commit")
	}
}

func TestPropertyKeyIgnoredForWrongKind(t *testing.T) {
	m := newTestModel(&fakeProvider{})
	m.doc = document.Add(m.doc, document.KindButton)
	m.selectElement(m.doc.Elements[0].ID)

	m.Update(keyRune('t')) // buttons have no title
	if m.editing != editNone {
		t.Errorf("title edit should be ignored for a button")
	}
}

func TestAlignCycles(t *testing.T) {
	m := newTestModel(&fakeProvider{})
	m.doc = document.Add(m.doc, document.KindText)
	m.selectElement(m.doc.Elements[0].ID)

	for _, want := range []string{"center", "right", "left"} {
		m.Update(keyRune('a'))
		if got := m.Doc().Elements[0].Style.Align; got != want {
			t.Fatalf("align = %q, want %q", got, want)
		}
	}
}

func TestDesignPanelSelectsLayer(t *testing.T) {
	m := newTestModel(&fakeProvider{})
	m.doc = document.Add(m.doc, document.KindHeader)
	m.panel = panelDesign
	m.designCursor = 2 // first layer row

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.SelectedID() != m.Doc().Elements[0].ID {
		t.Fatalf("layer enter should select the element")
	}
}

func TestThemeCycle(t *testing.T) {
	m := newTestModel(&fakeProvider{})
	m.panel = panelDesign
	m.designCursor = 1

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Doc().ThemeColor; got != document.ThemePalette[1] {
		t.Fatalf("theme = %q, want next palette color", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Doc().ThemeColor; got != document.ThemePalette[0] {
		t.Fatalf("theme = %q, want previous palette color", got)
	}
}

func TestViewRendersWithoutSelection(t *testing.T) {
	m := newTestModel(&fakeProvider{})
	m.doc = document.Add(m.doc, document.KindHero)
	if out := m.View(); out == "" {
		t.Fatal("empty view")
	}
	m.view = viewLanding
	if out := m.View(); out == "" {
		t.Fatal("empty landing view")
	}
}
