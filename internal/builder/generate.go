package builder

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"appcanvas/internal/document"
	"appcanvas/internal/genai"
)

// The generation pipeline: one layout request, then image resolution over
// the installed elements, strictly one request at a time in list order. The
// sequencing is a rate-limit tradeoff, not an optimization; do not fan out.

// startGeneration validates the prompt and kicks off a layout request.
// Blank prompts and in-flight generations are no-ops.
func (m *Model) startGeneration() tea.Cmd {
	prompt := strings.TrimSpace(m.prompt.Value())
	if prompt == "" || m.isGenerating {
		return nil
	}
	m.isGenerating = true
	m.status = "Building your app..."
	return m.generateLayoutCmd(prompt)
}

func (m *Model) generateLayoutCmd(prompt string) tea.Cmd {
	return func() tea.Msg {
		layout, err := m.provider.GenerateLayout(m.ctx, prompt)
		return layoutGeneratedMsg{layout: layout, err: err}
	}
}

// handleLayoutGenerated installs a usable layout or rolls back to the
// untouched document. Failures never propagate past this point; they are
// logged and reported on the status line only.
func (m *Model) handleLayoutGenerated(msg layoutGeneratedMsg) tea.Cmd {
	m.isGenerating = false
	if msg.err != nil || msg.layout == nil {
		m.log.Error().Err(msg.err).Msg("layout generation failed")
		m.status = "Generation failed, layout unchanged"
		return nil
	}
	elems := msg.layout.DocumentElements()
	if len(elems) == 0 {
		m.log.Error().Str("app_name", msg.layout.AppName).Msg("layout had no usable elements")
		m.status = "Generation failed, layout unchanged"
		return nil
	}

	m.doc = document.ReplaceAll(m.doc, msg.layout.AppName, msg.layout.ThemeColor, elems)
	m.selectedID = ""
	m.panel = panelDesign
	m.clampDesignCursor()
	m.status = "Layout generated"
	m.log.Info().Int("elements", len(elems)).Str("app_name", m.doc.AppName).Msg("layout installed")

	m.attempted = make(map[string]bool)
	return m.nextImageCmd()
}

// nextImageCmd finds the first element still carrying a pending-image
// sentinel that this run has not yet attempted, and issues one request for
// it. Returns nil when the run is complete.
func (m *Model) nextImageCmd() tea.Cmd {
	for _, el := range m.doc.Elements {
		if !genai.IsPendingImage(el.Content.ImageRef) || m.attempted[el.ID] {
			continue
		}
		m.attempted[el.ID] = true
		m.resolving = true
		id, prompt := el.ID, genai.ImagePrompt(el.Content.ImageRef)
		return func() tea.Msg {
			ref, err := m.provider.GenerateImage(m.ctx, prompt)
			return imageResolvedMsg{id: id, ref: ref, err: err}
		}
	}
	m.resolving = false
	return nil
}

// handleImageResolved patches the resolved reference into the live document
// by id; if the element was removed meanwhile the patch is a no-op. A failed
// element keeps its pending state and the run moves on.
func (m *Model) handleImageResolved(msg imageResolvedMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Error().Err(msg.err).Str("element_id", msg.id).Msg("image generation failed")
	} else {
		m.doc = document.PatchContentByID(m.doc, msg.id, document.ContentPatch{ImageRef: document.StrPtr(msg.ref)})
	}
	next := m.nextImageCmd()
	if next == nil {
		m.status = "Images resolved"
	}
	return next
}
