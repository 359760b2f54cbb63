package builder

import "appcanvas/internal/genai"

// statusMsg updates the status line.
type statusMsg string

// layoutGeneratedMsg is the outcome of one layout generation request.
// Exactly one of layout/err is meaningful.
type layoutGeneratedMsg struct {
	layout *genai.Layout
	err    error
}

// imageResolvedMsg is the outcome of one image generation request for the
// element with the given id.
type imageResolvedMsg struct {
	id  string
	ref string
	err error
}
