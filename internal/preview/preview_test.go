package preview

import (
	"strings"
	"testing"

	"appcanvas/internal/document"
)

func TestRenderEmptyDocument(t *testing.T) {
	out := Render(document.New(), "")
	if !strings.Contains(out, "My New App") {
		t.Errorf("app name missing from preview")
	}
	if !strings.Contains(out, "Empty canvas") {
		t.Errorf("empty state missing from preview")
	}
}

func TestRenderElementKinds(t *testing.T) {
	doc := document.New()
	for _, k := range document.Kinds {
		doc = document.Add(doc, k)
	}
	out := Render(doc, "")

	for _, want := range []string{"New Heading", "Add your text here.", "Click Me", "$19.99", "No Image Selected"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}

func TestRenderPendingImage(t *testing.T) {
	doc := document.Add(document.New(), document.KindImage)
	doc = document.Update(doc, doc.Elements[0].ID, document.Patch{
		Content: document.ContentPatch{ImageRef: document.StrPtr("GENERATE_IMAGE: a sunset")},
	})
	out := Render(doc, "")
	if !strings.Contains(out, "Generating AI asset") {
		t.Errorf("pending image state missing")
	}
	if strings.Contains(out, "a sunset") {
		t.Errorf("sub-prompt should not leak into the preview")
	}
}

func TestRenderResolvedImageHidesDataURI(t *testing.T) {
	doc := document.Add(document.New(), document.KindImage)
	doc = document.Update(doc, doc.Elements[0].ID, document.Patch{
		Content: document.ContentPatch{ImageRef: document.StrPtr("data:image/png;base64," + strings.Repeat("A", 5000))},
	})
	out := Render(doc, "")
	if strings.Contains(out, "AAAAAAAA") {
		t.Errorf("raw data URI leaked into the preview")
	}
	if !strings.Contains(out, "image/png") {
		t.Errorf("mime hint missing")
	}
}

func TestRenderDanglingSelectionIsSafe(t *testing.T) {
	doc := document.Add(document.New(), document.KindHeader)
	withSelection := Render(doc, doc.Elements[0].ID)
	dangling := Render(doc, "gone")
	none := Render(doc, "")
	if withSelection == "" || dangling == "" {
		t.Fatal("render produced no output")
	}
	if dangling != none {
		t.Errorf("dangling selection should render like no selection")
	}
}
