package document

import "github.com/google/uuid"

// All operations below are pure: they return a new document and never touch
// the input's element slice. IDs are assigned here and only here, so
// uniqueness holds by construction.

// Add appends a new element of the given kind with a fresh id and
// kind-appropriate default content. Unknown kinds return the document
// unchanged. No image reference is ever defaulted; "no image chosen" is a
// valid state the preview knows how to draw.
func Add(doc Document, kind Kind) Document {
	if !kind.Valid() {
		return doc
	}
	el := Element{
		ID:      uuid.NewString(),
		Kind:    kind,
		Content: defaultContent(kind),
		Style:   Style{Align: "left", Padding: "medium"},
	}
	out := doc
	out.Elements = append(cloneElements(doc.Elements), el)
	return out
}

func defaultContent(kind Kind) Content {
	var c Content
	switch kind {
	case KindHeader, KindHero:
		c.Title = "New Heading"
	case KindProduct:
		c.Title = "Product Name"
		c.Price = "$19.99"
	case KindText:
		c.Text = "Add your text here."
	case KindButton:
		c.Label = "Click Me"
	}
	return c
}

// Update merges the patch into the element with the given id. A missing id
// is a no-op. Untouched fields keep their prior values.
func Update(doc Document, id string, patch Patch) Document {
	out := doc
	out.Elements = cloneElements(doc.Elements)
	for i := range out.Elements {
		if out.Elements[i].ID != id {
			continue
		}
		out.Elements[i].Content = patch.Content.apply(out.Elements[i].Content)
		out.Elements[i].Style = patch.Style.apply(out.Elements[i].Style)
		return out
	}
	return doc
}

// Remove deletes the element with the given id if present. The caller is
// responsible for clearing any selection that referenced it.
func Remove(doc Document, id string) Document {
	out := doc
	out.Elements = make([]Element, 0, len(doc.Elements))
	for _, el := range doc.Elements {
		if el.ID == id {
			continue
		}
		out.Elements = append(out.Elements, el)
	}
	if len(out.Elements) == len(doc.Elements) {
		return doc
	}
	return out
}

// ReplaceAll installs a wholly new component list, as produced by AI
// generation. Every incoming element gets a fresh id; ids supplied by the
// source are untrusted and discarded. An empty themeColor falls back to the
// default.
func ReplaceAll(doc Document, appName, themeColor string, elems []Element) Document {
	if themeColor == "" {
		themeColor = DefaultThemeColor
	}
	out := Document{AppName: appName, ThemeColor: themeColor}
	out.Elements = make([]Element, len(elems))
	for i, el := range elems {
		el.ID = uuid.NewString()
		out.Elements[i] = el
	}
	return out
}

// PatchContentByID merges a content patch into the element with the given
// id, locating it at patch time so the operation stays correct when the
// list has been edited since the patch was scheduled. A vanished id is a
// no-op.
func PatchContentByID(doc Document, id string, patch ContentPatch) Document {
	out := doc
	out.Elements = cloneElements(doc.Elements)
	for i := range out.Elements {
		if out.Elements[i].ID != id {
			continue
		}
		out.Elements[i].Content = patch.apply(out.Elements[i].Content)
		return out
	}
	return doc
}

func cloneElements(elems []Element) []Element {
	out := make([]Element, len(elems))
	copy(out, elems)
	return out
}
