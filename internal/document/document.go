// Package document holds the in-memory app mockup model and the pure
// operations that mutate it. It is the single source of truth for what the
// preview renders; nothing here performs I/O.
package document

// Kind identifies a block type. The set is closed; a Kind is fixed at
// element creation and never changes.
type Kind string

const (
	KindHeader  Kind = "header"
	KindHero    Kind = "hero"
	KindText    Kind = "text"
	KindImage   Kind = "image"
	KindButton  Kind = "button"
	KindProduct Kind = "product"
)

// Kinds lists every valid kind in palette order.
var Kinds = []Kind{KindHeader, KindHero, KindText, KindImage, KindButton, KindProduct}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindHeader, KindHero, KindText, KindImage, KindButton, KindProduct:
		return true
	}
	return false
}

// Content is the field bag for element text and imagery. Which fields are
// meaningful depends on the element kind, but the bag is stored uniformly so
// editing code stays generic. Empty string means unset.
type Content struct {
	Title    string
	Subtitle string
	Text     string
	ImageRef string
	Label    string
	Price    string
}

// Style is the presentation field bag, independent of kind.
type Style struct {
	BackgroundColor string
	TextColor       string
	Align           string // left, center, right
	Padding         string
	BorderRadius    string
}

// Element is one visual block in the mockup.
type Element struct {
	ID      string
	Kind    Kind
	Content Content
	Style   Style
}

// Document is the full editable app description. Element order is display
// order and is preserved by every operation.
type Document struct {
	AppName    string
	ThemeColor string
	Elements   []Element
}

// Defaults applied to a fresh document and to AI layouts missing a theme.
const (
	DefaultAppName    = "My New App"
	DefaultThemeColor = "#4f46e5"
)

// ThemePalette is the set of theme colors offered by the design panel.
var ThemePalette = []string{"#4f46e5", "#10b981", "#ef4444", "#f59e0b", "#ec4899", "#3b82f6", "#111827"}

// New returns an empty document with default name and theme.
func New() Document {
	return Document{AppName: DefaultAppName, ThemeColor: DefaultThemeColor}
}

// Find returns the element with the given id, or nil if absent.
func (d Document) Find(id string) *Element {
	for i := range d.Elements {
		if d.Elements[i].ID == id {
			return &d.Elements[i]
		}
	}
	return nil
}

// ContentPatch is a partial update to an element's content bag. Nil fields
// are left untouched; set fields overwrite, including to the empty string.
type ContentPatch struct {
	Title    *string
	Subtitle *string
	Text     *string
	ImageRef *string
	Label    *string
	Price    *string
}

// StylePatch is a partial update to an element's style bag.
type StylePatch struct {
	BackgroundColor *string
	TextColor       *string
	Align           *string
}

// Patch carries both bags; Update routes each field to the bag it belongs to.
type Patch struct {
	Content ContentPatch
	Style   StylePatch
}

func (p ContentPatch) apply(c Content) Content {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Subtitle != nil {
		c.Subtitle = *p.Subtitle
	}
	if p.Text != nil {
		c.Text = *p.Text
	}
	if p.ImageRef != nil {
		c.ImageRef = *p.ImageRef
	}
	if p.Label != nil {
		c.Label = *p.Label
	}
	if p.Price != nil {
		c.Price = *p.Price
	}
	return c
}

func (p StylePatch) apply(s Style) Style {
	if p.BackgroundColor != nil {
		s.BackgroundColor = *p.BackgroundColor
	}
	if p.TextColor != nil {
		s.TextColor = *p.TextColor
	}
	if p.Align != nil {
		s.Align = *p.Align
	}
	return s
}

// StrPtr is a convenience for building patches.
func StrPtr(s string) *string { return &s }
