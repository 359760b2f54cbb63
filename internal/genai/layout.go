package genai

import (
	"fmt"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/go-playground/validator/v10"

	"appcanvas/internal/document"
)

// Layout is the wire shape of a generated app layout. Field names mirror the
// JSON the model is asked to produce. Any id the model invents is parsed but
// never used; fresh ids are assigned on installation.
type Layout struct {
	AppName    string          `json:"appName" validate:"required"`
	ThemeColor string          `json:"themeColor"`
	Elements   []LayoutElement `json:"elements" validate:"required,min=1,dive"`
}

// LayoutElement is one generated block.
type LayoutElement struct {
	ID      string        `json:"id"`
	Type    string        `json:"type" validate:"required"`
	Content LayoutContent `json:"content"`
	Style   LayoutStyle   `json:"style"`
}

type LayoutContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Text     string `json:"text"`
	ImageRef string `json:"src"`
	Label    string `json:"label"`
	Price    string `json:"price"`
}

type LayoutStyle struct {
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	Align           string `json:"align"`
	Padding         string `json:"padding"`
	BorderRadius    string `json:"borderRadius"`
}

var (
	validateOnce sync.Once
	validateInst *validator.Validate
)

func layoutValidator() *validator.Validate {
	validateOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks the layout is well-shaped enough to install.
func (l *Layout) Validate() error {
	if err := layoutValidator().Struct(l); err != nil {
		return fmt.Errorf("genai: layout validation: %w", err)
	}
	return nil
}

// maxKindDistance bounds how far a misspelled kind may be from a known one
// before the element is dropped instead of snapped.
const maxKindDistance = 2

// DocumentElements converts the wire layout into document elements,
// best-effort. Unknown kind strings are snapped to the nearest known kind
// within edit distance 2 and dropped otherwise; align values outside the
// allowed set are cleared. IDs are left empty for ReplaceAll to assign.
func (l *Layout) DocumentElements() []document.Element {
	out := make([]document.Element, 0, len(l.Elements))
	for _, el := range l.Elements {
		kind, ok := snapKind(el.Type)
		if !ok {
			continue
		}
		out = append(out, document.Element{
			Kind: kind,
			Content: document.Content{
				Title:    el.Content.Title,
				Subtitle: el.Content.Subtitle,
				Text:     el.Content.Text,
				ImageRef: el.Content.ImageRef,
				Label:    el.Content.Label,
				Price:    el.Content.Price,
			},
			Style: document.Style{
				BackgroundColor: el.Style.BackgroundColor,
				TextColor:       el.Style.TextColor,
				Align:           normalizeAlign(el.Style.Align),
				Padding:         el.Style.Padding,
				BorderRadius:    el.Style.BorderRadius,
			},
		})
	}
	return out
}

func snapKind(raw string) (document.Kind, bool) {
	k := document.Kind(strings.ToLower(strings.TrimSpace(raw)))
	if k.Valid() {
		return k, true
	}
	best, bestDist := document.Kind(""), maxKindDistance+1
	for _, known := range document.Kinds {
		if d := levenshtein.ComputeDistance(string(k), string(known)); d < bestDist {
			best, bestDist = known, d
		}
	}
	if bestDist > maxKindDistance {
		return "", false
	}
	return best, true
}

func normalizeAlign(raw string) string {
	switch a := strings.ToLower(strings.TrimSpace(raw)); a {
	case "left", "center", "right":
		return a
	}
	return ""
}
