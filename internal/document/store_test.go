package document

import (
	"reflect"
	"testing"
)

func TestAddAssignsUniqueIDs(t *testing.T) {
	doc := New()
	for _, k := range []Kind{KindHeader, KindHero, KindText, KindImage, KindButton, KindProduct} {
		doc = Add(doc, k)
	}
	doc = Remove(doc, doc.Elements[2].ID)
	doc = Add(doc, KindText)
	doc = Add(doc, KindText)

	seen := map[string]bool{}
	for _, el := range doc.Elements {
		if el.ID == "" {
			t.Fatal("element with empty id")
		}
		if seen[el.ID] {
			t.Fatalf("duplicate id %s", el.ID)
		}
		seen[el.ID] = true
	}
}

func TestAddHeaderDefaults(t *testing.T) {
	doc := Add(New(), KindHeader)
	if len(doc.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(doc.Elements))
	}
	el := doc.Elements[0]
	if el.Kind != KindHeader {
		t.Errorf("kind = %s, want header", el.Kind)
	}
	if el.Content.Title != "New Heading" {
		t.Errorf("title = %q, want %q", el.Content.Title, "New Heading")
	}
	if el.Style.Align != "left" {
		t.Errorf("align = %q, want left", el.Style.Align)
	}
	if el.Style.Padding != "medium" {
		t.Errorf("padding = %q, want medium", el.Style.Padding)
	}
	if el.Content.ImageRef != "" {
		t.Errorf("image ref should never be defaulted, got %q", el.Content.ImageRef)
	}
}

func TestAddDefaultsPerKind(t *testing.T) {
	cases := []struct {
		kind  Kind
		check func(t *testing.T, c Content)
	}{
		{KindHero, func(t *testing.T, c Content) {
			if c.Title != "New Heading" {
				t.Errorf("hero title = %q", c.Title)
			}
		}},
		{KindText, func(t *testing.T, c Content) {
			if c.Text != "Add your text here." {
				t.Errorf("text = %q", c.Text)
			}
			if c.Title != "" {
				t.Errorf("text element should not default a title, got %q", c.Title)
			}
		}},
		{KindButton, func(t *testing.T, c Content) {
			if c.Label != "Click Me" {
				t.Errorf("label = %q", c.Label)
			}
		}},
		{KindProduct, func(t *testing.T, c Content) {
			if c.Title != "Product Name" || c.Price != "$19.99" {
				t.Errorf("product defaults = %q / %q", c.Title, c.Price)
			}
		}},
		{KindImage, func(t *testing.T, c Content) {
			if c != (Content{}) {
				t.Errorf("image element should have empty content, got %+v", c)
			}
		}},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			doc := Add(New(), tc.kind)
			tc.check(t, doc.Elements[0].Content)
		})
	}
}

func TestAddUnknownKindIsNoop(t *testing.T) {
	doc := Add(New(), Kind("carousel"))
	if len(doc.Elements) != 0 {
		t.Fatalf("unknown kind should not add an element")
	}
}

func TestUpdateMergesFieldLevel(t *testing.T) {
	doc := Add(New(), KindProduct)
	id := doc.Elements[0].ID

	doc = Update(doc, id, Patch{Content: ContentPatch{Title: StrPtr("Sneakers")}})
	el := doc.Elements[0]
	if el.Content.Title != "Sneakers" {
		t.Errorf("title = %q", el.Content.Title)
	}
	if el.Content.Price != "$19.99" {
		t.Errorf("untouched price should survive, got %q", el.Content.Price)
	}

	doc = Update(doc, id, Patch{Style: StylePatch{Align: StrPtr("center")}})
	if doc.Elements[0].Style.Align != "center" {
		t.Errorf("align = %q", doc.Elements[0].Style.Align)
	}
	if doc.Elements[0].Content.Title != "Sneakers" {
		t.Errorf("style patch must not clobber content")
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	doc := Add(New(), KindHeader)
	id := doc.Elements[0].ID
	patch := Patch{
		Content: ContentPatch{Title: StrPtr("Welcome"), Subtitle: StrPtr("hello")},
		Style:   StylePatch{TextColor: StrPtr("#ffffff")},
	}
	once := Update(doc, id, patch)
	twice := Update(once, id, patch)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second application changed the document:\n%+v\n%+v", once, twice)
	}
}

func TestUpdateMissingIDIsNoop(t *testing.T) {
	doc := Add(New(), KindText)
	got := Update(doc, "no-such-id", Patch{Content: ContentPatch{Text: StrPtr("x")}})
	if !reflect.DeepEqual(doc, got) {
		t.Fatalf("update of missing id should return a structurally equal document")
	}
}

func TestRemove(t *testing.T) {
	doc := Add(Add(New(), KindHeader), KindButton)
	id := doc.Elements[0].ID
	doc = Remove(doc, id)
	if len(doc.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(doc.Elements))
	}
	if doc.Elements[0].Kind != KindButton {
		t.Errorf("wrong element removed")
	}
	if got := Remove(doc, "no-such-id"); !reflect.DeepEqual(doc, got) {
		t.Errorf("remove of missing id should be a no-op")
	}
}

func TestReplaceAllDiscardsIncomingIDs(t *testing.T) {
	doc := Add(New(), KindHeader)
	incoming := []Element{
		{ID: "x1", Kind: KindHero, Content: Content{Title: "Run"}},
		{ID: "x2", Kind: KindText, Content: Content{Text: "hello"}},
		{ID: "x1", Kind: KindButton, Content: Content{Label: "Go"}},
	}
	got := ReplaceAll(doc, "Fitness", "#10b981", incoming)

	if got.AppName != "Fitness" || got.ThemeColor != "#10b981" {
		t.Errorf("name/theme = %q/%q", got.AppName, got.ThemeColor)
	}
	if len(got.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(got.Elements))
	}
	seen := map[string]bool{}
	for _, el := range got.Elements {
		if el.ID == "x1" || el.ID == "x2" {
			t.Errorf("incoming id %q survived replacement", el.ID)
		}
		if seen[el.ID] {
			t.Errorf("duplicate id after replacement")
		}
		seen[el.ID] = true
	}
	if got.Elements[0].Content.Title != "Run" {
		t.Errorf("element content should be preserved")
	}
}

func TestReplaceAllDefaultsEmptyTheme(t *testing.T) {
	got := ReplaceAll(New(), "App", "", nil)
	if got.ThemeColor != DefaultThemeColor {
		t.Errorf("theme = %q, want default", got.ThemeColor)
	}
}

func TestPatchContentByID(t *testing.T) {
	doc := Add(Add(New(), KindHero), KindText)
	heroID := doc.Elements[0].ID

	// a concurrent-looking edit between scheduling and applying the patch
	doc = Remove(doc, doc.Elements[1].ID)
	doc = PatchContentByID(doc, heroID, ContentPatch{ImageRef: StrPtr("data:image/png;base64,AAA")})

	if got := doc.Elements[0].Content.ImageRef; got != "data:image/png;base64,AAA" {
		t.Errorf("image ref = %q", got)
	}
	if doc.Elements[0].Content.Title != "New Heading" {
		t.Errorf("patch must not clobber other content fields")
	}
}

func TestPatchContentByIDRemovedIsNoop(t *testing.T) {
	doc := Add(New(), KindHero)
	id := doc.Elements[0].ID
	doc = Remove(doc, id)
	got := PatchContentByID(doc, id, ContentPatch{ImageRef: StrPtr("data:x")})
	if !reflect.DeepEqual(doc, got) {
		t.Fatalf("patch of removed id should leave the document unchanged")
	}
}
