package secrets

import "testing"

func TestStoreFetchDeleteRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := StoreProviderKey("gemini", "sk-test-123"); err != nil {
		t.Fatalf("store: %v", err)
	}
	got, err := FetchProviderKey("Gemini") // lookup is case-insensitive
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != "sk-test-123" {
		t.Errorf("fetched key = %q", got)
	}

	if err := DeleteProviderKey("gemini"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := FetchProviderKey("gemini"); err == nil {
		t.Errorf("expected error after delete")
	}
}

func TestFetchMissingKey(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if _, err := FetchProviderKey("gemini"); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestEmptyProviderRejected(t *testing.T) {
	if err := StoreProviderKey("  ", "x"); err == nil {
		t.Fatal("expected error for blank provider")
	}
}
