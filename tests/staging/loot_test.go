//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

type generatedItem struct {
	Template struct {
		Code  string `json:"code"`
		Price int    `json:"price"`
	} `json:"template"`
	BaseName string `json:"base_name"`
	FullName string `json:"full_name"`
	Rarity   string `json:"rarity"`
	Palette  struct {
		Primary string `json:"primary"`
	} `json:"palette"`
	Seed string `json:"seed"`
}

func TestGenerateItem(t *testing.T) {
	body := map[string]interface{}{
		"table_id": "goblin_blade",
	}

	resp, respBody := makeRequest(t, "POST", "/api/v1/loot/generate", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.StatusCode, respBody)
	}

	var item generatedItem
	if err := json.Unmarshal(respBody, &item); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if item.BaseName == "" {
		t.Error("Expected a base name")
	}
	if item.Rarity == "" {
		t.Error("Expected a rarity")
	}
	if item.Palette.Primary == "" {
		t.Error("Expected a palette color")
	}
	if item.Template.Price <= 0 {
		t.Errorf("Expected positive price, got %d", item.Template.Price)
	}
}

func TestGenerateItem_SeededReproducibility(t *testing.T) {
	body := map[string]interface{}{
		"table_id": "goblin_blade",
		"seed":     "staging-repro",
	}

	_, first := makeRequest(t, "POST", "/api/v1/loot/generate", body)
	_, second := makeRequest(t, "POST", "/api/v1/loot/generate", body)

	var a, b generatedItem
	if err := json.Unmarshal(first, &a); err != nil {
		t.Fatalf("Failed to unmarshal first response: %v", err)
	}
	if err := json.Unmarshal(second, &b); err != nil {
		t.Fatalf("Failed to unmarshal second response: %v", err)
	}

	if a.FullName != b.FullName || a.Rarity != b.Rarity || a.Template.Code != b.Template.Code {
		t.Errorf("Seeded generations differ: %q/%s vs %q/%s", a.FullName, a.Rarity, b.FullName, b.Rarity)
	}
}

func TestGenerateItem_UnknownTable(t *testing.T) {
	body := map[string]interface{}{
		"table_id": "definitely_not_registered",
	}

	resp, _ := makeRequest(t, "POST", "/api/v1/loot/generate", body)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestRecentItems(t *testing.T) {
	// Generate one item first so the window is not empty.
	makeRequest(t, "POST", "/api/v1/loot/generate", map[string]interface{}{
		"table_id": "goblin_blade",
	})

	resp, respBody := makeRequest(t, "GET", "/api/v1/loot/recent", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var recent struct {
		Items []generatedItem `json:"items"`
		Count int             `json:"count"`
	}
	if err := json.Unmarshal(respBody, &recent); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if recent.Count == 0 {
		t.Error("Expected at least one recent item")
	}
}
