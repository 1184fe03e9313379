package catalog

import (
	"testing"
	"time"

	"intraasia/internal/models"
)

func product(name, brand, category, subcategory, dateAdded string) models.Product {
	var ts time.Time
	if dateAdded != "" {
		// Test data uses valid dates; a zero ts stands in for the
		// unparsable-date case.
		ts, _ = time.Parse(time.RFC3339, dateAdded)
	}
	return models.Product{
		ID:          "id-" + name,
		Slug:        "slug-" + name,
		Name:        name,
		Brand:       brand,
		Supplier:    brand,
		Category:    category,
		Subcategory: subcategory,
		Features:    []string{},
		DateAdded:   ts,
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func assertOrder(t *testing.T, got []models.Product, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d products %v, want %d", len(got), names(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d = %q, want %q (full order: %v)", i, got[i].Name, name, names(got))
		}
	}
}

func TestByCategory(t *testing.T) {
	products := []models.Product{
		product("Oven A", "Acme", "kitchen", "ovens", "2023-01-01T00:00:00Z"),
		product("Oven B", "Acme", "kitchen", "ovens", "2023-06-01T00:00:00Z"),
		product("Fridge", "ColdLine", "kitchen", "refrigeration", "2023-02-01T00:00:00Z"),
		product("Washer", "Acme", "laundry", "washers", "2023-03-01T00:00:00Z"),
	}

	t.Run("category only", func(t *testing.T) {
		got := ByCategory(products, "kitchen", "")
		assertOrder(t, got, []string{"Oven A", "Oven B", "Fridge"})
	})

	t.Run("category and subcategory", func(t *testing.T) {
		got := ByCategory(products, "kitchen", "ovens")
		assertOrder(t, got, []string{"Oven A", "Oven B"})
	})

	t.Run("display names match like slugs", func(t *testing.T) {
		lower := ByCategory(products, "kitchen", "ovens")
		display := ByCategory(products, "Kitchen", "Ovens")
		assertOrder(t, display, names(lower))
	})

	t.Run("no match", func(t *testing.T) {
		if got := ByCategory(products, "bakery", ""); len(got) != 0 {
			t.Errorf("got %v, want empty", names(got))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := ByCategory(nil, "kitchen", ""); len(got) != 0 {
			t.Errorf("got %v, want empty", names(got))
		}
	})
}

func TestSort(t *testing.T) {
	products := []models.Product{
		product("Mixer", "ZetaLine", "kitchen", "prep", "2023-03-01T00:00:00Z"),
		product("Oven A", "Acme", "kitchen", "ovens", "2023-01-01T00:00:00Z"),
		product("Oven B", "KitchenPro", "kitchen", "ovens", "2023-06-01T00:00:00Z"),
	}

	tests := []struct {
		name   string
		option SortOption
		want   []string
	}{
		{"alphabetical ascending", SortAlphabeticalAsc, []string{"Mixer", "Oven A", "Oven B"}},
		{"alphabetical descending", SortAlphabeticalDesc, []string{"Oven B", "Oven A", "Mixer"}},
		{"newest first", SortNewest, []string{"Oven B", "Mixer", "Oven A"}},
		{"oldest first", SortOldest, []string{"Oven A", "Mixer", "Oven B"}},
		{"brand ascending", SortBrandAsc, []string{"Oven A", "Oven B", "Mixer"}},
		{"brand descending", SortBrandDesc, []string{"Mixer", "Oven B", "Oven A"}},
		{"unknown option keeps input order", SortOption("price"), []string{"Mixer", "Oven A", "Oven B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sort(products, tt.option)
			assertOrder(t, got, tt.want)
		})
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	products := []models.Product{
		product("B", "b", "c", "s", "2023-01-01T00:00:00Z"),
		product("A", "a", "c", "s", "2023-02-01T00:00:00Z"),
	}

	Sort(products, SortAlphabeticalAsc)

	if products[0].Name != "B" || products[1].Name != "A" {
		t.Errorf("input mutated: %v", names(products))
	}
}

func TestSort_EmptyList(t *testing.T) {
	for _, option := range []SortOption{
		SortAlphabeticalAsc, SortAlphabeticalDesc, SortNewest, SortOldest,
		SortBrandAsc, SortBrandDesc, SortOption("bogus"),
	} {
		if got := Sort(nil, option); len(got) != 0 {
			t.Errorf("Sort(nil, %q) = %v, want empty", option, got)
		}
	}
}

func TestSort_ZeroDateSortsAsOldest(t *testing.T) {
	products := []models.Product{
		product("No Date", "x", "c", "s", ""),
		product("Dated", "x", "c", "s", "2023-01-01T00:00:00Z"),
	}

	assertOrder(t, Sort(products, SortNewest), []string{"Dated", "No Date"})
	assertOrder(t, Sort(products, SortOldest), []string{"No Date", "Dated"})
}

// TestSort_NewestScenario pins the ordering for the canonical two-oven case.
func TestSort_NewestScenario(t *testing.T) {
	products := []models.Product{
		product("Oven A", "Acme", "kitchen", "ovens", "2023-01-01T00:00:00Z"),
		product("Oven B", "Acme", "kitchen", "ovens", "2023-06-01T00:00:00Z"),
	}
	assertOrder(t, Sort(products, SortNewest), []string{"Oven B", "Oven A"})
}

func TestBySlugAndByID(t *testing.T) {
	products := []models.Product{
		product("Oven A", "Acme", "kitchen", "ovens", "2023-01-01T00:00:00Z"),
		product("Oven B", "Acme", "kitchen", "ovens", "2023-06-01T00:00:00Z"),
	}

	if p, ok := BySlug(products, "slug-Oven B"); !ok || p.Name != "Oven B" {
		t.Errorf("BySlug = %v/%v, want Oven B/true", p.Name, ok)
	}
	if _, ok := BySlug(products, "nope"); ok {
		t.Error("BySlug found a product for an unknown slug")
	}

	if p, ok := ByID(products, "id-Oven A"); !ok || p.Name != "Oven A" {
		t.Errorf("ByID = %v/%v, want Oven A/true", p.Name, ok)
	}
	if _, ok := ByID(products, "nope"); ok {
		t.Error("ByID found a product for an unknown id")
	}
}
