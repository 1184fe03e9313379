// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"intraasia/internal/models"
	"intraasia/internal/slug"
)

// SortOption selects a product ordering. Unknown options are a no-op,
// matching what the browse UI expects from an unrecognized query param.
type SortOption string

const (
	SortAlphabeticalAsc  SortOption = "alphabetical-asc"
	SortAlphabeticalDesc SortOption = "alphabetical-desc"
	SortNewest           SortOption = "newest"
	SortOldest           SortOption = "oldest"
	SortBrandAsc         SortOption = "brand-asc"
	SortBrandDesc        SortOption = "brand-desc"
)

// ByCategory returns the products whose normalized category (and, when
// subcategory is non-empty, subcategory) match the given keys. Inputs may
// be display names or already-normalized identifiers — both sides are
// normalized before comparison.
func ByCategory(products []models.Product, category, subcategory string) []models.Product {
	categoryKey := slug.Normalize(category)
	subcategoryKey := slug.Normalize(subcategory)

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if slug.Normalize(p.Category) != categoryKey {
			continue
		}
		if subcategoryKey != "" && slug.Normalize(p.Subcategory) != subcategoryKey {
			continue
		}
		result = append(result, p)
	}
	return result
}

// Sort returns a new slice ordered by the given option. The input is never
// mutated. Name and brand comparisons are locale-aware; date comparisons
// treat the zero time as older than everything. An unknown option returns
// the products in their input order.
func Sort(products []models.Product, option SortOption) []models.Product {
	result := make([]models.Product, len(products))
	copy(result, products)

	// A collator is not safe for concurrent use, so each call builds its
	// own. The catalog is small enough that this does not matter.
	coll := collate.New(language.English)

	switch option {
	case SortAlphabeticalAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return coll.CompareString(result[i].Name, result[j].Name) < 0
		})
	case SortAlphabeticalDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return coll.CompareString(result[j].Name, result[i].Name) < 0
		})
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DateAdded.After(result[j].DateAdded)
		})
	case SortOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DateAdded.Before(result[j].DateAdded)
		})
	case SortBrandAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return coll.CompareString(result[i].Brand, result[j].Brand) < 0
		})
	case SortBrandDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return coll.CompareString(result[j].Brand, result[i].Brand) < 0
		})
	}
	return result
}

// BySlug returns the first product with the given slug. The second return
// value reports whether one was found; absence is not an error.
func BySlug(products []models.Product, productSlug string) (models.Product, bool) {
	for _, p := range products {
		if p.Slug == productSlug {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByID returns the first product with the given ID.
func ByID(products []models.Product, id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
