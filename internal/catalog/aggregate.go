// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"intraasia/internal/models"
)

// Groups derives the category → subcategory navigation hierarchy from the
// normalized product set. Categories keep their first-seen order from the
// input; subcategories within a group are deduplicated by key. The result
// is rebuilt on every call, one O(n) pass.
func Groups(products []models.Product) []models.CategoryGroup {
	var order []string
	groups := make(map[string]*models.CategoryGroup)
	seen := make(map[string]map[string]bool)

	for _, p := range products {
		group, ok := groups[p.Category]
		if !ok {
			group = &models.CategoryGroup{Section: p.Category}
			groups[p.Category] = group
			seen[p.Category] = make(map[string]bool)
			order = append(order, p.Category)
		}

		if seen[p.Category][p.Subcategory] {
			continue
		}
		seen[p.Category][p.Subcategory] = true

		group.Items = append(group.Items, models.SubcategoryLink{
			Name: displayName(p.Subcategory),
			Href: "/categories/" + p.Category + "/" + p.Subcategory,
		})
	}

	result := make([]models.CategoryGroup, 0, len(order))
	for _, key := range order {
		result = append(result, *groups[key])
	}
	return result
}

// displayName turns a normalized identifier back into a human-readable
// label: "walk-in-chillers" → "Walk In Chillers". A cases.Caser is
// stateful, so each call builds its own.
func displayName(key string) string {
	caser := cases.Title(language.English)
	words := strings.Split(key, "-")
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}
