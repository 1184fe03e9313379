// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the derived records served by the catalog layer.
package models

// CategoryGroup is one navigation section: a category and its distinct
// subcategories. Groups are rebuilt from the current product set on every
// call and never persisted.
type CategoryGroup struct {
	Section string            `json:"section"`
	Items   []SubcategoryLink `json:"items"`
}

// SubcategoryLink is a browsable subcategory entry within a CategoryGroup.
type SubcategoryLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// HeroSlide is a homepage carousel entry.
type HeroSlide struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}
