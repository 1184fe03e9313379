// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Product is the normalized, read-only catalog record served to the UI.
// It is derived per request from joined database rows; nothing in this
// layer mutates or caches it.
type Product struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug,omitempty"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Brand       string    `json:"brand"`
	Supplier    string    `json:"supplier"`
	Definition  string    `json:"definition"`
	Features    []string  `json:"features"`
	DateAdded   time.Time `json:"dateAdded"`
}

// Default values substituted by the normalizer when a column is missing.
const (
	DefaultProductName = "Unnamed Product"
	DefaultProductImage = "/product-images/placeholder.jpg"
	DefaultBrandName   = "Unknown Brand"
	DefaultFeatureName = "Unnamed Feature"
	DefaultCategory    = "uncategorized"
)
