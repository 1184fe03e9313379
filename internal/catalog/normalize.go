// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog turns raw joined database rows into the normalized
// Product records the site serves, and provides filtering, sorting, and
// category aggregation over them. Everything here is request-scoped and
// recomputed per call — there is deliberately no cache.
package catalog

import (
	"database/sql"

	"intraasia/internal/models"
	"intraasia/internal/slug"
	"intraasia/internal/store"
)

// Normalize maps raw product rows and their feature sub-rows into Product
// records. Rows missing a joined brand, subcategory, or category are
// excluded rather than erroring — incomplete rows are a data condition,
// not a failure. Missing optional fields get display defaults.
func Normalize(rows []store.ProductRow, featureRows []store.FeatureRow) []models.Product {
	features := featuresByProduct(featureRows)

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		if !row.Complete() {
			continue
		}

		brand := row.BrandName.String
		if brand == "" {
			brand = models.DefaultBrandName
		}

		p := models.Product{
			ID:          row.ID.String(),
			Slug:        row.Slug.String,
			Name:        stringOr(row.Name, models.DefaultProductName),
			Image:       stringOr(row.Image, models.DefaultProductImage),
			Category:    normalizeKey(row.CategoryName.String),
			Subcategory: normalizeKey(row.SubcategoryName.String),
			Brand:       brand,
			Supplier:    brand,
			Definition:  row.Description.String,
			Features:    features[row.ID.String()],
			DateAdded:   row.DateAdded,
		}
		if p.Features == nil {
			p.Features = []string{}
		}
		products = append(products, p)
	}
	return products
}

// featuresByProduct groups feature names by product ID, preserving the
// store's per-product sort order. Sub-rows whose nested feature relation
// is missing are dropped; a present feature without a name gets the
// default label.
func featuresByProduct(rows []store.FeatureRow) map[string][]string {
	result := make(map[string][]string)
	for _, row := range rows {
		if !row.FeatureID.Valid {
			continue
		}
		name := row.Name.String
		if name == "" {
			name = models.DefaultFeatureName
		}
		key := row.ProductID.String()
		result[key] = append(result[key], name)
	}
	return result
}

// normalizeKey converts a category or subcategory display name into its
// routable identifier, falling back to "uncategorized" for blank names.
func normalizeKey(name string) string {
	key := slug.Normalize(name)
	if key == "" {
		return models.DefaultCategory
	}
	return key
}

// stringOr returns the column value, or fallback when it is null or empty.
func stringOr(s sql.NullString, fallback string) string {
	if !s.Valid || s.String == "" {
		return fallback
	}
	return s.String
}
