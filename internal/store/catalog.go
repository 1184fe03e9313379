// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the read-only query layer over the catalog
// database. It returns raw joined rows; normalization into Product records
// happens in the catalog package.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CatalogStore reads products and their joined relations from PostgreSQL.
// This layer never writes — the catalog is maintained upstream.
type CatalogStore struct {
	db *sql.DB
}

// NewCatalogStore creates a new CatalogStore with the given database connection.
func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// ProductRow is one raw product row with its joined brand, subcategory, and
// category names. Relation columns are nullable because the joins are LEFT
// joins; rows with a missing relation are excluded by the normalizer, not
// here.
type ProductRow struct {
	ID              uuid.UUID
	Slug            sql.NullString
	Name            sql.NullString
	Description     sql.NullString
	Image           sql.NullString
	DateAdded       time.Time
	BrandName       sql.NullString
	SubcategoryName sql.NullString
	CategoryName    sql.NullString
}

// Complete reports whether every joined relation resolved. Incomplete rows
// are unsafe to display and get filtered out downstream.
func (r ProductRow) Complete() bool {
	return r.BrandName.Valid && r.SubcategoryName.Valid && r.CategoryName.Valid
}

// FeatureRow is one product_features join row. FeatureID is null when the
// nested feature relation is missing; Name is null when the feature row
// exists but has no name.
type FeatureRow struct {
	ProductID uuid.UUID
	FeatureID sql.NullString
	Name      sql.NullString
}

// ProductRows returns every product joined with its brand, subcategory,
// and category, in insertion order.
func (s *CatalogStore) ProductRows(ctx context.Context) ([]ProductRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.slug, p.name, p.description, p.image, p.date_added,
		       b.name, sc.name, c.name
		FROM products p
		LEFT JOIN brands b ON b.id = p.brand_id
		LEFT JOIN subcategories sc ON sc.id = p.subcategory_id
		LEFT JOIN categories c ON c.id = sc.category_id
		ORDER BY p.date_added, p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("query product rows: %w", err)
	}
	defer rows.Close()

	var items []ProductRow
	for rows.Next() {
		var r ProductRow
		if err := rows.Scan(
			&r.ID, &r.Slug, &r.Name, &r.Description, &r.Image, &r.DateAdded,
			&r.BrandName, &r.SubcategoryName, &r.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

// FeatureRows returns all product_features join rows with their feature
// names, ordered by each product's feature sort order.
func (s *CatalogStore) FeatureRows(ctx context.Context) ([]FeatureRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT pf.product_id, f.id, f.name
		FROM product_features pf
		LEFT JOIN features f ON f.id = pf.feature_id
		ORDER BY pf.product_id, pf.sort_order
	`)
	if err != nil {
		return nil, fmt.Errorf("query feature rows: %w", err)
	}
	defer rows.Close()

	var items []FeatureRow
	for rows.Next() {
		var r FeatureRow
		if err := rows.Scan(&r.ProductID, &r.FeatureID, &r.Name); err != nil {
			return nil, fmt.Errorf("scan feature row: %w", err)
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
