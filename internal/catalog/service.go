// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"log/slog"

	"intraasia/internal/models"
	"intraasia/internal/store"
)

// Rows abstracts the catalog store so handlers can be tested without a
// database.
type Rows interface {
	ProductRows(ctx context.Context) ([]store.ProductRow, error)
	FeatureRows(ctx context.Context) ([]store.FeatureRow, error)
}

// Service fetches and normalizes the product catalog per request. Fetch
// failures degrade to an empty catalog — a public listing page renders
// empty rather than erroring.
type Service struct {
	store Rows
}

// NewService creates a catalog Service over the given store.
func NewService(s Rows) *Service {
	return &Service{store: s}
}

// Products returns the full normalized catalog. On any backend failure it
// logs the condition and returns an empty slice; callers never see an
// error.
func (s *Service) Products(ctx context.Context) []models.Product {
	rows, err := s.store.ProductRows(ctx)
	if err != nil {
		slog.Error("fetch product rows failed", "error", err)
		return []models.Product{}
	}

	featureRows, err := s.store.FeatureRows(ctx)
	if err != nil {
		// Products are still usable without their feature lists.
		slog.Error("fetch feature rows failed", "error", err)
		featureRows = nil
	}

	return Normalize(rows, featureRows)
}
