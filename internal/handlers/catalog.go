// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"intraasia/internal/catalog"
	"intraasia/internal/models"
)

// Catalog groups the read-only product browsing handlers. Every request
// fetches and normalizes the catalog fresh — the set is small and this
// layer deliberately carries no cache.
type Catalog struct {
	service *catalog.Service
}

// NewCatalog creates a new Catalog handler group.
func NewCatalog(service *catalog.Service) *Catalog {
	return &Catalog{service: service}
}

// List returns the full normalized catalog, ordered by the optional
// "sort" query parameter. An unrecognized sort value leaves the input
// order untouched.
func (h *Catalog) List(w http.ResponseWriter, r *http.Request) {
	products := h.service.Products(r.Context())
	sorted := catalog.Sort(products, catalog.SortOption(r.URL.Query().Get("sort")))
	writeJSON(w, http.StatusOK, sorted)
}

// Detail returns a single product looked up by slug, falling back to an
// ID match for legacy links that predate product slugs.
func (h *Catalog) Detail(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "slug")
	products := h.service.Products(r.Context())

	p, ok := catalog.BySlug(products, key)
	if !ok {
		p, ok = catalog.ByID(products, key)
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Groups returns the category → subcategory navigation hierarchy derived
// from the current product set.
func (h *Catalog) Groups(w http.ResponseWriter, r *http.Request) {
	products := h.service.Products(r.Context())
	writeJSON(w, http.StatusOK, catalog.Groups(products))
}

// ByCategory returns the products in a category, optionally narrowed to a
// subcategory. Both URL segments may be display names or normalized keys.
func (h *Catalog) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	subcategory := chi.URLParam(r, "subcategory")

	products := h.service.Products(r.Context())
	filtered := catalog.ByCategory(products, category, subcategory)
	sorted := catalog.Sort(filtered, catalog.SortOption(r.URL.Query().Get("sort")))
	writeJSON(w, http.StatusOK, sorted)
}

// heroSlides is the homepage carousel content. Static for now — it could
// move to the database if marketing starts rotating campaigns.
var heroSlides = []models.HeroSlide{
	{ID: 1, Image: "/hero-images/hero-1.jpg"},
	{ID: 2, Image: "/hero-images/hero-2.jpg"},
	{ID: 3, Image: "/hero-images/hero-3.jpg"},
}

// HeroSlides returns the homepage carousel entries.
func (h *Catalog) HeroSlides(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, heroSlides)
}
