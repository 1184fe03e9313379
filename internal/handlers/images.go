// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// allowedImageFolders limits the listing endpoint to known public asset
// directories. Everything else is rejected, including traversal attempts.
var allowedImageFolders = map[string]bool{
	"hero-images":    true,
	"brand-logos":    true,
	"product-images": true,
}

// imageExtensions are the file types exposed by the listing.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".svg":  true,
	".webp": true,
}

// Images lists public image assets for the UI's carousels and logo strips.
type Images struct {
	publicDir string
}

// NewImages creates a new Images handler rooted at the public asset tree.
func NewImages(publicDir string) *Images {
	return &Images{publicDir: publicDir}
}

// imagesBody is the listing response shape.
type imagesBody struct {
	Images []string `json:"images"`
}

// List returns the public paths of the images in an allow-listed folder.
func (h *Images) List(w http.ResponseWriter, r *http.Request) {
	folder := r.URL.Query().Get("folder")
	if folder == "" {
		writeError(w, http.StatusBadRequest, "Missing folder parameter")
		return
	}
	if !allowedImageFolders[folder] {
		writeError(w, http.StatusBadRequest, "Invalid folder")
		return
	}

	entries, err := os.ReadDir(filepath.Join(h.publicDir, folder))
	if err != nil {
		slog.Error("read image folder failed", "folder", folder, "error", err)
		writeError(w, http.StatusInternalServerError, "Unable to read directory")
		return
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if imageExtensions[ext] {
			paths = append(paths, "/"+folder+"/"+entry.Name())
		}
	}

	writeJSON(w, http.StatusOK, imagesBody{Images: paths})
}
