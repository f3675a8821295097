// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	// maxAssetSize is the maximum allowed brand asset upload size (10 MB).
	maxAssetSize = 10 << 20
)

// allowedAssetTypes defines MIME types accepted for brand assets.
var allowedAssetTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// assetStorage is the slice of the S3 client the asset handler uses.
type assetStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	FileURL(key string) string
	ExtractKey(rawURL string) (string, bool)
}

// AssetUpload serves POST /admin/companies/{slug}/assets. The multipart
// form carries the file plus a "kind" field naming the theme slot (logo
// or banner). The previous asset in that slot is deleted after the new
// one is in place.
func (a *Admin) AssetUpload(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	company := a.repo.GetBySlug(ctx, slugParam)
	if company == nil {
		respondError(w, http.StatusNotFound, "company not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAssetSize+1024)
	if err := r.ParseMultipartForm(maxAssetSize); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 10 MB")
		return
	}

	kind := r.FormValue("kind")
	if kind != "logo" && kind != "banner" {
		respondError(w, http.StatusUnprocessableEntity, `kind must be "logo" or "banner"`)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedAssetTypes[contentType] {
		respondError(w, http.StatusUnsupportedMediaType, "unsupported file type")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("companies/%s/%s-%s%s", slugParam, kind, uuid.NewString(), ext)

	if err := a.storage.Upload(ctx, key, contentType, file, header.Size); err != nil {
		slog.Error("asset upload failed", "error", err, "company", slugParam, "kind", kind)
		respondError(w, http.StatusBadGateway, "upload failed")
		return
	}

	url := a.storage.FileURL(key)

	// Point the theme slot at the new asset and remember what it
	// replaced.
	var previous string
	switch kind {
	case "logo":
		previous = company.Theme.LogoURL
		company.Theme.LogoURL = url
	case "banner":
		previous = company.Theme.BannerURL
		company.Theme.BannerURL = url
	}
	a.repo.Save(ctx, *company)

	// Best-effort cleanup of the replaced asset. Foreign URLs (seeded
	// placeholders, external CDNs) are left alone.
	if prevKey, ok := a.storage.ExtractKey(previous); ok {
		if err := a.storage.Delete(ctx, prevKey); err != nil {
			slog.Warn("previous asset cleanup failed", "error", err, "key", prevKey)
		}
	}

	respondJSON(w, http.StatusCreated, map[string]string{"kind": kind, "url": url})
}
