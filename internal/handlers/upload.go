// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"puredesign/internal/storage"
)

const (
	// maxAssetSize caps uploaded assets at 2 MB, matching what the site
	// actually serves (hero images, case study media, the CV PDF).
	maxAssetSize = 2 << 20
)

// allowedAssetTypes defines MIME types accepted for upload.
var allowedAssetTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// Upload serves asset uploads to the public object storage bucket.
type Upload struct {
	storage *storage.Client
}

// NewUpload creates the upload handler. storage may be nil, in which case
// every request is rejected with 503.
func NewUpload(sc *storage.Client) *Upload {
	return &Upload{storage: sc}
}

// Create accepts a multipart upload, sniffs and validates the content
// type, and stores the file under a timestamped key. Responds with the
// public URL the editor embeds in content.
func (u *Upload) Create(w http.ResponseWriter, r *http.Request) {
	if u.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "object storage not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAssetSize+1024)
	if err := r.ParseMultipartForm(maxAssetSize); err != nil {
		writeError(w, http.StatusBadRequest, "file exceeds the 2 MB limit")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if header.Size > maxAssetSize {
		writeError(w, http.StatusBadRequest, "file exceeds the 2 MB limit")
		return
	}

	// Sniff the real content type; never trust the client header.
	sniffBuf := make([]byte, 512)
	n, _ := file.Read(sniffBuf)
	contentType := http.DetectContentType(sniffBuf[:n])
	if !allowedAssetTypes[contentType] {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file type %q is not allowed", contentType))
		return
	}
	if _, err := file.Seek(0, 0); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	key := fmt.Sprintf("uploads/%d_%s", time.Now().UnixMilli(), sanitizeFilename(header.Filename))
	if err := u.storage.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		slog.Error("asset upload failed", "key", key, "error", err)
		writeError(w, http.StatusBadGateway, "storage unreachable")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"key": key,
		"url": u.storage.FileURL(key),
	})
}

// Delete removes a stored asset by URL, if the URL points into the bucket.
// External URLs are accepted and ignored so the editor can call this
// unconditionally when replacing media.
func (u *Upload) Delete(w http.ResponseWriter, r *http.Request) {
	if u.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "object storage not configured")
		return
	}

	var body struct {
		URL string `json:"url"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	key, ok := u.storage.ExtractKey(body.URL)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]string{"status": "skipped"})
		return
	}

	if err := u.storage.Delete(r.Context(), key); err != nil {
		slog.Error("asset delete failed", "key", key, "error", err)
		writeError(w, http.StatusBadGateway, "storage unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// sanitizeFilename strips path components and whitespace from an uploaded
// filename before it becomes part of an object key.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == "" {
		return "file"
	}
	return name
}
