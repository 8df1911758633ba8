// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/NVIDIA/verkey/pkg/defaults"
	apperrors "github.com/NVIDIA/verkey/pkg/errors"
	"github.com/NVIDIA/verkey/pkg/index"
	"github.com/NVIDIA/verkey/pkg/serializer"
	"github.com/NVIDIA/verkey/pkg/server"
	ver "github.com/NVIDIA/verkey/pkg/version"
)

// Handler serves the key and index endpoints.
type Handler struct {
	index   index.Index
	maxBulk int
	maxBody int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithIndex enables the /v1/index endpoints backed by idx.
func WithIndex(idx index.Index) Option {
	return func(h *Handler) {
		h.index = idx
	}
}

// WithMaxBulkRequests caps the number of versions in one bulk request.
func WithMaxBulkRequests(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBulk = n
		}
	}
}

// WithMaxBodyBytes caps request body size.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

// NewHandler returns a Handler with limits from pkg/defaults.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		maxBulk: defaults.ServerMaxBulkRequests,
		maxBody: defaults.ServerMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the API routes for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	routes := map[string]http.HandlerFunc{
		"/v1/key":  h.HandleKey,
		"/v1/keys": h.HandleKeys,
	}
	if h.index != nil {
		routes["/v1/index"] = h.HandleIndex
		routes["/v1/index/export"] = h.HandleIndexExport
	}
	return routes
}

// HandleKey encodes a single version.
//
//	GET /v1/key?version=1.22.3&segments=3&strict=false
//
// segments defaults to ver.MaxSegments and strict to false.
func (h *Handler) HandleKey(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	if !q.Has("version") {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Missing version parameter", false, nil)
		return
	}
	v := q.Get("version")

	segments, err := intParam(q.Get("segments"), ver.MaxSegments)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Invalid segments parameter", false, map[string]any{"error": err.Error()})
		return
	}
	strict, err := boolParam(q.Get("strict"))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Invalid strict parameter", false, map[string]any{"error": err.Error()})
		return
	}

	key, err := encode(v, segments, strict)
	keysEncoded.WithLabelValues(encodeMode(strict), resultLabel(err)).Inc()
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to encode version", map[string]any{"version": v})
		return
	}

	slog.Debug("encoded version",
		"requestID", server.RequestID(r.Context()),
		"version", v,
		"segments", segments,
		"key", key,
	)

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.KeyCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, KeyResponse{
		Version:  v,
		Segments: segments,
		Key:      key,
	})
}

// HandleKeys encodes a batch of versions. Item failures are reported per
// item and do not fail the request; request-level problems (body, count,
// segment count) do.
//
//	POST /v1/keys {"segments": 3, "versions": ["1.2.3", "1.10"]}
func (h *Handler) HandleKeys(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.KeyHandlerTimeout)
	defer cancel()

	var req BulkRequest
	if err := serializer.DecodeJSONBody(r, h.maxBody, &req); err != nil {
		writeBodyError(w, r, err)
		return
	}

	if len(req.Versions) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Versions cannot be empty", false, nil)
		return
	}
	if len(req.Versions) > h.maxBulk {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Too many versions", false, map[string]any{
				"count": len(req.Versions),
				"max":   h.maxBulk,
			})
		return
	}
	if err := ver.CheckSegments(req.Segments); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid segment count", nil)
		return
	}

	bulkRequestSize.Observe(float64(len(req.Versions)))

	resp := BulkResponse{
		Segments: req.Segments,
		Results:  make([]KeyResult, len(req.Versions)),
	}
	mode := encodeMode(req.Strict)
	for i, v := range req.Versions {
		if err := ctx.Err(); err != nil {
			server.WriteErrorFromErr(w, r,
				apperrors.Wrap(apperrors.ErrCodeTimeout, "Bulk encoding timed out", err),
				"Bulk encoding timed out", map[string]any{"completed": i})
			return
		}

		resp.Results[i].Version = v
		key, err := encode(v, req.Segments, req.Strict)
		keysEncoded.WithLabelValues(mode, resultLabel(err)).Inc()
		if err != nil {
			resp.Failed++
			resp.Results[i].Error = &ItemError{
				Code:    string(apperrors.CodeOf(err)),
				Message: err.Error(),
			}
			continue
		}
		resp.Results[i].Key = key
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleIndex stores, lists and removes indexed versions.
//
//	POST   /v1/index {"version": "1.2.3"}
//	GET    /v1/index?min=1.2&max=2.0&limit=50
//	DELETE /v1/index?version=1.2.3
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodPost, http.MethodDelete) {
		return
	}
	if h.index == nil {
		server.WriteError(w, r, http.StatusServiceUnavailable, apperrors.ErrCodeUnavailable,
			"Index is not configured", true, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.IndexHandlerTimeout)
	defer cancel()

	switch r.Method {
	case http.MethodPost:
		h.indexPut(ctx, w, r)
	case http.MethodDelete:
		h.indexDelete(ctx, w, r)
	default:
		h.indexRange(ctx, w, r)
	}
}

func (h *Handler) indexPut(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req IndexPutRequest
	if err := serializer.DecodeJSONBody(r, h.maxBody, &req); err != nil {
		writeBodyError(w, r, err)
		return
	}

	entry, err := h.index.Put(ctx, req.Version)
	indexOperations.WithLabelValues("put", resultLabel(err)).Inc()
	if err != nil {
		server.WriteErrorFromErr(w, r, indexError(err), "Failed to index version",
			map[string]any{"version": req.Version})
		return
	}
	serializer.RespondJSON(w, http.StatusCreated, entry)
}

func (h *Handler) indexDelete(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query().Get("version")
	err := h.index.Delete(ctx, v)
	indexOperations.WithLabelValues("delete", resultLabel(err)).Inc()
	if err != nil {
		server.WriteErrorFromErr(w, r, indexError(err), "Failed to delete version",
			map[string]any{"version": v})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) indexRange(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := intParam(q.Get("limit"), 0)
	if err != nil || limit < 0 {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Invalid limit parameter", false, map[string]any{"limit": q.Get("limit")})
		return
	}

	minV, maxV := q.Get("min"), q.Get("max")
	entries, err := h.index.Range(ctx, minV, maxV, limit)
	indexOperations.WithLabelValues("range", resultLabel(err)).Inc()
	if err != nil {
		server.WriteErrorFromErr(w, r, indexError(err), "Failed to list versions", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, IndexRangeResponse{
		Min:     minV,
		Max:     maxV,
		Count:   len(entries),
		Entries: entries,
	})
}

// HandleIndexExport returns every indexed version as a KeySet document.
//
//	GET /v1/index/export
func (h *Handler) HandleIndexExport(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	if h.index == nil {
		server.WriteError(w, r, http.StatusServiceUnavailable, apperrors.ErrCodeUnavailable,
			"Index is not configured", true, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.IndexHandlerTimeout)
	defer cancel()

	ks, err := index.Export(ctx, h.index, version)
	indexOperations.WithLabelValues("export", resultLabel(err)).Inc()
	if err != nil {
		server.WriteErrorFromErr(w, r, indexError(err), "Failed to export index", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, ks)
}

func encode(v string, segments int, strict bool) (string, error) {
	if strict {
		return ver.EncodeStrict(v, segments)
	}
	return ver.Encode(v, segments)
}

// indexError classifies context expiry that backends report unwrapped.
func indexError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) && !apperrors.IsCode(err, apperrors.ErrCodeTimeout) {
		return apperrors.Wrap(apperrors.ErrCodeTimeout, "index operation timed out", err)
	}
	return err
}

func writeBodyError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, serializer.ErrUnsupportedMediaType) {
		status = http.StatusUnsupportedMediaType
	}
	server.WriteError(w, r, status, apperrors.ErrCodeInvalidRequest,
		"Invalid request body", false, map[string]any{"error": err.Error()})
}

func allowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": methods,
		})
	return false
}

func intParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return n, nil
}

func boolParam(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("not a boolean: %q", s)
	}
	return b, nil
}
