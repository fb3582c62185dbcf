package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/xcsbridge/pkg/codec"
	"github.com/m-mizutani/xcsbridge/pkg/domain/interfaces"
	"github.com/m-mizutani/xcsbridge/pkg/domain/model"
)

// TranslateHandler exposes the document translations over HTTP
type TranslateHandler struct {
	translateUC  interfaces.TranslateUseCase
	maxBodyBytes int64
}

// NewTranslateHandler creates a new TranslateHandler
func NewTranslateHandler(translateUC interfaces.TranslateUseCase, maxBodyBytes int64) *TranslateHandler {
	return &TranslateHandler{
		translateUC:  translateUC,
		maxBodyBytes: maxBodyBytes,
	}
}

// TestHierarchyResponse is returned by the test hierarchy endpoint
type TestHierarchyResponse struct {
	Summary   model.TestSummary `json:"summary"`
	Failures  []string          `json:"failures"`
	Hierarchy map[string]any    `json:"hierarchy"`
}

func (h *TranslateHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read request body")
	}
	return body, nil
}

// DecodeBlueprint decodes an exported blueprint into the typed model
func (h *TranslateHandler) DecodeBlueprint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := h.readBody(w, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	bp, err := h.translateUC.DecodeBlueprint(ctx, body)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, bp)
}

// EncodeBlueprint encodes a typed blueprint into the payload named by the
// {mode} path parameter ("preflight" or "bot")
func (h *TranslateHandler) EncodeBlueprint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	mode := model.PayloadMode(chi.URLParam(r, "mode"))

	if mode != model.PayloadPreflight && mode != model.PayloadBotCreation {
		writeJSON(ctx, w, http.StatusNotFound, map[string]string{
			"error": "unknown payload mode: " + string(mode),
		})
		return
	}

	body, err := h.readBody(w, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var bp model.Blueprint
	if err := json.Unmarshal(body, &bp); err != nil {
		writeError(ctx, w, goerr.Wrap(err, "invalid blueprint JSON"))
		return
	}

	payload, err := h.translateUC.EncodeBlueprint(ctx, bp, mode)
	if err != nil {
		ctxlog.From(ctx).Error("Failed to encode blueprint", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, payload)
}

// DecodeTestHierarchy decodes a test hierarchy and reports its outcome
func (h *TranslateHandler) DecodeTestHierarchy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := h.readBody(w, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	hierarchy, err := h.translateUC.DecodeTestHierarchy(ctx, body)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	failures := hierarchy.Failures()
	if failures == nil {
		failures = []string{}
	}

	writeJSON(ctx, w, http.StatusOK, &TestHierarchyResponse{
		Summary:   hierarchy.Summary(),
		Failures:  failures,
		Hierarchy: codec.EncodeTestHierarchy(hierarchy),
	})
}

// DecodeTriggerConditions decodes a trigger conditions record
func (h *TranslateHandler) DecodeTriggerConditions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := h.readBody(w, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	tc, err := h.translateUC.DecodeTriggerConditions(ctx, body)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, tc)
}
