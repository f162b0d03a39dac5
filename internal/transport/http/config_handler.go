package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "studentpulse/internal/errors"
	"studentpulse/internal/normalization"
	"studentpulse/pkg/contracts/domain"
)

// RangeUpdate is one field's requested bounds.
type RangeUpdate struct {
	Min float64 `json:"min"`
	Max float64 `json:"max" validate:"gtfield=Min"`
}

// ConfigHandler exposes the normalization-range configuration. Writes
// take effect for all subsequent normalizations; the store is shared
// with the student service.
type ConfigHandler struct {
	ranges       *normalization.RangeStore
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewConfigHandler creates a new config handler.
func NewConfigHandler(ranges *normalization.RangeStore, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ConfigHandler {
	return &ConfigHandler{
		ranges:       ranges,
		logger:       logger.With(slog.String("component", "config_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the configuration routes.
func (h *ConfigHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/normalization", h.GetRanges)
	r.Put("/normalization", h.UpdateRanges)

	return r
}

// GetRanges handles GET /api/config/normalization.
func (h *ConfigHandler) GetRanges(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.snapshot())
}

// UpdateRanges handles PUT /api/config/normalization. The body is a
// map from field label to (min,max); unknown or non-normalizable
// fields and degenerate ranges are rejected before anything is
// written, so a failed update never half-applies.
func (h *ConfigHandler) UpdateRanges(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	var updates map[string]RangeUpdate
	if err := render.DecodeJSON(r.Body, &updates); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrInvalidRequest)
		return
	}
	if len(updates) == 0 {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("body", "At least one field range is required"))
		return
	}

	resolved := make(map[domain.FactKind]domain.ScoreRange, len(updates))
	for label, update := range updates {
		kind, ok := domain.KindByLabel(label)
		if !ok || !isNormalizable(kind) {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation(label, "Unknown normalization field"))
			return
		}
		if err := h.validate.Struct(update); err != nil {
			h.errorHandler.HandleError(w, r,
				apierrors.ErrValidation(label, fmt.Sprintf("max (%v) must be greater than min (%v)", update.Max, update.Min)))
			return
		}
		resolved[kind] = domain.ScoreRange{Min: update.Min, Max: update.Max}
	}

	for kind, scoreRange := range resolved {
		if err := h.ranges.Set(kind, scoreRange); err != nil {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation(kind.Label(), err.Error()))
			return
		}
	}

	h.logger.InfoContext(r.Context(), "normalization ranges updated",
		slog.String("request_id", reqID),
		slog.Int("fields", len(resolved)),
	)
	render.JSON(w, r, h.snapshot())
}

func (h *ConfigHandler) snapshot() map[string]domain.ScoreRange {
	out := make(map[string]domain.ScoreRange)
	for kind, scoreRange := range h.ranges.Snapshot() {
		out[kind.Label()] = scoreRange
	}
	return out
}

func isNormalizable(kind domain.FactKind) bool {
	for _, k := range domain.NormalizableKinds() {
		if k == kind {
			return true
		}
	}
	return false
}
