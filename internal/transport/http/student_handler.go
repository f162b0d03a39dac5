package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apierrors "studentpulse/internal/errors"
	"studentpulse/internal/services"
	"studentpulse/pkg/contracts/domain"
)

// StudentServiceInterface is the service surface the handler needs.
type StudentServiceInterface interface {
	Load(r io.Reader, source string) (*domain.DatasetMeta, error)
	Meta() (*domain.DatasetMeta, error)
	Students(query string) ([]domain.StudentSummary, error)
	Profile(index int) (*domain.StudentProfile, error)
}

// StudentHandler handles dataset and student HTTP requests.
type StudentHandler struct {
	service        StudentServiceInterface
	logger         *slog.Logger
	errorHandler   *apierrors.ErrorHandler
	maxUploadBytes int64
}

// NewStudentHandler creates a new student handler.
func NewStudentHandler(service StudentServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, maxUploadBytes int64) *StudentHandler {
	return &StudentHandler{
		service:        service,
		logger:         logger.With(slog.String("component", "student_handler")),
		errorHandler:   errorHandler,
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes returns the dataset/student routes.
func (h *StudentHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/dataset", h.UploadDataset)
	r.Get("/dataset", h.GetDataset)
	r.Get("/students", h.ListStudents)
	r.Get("/students/{index}", h.GetProfile)

	return r
}

// UploadDataset handles POST /api/dataset: a multipart spreadsheet
// upload that replaces the session dataset.
func (h *StudentHandler) UploadDataset(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "A spreadsheet file is required"))
		return
	}
	defer file.Close()

	h.logger.InfoContext(r.Context(), "dataset upload",
		slog.String("request_id", reqID),
		slog.String("filename", header.Filename),
		slog.Int64("size", header.Size),
	)

	meta, err := h.service.Load(file, header.Filename)
	if err != nil {
		// Decoding failures are user-visible and non-fatal; prior data
		// state has already been cleared by the service.
		h.errorHandler.HandleError(w, r, apierrors.ErrBadUpload("The file could not be read as a spreadsheet"))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, meta)
}

// GetDataset handles GET /api/dataset.
func (h *StudentHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	meta, err := h.service.Meta()
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	render.JSON(w, r, meta)
}

// ListStudents handles GET /api/students?q=.
func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.service.Students(r.URL.Query().Get("q"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{
		"students": students,
		"count":    len(students),
	})
}

// GetProfile handles GET /api/students/{index}.
func (h *StudentHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("index", "Student index must be an integer"))
		return
	}

	profile, err := h.service.Profile(index)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	render.JSON(w, r, profile)
}

// handleServiceError maps service sentinel errors to API errors.
func (h *StudentHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNoDataset):
		h.errorHandler.HandleError(w, r, apierrors.ErrNotFound("NO_DATASET", "No dataset has been uploaded"))
	case errors.Is(err, services.ErrStudentNotFound):
		h.errorHandler.HandleError(w, r, apierrors.ErrNotFound("STUDENT_NOT_FOUND", "Student not found"))
	default:
		h.errorHandler.HandleError(w, r, err)
	}
}
