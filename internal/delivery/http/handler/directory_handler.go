package handler

import (
	"net/http"
	"strconv"

	"go-doctor-directory/internal/urlsync"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"

	"github.com/gorilla/mux"
)

type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
}

func NewDirectoryHandler(directoryUsecase usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUsecase: directoryUsecase,
	}
}

// ListDoctors renders the directory for the filter state carried by the request query string.
func (h *DirectoryHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	state := urlsync.Decode(r.URL.Query())

	directory, err := h.directoryUsecase.Browse(r.Context(), state)
	if err != nil {
		writeDirectoryError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", directory)
}

func (h *DirectoryHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.directoryUsecase.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeDirectoryError(w, err, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DirectoryHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.directoryUsecase.Specialties(r.Context())
	if err != nil {
		writeDirectoryError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *DirectoryHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		writeDirectoryError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// BookDoctor is a placeholder for the booking action. Booking is not offered.
func (h *DirectoryHandler) BookDoctor(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusNotImplemented, "Booking is not available", nil)
}

// writeDirectoryError maps the errors shared by every directory read.
func writeDirectoryError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrDirectoryNotLoaded:
		response.Error(w, http.StatusServiceUnavailable, "Doctors are still loading", nil)
	case usecase.ErrLoadFailed:
		response.Error(w, http.StatusServiceUnavailable, "Failed to load doctor data. Please try again later.", nil)
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor not found")
	case usecase.ErrSessionNotFound:
		response.NotFound(w, "Session not found")
	case usecase.ErrNoHistory:
		response.Error(w, http.StatusConflict, "No history entry in that direction", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
