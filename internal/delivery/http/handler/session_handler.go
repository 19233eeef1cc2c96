package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"
	"go-doctor-directory/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
	validator      *validator.CustomValidator
}

func NewSessionHandler(sessionUsecase usecase.SessionUsecase, validator *validator.CustomValidator) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		validator:      validator,
	}
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequest
	// An empty body starts at the base path.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.sessionUsecase.Create(r.Context(), &req)
	if err != nil {
		writeDirectoryError(w, err, "Failed to create session")
		return
	}

	response.Success(w, http.StatusCreated, "Session created successfully", session)
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.sessionUsecase.Get(r.Context(), sessionID)
	if err != nil {
		writeDirectoryError(w, err, "Failed to get session")
		return
	}

	response.Success(w, http.StatusOK, "Session retrieved successfully", session)
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	if err := h.sessionUsecase.Delete(r.Context(), sessionID); err != nil {
		writeDirectoryError(w, err, "Failed to delete session")
		return
	}

	response.Success(w, http.StatusOK, "Session deleted successfully", nil)
}

func (h *SessionHandler) Search(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SearchRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.sessionUsecase.RequestSearch(r.Context(), sessionID, req.Query)
	if err != nil {
		writeDirectoryError(w, err, "Failed to search")
		return
	}

	response.Success(w, http.StatusOK, "Search applied successfully", session)
}

func (h *SessionHandler) ChangeFilters(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.FilterChangeRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.sessionUsecase.RequestFilterChange(r.Context(), sessionID, converter.FilterChangeRequestToUpdate(&req))
	if err != nil {
		writeDirectoryError(w, err, "Failed to change filters")
		return
	}

	response.Success(w, http.StatusOK, "Filters applied successfully", session)
}

func (h *SessionHandler) ToggleSpecialty(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.ToggleSpecialtyRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.sessionUsecase.ToggleSpecialty(r.Context(), sessionID, req.Specialty)
	if err != nil {
		writeDirectoryError(w, err, "Failed to toggle specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty toggled successfully", session)
}

func (h *SessionHandler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.sessionUsecase.ClearFilters(r.Context(), sessionID)
	if err != nil {
		writeDirectoryError(w, err, "Failed to clear filters")
		return
	}

	response.Success(w, http.StatusOK, "Filters cleared successfully", session)
}

func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.sessionUsecase.Back(r.Context(), sessionID)
	if err != nil {
		writeDirectoryError(w, err, "Failed to navigate back")
		return
	}

	response.Success(w, http.StatusOK, "Navigated back successfully", session)
}

func (h *SessionHandler) Forward(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.sessionUsecase.Forward(r.Context(), sessionID)
	if err != nil {
		writeDirectoryError(w, err, "Failed to navigate forward")
		return
	}

	response.Success(w, http.StatusOK, "Navigated forward successfully", session)
}

func (h *SessionHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return uuid.Nil, false
	}
	return sessionID, true
}
