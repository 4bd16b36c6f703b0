package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/prosport1/ProSport/internal/domain"
	"github.com/prosport1/ProSport/internal/generator"
	"github.com/prosport1/ProSport/internal/repository"
	"github.com/prosport1/ProSport/internal/validation"
	perrors "github.com/prosport1/ProSport/pkg/errors"
)

type handlers struct {
	orchestrator *generator.Orchestrator
	validator    *validation.Validator
	artifacts    *repository.ArtifactRepository
	database     Pinger
	logger       *zap.Logger
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	if h.database != nil {
		if err := h.database.Ping(r.Context()); err != nil {
			h.logger.Error("Health check failed", zap.Error(err))
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// generate validates the payload and runs the landing-page pipeline. Invalid
// input gets a 400 naming every violated field. Only persistence failures
// produce a 500; model and background failures degrade inside the pipeline.
func (h *handlers) generate(w http.ResponseWriter, r *http.Request) {
	var profile domain.AthleteProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed JSON body"})
		return
	}

	if err := h.validator.ValidateProfile(&profile); err != nil {
		var vErr *perrors.ValidationError
		if errors.As(err, &vErr) {
			respondJSON(w, http.StatusBadRequest, errorResponse{
				Error:  "validation failed",
				Fields: vErr.Fields,
			})
			return
		}
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := h.orchestrator.Generate(r.Context(), &profile)
	if err != nil {
		h.logger.Error("Generation request failed", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *handlers) recent(w http.ResponseWriter, r *http.Request) {
	if h.artifacts == nil {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "artifact history not configured"})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	artifacts, err := h.artifacts.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("Artifact history query failed", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"artifacts": artifacts})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
