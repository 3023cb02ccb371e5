package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// POST /api/match-symptom
func (h *Handler) ApiMatchSymptom(ctx *gin.Context) {
	var body struct {
		Description string `json:"description"`
	}
	if err := bindJSON(ctx, &body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	description := strings.TrimSpace(body.Description)
	if description == "" {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("description required"))
		return
	}

	symptoms, err := h.Repository.SymptomNames(ctx.Request.Context())
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if len(symptoms) == 0 {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("no symptoms available"))
		return
	}

	match, err := h.Classifier.MatchSymptom(ctx.Request.Context(), description, symptoms)
	if err != nil {
		h.upstreamError(ctx, err, aiFailureMessage)
		return
	}
	ctx.JSON(http.StatusOK, match)
}
