package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GET /api/categories
func (h *Handler) ApiListCategories(ctx *gin.Context) {
	categories, err := h.Repository.Categories(ctx.Request.Context())
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GET /api/symptoms?category=
func (h *Handler) ApiListSymptoms(ctx *gin.Context) {
	name := strings.TrimSpace(ctx.Query("category"))
	if name == "" {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("Category parameter is required."))
		return
	}

	category, err := h.Repository.FindCategory(ctx.Request.Context(), name)
	if isNotFound(err) {
		h.errorHandler(ctx, http.StatusNotFound, fmt.Errorf("Category not found: %s", name))
		return
	}
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	symptoms, err := h.Repository.SymptomsOf(ctx.Request.Context(), category.Name)
	if err != nil && !isNotFound(err) {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if len(symptoms) == 0 {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("No symptoms found for this category."))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"category": category.Name, "symptoms": symptoms})
}

// GET /api/causes?symptom=
func (h *Handler) ApiListCauses(ctx *gin.Context) {
	h.listBySymptom(ctx, "possibleCauses", "causes", h.Repository.CausesOf)
}

// GET /api/actions?symptom=
func (h *Handler) ApiListActions(ctx *gin.Context) {
	h.listBySymptom(ctx, "recommendedActions", "recommended actions", h.Repository.ActionsOf)
}

// GET /api/detection-methods?symptom=
func (h *Handler) ApiListDetectionMethods(ctx *gin.Context) {
	h.listBySymptom(ctx, "detectionMethods", "detection methods", h.Repository.DetectionMethodsOf)
}

// listBySymptom serves the three per-symptom lists, which share validation
// and not-found handling.
func (h *Handler) listBySymptom(ctx *gin.Context, field, noun string,
	lookup func(context.Context, string) ([]string, error)) {
	symptom := strings.TrimSpace(ctx.Query("symptom"))
	if symptom == "" {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("Symptom parameter is required."))
		return
	}

	list, err := lookup(ctx.Request.Context(), symptom)
	if err != nil && !isNotFound(err) {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if len(list) == 0 {
		h.errorHandler(ctx, http.StatusNotFound, fmt.Errorf("No %s found for this symptom.", noun))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"symptom": symptom, field: list})
}
