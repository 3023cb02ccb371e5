package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// POST /api/refine-issue
func (h *Handler) ApiRefineIssue(ctx *gin.Context) {
	var body struct {
		Message string `json:"message"`
	}
	if err := bindJSON(ctx, &body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	message := strings.TrimSpace(body.Message)
	if message == "" {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("message required"))
		return
	}

	refinement, err := h.Classifier.Refine(ctx.Request.Context(), message)
	if err != nil {
		h.upstreamError(ctx, err, "failed to classify message")
		return
	}
	ctx.JSON(http.StatusOK, refinement)
}
