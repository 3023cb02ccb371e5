package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/middleware"
)

// POST /api/admin/reseed
func (h *Handler) ApiReseed(ctx *gin.Context) {
	if h.Reseeder == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "error": "reseed disabled"})
		return
	}

	report, err := h.Reseeder.Load(ctx.Request.Context())
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"admin":      ctx.GetString(middleware.AdminSubjectKey),
		"categories": report.Categories,
		"symptoms":   report.Symptoms,
	}).Info("taxonomy reseeded")
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "report": report})
}
