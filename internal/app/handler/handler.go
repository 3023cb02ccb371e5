package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/classifier"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/session"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/repository"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/seed"
)

// SessionStore keeps diagnosis conversations between requests.
type SessionStore interface {
	Get(ctx context.Context, id string) (*session.Diagnosis, error)
	Save(ctx context.Context, id string, d *session.Diagnosis) error
}

// Reseeder rebuilds the store from the static taxonomy.
type Reseeder interface {
	Load(ctx context.Context) (seed.Report, error)
}

type Handler struct {
	Repository repository.Reader
	Classifier *classifier.Classifier
	// Sessions and Reseeder are optional.
	Sessions SessionStore
	Reseeder Reseeder
}

func NewHandler(r repository.Reader, c *classifier.Classifier) *Handler {
	return &Handler{
		Repository: r,
		Classifier: c,
	}
}

// RegisterHandler wires the public routes.
func (h *Handler) RegisterHandler(router gin.IRouter) {
	router.GET("/", h.Index)
	router.GET("/healthz", h.Health)

	api := router.Group("/api")
	api.GET("/categories", h.ApiListCategories)
	api.GET("/symptoms", h.ApiListSymptoms)
	api.GET("/causes", h.ApiListCauses)
	api.GET("/actions", h.ApiListActions)
	api.GET("/detection-methods", h.ApiListDetectionMethods)

	api.POST("/categorize", h.ApiCategorize)
	api.POST("/refine-issue", h.ApiRefineIssue)
	api.POST("/match-symptom", h.ApiMatchSymptom)
}

// RegisterAdmin wires the admin routes behind the given middleware.
func (h *Handler) RegisterAdmin(router gin.IRouter, guard gin.HandlerFunc) {
	admin := router.Group("/api/admin", guard)
	admin.POST("/reseed", h.ApiReseed)
}

// RegisterStatic loads the page templates and static assets.
func (h *Handler) RegisterStatic(router *gin.Engine, templates, static string) {
	router.LoadHTMLGlob(templates)
	router.Static("/static", static)
}

// errorHandler logs err and writes it as the response body.
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.WithField("path", ctx.Request.URL.Path).Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status": "error",
		"error":  err.Error(),
	})
}

// upstreamError logs the real cause and answers with a generic message.
func (h *Handler) upstreamError(ctx *gin.Context, err error, message string) {
	logrus.WithError(err).WithField("path", ctx.Request.URL.Path).Error(message)
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"status": "error",
		"error":  message,
	})
}

// bindJSON decodes the request body. An empty body binds as an empty
// object so the required-field checks report what is missing.
func bindJSON(ctx *gin.Context, dest interface{}) error {
	if err := ctx.ShouldBindJSON(dest); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
