package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/classifier"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/session"
)

const aiFailureMessage = "failed to process AI response"

type categorizeRequest struct {
	Description          string   `json:"description"`
	UserDescription      string   `json:"user_description"`
	RejectedCategories   []string `json:"rejected_categories"`
	PreviousDescriptions []string `json:"previous_descriptions"`
	SessionID            string   `json:"session_id"`
}

func (r categorizeRequest) description() string {
	if d := strings.TrimSpace(r.Description); d != "" {
		return d
	}
	return strings.TrimSpace(r.UserDescription)
}

// POST /api/categorize
func (h *Handler) ApiCategorize(ctx *gin.Context) {
	var body categorizeRequest
	if err := bindJSON(ctx, &body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	description := body.description()
	if description == "" {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("description required"))
		return
	}

	rctx := ctx.Request.Context()

	diag := &session.Diagnosis{Descriptions: body.PreviousDescriptions}
	diag.Merge(body.RejectedCategories)
	sessionID := body.SessionID
	if h.Sessions != nil {
		if sessionID == "" {
			sessionID = uuid.NewString()
		} else {
			stored, err := h.Sessions.Get(rctx, sessionID)
			if err != nil {
				h.upstreamError(ctx, err, "failed to load session")
				return
			}
			stored.Merge(diag.RejectedCategories)
			if len(body.PreviousDescriptions) > 0 {
				stored.Descriptions = body.PreviousDescriptions
			}
			diag = stored
		}
	}

	categories, err := h.Repository.Categories(rctx)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	remaining := classifier.Remaining(categories, diag.RejectedCategories)
	if len(remaining) == 0 {
		resp := gin.H{"status": "refine", "message": classifier.RefineFurtherMessage}
		if h.Sessions != nil {
			h.saveSession(ctx, sessionID, diag)
			resp["session_id"] = sessionID
		}
		ctx.JSON(http.StatusOK, resp)
		return
	}

	result, err := h.Classifier.Categorize(rctx, description, diag.Descriptions, remaining)
	if err != nil {
		h.upstreamError(ctx, err, aiFailureMessage)
		return
	}

	resp := gin.H{
		"status":      "ok",
		"description": description,
		"result":      result,
	}

	if h.Sessions != nil {
		diag.Descriptions = append(diag.Descriptions, description)
		h.saveSession(ctx, sessionID, diag)
		resp["session_id"] = sessionID
	}

	ctx.JSON(http.StatusOK, resp)
}

// saveSession does not fail the request: the answer is still valid, only
// the memory of it is lost.
func (h *Handler) saveSession(ctx *gin.Context, id string, diag *session.Diagnosis) {
	if err := h.Sessions.Save(ctx.Request.Context(), id, diag); err != nil {
		logrus.WithError(err).WithField("session_id", id).Warn("failed to save diagnosis session")
	}
}
