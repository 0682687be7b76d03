package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studentpages/internal/app/http/view"
	"studentpages/internal/domain"
)

// writeError renders the generic error page. DomainErrors keep their
// status and surface their message (for upstream failures that is the
// remote message when one was decodable); anything else becomes a
// plain 500.
func (h *Handler) writeError(c *gin.Context, err error, title, homePath string) {
	var de *domain.DomainError
	if errors.As(err, &de) {
		c.HTML(de.HTTPStatus, "error.html", view.Error{
			Title:    title,
			Message:  de.Message,
			HomePath: homePath,
		})
		return
	}

	h.Log.Error("internal error", zap.Error(err))
	c.HTML(http.StatusInternalServerError, "error.html", view.Error{
		Title:    title,
		Message:  "An unexpected error occurred while processing your request.",
		HomePath: homePath,
	})
}

func (h *Handler) badRequest(c *gin.Context, msg, homePath string) {
	c.HTML(http.StatusBadRequest, "error.html", view.Error{
		Title:    "Invalid Request",
		Message:  msg,
		HomePath: homePath,
	})
}
