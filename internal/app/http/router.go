package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studentpages/internal/app/http/handler"
	"studentpages/internal/app/http/middleware"
	"studentpages/internal/app/http/view"
)

// NewCreatorRouter serves the page-creation variant: the creation
// form and the clone flow.
func NewCreatorRouter(h *handler.Handler, log *zap.Logger) *gin.Engine {
	r := newEngine(log, "/")

	r.GET("/", h.CreateForm)
	r.POST("/clone", h.Clone)

	return r
}

// NewAssignerRouter serves the team-assignment variant. It reuses the
// /clone path for its POST, like the source system's second server.
func NewAssignerRouter(h *handler.Handler, log *zap.Logger) *gin.Engine {
	r := newEngine(log, "/assign")

	r.GET("/", h.RedirectToAssign)
	r.GET("/assign", h.AssignForm)
	r.POST("/clone", h.AssignTeam)

	return r
}

func newEngine(log *zap.Logger, homePath string) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(view.Templates())

	r.Use(
		gin.Recovery(),
		middleware.ZapLogger(log),
		middleware.ZapRecovery(log, homePath),
	)

	return r
}
