package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studentpages/internal/app/http/view"
)

type assignForm struct {
	PageID string `form:"pageId"`
	TeamID string `form:"teamId"`
}

// AssignForm renders the page/team assignment form.
func (h *Handler) AssignForm(c *gin.Context) {
	pages := h.Catalog.Pages(c.Request.Context())
	teams := h.Catalog.Teams(c.Request.Context())

	c.HTML(http.StatusOK, "assign_form.html", view.AssignForm{
		Pages: pages.Items,
		Teams: teams.Items,
	})
}

// RedirectToAssign sends the assigner's root to the form.
func (h *Handler) RedirectToAssign(c *gin.Context) {
	c.Redirect(http.StatusFound, "/assign")
}

// AssignTeam runs the rename-then-grant flow. Both remote failures
// collapse into one generic message; if the grant failed the page may
// already be renamed, which the message admits.
func (h *Handler) AssignTeam(c *gin.Context) {
	var form assignForm
	_ = c.ShouldBind(&form)

	if form.PageID == "" || form.TeamID == "" {
		h.badRequest(c, "Please select both a page and a team", "/assign")
		return
	}

	editURL, err := h.Assign.AssignTeam(c.Request.Context(), form.PageID, form.TeamID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", view.Error{
			Title:    "Error Granting Edit Access",
			Message:  "Error granting edit access to the team. The page may already have been renamed.",
			HomePath: "/assign",
		})
		return
	}

	c.HTML(http.StatusOK, "assign_success.html", view.AssignSuccess{
		EditURL: editURL,
	})
}
