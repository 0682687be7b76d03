package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studentpages/internal/app/http/view"
	"studentpages/internal/domain"
	"studentpages/internal/domain/pages"
)

type cloneForm struct {
	StudentName  string `form:"studentName"`
	StudentEmail string `form:"studentEmail"`
	TemplateID   string `form:"templateId"`
	NewTitle     string `form:"newTitle"`
	AssignToTeam bool   `form:"assignToTeam"`
	TeamID       string `form:"teamId"`
}

// CreateForm renders the page-creation form. Template and team
// listings degrade to empty dropdowns when the remote API is
// unreachable; the render itself never fails.
func (h *Handler) CreateForm(c *gin.Context) {
	templates := h.Catalog.Templates(c.Request.Context())
	teams := h.Catalog.Teams(c.Request.Context())

	c.HTML(http.StatusOK, "create_form.html", view.CreateForm{
		Templates:         templates.Items,
		Teams:             teams.Items,
		DefaultTemplateID: h.DefaultTemplateID,
		NoTemplates:       h.DefaultTemplateID == "" && len(templates.Items) == 0,
	})
}

// Clone runs the page-creation flow for one form submission.
func (h *Handler) Clone(c *gin.Context) {
	var form cloneForm
	if err := c.ShouldBind(&form); err != nil {
		h.badRequest(c, "Invalid form submission.", "/")
		return
	}

	req := pages.CloneRequest{
		StudentName:  form.StudentName,
		StudentEmail: form.StudentEmail,
		TemplateID:   form.TemplateID,
		NewTitle:     form.NewTitle,
		AssignToTeam: form.AssignToTeam,
		TeamID:       form.TeamID,
	}
	if err := req.Validate(); err != nil {
		h.badRequest(c, err.Error(), "/")
		return
	}

	res, err := h.Pages.ClonePage(c.Request.Context(), req)
	if err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) && de.Code == domain.ErrorCodeNotFound {
			c.HTML(http.StatusBadRequest, "user_not_found.html", view.UserNotFound{
				Email: form.StudentEmail,
			})
			return
		}
		h.writeError(c, err, "Error Creating Landing Page", "/")
		return
	}

	c.HTML(http.StatusOK, "success.html", view.CreateSuccess{
		StudentName:  form.StudentName,
		StudentEmail: form.StudentEmail,
		EditURL:      res.EditURL,
	})
}
