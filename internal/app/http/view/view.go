// Package view holds the HTML views and the data each one is
// rendered with. Handlers pass typed view data; no markup lives
// outside this package.
package view

import (
	"embed"
	"html/template"

	"studentpages/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded views for installation into the
// router's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

// CreateForm feeds the page-creation form.
type CreateForm struct {
	Templates         []domain.Page
	Teams             []domain.Team
	DefaultTemplateID string
	// NoTemplates is set when no default template is configured and
	// the template listing came back empty, so the form warns instead
	// of offering an empty select.
	NoTemplates bool
}

// AssignForm feeds the page/team assignment form.
type AssignForm struct {
	Pages []domain.Page
	Teams []domain.Team
}

// CreateSuccess feeds the post-creation page.
type CreateSuccess struct {
	StudentName  string
	StudentEmail string
	EditURL      string
}

// AssignSuccess feeds the post-assignment page.
type AssignSuccess struct {
	EditURL string
}

// UserNotFound feeds the explanatory page shown when the student's
// email has no HubSpot account.
type UserNotFound struct {
	Email string
}

// Error feeds the generic error page.
type Error struct {
	Title   string
	Message string
	// HomePath is where "Try Again" points; the two servers have
	// different forms.
	HomePath string
}
