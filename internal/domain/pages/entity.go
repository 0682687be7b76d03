package pages

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CloneRequest is one submission of the creation form. It is
// request-scoped and never stored.
type CloneRequest struct {
	StudentName  string
	StudentEmail string
	TemplateID   string
	NewTitle     string
	AssignToTeam bool
	TeamID       string
}

func (r CloneRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StudentName, validation.Required),
		validation.Field(&r.StudentEmail, validation.Required, is.Email),
		validation.Field(&r.TemplateID, validation.Required),
		validation.Field(&r.NewTitle, validation.Required),
		validation.Field(&r.TeamID, validation.Required.When(r.AssignToTeam)),
	)
}

// CloneResult points at the page the remote system created.
type CloneResult struct {
	PageID  string
	EditURL string
}
