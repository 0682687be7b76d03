package pages

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"studentpages/internal/domain"
	"studentpages/internal/domain/user"
)

const defaultLanguage = "en"

// API is the slice of the remote client the clone flow needs.
type API interface {
	FetchPage(ctx context.Context, id string) (domain.Page, error)
	CreatePage(ctx context.Context, payload domain.Page) (domain.Page, error)
}

type Service interface {
	ClonePage(ctx context.Context, req CloneRequest) (CloneResult, error)
}

type service struct {
	api     API
	users   user.Service
	events  domain.EventBus
	editURL func(pageID string) string
	now     func() time.Time
	log     *zap.Logger
}

func NewService(
	api API,
	users user.Service,
	events domain.EventBus,
	editURL func(pageID string) string,
	now func() time.Time,
	log *zap.Logger,
) Service {
	return &service{
		api:     api,
		users:   users,
		events:  events,
		editURL: editURL,
		now:     now,
		log:     log,
	}
}

// ClonePage runs the creation sequence: verify the student's account,
// read the template, build the payload, create the page. Each step is
// a blocking round trip; the first failure ends the flow. Nothing is
// mutated remotely before the create call, so there is no cleanup
// path.
func (s *service) ClonePage(ctx context.Context, req CloneRequest) (CloneResult, error) {
	lookup := s.users.CheckUserExists(ctx, req.StudentEmail)
	if !lookup.Exists {
		return CloneResult{}, &domain.DomainError{
			Code:       domain.ErrorCodeNotFound,
			Message:    fmt.Sprintf("no HubSpot user with email %q", req.StudentEmail),
			HTTPStatus: http.StatusBadRequest,
		}
	}

	template, err := s.api.FetchPage(ctx, req.TemplateID)
	if err != nil {
		return CloneResult{}, err
	}

	created, err := s.api.CreatePage(ctx, s.buildPayload(req, template))
	if err != nil {
		return CloneResult{}, err
	}

	if s.events != nil {
		s.events.Publish(ctx, domain.Event{
			Type: "page.created",
			Payload: map[string]any{
				"page_id":       created.ID,
				"student_email": req.StudentEmail,
				"template_id":   req.TemplateID,
			},
		})
	}

	// TODO: confirm with the portal admins whether checking "assign
	// to team" on the creation form should actually grant access.
	// The source system accepts the field and never acts on it; the
	// success page tells the operator to grant access manually.
	if req.AssignToTeam {
		s.log.Warn("team assignment requested on creation form but not performed",
			zap.String("page_id", created.ID),
			zap.String("team_id", req.TeamID),
		)
		if s.events != nil {
			s.events.Publish(ctx, domain.Event{
				Type: "page.assign_requested",
				Payload: map[string]any{
					"page_id": created.ID,
					"team_id": req.TeamID,
				},
			})
		}
	}

	return CloneResult{
		PageID:  created.ID,
		EditURL: s.editURL(created.ID),
	}, nil
}

// buildPayload copies the template's content fields verbatim and
// derives the new page's identity fields from the form input. The
// slug carries an epoch-millisecond suffix, so submitting the same
// form twice produces two distinct pages.
func (s *service) buildPayload(req CloneRequest, template domain.Page) domain.Page {
	language := template.Language
	if language == "" {
		language = defaultLanguage
	}

	return domain.Page{
		Name:            fmt.Sprintf("%s - %s", req.StudentName, req.NewTitle),
		Slug:            fmt.Sprintf("student-%s-%d", slugify(req.StudentName), s.now().UnixMilli()),
		HTMLTitle:       req.NewTitle,
		TemplatePath:    template.TemplatePath,
		Language:        language,
		WebsitePageType: template.WebsitePageType,
		Widgets:         template.Widgets,
		LayoutSections:  template.LayoutSections,
	}
}
