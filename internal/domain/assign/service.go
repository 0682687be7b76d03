package assign

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"studentpages/internal/domain"
)

// PageUpdate is the metadata overwritten when a page is claimed for a
// team.
type PageUpdate struct {
	Name            string `json:"name"`
	MetaDescription string `json:"metaDescription"`
}

// API is the slice of the remote client the assignment flow needs.
type API interface {
	UpdatePage(ctx context.Context, id string, fields PageUpdate) error
	GrantTeamPermission(ctx context.Context, teamID, pageID string) error
}

type Service interface {
	AssignTeam(ctx context.Context, pageID, teamID string) (editURL string, err error)
}

type service struct {
	api     API
	events  domain.EventBus
	editURL func(pageID string) string
	log     *zap.Logger
}

func NewService(api API, events domain.EventBus, editURL func(pageID string) string, log *zap.Logger) Service {
	return &service{
		api:     api,
		events:  events,
		editURL: editURL,
		log:     log,
	}
}

// AssignTeam renames the page to mark it as claimed, then grants the
// team edit access. There is no rollback: if the grant fails the page
// stays renamed but unassigned. The caller collapses both failures
// into one generic message; the log names the failing step.
func (s *service) AssignTeam(ctx context.Context, pageID, teamID string) (string, error) {
	update := PageUpdate{
		Name:            fmt.Sprintf("Landing Page - Team %s", teamID),
		MetaDescription: "Team Access Updated",
	}
	if err := s.api.UpdatePage(ctx, pageID, update); err != nil {
		s.log.Error("page metadata update failed",
			zap.String("page_id", pageID),
			zap.String("team_id", teamID),
			zap.Error(err),
		)
		return "", err
	}

	if err := s.api.GrantTeamPermission(ctx, teamID, pageID); err != nil {
		s.log.Error("permission grant failed, page left renamed",
			zap.String("page_id", pageID),
			zap.String("team_id", teamID),
			zap.Error(err),
		)
		return "", err
	}

	if s.events != nil {
		s.events.Publish(ctx, domain.Event{
			Type: "team.access_granted",
			Payload: map[string]any{
				"page_id": pageID,
				"team_id": teamID,
			},
		})
	}

	return s.editURL(pageID), nil
}
