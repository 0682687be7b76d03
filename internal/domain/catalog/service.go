package catalog

import (
	"context"

	"go.uber.org/zap"

	"studentpages/internal/domain"
)

// API is the slice of the remote client the form listings need.
type API interface {
	ListTeams(ctx context.Context) domain.Listing[domain.Team]
	ListTemplates(ctx context.Context) domain.Listing[domain.Page]
	ListPages(ctx context.Context) domain.Listing[domain.Page]
}

// Service supplies the collections that populate form dropdowns.
// A degraded listing renders as an empty dropdown, never as an error
// page.
type Service interface {
	Teams(ctx context.Context) domain.Listing[domain.Team]
	Templates(ctx context.Context) domain.Listing[domain.Page]
	Pages(ctx context.Context) domain.Listing[domain.Page]
}

type service struct {
	api API
	log *zap.Logger
}

func NewService(api API, log *zap.Logger) Service {
	return &service{api: api, log: log}
}

func (s *service) Teams(ctx context.Context) domain.Listing[domain.Team] {
	l := s.api.ListTeams(ctx)
	if l.Degraded {
		s.log.Warn("team listing degraded to empty")
	}
	return l
}

func (s *service) Templates(ctx context.Context) domain.Listing[domain.Page] {
	l := s.api.ListTemplates(ctx)
	if l.Degraded {
		s.log.Warn("template listing degraded to empty")
	}
	return l
}

func (s *service) Pages(ctx context.Context) domain.Listing[domain.Page] {
	l := s.api.ListPages(ctx)
	if l.Degraded {
		s.log.Warn("page listing degraded to empty")
	}
	return l
}
