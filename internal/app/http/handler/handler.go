package handler

import (
	"go.uber.org/zap"

	"studentpages/internal/domain/assign"
	"studentpages/internal/domain/catalog"
	"studentpages/internal/domain/pages"
)

type Handler struct {
	Catalog catalog.Service
	Pages   pages.Service
	Assign  assign.Service
	// DefaultTemplateID skips template selection on the creation form
	// when configured.
	DefaultTemplateID string
	Log               *zap.Logger
}

func New(
	catalogSvc catalog.Service,
	pagesSvc pages.Service,
	assignSvc assign.Service,
	defaultTemplateID string,
	log *zap.Logger,
) *Handler {
	return &Handler{
		Catalog:           catalogSvc,
		Pages:             pagesSvc,
		Assign:            assignSvc,
		DefaultTemplateID: defaultTemplateID,
		Log:               log,
	}
}
