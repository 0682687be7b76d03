package user

import (
	"context"

	"go.uber.org/zap"

	"studentpages/internal/domain"
)

// Directory lists the portal's users.
type Directory interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// Lookup is the outcome of an email existence check.
type Lookup struct {
	Exists bool
	UserID string
}

type Service interface {
	// CheckUserExists scans the full user list for an exact,
	// case-sensitive email match. A case-mismatched email is treated
	// as not found. A directory fetch failure also reports not found;
	// the two outcomes are indistinguishable to the caller, matching
	// the source system's behavior, so the failure is logged here.
	CheckUserExists(ctx context.Context, email string) Lookup
}

type service struct {
	dir Directory
	log *zap.Logger
}

func NewService(dir Directory, log *zap.Logger) Service {
	return &service{dir: dir, log: log}
}

func (s *service) CheckUserExists(ctx context.Context, email string) Lookup {
	users, err := s.dir.ListUsers(ctx)
	if err != nil {
		s.log.Error("user directory fetch failed, reporting not found",
			zap.String("email", email),
			zap.Error(err),
		)
		return Lookup{}
	}

	for _, u := range users {
		if u.Email == email {
			return Lookup{Exists: true, UserID: u.ID}
		}
	}
	return Lookup{}
}
