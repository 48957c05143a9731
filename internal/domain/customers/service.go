package customers

import (
	"context"
	"strings"

	"vet-clinic-records/internal/domain/lifecycle"
)

const EntityName = "customer"

type Service struct {
	*lifecycle.Manager[Customer, *Customer]
	repo Repository
}

func NewService(repo Repository, hook lifecycle.Hook) *Service {
	return &Service{
		Manager: lifecycle.NewManager[Customer, *Customer](EntityName, repo, hook),
		repo:    repo,
	}
}

func (s *Service) Create(ctx context.Context, c Customer, actor string) (Customer, error) {
	if err := s.checkUnique(ctx, c, nil); err != nil {
		return Customer{}, err
	}
	return s.Manager.Create(ctx, c, actor)
}

// Update responde NotFound antes que Conflict: primero existencia, después unicidad.
func (s *Service) Update(ctx context.Context, c Customer, actor string) (Customer, error) {
	if err := s.RequireActive(ctx, c.ID); err != nil {
		return Customer{}, err
	}
	id := c.ID
	if err := s.checkUnique(ctx, c, &id); err != nil {
		return Customer{}, err
	}
	return s.Manager.Update(ctx, c, actor)
}

func (s *Service) checkUnique(ctx context.Context, c Customer, excludeID *int64) error {
	if strings.TrimSpace(c.Email) != "" {
		exists, err := s.repo.EmailExists(ctx, c.Email, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return &lifecycle.ConflictError{Entity: EntityName, Field: "email", Value: c.Email}
		}
	}

	exists, err := s.repo.DocumentIDExists(ctx, c.DocumentID, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return &lifecycle.ConflictError{Entity: EntityName, Field: "document_id", Value: c.DocumentID}
	}
	return nil
}

func (s *Service) EmailExists(ctx context.Context, email string, excludeID *int64) (bool, error) {
	return s.repo.EmailExists(ctx, email, excludeID)
}

func (s *Service) DocumentIDExists(ctx context.Context, documentID string, excludeID *int64) (bool, error) {
	return s.repo.DocumentIDExists(ctx, documentID, excludeID)
}
