package medicaments

import (
	"context"

	"vet-clinic-records/internal/domain/lifecycle"
)

const EntityName = "medicament"

type Service struct {
	*lifecycle.Manager[Medicament, *Medicament]
	repo Repository
}

func NewService(repo Repository, hook lifecycle.Hook) *Service {
	return &Service{
		Manager: lifecycle.NewManager[Medicament, *Medicament](EntityName, repo, hook),
		repo:    repo,
	}
}

func (s *Service) Create(ctx context.Context, m Medicament, actor string) (Medicament, error) {
	if err := s.checkUnique(ctx, m, nil); err != nil {
		return Medicament{}, err
	}
	return s.Manager.Create(ctx, m, actor)
}

func (s *Service) Update(ctx context.Context, m Medicament, actor string) (Medicament, error) {
	if err := s.RequireActive(ctx, m.ID); err != nil {
		return Medicament{}, err
	}
	id := m.ID
	if err := s.checkUnique(ctx, m, &id); err != nil {
		return Medicament{}, err
	}
	return s.Manager.Update(ctx, m, actor)
}

func (s *Service) checkUnique(ctx context.Context, m Medicament, excludeID *int64) error {
	exists, err := s.repo.CommercialNameExists(ctx, m.CommercialName, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return &lifecycle.ConflictError{Entity: EntityName, Field: "commercial_name", Value: m.CommercialName}
	}
	return nil
}

func (s *Service) CommercialNameExists(ctx context.Context, name string, excludeID *int64) (bool, error) {
	return s.repo.CommercialNameExists(ctx, name, excludeID)
}
