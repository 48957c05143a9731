package treatments

import (
	"context"
	"fmt"

	"vet-clinic-records/internal/domain/lifecycle"
)

const EntityName = "treatment"

type Service struct {
	*lifecycle.Manager[Treatment, *Treatment]
	patients lifecycle.Existence
}

// patients es el repositorio de pacientes; solo se usa para chequear existencia.
func NewService(repo Repository, patients lifecycle.Existence, hook lifecycle.Hook) *Service {
	return &Service{
		Manager:  lifecycle.NewManager[Treatment, *Treatment](EntityName, repo, hook),
		patients: patients,
	}
}

func (s *Service) Create(ctx context.Context, t Treatment, actor string) (Treatment, error) {
	if err := s.checkPatient(ctx, t.PatientID); err != nil {
		return Treatment{}, err
	}
	return s.Manager.Create(ctx, t, actor)
}

func (s *Service) Update(ctx context.Context, t Treatment, actor string) (Treatment, error) {
	if err := s.RequireActive(ctx, t.ID); err != nil {
		return Treatment{}, err
	}
	if err := s.checkPatient(ctx, t.PatientID); err != nil {
		return Treatment{}, err
	}
	return s.Manager.Update(ctx, t, actor)
}

func (s *Service) checkPatient(ctx context.Context, patientID int64) error {
	ok, err := lifecycle.ExistsAny(ctx, s.patients, patientID)
	if err != nil {
		return err
	}
	if !ok {
		return lifecycle.Invalid(fmt.Sprintf("patient %d does not exist", patientID))
	}
	return nil
}
