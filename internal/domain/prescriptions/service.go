package prescriptions

import (
	"context"

	"vet-clinic-records/internal/domain/lifecycle"
)

const EntityName = "prescription"

type Service struct {
	*lifecycle.Manager[Prescription, *Prescription]

	repo        Repository
	treatments  lifecycle.Existence
	medicaments lifecycle.Existence
}

func NewService(repo Repository, treatments, medicaments lifecycle.Existence, hook lifecycle.Hook) *Service {
	return &Service{
		Manager:     lifecycle.NewManager[Prescription, *Prescription](EntityName, repo, hook),
		repo:        repo,
		treatments:  treatments,
		medicaments: medicaments,
	}
}

func (s *Service) Create(ctx context.Context, p Prescription, actor string) (Prescription, error) {
	if err := s.checkRefs(ctx, p); err != nil {
		return Prescription{}, err
	}
	return s.Manager.Create(ctx, p, actor)
}

func (s *Service) Update(ctx context.Context, p Prescription, actor string) (Prescription, error) {
	if err := s.RequireActive(ctx, p.ID); err != nil {
		return Prescription{}, err
	}
	if err := s.checkRefs(ctx, p); err != nil {
		return Prescription{}, err
	}
	return s.Manager.Update(ctx, p, actor)
}

// checkRefs acepta padres eliminados: solo exige que existan.
func (s *Service) checkRefs(ctx context.Context, p Prescription) error {
	var problems lifecycle.Problems

	ok, err := lifecycle.ExistsAny(ctx, s.treatments, p.TreatmentID)
	if err != nil {
		return err
	}
	if !ok {
		problems.Addf("treatment %d does not exist", p.TreatmentID)
	}

	ok, err = lifecycle.ExistsAny(ctx, s.medicaments, p.MedicamentID)
	if err != nil {
		return err
	}
	if !ok {
		problems.Addf("medicament %d does not exist", p.MedicamentID)
	}

	return problems.Err()
}

// ListByTreatment exige que el tratamiento esté activo.
func (s *Service) ListByTreatment(ctx context.Context, treatmentID int64) ([]Prescription, error) {
	ok, err := s.treatments.ExistsActive(ctx, treatmentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &lifecycle.NotFoundError{Entity: "treatment", ID: treatmentID, Partition: lifecycle.Active}
	}
	return s.repo.ListActiveByTreatment(ctx, treatmentID)
}
