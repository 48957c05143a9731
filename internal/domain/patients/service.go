package patients

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/enums"
	"vet-clinic-records/internal/domain/lifecycle"

	"github.com/google/uuid"
)

const EntityName = "patient"

// MaxPhotoSize es el tamaño máximo de la foto (5 MB).
const MaxPhotoSize = 5 << 20

var allowedPhotoExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// PhotoStore es el blob store opaco: guarda bytes bajo una key y devuelve la URL pública.
type PhotoStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

type Service struct {
	*lifecycle.Manager[Patient, *Patient]

	repo   Repository
	owners lifecycle.Existence
	photos PhotoStore
	now    func() time.Time
}

// owners es el repositorio de customers; solo se usa para chequear existencia.
func NewService(repo Repository, owners lifecycle.Existence, photos PhotoStore, hook lifecycle.Hook) *Service {
	return &Service{
		Manager: lifecycle.NewManager[Patient, *Patient](EntityName, repo, hook),
		repo:    repo,
		owners:  owners,
		photos:  photos,
		now:     time.Now,
	}
}

func (s *Service) Today() time.Time { return s.now() }

func (s *Service) Create(ctx context.Context, p Patient, actor string) (Patient, error) {
	if err := s.checkOwner(ctx, p.CustomerID); err != nil {
		return Patient{}, err
	}
	if err := s.checkUnique(ctx, p, nil); err != nil {
		return Patient{}, err
	}

	if p.RegisteredAt.IsZero() {
		p.RegisteredAt = s.now().UTC()
	}
	if strings.TrimSpace(p.RegisteredBy) == "" {
		p.RegisteredBy = actor
	}
	p.Owner = nil

	return s.Manager.Create(ctx, p, actor)
}

func (s *Service) Update(ctx context.Context, p Patient, actor string) (Patient, error) {
	current, err := s.Get(ctx, p.ID)
	if err != nil {
		return Patient{}, err
	}
	if err := s.checkOwner(ctx, p.CustomerID); err != nil {
		return Patient{}, err
	}
	id := p.ID
	if err := s.checkUnique(ctx, p, &id); err != nil {
		return Patient{}, err
	}

	// Datos de registro y foto se conservan si el cliente no los manda.
	if p.RegisteredAt.IsZero() {
		p.RegisteredAt = current.RegisteredAt
	}
	if strings.TrimSpace(p.RegisteredBy) == "" {
		p.RegisteredBy = current.RegisteredBy
	}
	if strings.TrimSpace(p.PhotoURL) == "" {
		p.PhotoURL = current.PhotoURL
	}
	p.Owner = nil

	return s.Manager.Update(ctx, p, actor)
}

func (s *Service) checkOwner(ctx context.Context, customerID int64) error {
	ok, err := lifecycle.ExistsAny(ctx, s.owners, customerID)
	if err != nil {
		return err
	}
	if !ok {
		return lifecycle.Invalid(fmt.Sprintf("customer %d does not exist", customerID))
	}
	return nil
}

func (s *Service) checkUnique(ctx context.Context, p Patient, excludeID *int64) error {
	exists, err := s.repo.AnimalNameExistsForOwner(ctx, p.AnimalName, p.CustomerID, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return &lifecycle.ConflictError{Entity: EntityName, Field: "animal_name", Value: p.AnimalName}
	}
	return nil
}

func (s *Service) AnimalNameExistsForOwner(ctx context.Context, animalName string, customerID int64, excludeID *int64) (bool, error) {
	return s.repo.AnimalNameExistsForOwner(ctx, animalName, customerID, excludeID)
}

// ListByCustomer exige que el customer esté activo.
func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]Patient, error) {
	ok, err := s.owners.ExistsActive(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &lifecycle.NotFoundError{Entity: "customer", ID: customerID, Partition: lifecycle.Active}
	}
	return s.repo.ListActiveByCustomer(ctx, customerID)
}

// Search valida los parámetros (todos los problemas juntos) y delega al motor.
// Devuelve también los parámetros normalizados para armar la paginación.
func (s *Service) Search(ctx context.Context, params SearchParams) (SearchResult, SearchParams, error) {
	if err := params.Validate(); err != nil {
		return SearchResult{}, params, err
	}
	res, err := s.repo.Search(ctx, params.Query(s.now()))
	if err != nil {
		return SearchResult{}, params, err
	}
	return res, params, nil
}

func (s *Service) Species(ctx context.Context) ([]string, error) { return s.repo.Species(ctx) }
func (s *Service) Breeds(ctx context.Context) ([]string, error)  { return s.repo.Breeds(ctx) }

// Filters es el catálogo para armar el formulario de búsqueda.
type Filters struct {
	Species         []string `json:"species"`
	Breeds          []string `json:"breeds"`
	Statuses        []string `json:"statuses"`
	Genders         []string `json:"genders"`
	Classifications []string `json:"classifications"`
}

func (s *Service) Filters(ctx context.Context) (Filters, error) {
	species, err := s.repo.Species(ctx)
	if err != nil {
		return Filters{}, err
	}
	breeds, err := s.repo.Breeds(ctx)
	if err != nil {
		return Filters{}, err
	}
	return Filters{
		Species:         species,
		Breeds:          breeds,
		Statuses:        enums.CustomerStatuses.Names(),
		Genders:         enums.Genders.Names(),
		Classifications: enums.Classifications.Names(),
	}, nil
}

// PhotoUpload describe el archivo recibido.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadPhoto guarda la foto en el blob store y persiste solo la URL.
func (s *Service) UploadPhoto(ctx context.Context, id int64, up PhotoUpload, actor string) (string, error) {
	var problems lifecycle.Problems
	ext := strings.ToLower(filepath.Ext(up.FileName))
	if up.Size <= 0 || up.Body == nil {
		problems.Addf("file is required")
	}
	if !allowedPhotoExt[ext] {
		problems.Addf("file extension '%s' is not allowed. Valid values are: .jpg, .jpeg, .png, .gif", ext)
	}
	if up.Size > MaxPhotoSize {
		problems.Addf("file exceeds the maximum size of %d bytes", MaxPhotoSize)
	}
	if err := problems.Err(); err != nil {
		return "", err
	}

	if err := s.RequireActive(ctx, id); err != nil {
		return "", err
	}

	key := fmt.Sprintf("patients/patient_%d_%s%s", id, uuid.NewString(), ext)
	url, err := s.photos.Put(ctx, key, up.ContentType, up.Body)
	if err != nil {
		return "", lifecycle.Storage("put photo", err)
	}

	ok, err := s.repo.UpdatePhoto(ctx, id, url)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &lifecycle.NotFoundError{Entity: EntityName, ID: id, Partition: lifecycle.Active}
	}

	s.Emit(ctx, lifecycle.ActionUpdated, id, actor)
	return url, nil
}
