package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/sweetshop-api/internal/application/dto"
	"github.com/jhoicas/sweetshop-api/internal/domain"
	"github.com/jhoicas/sweetshop-api/internal/domain/entity"
	"github.com/jhoicas/sweetshop-api/internal/domain/repository"
)

// SweetUseCase casos de uso CRUD y búsqueda para el catálogo.
// El stock se modifica vía el caso de uso de inventario (purchase/restock),
// no por el update directo de campos.
type SweetUseCase struct {
	repo repository.SweetRepository
}

// NewSweetUseCase construye el caso de uso.
func NewSweetUseCase(repo repository.SweetRepository) *SweetUseCase {
	return &SweetUseCase{repo: repo}
}

// Create crea un dulce nuevo. El handler ya garantizó presencia de los campos
// requeridos; aquí se validan los invariantes de la entidad.
func (uc *SweetUseCase) Create(in dto.CreateSweetRequest) (*dto.SweetResponse, error) {
	now := time.Now()
	sweet := &entity.Sweet{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Price:       *in.Price,
		Quantity:    *in.Quantity,
		Description: strings.TrimSpace(in.Description),
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := sweet.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(sweet); err != nil {
		return nil, err
	}
	out := dto.ToSweetResponse(sweet)
	return &out, nil
}

// GetByID obtiene un dulce; retorna ErrNotFound si no existe.
func (uc *SweetUseCase) GetByID(id string) (*dto.SweetResponse, error) {
	sweet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToSweetResponse(sweet)
	return &out, nil
}

// List devuelve el catálogo completo.
func (uc *SweetUseCase) List() (*dto.SweetListData, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	data := dto.ToSweetListData(list)
	return &data, nil
}

// Search filtra el catálogo. Los términos de texto se normalizan (NFC + trim)
// para que una misma palabra escrita con secuencias Unicode distintas
// produzca el mismo filtro; criterios ausentes no restringen nada.
func (uc *SweetUseCase) Search(filter repository.SweetFilter) (*dto.SweetListData, error) {
	filter.Name = normalizeTerm(filter.Name)
	filter.Category = normalizeTerm(filter.Category)

	var (
		list []*entity.Sweet
		err  error
	)
	if filter.Empty() {
		list, err = uc.repo.List()
	} else {
		list, err = uc.repo.Search(filter)
	}
	if err != nil {
		return nil, err
	}
	data := dto.ToSweetListData(list)
	return &data, nil
}

// Update aplica los campos presentes y re-valida los invariantes.
// Retorna ErrNotFound si el dulce no existe y ErrInvalidInput si la
// actualización viola la validación de la entidad.
func (uc *SweetUseCase) Update(id string, in dto.UpdateSweetRequest) (*dto.SweetResponse, error) {
	sweet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sweet == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		sweet.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		sweet.Category = strings.TrimSpace(*in.Category)
	}
	if in.Price != nil {
		sweet.Price = *in.Price
	}
	if in.Quantity != nil {
		sweet.Quantity = *in.Quantity
	}
	if in.Description != nil {
		sweet.Description = strings.TrimSpace(*in.Description)
	}
	if in.ImageURL != nil {
		sweet.ImageURL = *in.ImageURL
	}
	if err := sweet.Validate(); err != nil {
		return nil, err
	}
	sweet.UpdatedAt = time.Now()
	if err := uc.repo.Update(sweet); err != nil {
		return nil, err
	}
	out := dto.ToSweetResponse(sweet)
	return &out, nil
}

// Delete elimina un dulce; retorna ErrNotFound si no existía.
func (uc *SweetUseCase) Delete(id string) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func normalizeTerm(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
