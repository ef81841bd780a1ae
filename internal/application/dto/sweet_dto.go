package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sweetshop-api/internal/domain/entity"
)

// CreateSweetRequest entrada para crear un dulce. Price y Quantity son
// punteros para distinguir "ausente" de cero en la validación.
type CreateSweetRequest struct {
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl"`
}

// UpdateSweetRequest entrada para actualización parcial: solo los campos
// presentes se aplican.
type UpdateSweetRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Description *string          `json:"description"`
	ImageURL    *string          `json:"imageUrl"`
}

// QuantityRequest entrada para purchase/restock.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SweetResponse salida de un dulce.
type SweetResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	InStock     bool            `json:"inStock"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// SweetData payload con un solo dulce.
type SweetData struct {
	Sweet SweetResponse `json:"sweet"`
}

// SweetListData payload con varios dulces.
type SweetListData struct {
	Sweets []SweetResponse `json:"sweets"`
}

// ToSweetResponse proyecta la entidad a DTO.
func ToSweetResponse(s *entity.Sweet) SweetResponse {
	return SweetResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Price:       s.Price,
		Quantity:    s.Quantity,
		InStock:     s.IsInStock(),
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToSweetListData proyecta una lista de entidades.
func ToSweetListData(list []*entity.Sweet) SweetListData {
	items := make([]SweetResponse, 0, len(list))
	for _, s := range list {
		items = append(items, ToSweetResponse(s))
	}
	return SweetListData{Sweets: items}
}
