package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sweetshop-api/internal/domain"
)

// Sweet representa un dulce del catálogo. Quantity es stock en unidades;
// Price usa decimal para evitar redondeos binarios en dinero.
type Sweet struct {
	ID          string
	Name        string
	Category    string
	Price       decimal.Decimal
	Quantity    int
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate verifica los invariantes del dulce: name y category requeridos,
// price y quantity nunca negativos.
func (s *Sweet) Validate() error {
	if s.Name == "" || s.Category == "" {
		return domain.ErrInvalidInput
	}
	if s.Price.IsNegative() {
		return domain.ErrInvalidInput
	}
	if s.Quantity < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// IsInStock indica si queda stock.
func (s *Sweet) IsInStock() bool {
	return s.Quantity > 0
}

// Purchase descuenta quantity unidades del stock. El caller valida que
// quantity sea positivo antes de llegar aquí; si pide más de lo disponible
// retorna ErrInsufficientStock y el stock queda intacto.
func (s *Sweet) Purchase(quantity int) error {
	if quantity > s.Quantity {
		return domain.ErrInsufficientStock
	}
	s.Quantity -= quantity
	return nil
}

// Restock suma quantity unidades al stock. El caller valida que sea positivo.
func (s *Sweet) Restock(quantity int) {
	s.Quantity += quantity
}
