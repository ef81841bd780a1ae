package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sweetshop-api/internal/domain/entity"
)

// SweetFilter criterios de búsqueda para Search. Los campos en cero no filtran;
// todos los criterios presentes se combinan con AND.
type SweetFilter struct {
	Name     string           // substring, case-insensitive
	Category string           // substring, case-insensitive
	MinPrice *decimal.Decimal // inclusivo
	MaxPrice *decimal.Decimal // inclusivo
}

// Empty indica si el filtro no impone ninguna restricción.
func (f SweetFilter) Empty() bool {
	return f.Name == "" && f.Category == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// SweetRepository define el puerto de persistencia para Sweet (DIP).
// Los Get* retornan (nil, nil) cuando no existe el registro.
// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido
// dentro de una transacción del TxRunner.
type SweetRepository interface {
	Create(sweet *entity.Sweet) error
	GetByID(id string) (*entity.Sweet, error)
	GetByIDForUpdate(id string) (*entity.Sweet, error)
	List() ([]*entity.Sweet, error)
	Search(filter SweetFilter) ([]*entity.Sweet, error)
	Update(sweet *entity.Sweet) error
	Delete(id string) (bool, error)
}
