package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/sweetshop-api/internal/application/dto"
	"github.com/jhoicas/sweetshop-api/internal/domain"
	"github.com/jhoicas/sweetshop-api/internal/domain/entity"
	"github.com/jhoicas/sweetshop-api/internal/domain/repository"
)

// StockUseCase aplica compras y reabastecimientos sobre el stock de un dulce.
// Cada operación corre en una transacción con bloqueo de fila
// (SELECT FOR UPDATE), así dos compras concurrentes del mismo dulce se
// serializan y la cantidad no puede quedar negativa.
type StockUseCase struct {
	txRunner TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner) *StockUseCase {
	return &StockUseCase{txRunner: txRunner}
}

// Purchase descuenta quantity unidades del dulce id.
// Retorna ErrInvalidInput si quantity no es positivo, ErrNotFound si el dulce
// no existe y ErrInsufficientStock si no hay stock suficiente.
func (uc *StockUseCase) Purchase(ctx context.Context, id string, quantity int) (*dto.SweetResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.adjust(ctx, id, func(s *entity.Sweet) error {
		return s.Purchase(quantity)
	})
}

// Restock suma quantity unidades al dulce id.
// Retorna ErrInvalidInput si quantity no es positivo y ErrNotFound si el
// dulce no existe.
func (uc *StockUseCase) Restock(ctx context.Context, id string, quantity int) (*dto.SweetResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.adjust(ctx, id, func(s *entity.Sweet) error {
		s.Restock(quantity)
		return nil
	})
}

// adjust carga la fila con bloqueo, aplica la mutación y persiste, todo
// dentro de una sola transacción.
func (uc *StockUseCase) adjust(ctx context.Context, id string, apply func(*entity.Sweet) error) (*dto.SweetResponse, error) {
	var out *dto.SweetResponse
	err := uc.txRunner.Run(ctx, func(sweets repository.SweetRepository) error {
		sweet, err := sweets.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if sweet == nil {
			return domain.ErrNotFound
		}
		if err := apply(sweet); err != nil {
			return err
		}
		sweet.UpdatedAt = time.Now()
		if err := sweets.Update(sweet); err != nil {
			return err
		}
		resp := dto.ToSweetResponse(sweet)
		out = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
