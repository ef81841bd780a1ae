package inventory

import (
	"context"

	"github.com/jhoicas/sweetshop-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con un SweetRepository
// atado a la tx. Commit si fn retorna nil, Rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(sweets repository.SweetRepository) error) error
}
