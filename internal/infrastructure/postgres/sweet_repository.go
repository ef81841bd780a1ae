package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sweetshop-api/internal/domain/entity"
	"github.com/jhoicas/sweetshop-api/internal/domain/repository"
)

var _ repository.SweetRepository = (*SweetRepo)(nil)

const sweetColumns = `id, name, category, price, quantity, description, image_url, created_at, updated_at`

// SweetRepo implementación del puerto SweetRepository sobre PostgreSQL
// (usable con pool o tx).
type SweetRepo struct {
	q Querier
}

// NewSweetRepository construye el adaptador de persistencia para dulces. Pasar pool o tx (Querier).
func NewSweetRepository(q Querier) *SweetRepo {
	return &SweetRepo{q: q}
}

// Create persiste un dulce nuevo.
func (r *SweetRepo) Create(sweet *entity.Sweet) error {
	query := `
		INSERT INTO sweets (id, name, category, price, quantity, description, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity,
		sweet.Description, sweet.ImageURL, sweet.CreatedAt, sweet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sweet: %w", err)
	}
	return nil
}

// GetByID obtiene un dulce por ID; (nil, nil) si no existe.
func (r *SweetRepo) GetByID(id string) (*entity.Sweet, error) {
	return r.get(id, false)
}

// GetByIDForUpdate obtiene un dulce bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción del TxRunner.
func (r *SweetRepo) GetByIDForUpdate(id string) (*entity.Sweet, error) {
	return r.get(id, true)
}

func (r *SweetRepo) get(id string, forUpdate bool) (*entity.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var s entity.Sweet
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity,
		&s.Description, &s.ImageURL, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sweet: %w", err)
	}
	return &s, nil
}

// List devuelve el catálogo completo ordenado por fecha de creación.
func (r *SweetRepo) List() ([]*entity.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets ORDER BY created_at DESC`
	return r.queryMany(query)
}

// Search filtra por nombre/categoría (substring case-insensitive vía ILIKE)
// y por rango de precio inclusivo. Los criterios presentes se combinan con AND.
func (r *SweetRepo) Search(filter repository.SweetFilter) ([]*entity.Sweet, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.Name != "" {
		conds = append(conds, `name ILIKE '%' || `+arg(filter.Name)+` || '%'`)
	}
	if filter.Category != "" {
		conds = append(conds, `category ILIKE '%' || `+arg(filter.Category)+` || '%'`)
	}
	if filter.MinPrice != nil {
		conds = append(conds, `price >= `+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		conds = append(conds, `price <= `+arg(*filter.MaxPrice))
	}

	query := `SELECT ` + sweetColumns + ` FROM sweets`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY created_at DESC`
	return r.queryMany(query, args...)
}

func (r *SweetRepo) queryMany(query string, args ...any) ([]*entity.Sweet, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sweets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sweet
	for rows.Next() {
		var s entity.Sweet
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity,
			&s.Description, &s.ImageURL, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sweet: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update persiste todos los campos mutables del dulce.
func (r *SweetRepo) Update(sweet *entity.Sweet) error {
	query := `
		UPDATE sweets SET name = $2, category = $3, price = $4, quantity = $5, description = $6, image_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity,
		sweet.Description, sweet.ImageURL, sweet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sweet: %w", err)
	}
	return nil
}

// Delete elimina un dulce por ID; retorna false si no existía.
func (r *SweetRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sweets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sweet: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
