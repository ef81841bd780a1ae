package http_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/sweetshop-api/internal/domain/entity"
	"github.com/jhoicas/sweetshop-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los tests HTTP
// ──────────────────────────────────────────────────────────────────────────────

// memUserRepo implementación en memoria de repository.UserRepository.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByUsername(username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(user *entity.User) error {
	return r.Create(user)
}

// memSweetRepo implementación en memoria de repository.SweetRepository.
// Emula la semántica de la versión PostgreSQL: substring case-insensitive
// para name/category y rangos de precio inclusivos.
type memSweetRepo struct {
	mu     sync.Mutex
	sweets map[string]*entity.Sweet
}

func newMemSweetRepo() *memSweetRepo {
	return &memSweetRepo{sweets: make(map[string]*entity.Sweet)}
}

func (r *memSweetRepo) Create(sweet *entity.Sweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *sweet
	r.sweets[sweet.ID] = &cp
	return nil
}

func (r *memSweetRepo) GetByID(id string) (*entity.Sweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sweets[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memSweetRepo) GetByIDForUpdate(id string) (*entity.Sweet, error) {
	return r.GetByID(id)
}

func (r *memSweetRepo) List() ([]*entity.Sweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Sweet, 0, len(r.sweets))
	for _, s := range r.sweets {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memSweetRepo) Search(filter repository.SweetFilter) ([]*entity.Sweet, error) {
	all, _ := r.List()
	out := make([]*entity.Sweet, 0, len(all))
	for _, s := range all {
		if filter.Name != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Category != "" && !strings.Contains(strings.ToLower(s.Category), strings.ToLower(filter.Category)) {
			continue
		}
		if filter.MinPrice != nil && s.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && s.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *memSweetRepo) Update(sweet *entity.Sweet) error {
	return r.Create(sweet)
}

func (r *memSweetRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sweets[id]; !ok {
		return false, nil
	}
	delete(r.sweets, id)
	return true, nil
}

// memTxRunner ejecuta el closure directamente sobre el repo en memoria;
// la atomicidad real la cubren los tests de integración con PostgreSQL.
type memTxRunner struct {
	sweets *memSweetRepo
}

func (tr *memTxRunner) Run(_ context.Context, fn func(sweets repository.SweetRepository) error) error {
	return fn(tr.sweets)
}
