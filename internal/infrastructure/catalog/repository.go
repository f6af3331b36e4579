package catalog

import (
	"context"
	"fmt"

	"github.com/greenlens/backend/internal/domain"
)

// Repository serves the fixed product catalog. The catalog never changes at
// runtime; every read hands out copies.
type Repository struct {
	products []domain.Product
	byID     map[int]int
}

// NewRepository builds the catalog from the baked-in records
func NewRepository() (*Repository, error) {
	return newRepository(records)
}

func newRepository(rows []record) (*Repository, error) {
	repo := &Repository{
		products: make([]domain.Product, 0, len(rows)),
		byID:     make(map[int]int, len(rows)),
	}
	for _, row := range rows {
		p, err := mapToProduct(row)
		if err != nil {
			return nil, err
		}
		if _, dup := repo.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		repo.byID[p.ID] = len(repo.products)
		repo.products = append(repo.products, p)
	}
	return repo, nil
}

// All returns every product in catalog order
func (r *Repository) All(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	for i, p := range r.products {
		out[i] = cloneProduct(p)
	}
	return out, nil
}

// GetByID returns the product with the given id
func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
	}
	p := cloneProduct(r.products[idx])
	return &p, nil
}

// Len returns the catalog size
func (r *Repository) Len() int {
	return len(r.products)
}
