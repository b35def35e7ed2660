package repository

import (
	"sync"

	"github.com/unclebandit/crmdesk-backend/internal/model"
)

// CustomerRepositoryInterface defines methods used by service
type CustomerRepositoryInterface interface {
	Create(c *model.Customer) error
	Update(c *model.Customer) error
	Delete(id string) error
	GetByID(id string) (*model.Customer, error)
	ListAll() ([]model.Customer, error)
}

// CustomerRepository is the concrete in-memory implementation. The whole
// data set lives in process memory; there is no persistence layer.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*model.Customer
	order     []string // insertion order for stable listings
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[string]*model.Customer),
	}
}

func (r *CustomerRepository) Create(c *model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[c.ID]; !exists {
		r.order = append(r.order, c.ID)
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

// Update replaces the stored customer; unknown IDs are ignored.
func (r *CustomerRepository) Update(c *model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[c.ID]; !exists {
		return nil
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *CustomerRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[id]; !exists {
		return nil
	}
	delete(r.customers, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// GetByID fetches a customer by ID. Returns nil when not found.
func (r *CustomerRepository) GetByID(id string) (*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[id]
	if !ok {
		return nil, nil // not found
	}
	cp := *c
	return &cp, nil
}

// ListAll fetches all customers in insertion order
func (r *CustomerRepository) ListAll() ([]model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := []model.Customer{}
	for _, id := range r.order {
		customers = append(customers, *r.customers[id])
	}
	return customers, nil
}
