package repository

import (
	"sync"

	"github.com/unclebandit/crmdesk-backend/internal/model"
)

// CommunicationRepositoryInterface defines methods used by service
type CommunicationRepositoryInterface interface {
	Create(c *model.Communication) error
	Update(c *model.Communication) error
	GetByID(id string) (*model.Communication, error)
	ListByCustomer(customerID string) ([]model.Communication, error)
	ListAll() ([]model.Communication, error)
	DeleteByCustomer(customerID string) error
}

// CommunicationRepository keeps the communication log per customer, in the
// order entries were recorded.
type CommunicationRepository struct {
	mu         sync.RWMutex
	byCustomer map[string][]*model.Communication
	custOrder  []string
	index      map[string]*model.Communication
}

func NewCommunicationRepository() *CommunicationRepository {
	return &CommunicationRepository{
		byCustomer: make(map[string][]*model.Communication),
		index:      make(map[string]*model.Communication),
	}
}

func copyComm(c *model.Communication) *model.Communication {
	cp := *c
	cp.Tags = append([]string{}, c.Tags...)
	return &cp
}

func (r *CommunicationRepository) Create(c *model.Communication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := copyComm(c)
	if _, ok := r.byCustomer[cp.CustomerID]; !ok {
		r.custOrder = append(r.custOrder, cp.CustomerID)
	}
	r.byCustomer[cp.CustomerID] = append(r.byCustomer[cp.CustomerID], cp)
	r.index[cp.ID] = cp
	return nil
}

// Update swaps the stored entry in place; unknown IDs are ignored.
func (r *CommunicationRepository) Update(c *model.Communication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.index[c.ID]
	if !ok {
		return nil
	}
	cp := copyComm(c)
	list := r.byCustomer[old.CustomerID]
	for i, item := range list {
		if item.ID == c.ID {
			list[i] = cp
			break
		}
	}
	r.index[c.ID] = cp
	return nil
}

func (r *CommunicationRepository) GetByID(id string) (*model.Communication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.index[id]
	if !ok {
		return nil, nil // not found
	}
	return copyComm(c), nil
}

func (r *CommunicationRepository) ListByCustomer(customerID string) ([]model.Communication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comms := []model.Communication{}
	for _, c := range r.byCustomer[customerID] {
		comms = append(comms, *copyComm(c))
	}
	return comms, nil
}

func (r *CommunicationRepository) ListAll() ([]model.Communication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comms := []model.Communication{}
	for _, customerID := range r.custOrder {
		for _, c := range r.byCustomer[customerID] {
			comms = append(comms, *copyComm(c))
		}
	}
	return comms, nil
}

// DeleteByCustomer drops the customer's whole communication log.
func (r *CommunicationRepository) DeleteByCustomer(customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.byCustomer[customerID] {
		delete(r.index, c.ID)
	}
	delete(r.byCustomer, customerID)
	for i, id := range r.custOrder {
		if id == customerID {
			r.custOrder = append(r.custOrder[:i], r.custOrder[i+1:]...)
			break
		}
	}
	return nil
}
