package repository

import (
	"sync"

	"github.com/unclebandit/crmdesk-backend/internal/model"
)

// TaskRepositoryInterface defines methods used by the service and the
// reminder scheduler
type TaskRepositoryInterface interface {
	Create(t *model.Task) error
	Update(t *model.Task) error
	GetByID(id string) (*model.Task, error)
	ListByCustomer(customerID string) ([]model.Task, error)
	ListAll() ([]model.Task, error)
	ListPending() ([]model.Task, error)
	DeleteByCustomer(customerID string) error
}

// TaskRepository keeps tasks grouped per customer, with a side index for
// ID lookups.
type TaskRepository struct {
	mu         sync.RWMutex
	byCustomer map[string][]*model.Task
	custOrder  []string
	index      map[string]*model.Task // task ID -> task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		byCustomer: make(map[string][]*model.Task),
		index:      make(map[string]*model.Task),
	}
}

func (r *TaskRepository) Create(t *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *t
	if _, ok := r.byCustomer[cp.CustomerID]; !ok {
		r.custOrder = append(r.custOrder, cp.CustomerID)
	}
	r.byCustomer[cp.CustomerID] = append(r.byCustomer[cp.CustomerID], &cp)
	r.index[cp.ID] = &cp
	return nil
}

// Update swaps the stored task in place; unknown IDs are ignored.
func (r *TaskRepository) Update(t *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.index[t.ID]
	if !ok {
		return nil
	}
	cp := *t
	list := r.byCustomer[old.CustomerID]
	for i, item := range list {
		if item.ID == t.ID {
			list[i] = &cp
			break
		}
	}
	r.index[t.ID] = &cp
	return nil
}

func (r *TaskRepository) GetByID(id string) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.index[id]
	if !ok {
		return nil, nil // not found
	}
	cp := *t
	return &cp, nil
}

func (r *TaskRepository) ListByCustomer(customerID string) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := []model.Task{}
	for _, t := range r.byCustomer[customerID] {
		tasks = append(tasks, *t)
	}
	return tasks, nil
}

func (r *TaskRepository) ListAll() ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := []model.Task{}
	for _, customerID := range r.custOrder {
		for _, t := range r.byCustomer[customerID] {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

// ListPending returns every task not yet completed, across all customers.
func (r *TaskRepository) ListPending() ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := []model.Task{}
	for _, customerID := range r.custOrder {
		for _, t := range r.byCustomer[customerID] {
			if !t.Completed {
				tasks = append(tasks, *t)
			}
		}
	}
	return tasks, nil
}

// DeleteByCustomer drops every task belonging to the customer. Used by the
// cascade on customer deletion.
func (r *TaskRepository) DeleteByCustomer(customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.byCustomer[customerID] {
		delete(r.index, t.ID)
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
