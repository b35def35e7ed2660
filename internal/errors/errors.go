// internal/errors/errors.go
package appErrors

import "fmt"

// ErrNotFound is a sentinel error for missing entities
type ErrNotFound struct {
    Entity string
    ID     string
}

func (e *ErrNotFound) Error() string {
    return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

// Helper constructors
func NewCustomerNotFound(id string) error {
    return &ErrNotFound{Entity: "customer", ID: id}
}

func NewTaskNotFound(id string) error {
    return &ErrNotFound{Entity: "task", ID: id}
}

func NewCommunicationNotFound(id string) error {
    return &ErrNotFound{Entity: "communication", ID: id}
}

// ErrValidation marks bad input so handlers can answer 400 instead of 500
type ErrValidation struct {
    Reason string
}

func (e *ErrValidation) Error() string {
    return e.Reason
}

func NewValidation(format string, args ...any) error {
    return &ErrValidation{Reason: fmt.Sprintf(format, args...)}
}
