// internal/model/customer.go
package model

import "github.com/google/uuid"

type Customer struct {
    ID    string `json:"id"`
    Name  string `json:"name"`
    Email string `json:"email"`
    Phone string `json:"phone"`
    Role  string `json:"role"` // free text: Client, Prospect, Partner, ...
    Notes string `json:"notes"`
}

// NewCustomer assigns a fresh ID. Notes may be empty.
func NewCustomer(name, email, phone, role, notes string) *Customer {
    return &Customer{
        ID:    uuid.NewString(),
        Name:  name,
        Email: email,
        Phone: phone,
        Role:  role,
        Notes: notes,
    }
}
