// internal/controller/customer_controller.go
package controller

import (
    "encoding/json"
    "net/http"

    "github.com/go-chi/chi/v5"

    "github.com/unclebandit/crmdesk-backend/internal/model"
    "github.com/unclebandit/crmdesk-backend/internal/service"
)

type CustomerController struct {
    CRMService *service.CRMService
}

func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Name  string `json:"name"`
        Email string `json:"email"`
        Phone string `json:"phone"`
        Role  string `json:"role"`
        Notes string `json:"notes"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    customer, err := c.CRMService.CreateCustomer(body.Name, body.Email, body.Phone, body.Role, body.Notes)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusCreated, customer)
}

// ListCustomers applies the `q` search term and the `filter` dropdown
// value. Without params it lists everyone.
func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
    term := r.URL.Query().Get("q")
    filter := r.URL.Query().Get("filter")

    customers, err := c.CRMService.SearchCustomers(term, filter)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data":  customers,
        "count": len(customers),
    })
}

func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    customer, err := c.CRMService.GetCustomer(id)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, customer)
}

func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    var body struct {
        Name  string `json:"name"`
        Email string `json:"email"`
        Phone string `json:"phone"`
        Role  string `json:"role"`
        Notes string `json:"notes"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    customer := &model.Customer{
        ID:    id,
        Name:  body.Name,
        Email: body.Email,
        Phone: body.Phone,
        Role:  body.Role,
        Notes: body.Notes,
    }
    if err := c.CRMService.UpdateCustomer(customer); err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, customer)
}

func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    if err := c.CRMService.DeleteCustomer(id); err != nil {
        writeError(w, err)
        return
    }

    w.WriteHeader(http.StatusNoContent)
}
