// internal/controller/communication_controller.go
package controller

import (
    "encoding/json"
    "net/http"

    "github.com/go-chi/chi/v5"

    "github.com/unclebandit/crmdesk-backend/internal/service"
)

type CommunicationController struct {
    CRMService *service.CRMService
}

func (c *CommunicationController) LogCommunication(w http.ResponseWriter, r *http.Request) {
    var body struct {
        CustomerID string   `json:"customer_id"`
        Type       string   `json:"type"`
        Notes      string   `json:"notes"`
        Tags       []string `json:"tags"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    comm, err := c.CRMService.LogCommunication(body.CustomerID, body.Type, body.Notes)
    if err != nil {
        writeError(w, err)
        return
    }

    for _, tag := range body.Tags {
        comm, err = c.CRMService.AddTag(comm.ID, tag)
        if err != nil {
            writeError(w, err)
            return
        }
    }

    writeJSON(w, http.StatusCreated, comm)
}

// ListCommunications filters by `customer_id`, `type` and `tag` query
// params, all optional.
func (c *CommunicationController) ListCommunications(w http.ResponseWriter, r *http.Request) {
    customerID := r.URL.Query().Get("customer_id")
    typeFilter := r.URL.Query().Get("type")
    tagSearch := r.URL.Query().Get("tag")

    comms, err := c.CRMService.SearchCommunications(customerID, typeFilter, tagSearch)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data":  comms,
        "count": len(comms),
    })
}

// UpdateCommunication merges the optional fields into the stored entry;
// omitted fields keep their values.
func (c *CommunicationController) UpdateCommunication(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    var body struct {
        Type  *string   `json:"type"`
        Notes *string   `json:"notes"`
        Tags  *[]string `json:"tags"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    comm, err := c.CRMService.GetCommunication(id)
    if err != nil {
        writeError(w, err)
        return
    }

    if body.Type != nil {
        comm.Type = *body.Type
    }
    if body.Notes != nil {
        comm.Notes = *body.Notes
    }
    if body.Tags != nil {
        comm.Tags = *body.Tags
    }

    if err := c.CRMService.UpdateCommunication(comm); err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, comm)
}

func (c *CommunicationController) AddTag(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    var body struct {
        Tag string `json:"tag"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    comm, err := c.CRMService.AddTag(id, body.Tag)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, comm)
}

func (c *CommunicationController) RemoveTag(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    tag := chi.URLParam(r, "tag")

    comm, err := c.CRMService.RemoveTag(id, tag)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, comm)
}
