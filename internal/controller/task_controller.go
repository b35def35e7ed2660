// internal/controller/task_controller.go
package controller

import (
    "encoding/json"
    "net/http"
    "time"

    "github.com/go-chi/chi/v5"

    "github.com/unclebandit/crmdesk-backend/internal/model"
    "github.com/unclebandit/crmdesk-backend/internal/service"
)

type TaskController struct {
    CRMService *service.CRMService
}

func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
    var body struct {
        CustomerID  string `json:"customer_id"`
        Description string `json:"description"`
        DueDate     string `json:"due_date"`
        Priority    string `json:"priority"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    dueDate, err := time.Parse(time.RFC3339, body.DueDate)
    if err != nil {
        http.Error(w, "invalid due_date, want RFC3339", http.StatusBadRequest)
        return
    }

    priority, err := model.ParsePriority(body.Priority)
    if err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    task, err := c.CRMService.CreateTask(body.CustomerID, body.Description, dueDate, priority)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusCreated, task)
}

// ListTasks filters by `customer_id`; completed tasks are hidden unless
// `include_completed=true`.
func (c *TaskController) ListTasks(w http.ResponseWriter, r *http.Request) {
    customerID := r.URL.Query().Get("customer_id")
    includeCompleted := r.URL.Query().Get("include_completed") == "true"

    tasks, err := c.CRMService.SearchTasks(customerID, includeCompleted)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data":  tasks,
        "count": len(tasks),
    })
}

func (c *TaskController) GetTask(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    task, err := c.CRMService.GetTask(id)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, task)
}

// UpdateTask merges the optional fields into the stored task. Changing the
// due date or priority re-derives the reminder offset unless an explicit
// reminder_time comes along with it.
func (c *TaskController) UpdateTask(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    var body struct {
        Description  *string `json:"description"`
        DueDate      *string `json:"due_date"`
        Priority     *string `json:"priority"`
        Completed    *bool   `json:"completed"`
        ReminderTime *string `json:"reminder_time"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    task, err := c.CRMService.GetTask(id)
    if err != nil {
        writeError(w, err)
        return
    }

    if body.Description != nil {
        task.Description = *body.Description
    }
    if body.DueDate != nil {
        dueDate, err := time.Parse(time.RFC3339, *body.DueDate)
        if err != nil {
            http.Error(w, "invalid due_date, want RFC3339", http.StatusBadRequest)
            return
        }
        task.DueDate = dueDate
    }
    if body.Priority != nil {
        priority, err := model.ParsePriority(*body.Priority)
        if err != nil {
            http.Error(w, err.Error(), http.StatusBadRequest)
            return
        }
        task.Priority = priority
    }
    if body.Completed != nil {
        task.Completed = *body.Completed
    }

    switch {
    case body.ReminderTime != nil:
        reminder, err := time.Parse(time.RFC3339, *body.ReminderTime)
        if err != nil {
            http.Error(w, "invalid reminder_time, want RFC3339", http.StatusBadRequest)
            return
        }
        task.ReminderTime = reminder
    case body.DueDate != nil || body.Priority != nil:
        task.ReminderTime = task.DueDate.Add(-task.Priority.ReminderOffset())
    }

    if err := c.CRMService.UpdateTask(task); err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, task)
}

func (c *TaskController) CompleteTask(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    task, err := c.CRMService.CompleteTask(id)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, task)
}
