package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/unclebandit/crmdesk-backend/internal/model"
)

func TestCreateTaskDerivesReminder(t *testing.T) {
	r, svc := newTestRouter()

	c, _ := svc.CreateCustomer("Jane Doe", "jane@example.com", "", "Prospect", "")
	due := time.Now().Add(96 * time.Hour).UTC().Truncate(time.Second)

	w := doJSON(t, r, "POST", "/tasks", map[string]any{
		"customer_id": c.ID,
		"description": "Schedule product demo",
		"due_date":    due.Format(time.RFC3339),
		"priority":    "high",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var task model.Task
	json.Unmarshal(w.Body.Bytes(), &task)
	if task.Priority != model.PriorityHigh {
		t.Errorf("expected high priority, got %s", task.Priority)
	}
	if want := due.Add(-48 * time.Hour); !task.ReminderTime.Equal(want) {
		t.Errorf("expected reminder %v, got %v", want, task.ReminderTime)
	}
}

func TestCreateTaskRejectsBadInput(t *testing.T) {
	r, svc := newTestRouter()
	c, _ := svc.CreateCustomer("Jane Doe", "jane@example.com", "", "Prospect", "")

	w := doJSON(t, r, "POST", "/tasks", map[string]any{
		"customer_id": c.ID,
		"description": "no due date",
		"due_date":    "tomorrow",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad due_date, got %d", w.Code)
	}

	w = doJSON(t, r, "POST", "/tasks", map[string]any{
		"customer_id": "missing",
		"description": "orphan",
		"due_date":    time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown customer, got %d", w.Code)
	}
}

func TestUpdateTaskRederivesReminderOnPriorityChange(t *testing.T) {
	r, svc := newTestRouter()

	c, _ := svc.CreateCustomer("Jane Doe", "jane@example.com", "", "Prospect", "")
	due := time.Now().Add(96 * time.Hour).UTC().Truncate(time.Second)
	task, _ := svc.CreateTask(c.ID, "demo", due, model.PriorityMedium)

	w := doJSON(t, r, "PUT", "/tasks/"+task.ID, map[string]any{"priority": "low"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated model.Task
	json.Unmarshal(w.Body.Bytes(), &updated)
	if want := due.Add(-12 * time.Hour); !updated.ReminderTime.Equal(want) {
		t.Errorf("expected reminder re-derived to %v, got %v", want, updated.ReminderTime)
	}
}

func TestUpdateTaskExplicitReminderWins(t *testing.T) {
	r, svc := newTestRouter()

	c, _ := svc.CreateCustomer("Jane Doe", "jane@example.com", "", "Prospect", "")
	due := time.Now().Add(96 * time.Hour).UTC().Truncate(time.Second)
	task, _ := svc.CreateTask(c.ID, "demo", due, model.PriorityMedium)

	reminder := due.Add(-6 * time.Hour)
	w := doJSON(t, r, "PUT", "/tasks/"+task.ID, map[string]any{
		"priority":      "high",
		"reminder_time": reminder.Format(time.RFC3339),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var updated model.Task
	json.Unmarshal(w.Body.Bytes(), &updated)
	if !updated.ReminderTime.Equal(reminder) {
		t.Errorf("explicit reminder_time should win, got %v", updated.ReminderTime)
	}
}

func TestCompleteTaskEndpoint(t *testing.T) {
	r, svc := newTestRouter()

	c, _ := svc.CreateCustomer("Jane Doe", "jane@example.com", "", "Prospect", "")
	task, _ := svc.CreateTask(c.ID, "demo", time.Now().Add(time.Hour), model.PriorityMedium)

	w := doJSON(t, r, "POST", "/tasks/"+task.ID+"/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var done model.Task
	json.Unmarshal(w.Body.Bytes(), &done)
	if !done.Completed {
		t.Error("expected task marked completed")
	}

	w = doJSON(t, r, "GET", "/tasks", nil)
	var resp struct {
		Count int `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Count != 0 {
		t.Errorf("default listing should hide completed tasks, got %d", resp.Count)
	}
}

func TestCompleteTaskNotFound(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "POST", "/tasks/nope/complete", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
