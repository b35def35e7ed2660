// internal/model/task.go
package model

import (
    "fmt"
    "time"

    "github.com/google/uuid"
)

type Priority string

const (
    PriorityLow    Priority = "low"
    PriorityMedium Priority = "medium"
    PriorityHigh   Priority = "high"
)

// ParsePriority accepts the wire form of a priority. Empty means medium.
func ParsePriority(s string) (Priority, error) {
    switch Priority(s) {
    case PriorityLow, PriorityMedium, PriorityHigh:
        return Priority(s), nil
    case "":
        return PriorityMedium, nil
    }
    return "", fmt.Errorf("invalid priority: %q", s)
}

// ReminderOffset is how long before the due date the reminder should fire.
// Higher priority tasks remind earlier.
func (p Priority) ReminderOffset() time.Duration {
    switch p {
    case PriorityHigh:
        return 48 * time.Hour
    case PriorityLow:
        return 12 * time.Hour
    }
    return 24 * time.Hour
}

type Task struct {
    ID           string    `json:"id"`
    CustomerID   string    `json:"customer_id"`
    Description  string    `json:"description"`
    DueDate      time.Time `json:"due_date"`
    Completed    bool      `json:"completed"`
    Priority     Priority  `json:"priority"`
    ReminderTime time.Time `json:"reminder_time"`
}

// NewTask creates a medium-priority task with the default 24h reminder.
func NewTask(customerID, description string, dueDate time.Time) *Task {
    return NewTaskWithPriority(customerID, description, dueDate, PriorityMedium)
}

// NewTaskWithPriority derives the reminder time from the priority.
func NewTaskWithPriority(customerID, description string, dueDate time.Time, priority Priority) *Task {
    return &Task{
        ID:           uuid.NewString(),
        CustomerID:   customerID,
        Description:  description,
        DueDate:      dueDate,
        Completed:    false,
        Priority:     priority,
        ReminderTime: dueDate.Add(-priority.ReminderOffset()),
    }
}
