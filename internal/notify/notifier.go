package notify

import (
	"log"
	"strings"
	"time"

	"github.com/unclebandit/crmdesk-backend/internal/model"
)

const (
	KindReminder = "reminder"
	KindOverdue  = "overdue"
)

// Notification is one fired alert, kept for the UI feed.
type Notification struct {
	TaskID       string         `json:"task_id"`
	CustomerID   string         `json:"customer_id"`
	CustomerName string         `json:"customer_name"`
	Description  string         `json:"description"`
	Kind         string         `json:"kind"` // reminder, overdue
	Priority     model.Priority `json:"priority"`
	DueDate      time.Time      `json:"due_date"`
	SentAt       time.Time      `json:"sent_at"`
}

// Notifier is an interface so the delivery channel can change
// (console today, desktop toast or email later)
type Notifier interface {
	Notify(n Notification) error
}

// ConsoleNotifier logs alerts to the process log.
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

var templates = map[string]string{
	KindReminder: "TASK REMINDER: {description} | customer: {customer} | due: {due} | priority: {priority}",
	KindOverdue:  "OVERDUE TASK ALERT: {description} | customer: {customer} | due: {due} | priority: {priority}",
}

func (c *ConsoleNotifier) Notify(n Notification) error {
	log.Println(RenderMessage(n))
	return nil
}

// RenderMessage fills the alert template for the notification kind.
func RenderMessage(n Notification) string {
	tmpl, ok := templates[n.Kind]
	if !ok {
		tmpl = templates[KindReminder]
	}
	return RenderTemplate(tmpl, map[string]string{
		"description": n.Description,
		"customer":    n.CustomerName,
		"due":         n.DueDate.Format("2006-01-02 15:04"),
		"priority":    string(n.Priority),
	})
}

func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		if v == "" {
			v = "<unknown>"
		}
		result = strings.ReplaceAll(result, "{"+k+"}", v)
	}
	return result
}
