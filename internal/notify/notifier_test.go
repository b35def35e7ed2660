package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/unclebandit/crmdesk-backend/internal/model"
)

func TestRenderMessage(t *testing.T) {
	n := Notification{
		CustomerName: "John Smith",
		Description:  "Follow up on project proposal",
		Kind:         KindOverdue,
		Priority:     model.PriorityHigh,
		DueDate:      time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
	}

	msg := RenderMessage(n)
	if !strings.HasPrefix(msg, "OVERDUE TASK ALERT") {
		t.Errorf("expected overdue prefix, got %q", msg)
	}
	if !strings.Contains(msg, "John Smith") || !strings.Contains(msg, "2026-09-01 09:30") {
		t.Errorf("message missing fields: %q", msg)
	}
}

func TestRenderTemplateUnknownPlaceholder(t *testing.T) {
	got := RenderTemplate("hi {customer}", map[string]string{"customer": ""})
	if got != "hi <unknown>" {
		t.Errorf("empty values should render as <unknown>, got %q", got)
	}
}
