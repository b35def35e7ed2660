package service_test

import (
	"errors"
	"testing"
	"time"

	appErrors "github.com/unclebandit/crmdesk-backend/internal/errors"
	"github.com/unclebandit/crmdesk-backend/internal/events"
	"github.com/unclebandit/crmdesk-backend/internal/model"
	"github.com/unclebandit/crmdesk-backend/internal/repository"
	"github.com/unclebandit/crmdesk-backend/internal/service"
)

func newTestService() *service.CRMService {
	return &service.CRMService{
		CustomerRepo: repository.NewCustomerRepository(),
		TaskRepo:     repository.NewTaskRepository(),
		CommRepo:     repository.NewCommunicationRepository(),
		Bus:          events.NewInMemoryBus(),
		Settings:     service.NewSettings(true),
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	svc := newTestService()

	if _, err := svc.CreateCustomer("  ", "a@b.com", "", "Client", ""); err == nil {
		t.Error("expected validation error for blank name")
	}

	c, err := svc.CreateCustomer("John Smith", "john@example.com", "555-1234", "Client", "notes")
	if err != nil {
		t.Fatal(err)
	}
	if c.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestSearchCustomers(t *testing.T) {
	svc := newTestService()

	smith, _ := svc.CreateCustomer("John Smith", "john.smith@example.com", "555-123-4567", "Client", "enterprise project")
	doe, _ := svc.CreateCustomer("Jane Doe", "jane.doe@example.com", "555-987-6543", "Prospect", "tech conference")
	svc.LogCommunication(smith.ID, model.CommTypePhone, "intro call")

	// Substring over any field, case-insensitive.
	got, err := svc.SearchCustomers("SMITH", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != smith.ID {
		t.Errorf("term search: expected Smith only, got %+v", got)
	}

	// Notes participate in the match.
	got, _ = svc.SearchCustomers("conference", service.FilterAllCustomers)
	if len(got) != 1 || got[0].ID != doe.ID {
		t.Errorf("notes search: expected Doe only, got %+v", got)
	}

	// Role filter.
	got, _ = svc.SearchCustomers("", "Prospect")
	if len(got) != 1 || got[0].ID != doe.ID {
		t.Errorf("role filter: expected Doe only, got %+v", got)
	}

	// Communication presence filters.
	got, _ = svc.SearchCustomers("", service.FilterWithComms)
	if len(got) != 1 || got[0].ID != smith.ID {
		t.Errorf("with-comms filter: expected Smith only, got %+v", got)
	}
	got, _ = svc.SearchCustomers("", service.FilterNoComms)
	if len(got) != 1 || got[0].ID != doe.ID {
		t.Errorf("no-comms filter: expected Doe only, got %+v", got)
	}
}

func TestDeleteCustomerCascades(t *testing.T) {
	svc := newTestService()

	c, _ := svc.CreateCustomer("John Smith", "john@example.com", "555-1234", "Client", "")
	svc.LogCommunication(c.ID, model.CommTypeEmail, "brochure")
	svc.CreateTask(c.ID, "follow up", time.Now().Add(48*time.Hour), model.PriorityMedium)

	if err := svc.DeleteCustomer(c.ID); err != nil {
		t.Fatal(err)
	}

	var notFound *appErrors.ErrNotFound
	if _, err := svc.GetCustomer(c.ID); !errors.As(err, &notFound) {
		t.Errorf("expected not-found after delete, got %v", err)
	}

	tasks, _ := svc.SearchTasks(c.ID, true)
	if len(tasks) != 0 {
		t.Errorf("expected cascade to drop tasks, got %d", len(tasks))
	}
	comms, _ := svc.SearchCommunications(c.ID, "", "")
	if len(comms) != 0 {
		t.Errorf("expected cascade to drop communications, got %d", len(comms))
	}
}

func TestLogCommunicationValidation(t *testing.T) {
	svc := newTestService()
	c, _ := svc.CreateCustomer("Jane Doe", "jane@example.com", "", "Prospect", "")

	var validation *appErrors.ErrValidation
	if _, err := svc.LogCommunication("missing", model.CommTypePhone, "x"); !errors.As(err, &validation) {
		t.Errorf("expected validation error for unknown customer, got %v", err)
	}
	if _, err := svc.LogCommunication(c.ID, "fax", "x"); !errors.As(err, &validation) {
		t.Errorf("expected validation error for unknown type, got %v", err)
	}

	comm, err := svc.LogCommunication(c.ID, model.CommTypeMeeting, "quarterly review")
	if err != nil {
		t.Fatal(err)
	}
	if comm.Timestamp.IsZero() {
		t.Error("expected timestamp to be set at creation")
	}
}

func TestSearchCommunicationsByTypeAndTag(t *testing.T) {
	svc := newTestService()
	c, _ := svc.CreateCustomer("John Smith", "john@example.com", "", "Client", "")

	call, _ := svc.LogCommunication(c.ID, model.CommTypePhone, "requirements call")
	svc.AddTag(call.ID, "Project")
	mail, _ := svc.LogCommunication(c.ID, model.CommTypeEmail, "brochure")
	svc.AddTag(mail.ID, "marketing")

	got, err := svc.SearchCommunications("", model.CommTypePhone, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != call.ID {
		t.Errorf("type filter: expected the call, got %+v", got)
	}

	got, _ = svc.SearchCommunications(c.ID, service.FilterAllTypes, "proj")
	if len(got) != 1 || got[0].ID != call.ID {
		t.Errorf("tag substring should match case-insensitively, got %+v", got)
	}

	got, _ = svc.SearchCommunications("", "", "")
	if len(got) != 2 {
		t.Errorf("unfiltered search should return all, got %d", len(got))
	}
}

func TestRemoveTag(t *testing.T) {
	svc := newTestService()
	c, _ := svc.CreateCustomer("John Smith", "john@example.com", "", "Client", "")

	comm, _ := svc.LogCommunication(c.ID, model.CommTypePhone, "call")
	svc.AddTag(comm.ID, "a")
	svc.AddTag(comm.ID, "b")

	got, err := svc.RemoveTag(comm.ID, "a")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "b" {
		t.Errorf("expected only tag b, got %v", got.Tags)
	}
}

func TestCreateTaskValidatesCustomer(t *testing.T) {
	svc := newTestService()

	var validation *appErrors.ErrValidation
	_, err := svc.CreateTask("missing", "follow up", time.Now().Add(time.Hour), model.PriorityHigh)
	if !errors.As(err, &validation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCompleteTaskAndSearch(t *testing.T) {
	svc := newTestService()
	c, _ := svc.CreateCustomer("Jane Doe", "jane@example.com", "", "Prospect", "")

	due := time.Now().Add(48 * time.Hour)
	open, _ := svc.CreateTask(c.ID, "demo", due, model.PriorityHigh)
	done, _ := svc.CreateTask(c.ID, "proposal", due, model.PriorityLow)

	if _, err := svc.CompleteTask(done.ID); err != nil {
		t.Fatal(err)
	}

	got, _ := svc.SearchTasks(c.ID, false)
	if len(got) != 1 || got[0].ID != open.ID {
		t.Errorf("default search should hide completed, got %+v", got)
	}

	got, _ = svc.SearchTasks(c.ID, true)
	if len(got) != 2 {
		t.Errorf("include_completed should return both, got %d", len(got))
	}

	pending, _ := svc.PendingTasks()
	if len(pending) != 1 {
		t.Errorf("expected one pending task, got %d", len(pending))
	}
}

func TestUpdateTaskPublishesEvent(t *testing.T) {
	svc := newTestService()
	c, _ := svc.CreateCustomer("Jane Doe", "jane@example.com", "", "Prospect", "")
	task, _ := svc.CreateTask(c.ID, "demo", time.Now().Add(time.Hour), model.PriorityMedium)

	var updated []string
	svc.Bus.Subscribe(events.TopicTaskUpdated, func(payload any) {
		if upd, ok := payload.(model.Task); ok {
			updated = append(updated, upd.ID)
		}
	})

	task.Description = "demo (rescheduled)"
	if err := svc.UpdateTask(task); err != nil {
		t.Fatal(err)
	}

	if len(updated) != 1 || updated[0] != task.ID {
		t.Errorf("expected task_updated event for %s, got %v", task.ID, updated)
	}
}
