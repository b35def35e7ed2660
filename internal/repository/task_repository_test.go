package repository

import (
	"testing"
	"time"

	"github.com/unclebandit/crmdesk-backend/internal/model"
)

func TestTaskRepositoryCRUD(t *testing.T) {
	repo := NewTaskRepository()
	due := time.Now().Add(48 * time.Hour)

	task := model.NewTask("cust-1", "call back", due)
	if err := repo.Create(task); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByID(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Description != "call back" {
		t.Fatalf("expected stored task, got %+v", got)
	}

	got.Completed = true
	if err := repo.Update(got); err != nil {
		t.Fatal(err)
	}

	pending, err := repo.ListPending()
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Errorf("completed task should not be pending, got %d", len(pending))
	}
}

func TestTaskRepositoryUpdateUnknownIDIsIgnored(t *testing.T) {
	repo := NewTaskRepository()

	ghost := model.NewTask("cust-1", "ghost", time.Now())
	if err := repo.Update(ghost); err != nil {
		t.Fatal(err)
	}

	all, _ := repo.ListAll()
	if len(all) != 0 {
		t.Errorf("update of unknown ID must not insert, got %d tasks", len(all))
	}
}

func TestTaskRepositoryKeepsInsertionOrder(t *testing.T) {
	repo := NewTaskRepository()
	due := time.Now().Add(time.Hour)

	first := model.NewTask("cust-1", "first", due)
	second := model.NewTask("cust-1", "second", due)
	repo.Create(first)
	repo.Create(second)

	tasks, _ := repo.ListByCustomer("cust-1")
	if len(tasks) != 2 || tasks[0].Description != "first" || tasks[1].Description != "second" {
		t.Errorf("expected insertion order, got %+v", tasks)
	}
}

func TestTaskRepositoryDeleteByCustomer(t *testing.T) {
	repo := NewTaskRepository()
	due := time.Now().Add(time.Hour)

	mine := model.NewTask("cust-1", "mine", due)
	theirs := model.NewTask("cust-2", "theirs", due)
	repo.Create(mine)
	repo.Create(theirs)

	if err := repo.DeleteByCustomer("cust-1"); err != nil {
		t.Fatal(err)
	}

	if got, _ := repo.GetByID(mine.ID); got != nil {
		t.Error("deleted customer's task still resolvable by ID")
	}
	all, _ := repo.ListAll()
	if len(all) != 1 || all[0].ID != theirs.ID {
		t.Errorf("expected only the other customer's task, got %+v", all)
	}
}

func TestCommunicationRepositoryCopiesTags(t *testing.T) {
	repo := NewCommunicationRepository()

	comm, err := model.NewCommunication("cust-1", model.CommTypeEmail, "brochure")
	if err != nil {
		t.Fatal(err)
	}
	comm.AddTag("marketing")
	repo.Create(comm)

	got, _ := repo.GetByID(comm.ID)
	got.Tags[0] = "mutated"

	fresh, _ := repo.GetByID(comm.ID)
	if fresh.Tags[0] != "marketing" {
		t.Error("store handed out its own tags slice")
	}
}

func TestCustomerRepositoryDelete(t *testing.T) {
	repo := NewCustomerRepository()

	c := model.NewCustomer("John Smith", "john@example.com", "555-1234", "Client", "")
	repo.Create(c)

	if err := repo.Delete(c.ID); err != nil {
		t.Fatal(err)
	}
	if got, _ := repo.GetByID(c.ID); got != nil {
		t.Error("customer still present after delete")
	}
	all, _ := repo.ListAll()
	if len(all) != 0 {
		t.Errorf("expected empty listing, got %d", len(all))
	}
}
