package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/unclebandit/crmdesk-backend/internal/events"
	"github.com/unclebandit/crmdesk-backend/internal/model"
	"github.com/unclebandit/crmdesk-backend/internal/notify"
)

// TaskSource defines the methods the scheduler needs
type TaskSource interface {
	ListPending() ([]model.Task, error)
}

type CustomerSource interface {
	GetByID(id string) (*model.Customer, error)
}

// Scheduler is the reminder poller: a periodic sweep over pending tasks
// that fires reminder and overdue alerts, at most once each per task.
type Scheduler struct {
	Tasks     TaskSource
	Customers CustomerSource
	Notifier  notify.Notifier
	Bus       events.Bus
	Interval  time.Duration

	// Enabled is read on every sweep so the notifications toggle takes
	// effect without a restart.
	Enabled func() bool

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time

	mu        sync.Mutex
	notified  map[string]bool // task ID, and "overdue-"+ID for overdue alerts
	recent    []notify.Notification
	maxRecent int
	stop      chan struct{}
}

func New(tasks TaskSource, customers CustomerSource, notifier notify.Notifier, bus events.Bus, interval time.Duration, enabled func() bool, maxRecent int) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	if maxRecent <= 0 {
		maxRecent = 50
	}
	s := &Scheduler{
		Tasks:     tasks,
		Customers: customers,
		Notifier:  notifier,
		Bus:       bus,
		Interval:  interval,
		Enabled:   enabled,
		Now:       time.Now,
		notified:  make(map[string]bool),
		maxRecent: maxRecent,
		stop:      make(chan struct{}),
	}

	// An edited task may notify again.
	if bus != nil {
		bus.Subscribe(events.TopicTaskUpdated, func(payload any) {
			if t, ok := payload.(model.Task); ok {
				s.ClearNotified(t.ID)
			}
		})
	}

	return s
}

// Start runs the sweep loop until Stop is called. The first sweep happens
// immediately.
func (s *Scheduler) Start() {
	go func() {
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		log.Println("task scheduler started")
		s.Sweep()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stop:
				log.Println("task scheduler stopped")
				return
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	close(s.stop)
}

// Sweep checks every pending task once. A reminder fires when the reminder
// time has passed but the due date has not; an overdue alert fires once the
// due date has passed. Each fires at most once per task.
func (s *Scheduler) Sweep() {
	if s.Enabled != nil && !s.Enabled() {
		return
	}

	now := s.Now()
	pending, err := s.Tasks.ListPending()
	if err != nil {
		log.Println("scheduler: failed to list pending tasks:", err)
		return
	}

	for _, task := range pending {
		if !task.ReminderTime.IsZero() &&
			task.ReminderTime.Before(now) &&
			task.DueDate.After(now) &&
			!s.alreadyNotified(task.ID) {
			s.fire(task, notify.KindReminder, now)
			s.markNotified(task.ID)
		}

		if task.DueDate.Before(now) && !s.alreadyNotified("overdue-"+task.ID) {
			s.fire(task, notify.KindOverdue, now)
			s.markNotified("overdue-" + task.ID)
		}
	}
}

func (s *Scheduler) fire(task model.Task, kind string, now time.Time) {
	customerName := "Unknown"
	customer, err := s.Customers.GetByID(task.CustomerID)
	if err != nil {
		log.Println("scheduler: failed to fetch customer:", err)
	}
	if customer != nil {
		customerName = customer.Name
	}

	n := notify.Notification{
		TaskID:       task.ID,
		CustomerID:   task.CustomerID,
		CustomerName: customerName,
		Description:  task.Description,
		Kind:         kind,
		Priority:     task.Priority,
		DueDate:      task.DueDate,
		SentAt:       now,
	}

	if s.Notifier != nil {
		if err := s.Notifier.Notify(n); err != nil {
			log.Println("scheduler: notifier failed:", err)
		}
	}
	if s.Bus != nil {
		s.Bus.Publish(events.TopicReminderFired, n)
	}

	s.mu.Lock()
	s.recent = append(s.recent, n)
	if len(s.recent) > s.maxRecent {
		s.recent = s.recent[len(s.recent)-s.maxRecent:]
	}
	s.mu.Unlock()
}

func (s *Scheduler) alreadyNotified(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notified[key]
}

func (s *Scheduler) markNotified(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notified[key] = true
}

// ClearNotified resets both alert kinds for a task so it can notify again.
func (s *Scheduler) ClearNotified(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notified, taskID)
	delete(s.notified, "overdue-"+taskID)
}

// Recent returns the latest fired notifications, oldest first.
func (s *Scheduler) Recent() []notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notify.Notification, len(s.recent))
	copy(out, s.recent)
	return out
}
