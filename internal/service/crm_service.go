// internal/service/crm_service.go
package service

import (
    "strings"
    "time"

    appErrors "github.com/unclebandit/crmdesk-backend/internal/errors"
    "github.com/unclebandit/crmdesk-backend/internal/events"
    "github.com/unclebandit/crmdesk-backend/internal/model"
    "github.com/unclebandit/crmdesk-backend/internal/repository"
)

// Customer filter values accepted beyond plain role names.
const (
    FilterAllCustomers = "All Customers"
    FilterAllRoles     = "All Roles"
    FilterWithComms    = "With Communications"
    FilterNoComms      = "No Communications"

    FilterAllTypes = "All Types"
)

type CRMService struct {
    CustomerRepo repository.CustomerRepositoryInterface
    TaskRepo     repository.TaskRepositoryInterface
    CommRepo     repository.CommunicationRepositoryInterface
    Bus          events.Bus
    Settings     *Settings

    // Now is injectable for report tests; defaults to time.Now.
    Now func() time.Time
}

func (s *CRMService) now() time.Time {
    if s.Now != nil {
        return s.Now()
    }
    return time.Now()
}

func (s *CRMService) publish(topic string, payload any) {
    if s.Bus != nil {
        s.Bus.Publish(topic, payload)
    }
}

// ====================== Customer management ======================

func (s *CRMService) CreateCustomer(name, email, phone, role, notes string) (*model.Customer, error) {
    if strings.TrimSpace(name) == "" {
        return nil, appErrors.NewValidation("customer name cannot be empty")
    }

    c := model.NewCustomer(name, email, phone, role, notes)
    if err := s.CustomerRepo.Create(c); err != nil {
        return nil, err
    }

    s.publish(events.TopicCustomerAdded, *c)
    return c, nil
}

func (s *CRMService) UpdateCustomer(c *model.Customer) error {
    existing, err := s.CustomerRepo.GetByID(c.ID)
    if err != nil {
        return err
    }
    if existing == nil {
        return appErrors.NewCustomerNotFound(c.ID)
    }
    if strings.TrimSpace(c.Name) == "" {
        return appErrors.NewValidation("customer name cannot be empty")
    }

    if err := s.CustomerRepo.Update(c); err != nil {
        return err
    }

    s.publish(events.TopicCustomerUpdated, *c)
    return nil
}

// DeleteCustomer removes the customer and cascades to its tasks and
// communication log.
func (s *CRMService) DeleteCustomer(id string) error {
    existing, err := s.CustomerRepo.GetByID(id)
    if err != nil {
        return err
    }
    if existing == nil {
        return appErrors.NewCustomerNotFound(id)
    }

    if err := s.CustomerRepo.Delete(id); err != nil {
        return err
    }
    if err := s.TaskRepo.DeleteByCustomer(id); err != nil {
        return err
    }
    if err := s.CommRepo.DeleteByCustomer(id); err != nil {
        return err
    }

    s.publish(events.TopicCustomerDeleted, *existing)
    return nil
}

func (s *CRMService) GetCustomer(id string) (*model.Customer, error) {
    c, err := s.CustomerRepo.GetByID(id)
    if err != nil {
        return nil, err
    }
    if c == nil {
        return nil, appErrors.NewCustomerNotFound(id)
    }
    return c, nil
}

func (s *CRMService) ListCustomers() ([]model.Customer, error) {
    return s.CustomerRepo.ListAll()
}

// SearchCustomers filters by a case-insensitive substring over
// name/email/phone/role/notes, combined with the dropdown filter: a role
// name, With/No Communications, or one of the "all" values.
func (s *CRMService) SearchCustomers(term, filter string) ([]model.Customer, error) {
    customers, err := s.CustomerRepo.ListAll()
    if err != nil {
        return nil, err
    }

    term = strings.ToLower(strings.TrimSpace(term))

    results := []model.Customer{}
    for _, c := range customers {
        if term != "" && !customerMatches(&c, term) {
            continue
        }
        ok, err := s.customerPassesFilter(&c, filter)
        if err != nil {
            return nil, err
        }
        if ok {
            results = append(results, c)
        }
    }
    return results, nil
}

func customerMatches(c *model.Customer, term string) bool {
    return strings.Contains(strings.ToLower(c.Name), term) ||
        strings.Contains(strings.ToLower(c.Email), term) ||
        strings.Contains(strings.ToLower(c.Phone), term) ||
        strings.Contains(strings.ToLower(c.Role), term) ||
        strings.Contains(strings.ToLower(c.Notes), term)
}

func (s *CRMService) customerPassesFilter(c *model.Customer, filter string) (bool, error) {
    switch filter {
    case "", FilterAllCustomers, FilterAllRoles:
        return true, nil
    case FilterWithComms, FilterNoComms:
        comms, err := s.CommRepo.ListByCustomer(c.ID)
        if err != nil {
            return false, err
        }
        if filter == FilterWithComms {
            return len(comms) > 0, nil
        }
        return len(comms) == 0, nil
    }
    return c.Role == filter, nil
}

// ====================== Communication tracking ======================

func (s *CRMService) LogCommunication(customerID, commType, notes string) (*model.Communication, error) {
    customer, err := s.CustomerRepo.GetByID(customerID)
    if err != nil {
        return nil, err
    }
    if customer == nil {
        return nil, appErrors.NewValidation("customer %s does not exist", customerID)
    }

    comm, err := model.NewCommunication(customerID, commType, notes)
    if err != nil {
        return nil, appErrors.NewValidation("%v", err)
    }
    comm.Timestamp = s.now()

    if err := s.CommRepo.Create(comm); err != nil {
        return nil, err
    }

    s.publish(events.TopicCommunicationAdded, *comm)
    return comm, nil
}

func (s *CRMService) UpdateCommunication(c *model.Communication) error {
    existing, err := s.CommRepo.GetByID(c.ID)
    if err != nil {
        return err
    }
    if existing == nil {
        return appErrors.NewCommunicationNotFound(c.ID)
    }
    if !model.ValidCommType(c.Type) {
        return appErrors.NewValidation("invalid communication type: %q", c.Type)
    }

    // The customer reference and original timestamp are fixed.
    c.CustomerID = existing.CustomerID
    c.Timestamp = existing.Timestamp

    if err := s.CommRepo.Update(c); err != nil {
        return err
    }

    s.publish(events.TopicCommunicationUpdated, *c)
    return nil
}

func (s *CRMService) GetCommunication(id string) (*model.Communication, error) {
    c, err := s.CommRepo.GetByID(id)
    if err != nil {
        return nil, err
    }
    if c == nil {
        return nil, appErrors.NewCommunicationNotFound(id)
    }
    return c, nil
}

func (s *CRMService) AddTag(commID, tag string) (*model.Communication, error) {
    if strings.TrimSpace(tag) == "" {
        return nil, appErrors.NewValidation("tag cannot be empty")
    }

    comm, err := s.GetCommunication(commID)
    if err != nil {
        return nil, err
    }
    comm.AddTag(tag)

    if err := s.CommRepo.Update(comm); err != nil {
        return nil, err
    }

    s.publish(events.TopicCommunicationUpdated, *comm)
    return comm, nil
}

func (s *CRMService) RemoveTag(commID, tag string) (*model.Communication, error) {
    comm, err := s.GetCommunication(commID)
    if err != nil {
        return nil, err
    }
    comm.RemoveTag(tag)

    if err := s.CommRepo.Update(comm); err != nil {
        return nil, err
    }

    s.publish(events.TopicCommunicationUpdated, *comm)
    return comm, nil
}

// SearchCommunications filters the log. Empty customerID searches every
// customer; typeFilter "" or "All Types" matches all types; tagSearch is a
// case-insensitive substring over tags.
func (s *CRMService) SearchCommunications(customerID, typeFilter, tagSearch string) ([]model.Communication, error) {
    var comms []model.Communication
    var err error
    if customerID != "" {
        comms, err = s.CommRepo.ListByCustomer(customerID)
    } else {
        comms, err = s.CommRepo.ListAll()
    }
    if err != nil {
        return nil, err
    }

    tagSearch = strings.ToLower(strings.TrimSpace(tagSearch))

    results := []model.Communication{}
    for _, c := range comms {
        if typeFilter != "" && typeFilter != FilterAllTypes && c.Type != typeFilter {
            continue
        }
        if tagSearch != "" && !hasMatchingTag(c.Tags, tagSearch) {
            continue
        }
        results = append(results, c)
    }
    return results, nil
}

func hasMatchingTag(tags []string, search string) bool {
    for _, t := range tags {
        if strings.Contains(strings.ToLower(t), search) {
            return true
        }
    }
    return false
}

// ====================== Task management ======================

func (s *CRMService) CreateTask(customerID, description string, dueDate time.Time, priority model.Priority) (*model.Task, error) {
    customer, err := s.CustomerRepo.GetByID(customerID)
    if err != nil {
        return nil, err
    }
    if customer == nil {
        return nil, appErrors.NewValidation("customer %s does not exist", customerID)
    }
    if strings.TrimSpace(description) == "" {
        return nil, appErrors.NewValidation("task description cannot be empty")
    }
    if dueDate.IsZero() {
        return nil, appErrors.NewValidation("task due date is required")
    }

    t := model.NewTaskWithPriority(customerID, description, dueDate, priority)
    if err := s.TaskRepo.Create(t); err != nil {
        return nil, err
    }

    s.publish(events.TopicTaskAdded, *t)
    return t, nil
}

// UpdateTask replaces the task. The task_updated event also re-arms the
// scheduler's dedup state for this task.
func (s *CRMService) UpdateTask(t *model.Task) error {
    existing, err := s.TaskRepo.GetByID(t.ID)
    if err != nil {
        return err
    }
    if existing == nil {
        return appErrors.NewTaskNotFound(t.ID)
    }
    if strings.TrimSpace(t.Description) == "" {
        return appErrors.NewValidation("task description cannot be empty")
    }

    t.CustomerID = existing.CustomerID

    if err := s.TaskRepo.Update(t); err != nil {
        return err
    }

    s.publish(events.TopicTaskUpdated, *t)
    return nil
}

func (s *CRMService) CompleteTask(id string) (*model.Task, error) {
    t, err := s.GetTask(id)
    if err != nil {
        return nil, err
    }

    t.Completed = true
    if err := s.TaskRepo.Update(t); err != nil {
        return nil, err
    }

    s.publish(events.TopicTaskUpdated, *t)
    return t, nil
}

func (s *CRMService) GetTask(id string) (*model.Task, error) {
    t, err := s.TaskRepo.GetByID(id)
    if err != nil {
        return nil, err
    }
    if t == nil {
        return nil, appErrors.NewTaskNotFound(id)
    }
    return t, nil
}

// SearchTasks lists tasks for one customer, or all customers when
// customerID is empty. Completed tasks are hidden unless asked for.
func (s *CRMService) SearchTasks(customerID string, includeCompleted bool) ([]model.Task, error) {
    var tasks []model.Task
    var err error
    if customerID != "" {
        tasks, err = s.TaskRepo.ListByCustomer(customerID)
    } else {
        tasks, err = s.TaskRepo.ListAll()
    }
    if err != nil {
        return nil, err
    }

    if includeCompleted {
        return tasks, nil
    }

    results := []model.Task{}
    for _, t := range tasks {
        if !t.Completed {
            results = append(results, t)
        }
    }
    return results, nil
}

func (s *CRMService) PendingTasks() ([]model.Task, error) {
    return s.TaskRepo.ListPending()
}
