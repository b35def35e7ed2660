// internal/model/communication.go
package model

import (
    "fmt"
    "time"

    "github.com/google/uuid"
)

const (
    CommTypePhone   = "phone"
    CommTypeEmail   = "email"
    CommTypeMeeting = "meeting"
)

// ValidCommType reports whether t is one of phone/email/meeting.
func ValidCommType(t string) bool {
    return t == CommTypePhone || t == CommTypeEmail || t == CommTypeMeeting
}

type Communication struct {
    ID         string    `json:"id"`
    CustomerID string    `json:"customer_id"`
    Type       string    `json:"type"` // phone, email, meeting
    Timestamp  time.Time `json:"timestamp"`
    Notes      string    `json:"notes"`
    Tags       []string  `json:"tags"`
}

// NewCommunication stamps the entry with the current time.
func NewCommunication(customerID, commType, notes string) (*Communication, error) {
    if !ValidCommType(commType) {
        return nil, fmt.Errorf("invalid communication type: %q", commType)
    }
    return &Communication{
        ID:         uuid.NewString(),
        CustomerID: customerID,
        Type:       commType,
        Timestamp:  time.Now(),
        Notes:      notes,
        Tags:       []string{},
    }, nil
}

// AddTag appends a tag, preserving insertion order.
func (c *Communication) AddTag(tag string) {
    c.Tags = append(c.Tags, tag)
}

// RemoveTag removes the first occurrence of tag.
func (c *Communication) RemoveTag(tag string) {
    for i, t := range c.Tags {
        if t == tag {
            c.Tags = append(c.Tags[:i], c.Tags[i+1:]...)
            return
        }
    }
}
