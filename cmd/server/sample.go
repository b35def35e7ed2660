// cmd/server/sample.go
package main

import (
	"log"
	"time"

	"github.com/unclebandit/crmdesk-backend/internal/model"
	"github.com/unclebandit/crmdesk-backend/internal/service"
)

// loadSampleData seeds a small demo dataset for local use.
func loadSampleData(svc *service.CRMService) {
	log.Println("loading sample data...")

	smith, err := svc.CreateCustomer(
		"John Smith",
		"john.smith@example.com",
		"555-123-4567",
		"Client",
		"Key decision maker for enterprise project. Prefers email communication.",
	)
	if err != nil {
		log.Println("failed to seed customer:", err)
		return
	}

	doe, err := svc.CreateCustomer(
		"Jane Doe",
		"jane.doe@example.com",
		"555-987-6543",
		"Prospect",
		"Met at tech conference. Interested in premium offering. Follow up quarterly.",
	)
	if err != nil {
		log.Println("failed to seed customer:", err)
		return
	}

	comm, err := svc.LogCommunication(smith.ID, model.CommTypePhone, "Discussed new project requirements")
	if err == nil {
		svc.AddTag(comm.ID, "project")
		svc.AddTag(comm.ID, "requirements")
	}

	comm, err = svc.LogCommunication(doe.ID, model.CommTypeEmail, "Sent product information brochure")
	if err == nil {
		svc.AddTag(comm.ID, "marketing")
	}

	now := time.Now()
	svc.CreateTask(smith.ID, "Follow up on project proposal", now.AddDate(0, 0, 3), model.PriorityMedium)
	svc.CreateTask(doe.ID, "Schedule product demo", now.AddDate(0, 0, 7), model.PriorityMedium)

	log.Println("sample data loaded successfully")
}
