// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/unclebandit/crmdesk-backend/internal/config"
	"github.com/unclebandit/crmdesk-backend/internal/controller"
	"github.com/unclebandit/crmdesk-backend/internal/events"
	"github.com/unclebandit/crmdesk-backend/internal/handler"
	"github.com/unclebandit/crmdesk-backend/internal/notify"
	"github.com/unclebandit/crmdesk-backend/internal/repository"
	"github.com/unclebandit/crmdesk-backend/internal/scheduler"
	"github.com/unclebandit/crmdesk-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration:", err)
	}

	// In-memory stores; the whole state lives and dies with the process.
	customerRepo := repository.NewCustomerRepository()
	taskRepo := repository.NewTaskRepository()
	commRepo := repository.NewCommunicationRepository()

	bus := events.NewInMemoryBus()
	events.LogSubscriber(bus,
		events.TopicCustomerAdded,
		events.TopicCustomerUpdated,
		events.TopicCustomerDeleted,
		events.TopicCommunicationAdded,
		events.TopicCommunicationUpdated,
		events.TopicTaskAdded,
		events.TopicTaskUpdated,
	)

	settings := service.NewSettings(cfg.NotificationsEnabled)

	crmService := &service.CRMService{
		CustomerRepo: customerRepo,
		TaskRepo:     taskRepo,
		CommRepo:     commRepo,
		Bus:          bus,
		Settings:     settings,
	}

	sched := scheduler.New(
		taskRepo,
		customerRepo,
		notify.NewConsole(),
		bus,
		cfg.CheckInterval,
		settings.NotificationsEnabled,
		cfg.RecentNotifications,
	)
	sched.Start()

	if cfg.LoadSampleData {
		loadSampleData(crmService)
	}

	customerController := &controller.CustomerController{CRMService: crmService}
	commController := &controller.CommunicationController{CRMService: crmService}
	taskController := &controller.TaskController{CRMService: crmService}
	reportHandler := handler.NewReportHandler(crmService)
	systemHandler := handler.NewSystemHandler(settings, sched)

	r := chi.NewRouter()

	// Customer routes
	r.Post("/customers", customerController.CreateCustomer)
	r.Get("/customers", customerController.ListCustomers)
	r.Get("/customers/{id}", customerController.GetCustomer)
	r.Put("/customers/{id}", customerController.UpdateCustomer)
	r.Delete("/customers/{id}", customerController.DeleteCustomer)

	// Communication routes
	r.Post("/communications", commController.LogCommunication)
	r.Get("/communications", commController.ListCommunications)
	r.Put("/communications/{id}", commController.UpdateCommunication)
	r.Post("/communications/{id}/tags", commController.AddTag)
	r.Delete("/communications/{id}/tags/{tag}", commController.RemoveTag)

	// Task routes
	r.Post("/tasks", taskController.CreateTask)
	r.Get("/tasks", taskController.ListTasks)
	r.Get("/tasks/{id}", taskController.GetTask)
	r.Put("/tasks/{id}", taskController.UpdateTask)
	r.Post("/tasks/{id}/complete", taskController.CompleteTask)

	// Reporting, notifications, settings
	r.Get("/reports/communications", reportHandler.CommunicationStatsHandler)
	r.Get("/reports/communications/frequency", reportHandler.CommunicationFrequencyHandler)
	r.Get("/reports/tasks", reportHandler.TaskStatsHandler)
	r.Get("/notifications", systemHandler.GetNotificationsHandler)
	r.Get("/settings", systemHandler.GetSettingsHandler)
	r.Put("/settings", systemHandler.UpdateSettingsHandler)

	// Local form frontends run on another port
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
	})

	log.Println("CRM server running on", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, c.Handler(r)))
}
