// internal/handler/system_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/unclebandit/crmdesk-backend/internal/notify"
	"github.com/unclebandit/crmdesk-backend/internal/service"
)

// NotificationSource is what the handler needs from the scheduler.
type NotificationSource interface {
	Recent() []notify.Notification
}

// SystemHandler serves the settings toggle and the reminder alert feed.
type SystemHandler struct {
	Settings      *service.Settings
	Notifications NotificationSource
}

func NewSystemHandler(settings *service.Settings, notifications NotificationSource) *SystemHandler {
	return &SystemHandler{
		Settings:      settings,
		Notifications: notifications,
	}
}

func (h *SystemHandler) GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	recent := h.Notifications.Recent()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  recent,
		"count": len(recent),
	})
}

func (h *SystemHandler) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"notifications_enabled": h.Settings.NotificationsEnabled(),
	})
}

func (h *SystemHandler) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		NotificationsEnabled *bool `json:"notifications_enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if payload.NotificationsEnabled != nil {
		h.Settings.SetNotificationsEnabled(*payload.NotificationsEnabled)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"notifications_enabled": h.Settings.NotificationsEnabled(),
	})
}
