package service

import "sync"

// Settings holds runtime-mutable application state. Only the notifications
// toggle lives here for now.
type Settings struct {
    mu                   sync.RWMutex
    notificationsEnabled bool
}

func NewSettings(notificationsEnabled bool) *Settings {
    return &Settings{notificationsEnabled: notificationsEnabled}
}

func (s *Settings) NotificationsEnabled() bool {
    s.mu.RLock()
    defer s.mu.RUnlock()
    return s.notificationsEnabled
}

func (s *Settings) SetNotificationsEnabled(v bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.notificationsEnabled = v
}
