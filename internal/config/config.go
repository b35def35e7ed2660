package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App holds the runtime configuration. The server is single-user and binds
// to loopback by default.
type App struct {
	HTTPAddr             string        `envconfig:"HTTP_ADDR" default:"127.0.0.1:8080"`
	CheckInterval        time.Duration `envconfig:"CHECK_INTERVAL" default:"1m"`
	NotificationsEnabled bool          `envconfig:"NOTIFICATIONS_ENABLED" default:"true"`
	LoadSampleData       bool          `envconfig:"LOAD_SAMPLE_DATA" default:"false"`
	RecentNotifications  int           `envconfig:"RECENT_NOTIFICATIONS" default:"50"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
