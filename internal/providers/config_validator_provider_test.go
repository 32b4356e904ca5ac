package providers

import (
	"fitviz/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: structures.StorageConfig{
			Driver: "file",
			Dir:    "/tmp/fitviz",
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Clock:   structures.ClockConfig{Timezone: "UTC"},
		Tracker: structures.TrackerConfig{SleepLogLimit: 30},
		Reminders: []structures.ReminderConfig{
			{Title: "Water", Type: "water", Interval: time.Hour},
			{Title: "Sleep", Type: "sleep", At: "22:30"},
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *structures.Config)
	}{
		{"empty host", func(c *structures.Config) { c.WebServer.Host = "" }},
		{"zero port", func(c *structures.Config) { c.WebServer.Port = 0 }},
		{"empty log level", func(c *structures.Config) { c.Logger.Level = "" }},
		{"invalid log level", func(c *structures.Config) { c.Logger.Level = "verbose" }},
		{"unknown driver", func(c *structures.Config) { c.Storage.Driver = "postgres" }},
		{"file driver without dir", func(c *structures.Config) { c.Storage.Dir = "" }},
		{"sqlite driver without dsn", func(c *structures.Config) { c.Storage.Driver = "sqlite" }},
		{"sleep limit too large", func(c *structures.Config) { c.Tracker.SleepLogLimit = 31 }},
		{"unknown timezone", func(c *structures.Config) { c.Clock.Timezone = "Mars/Olympus" }},
		{"reminder without title", func(c *structures.Config) { c.Reminders[0].Title = "" }},
		{"reminder bad type", func(c *structures.Config) { c.Reminders[0].Type = "alarm" }},
		{"reminder with both schedules", func(c *structures.Config) { c.Reminders[1].Interval = time.Minute }},
		{"reminder with no schedule", func(c *structures.Config) { c.Reminders[0].Interval = 0 }},
		{"reminder bad time", func(c *structures.Config) { c.Reminders[1].At = "10pm" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			assert.Error(t, NewCnfValidator(c).Validate())
		})
	}
}

func TestConfigValidator_MemoryDriverNeedsNoPath(t *testing.T) {
	c := validConfig()
	c.Storage = structures.StorageConfig{Driver: "memory"}
	assert.NoError(t, NewCnfValidator(c).Validate())
}
