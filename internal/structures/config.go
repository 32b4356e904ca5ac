package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type StorageConfig struct {
	Driver   string `yaml:"driver" validate:"required|in:file,sqlite,memory"`
	Dir      string `yaml:"dir"`
	Dsn      string `yaml:"dsn"`
	Compress bool   `yaml:"compress"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
	// MaxSize is the rotation threshold in megabytes.
	MaxSize    int `yaml:"maxSize"`
	MaxBackups int `yaml:"maxBackups"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type ClockConfig struct {
	// Timezone is "Local", "UTC" or an IANA zone name. It decides where
	// calendar days start for every "today" computation.
	Timezone string `yaml:"timezone"`
}

type TrackerConfig struct {
	SleepLogLimit int `yaml:"sleepLogLimit"`
}

type ReminderConfig struct {
	Title    string        `yaml:"title" validate:"required"`
	Message  string        `yaml:"message"`
	Type     string        `yaml:"type" validate:"required|in:water,sleep,workout,nutrition,general"`
	At       string        `yaml:"at"`
	Interval time.Duration `yaml:"interval"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server           `yaml:"webServer"`
	Storage   StorageConfig    `yaml:"storage"`
	Logger    LoggerConfig     `yaml:"logger"`
	Cache     CacheConfig      `yaml:"cache"`
	Metrics   MetricsConfig    `yaml:"metrics"`
	Clock     ClockConfig      `yaml:"clock"`
	Tracker   TrackerConfig    `yaml:"tracker"`
	Reminders []ReminderConfig `yaml:"reminders"`
}
