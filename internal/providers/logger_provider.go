package providers

import (
	"fitviz/internal/structures"
	"fmt"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
	"path/filepath"
	"time"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
	TypeStorage
	TypeReminder
)

var logFileNames = map[TypeEnum]string{
	TypeApp:      "app.log",
	TypeGet:      "get.log",
	TypePost:     "post.log",
	TypeStorage:  "storage.log",
	TypeReminder: "reminder.log",
}

func (t TypeEnum) String() string {
	switch t {
	case TypeGet:
		return "get"
	case TypePost:
		return "post"
	case TypeStorage:
		return "storage"
	case TypeReminder:
		return "reminder"
	default:
		return "app"
	}
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   []*lumberjack.Logger
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

// NewLogProvider opens one rotating file per log type under the configured
// directory. The cleanup flushes and closes them.
func NewLogProvider(conf *structures.Config) (Logger, func(), error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	info, err := os.Stat(conf.Logger.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("log dir %s is not a directory", conf.Logger.Dir)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	lp := &LogProvider{loggers: make(map[TypeEnum]zerolog.Logger, len(logFileNames))}

	for t, name := range logFileNames {
		path := filepath.Join(conf.Logger.Dir, name)
		// lumberjack keeps the mode of an existing file, so create it up front
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, os.FileMode(conf.Logger.Mode))
		if err != nil {
			lp.Close()
			return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		f.Close()

		rotator := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    conf.Logger.MaxSize,
			MaxBackups: conf.Logger.MaxBackups,
			Compress:   true,
		}
		lp.files = append(lp.files, rotator)

		var w io.Writer = rotator
		if conf.Debug {
			w = zerolog.MultiLevelWriter(rotator, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly})
		}
		lp.loggers[t] = zerolog.New(w).Level(level).With().Timestamp().Str("type", t.String()).Logger()
	}

	return lp, lp.Close, nil
}

func (lp *LogProvider) logger(t TypeEnum) *zerolog.Logger {
	l, ok := lp.loggers[t]
	if !ok {
		l = lp.loggers[TypeApp]
	}
	return &l
}

func (lp *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lp.logger(t).Error().Msgf(format, args...)
}

func (lp *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lp.logger(t).Warn().Msgf(format, args...)
}

func (lp *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lp.logger(t).Debug().Msgf(format, args...)
}

func (lp *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lp.logger(t).Info().Msgf(format, args...)
}

func (lp *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lp.logger(t).Fatal().Msgf(format, args...)
}

func (lp *LogProvider) Close() {
	for _, f := range lp.files {
		_ = f.Close()
	}
}
