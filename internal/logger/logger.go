package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EMPTY   = ""
	INFO    = "info"
	JSON    = "json"
	CONSOLE = "console"
	SERVICE = "service"
)

type Config struct {
	Level   string
	Format  string
	Service string
	Output  zapcore.WriteSyncer
}

// New builds a zap logger. Unknown levels fall back to info and unknown
// formats to JSON.
func New(cfg Config) *zap.Logger {
	if cfg.Output == nil {
		cfg.Output = zapcore.Lock(os.Stdout)
	}
	if cfg.Format == EMPTY {
		cfg.Format = JSON
	}
	if cfg.Level == EMPTY {
		cfg.Level = INFO
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	if cfg.Format == CONSOLE {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, cfg.Output, level)
	log := zap.New(core, zap.AddCaller())

	if cfg.Service != EMPTY {
		log = log.With(zap.String(SERVICE, cfg.Service))
	}
	return log
}
