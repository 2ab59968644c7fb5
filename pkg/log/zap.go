package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig holds the knobs for the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sl *zap.SugaredLogger
}

// Init builds the process logger from cfg. Unknown levels fall back to
// info, an empty encoding picks console in development mode and json
// otherwise.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = parsed
	}

	development := cfg.Mode == "development"

	encoding := cfg.Encoding
	if encoding == "" {
		if development {
			encoding = "console"
		} else {
			encoding = "json"
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	if development {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && encoding == "console" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if encoding == "console" {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if development {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sl: zap.New(core, opts...).Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, args ...interface{}) { z.sl.Debug(args...) }
func (z *zapLogger) Debugf(ctx context.Context, format string, args ...interface{}) {
	z.sl.Debugf(format, args...)
}

func (z *zapLogger) Info(ctx context.Context, args ...interface{}) { z.sl.Info(args...) }
func (z *zapLogger) Infof(ctx context.Context, format string, args ...interface{}) {
	z.sl.Infof(format, args...)
}

func (z *zapLogger) Warn(ctx context.Context, args ...interface{}) { z.sl.Warn(args...) }
func (z *zapLogger) Warnf(ctx context.Context, format string, args ...interface{}) {
	z.sl.Warnf(format, args...)
}

func (z *zapLogger) Error(ctx context.Context, args ...interface{}) { z.sl.Error(args...) }
func (z *zapLogger) Errorf(ctx context.Context, format string, args ...interface{}) {
	z.sl.Errorf(format, args...)
}

func (z *zapLogger) DPanic(ctx context.Context, args ...interface{}) { z.sl.DPanic(args...) }
func (z *zapLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {
	z.sl.DPanicf(format, args...)
}

func (z *zapLogger) Panic(ctx context.Context, args ...interface{}) { z.sl.Panic(args...) }
func (z *zapLogger) Panicf(ctx context.Context, format string, args ...interface{}) {
	z.sl.Panicf(format, args...)
}

func (z *zapLogger) Fatal(ctx context.Context, args ...interface{}) { z.sl.Fatal(args...) }
func (z *zapLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {
	z.sl.Fatalf(format, args...)
}
