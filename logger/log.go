package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// Init builds the global logger. Production config when ENV=production,
// development config otherwise.
func Init() {
	var err error
	if os.Getenv("ENV") == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	zap.ReplaceGlobals(log)
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = log.Sync()
}

func L() *zap.Logger {
	return log
}

func Debug(msg string, fields ...zapcore.Field) { log.Debug(msg, fields...) }

func Info(msg string, fields ...zapcore.Field) { log.Info(msg, fields...) }

func Warn(msg string, fields ...zapcore.Field) { log.Warn(msg, fields...) }

func Error(msg string, fields ...zapcore.Field) { log.Error(msg, fields...) }

func Fatal(msg string, fields ...zapcore.Field) { log.Fatal(msg, fields...) }
