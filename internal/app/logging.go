package app

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a structured logger writing JSON lines to a file next
// to the config, never to stdout/stderr — those are the terminal tcell
// owns. Failures building the file sink fall back to a discarding logger
// rather than failing startup: logging is diagnostic, not load-bearing.
func newLogger(cfgPath string) *zap.Logger {
	logPath := filepath.Join(filepath.Dir(cfgPath), "twinpane.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return zap.NewNop()
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), zap.InfoLevel)
	return zap.New(core)
}
