// Package logx builds the sugared zap logger used by the command line tools.
package logx

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"acs71020-go/errcode"
)

const (
	Name       = "acs71020"
	HelpLevels = "Must be one of: error, warn, info, debug."
)

// ParseLevel accepts the four levels the tools log at.
func ParseLevel(s string) (zapcore.Level, error) {
	switch s {
	case "error":
		return zapcore.ErrorLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	}
	return zapcore.InfoLevel, errcode.New(errcode.InvalidParams, "log_level", s+". "+HelpLevels)
}

// New returns a console logger writing to out.
func New(out io.Writer, level string) (*zap.SugaredLogger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	ec := zap.NewDevelopmentEncoderConfig()
	ec.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(out), lvl)
	return zap.New(core).Named(Name).Sugar(), nil
}

func Nop() *zap.SugaredLogger { return zap.NewNop().Sugar() }
