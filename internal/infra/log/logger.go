package logs

import (
	"log/slog"
	"os"
	"strings"

	"github.com/Ulrich-Yao/website/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds what the logger constructor needs, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the process-wide slog.Logger. JSON output by default; the
// pretty flag switches to the text handler for local runs.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	var logger *slog.Logger
	if params.Config.Env.Log.Pretty {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}

	return logger, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
