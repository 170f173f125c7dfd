package injector

import (
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/zeusync/centurion/internal/core/observability/log"
	"github.com/zeusync/centurion/internal/core/robot"
)

// Runtime is what every command needs before it loads a world.
type Runtime struct {
	Logger   *log.Logger
	Registry robot.Registry
}

func NewRuntime(logger *log.Logger, registry robot.Registry) *Runtime {
	return &Runtime{Logger: logger, Registry: registry}
}

// ProvideLogger writes JSON to stderr and, when cfg names a file, to that file.
func ProvideLogger(cfg log.Config) *log.Logger {
	return log.NewWithConfig(cfg, zapcore.Lock(os.Stderr))
}
