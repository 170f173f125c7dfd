//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/centurion/internal/core/observability/log"
	"github.com/zeusync/centurion/internal/core/robot"
)

func InitializeRuntime(cfg log.Config) *Runtime {
	wire.Build(ProvideLogger, robot.NewDefaultRegistry, NewRuntime)
	return nil
}
