package di

import (
	"todoapi/application/ports"
	"todoapi/application/services"
	"todoapi/infrastructure/config"

	"go.uber.org/zap"
)

// Container holds all application dependencies. Everything in it is
// constructed once per process and reused across invocations.
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	TodoRepo    ports.TodoRepository
	Metrics     ports.MetricsRecorder
	TodoService *services.TodoService
}
