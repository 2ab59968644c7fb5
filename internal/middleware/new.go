package middleware

import (
	"task-quickadd/config"
	"task-quickadd/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l   log.Logger
	cfg *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
