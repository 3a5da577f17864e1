// Package di wires shared dependencies into commands through a small
// samber/do based runtime container.
package di

import (
	"github.com/samber/do/v2"
)

// Injector is the dependency injection container handed to modules and
// handlers.
type Injector = do.Injector

// Module registers one or more dependencies with the injector.
type Module func(Injector) error

// Runtime holds the base modules applied to every Invoke call.
type Runtime struct {
	modules []Module
}

// New constructs a Runtime with the given base modules.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke creates a fresh injector, applies the runtime's base modules
// followed by any extra modules in order, then calls the handler. Nil
// modules are skipped. The first module error aborts before the handler
// runs.
func (r *Runtime) Invoke(handler func(Injector) error, extraModules ...Module) error {
	injector := do.New()

	for _, module := range r.modules {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	for _, module := range extraModules {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	return handler(injector)
}
