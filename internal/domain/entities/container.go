package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings depend on the --config flag, so controllers receive a loader instead
	return container.Provide(func() SettingsLoader {
		return LoadSettings
	})
}
