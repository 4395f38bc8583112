package services

import (
	"github.com/finlocale/currency_catalog/internal/core/ports"
	portssvc "github.com/finlocale/currency_catalog/internal/core/ports/services"
	"github.com/finlocale/currency_catalog/internal/platform/config"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies. The registry must exist before the filter engine, which
// reads it live for the private tag.
func NewServiceContainer(cfg *config.Config, data ports.CurrencyDataRepository) *portssvc.ServiceContainer {
	registry := NewCurrencyRegistryService(data, cfg.DefaultLocale)
	filter := NewCurrencyFilterService(registry)
	index := NewCurrencyIndexService(data)

	return &portssvc.ServiceContainer{
		Registry: registry,
		Lookup:   NewCurrencyLookupService(data, registry, filter, index),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.CurrencyRegistrySvcFacade = (*CurrencyRegistryService)(nil)
	_ portssvc.CurrencyLookupSvc         = (*CurrencyLookupService)(nil)
)
