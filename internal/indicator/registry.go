package indicator

import (
	"fmt"
	"sync"
)

// IndicatorRegistry manages all available indicators.
type IndicatorRegistry interface {
	RegisterIndicator(indicator Indicator) error
	GetIndicator(name string) (Indicator, error)
	ListIndicators() []string
	RemoveIndicator(name string) error
}

// IndicatorRegistryV1 manages all available indicators, keyed by display
// name so the same indicator type can be registered at several periods.
type IndicatorRegistryV1 struct {
	indicators map[string]Indicator
	order      []string
	mu         sync.RWMutex
}

// NewIndicatorRegistry creates a new indicator registry.
func NewIndicatorRegistry() IndicatorRegistry {
	return &IndicatorRegistryV1{
		indicators: make(map[string]Indicator),
		order:      nil,
		mu:         sync.RWMutex{},
	}
}

// RegisterIndicator adds an indicator to the registry. Registration order
// is preserved by ListIndicators.
func (r *IndicatorRegistryV1) RegisterIndicator(indicator Indicator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := indicator.Name()
	if _, exists := r.indicators[name]; exists {
		return fmt.Errorf("RegisterIndicator: indicator with name %s already registered", name)
	}

	r.indicators[name] = indicator
	r.order = append(r.order, name)

	return nil
}

// GetIndicator retrieves an indicator by name.
func (r *IndicatorRegistryV1) GetIndicator(name string) (Indicator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	indicator, exists := r.indicators[name]
	if !exists {
		return nil, fmt.Errorf("GetIndicator: indicator with name %s not found", name)
	}

	return indicator, nil
}

// ListIndicators returns all registered indicator names in registration
// order.
func (r *IndicatorRegistryV1) ListIndicators() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}

// RemoveIndicator removes an indicator from the registry.
func (r *IndicatorRegistryV1) RemoveIndicator(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.indicators[name]; !exists {
		return fmt.Errorf("RemoveIndicator: indicator with name %s not found", name)
	}

	delete(r.indicators, name)

	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
