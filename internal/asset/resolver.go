// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package asset

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/MKhiriev/go-dandelion/internal/logger"
)

// StrategyProvider supplies the ordered locator keys to try.
// *config.Configuration implements it.
type StrategyProvider interface {
	AssetLocationsResolutionStrategy() []string
}

// Resolver picks, for each asset, the first locator of the resolution
// strategy for which the asset has a location.
type Resolver struct {
	strategy []Locator
	logger   *logger.Logger
}

// NewResolver builds a resolver from the configured strategy and the
// available locators. Strategy entries without a matching locator are
// skipped.
func NewResolver(cfg StrategyProvider, log *logger.Logger, locators ...Locator) *Resolver {
	if log == nil {
		log = logger.Nop()
	}

	byKey := make(map[string]Locator, len(locators))
	for _, l := range locators {
		byKey[l.Key()] = l
	}

	r := &Resolver{logger: log}
	for _, key := range cfg.AssetLocationsResolutionStrategy() {
		l, ok := byKey[key]
		if !ok {
			log.Debug().Str("locator", key).Msg("no locator available for strategy entry, skipped")
			continue
		}
		r.strategy = append(r.strategy, l)
	}

	return r
}

// Strategy returns the keys of the locators actually used, in order.
func (r *Resolver) Strategy() []string {
	keys := make([]string, len(r.strategy))
	for i, l := range r.strategy {
		keys[i] = l.Key()
	}
	return keys
}

// Resolve returns the URL of asu using the first locator of the strategy
// the asset has a location for.
func (r *Resolver) Resolve(asu StorageUnit, req *http.Request) (string, error) {
	for _, l := range r.strategy {
		if _, ok := asu.Locations[l.Key()]; !ok {
			continue
		}

		loc, err := l.Location(asu, req)
		if err != nil {
			return "", fmt.Errorf("error locating asset %s with %s locator: %w", asu.Name, l.Key(), err)
		}

		r.logger.Debug().
			Str("asset", asu.Name).
			Str("locator", l.Key()).
			Str("location", loc).
			Msg("asset located")
		return loc, nil
	}

	return "", fmt.Errorf("%w: %s", ErrNoLocation, asu.Name)
}

// Registry holds storage units by name. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	units map[string]StorageUnit
}

// NewRegistry returns a registry holding units.
func NewRegistry(units ...StorageUnit) *Registry {
	r := &Registry{units: make(map[string]StorageUnit, len(units))}
	for _, u := range units {
		r.units[u.Name] = u
	}
	return r
}

// Add registers asu, replacing any unit with the same name.
func (r *Registry) Add(asu StorageUnit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units[asu.Name] = asu
}

// Get returns the unit registered under name.
func (r *Registry) Get(name string) (StorageUnit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.units[name]
	if !ok {
		return StorageUnit{}, fmt.Errorf("%w: %s", ErrAssetNotRegistered, name)
	}
	return u, nil
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.units))
	for n := range r.units {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
