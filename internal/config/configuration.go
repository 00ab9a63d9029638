// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-dandelion/internal/logger"
)

// Configuration is the resolved value of every catalog option.
//
// It is built once by [New] or [FromProcess] and never modified afterwards,
// so it is safe for concurrent use without locking.
type Configuration struct {
	rawProfile string
	profile    string
	values     map[string]any
	origins    map[string]string
}

// New resolves every catalog option for the given profile activation signal.
//
// For each option the value is taken from the first of sources.System,
// sources.InitParams and sources.User that has the key; otherwise the
// default of the active profile is used. Nil sources are skipped.
//
// Returns an error wrapping [ErrInvalidConfigurationValue] if an integer
// option resolves to a non-numeric value. No partial configuration is ever
// returned.
func New(signal string, sources Sources, log *logger.Logger) (*Configuration, error) {
	return newResolver(signal, sources, log).
		withOptions(catalog).
		build()
}

// FromProcess resolves the configuration against the process-wide
// [SystemProperties], the given init parameters and the optional user
// properties. The profile signal is read through [ProfileSignal] on every
// call.
func FromProcess(initParams map[string]string, user Source, log *logger.Logger) (*Configuration, error) {
	boot, err := LoadBootstrap()
	if err != nil {
		return nil, fmt.Errorf("error loading bootstrap settings: %w", err)
	}

	sources := Sources{
		System:     SystemProperties,
		InitParams: NewMapSource(SourceInitParam, initParams),
		User:       user,
	}

	return New(ProfileSignal(SystemProperties, boot), sources, log)
}

// ActiveRawProfile returns the trimmed profile activation signal, or "dev"
// if it was blank.
func (c *Configuration) ActiveRawProfile() string {
	return c.rawProfile
}

// ActiveProfile returns the profile whose defaults were applied, with the
// "development" and "production" aliases resolved.
func (c *Configuration) ActiveProfile() string {
	return c.profile
}

// Origin returns the name of the source that supplied the value of key, or
// [SourceDefault] if the profile default was used.
func (c *Configuration) Origin(key string) (string, bool) {
	origin, ok := c.origins[key]
	return origin, ok
}

// Value returns the resolved value of key: a string, bool, int or []string
// depending on the option type. Lists are copied.
func (c *Configuration) Value(key string) (any, bool) {
	v, ok := c.values[key]
	if !ok {
		return nil, false
	}
	if list, isList := v.([]string); isList {
		return cloneList(list), true
	}
	return v, true
}

// Snapshot returns a copy of every resolved value keyed by option key.
func (c *Configuration) Snapshot() map[string]any {
	out := make(map[string]any, len(c.values))
	for k := range c.values {
		out[k], _ = c.Value(k)
	}
	return out
}

// StringValue returns the value of a string option.
func (c *Configuration) StringValue(key string) (string, error) {
	return typed[string](c, key, TypeString)
}

// BoolValue returns the value of a boolean option.
func (c *Configuration) BoolValue(key string) (bool, error) {
	return typed[bool](c, key, TypeBoolean)
}

// IntValue returns the value of an integer option.
func (c *Configuration) IntValue(key string) (int, error) {
	return typed[int](c, key, TypeInteger)
}

// ListValue returns a copy of the value of a list option.
func (c *Configuration) ListValue(key string) ([]string, error) {
	list, err := typed[[]string](c, key, TypeList)
	if err != nil {
		return nil, err
	}
	return cloneList(list), nil
}

func typed[T any](c *Configuration, key string, want ValueType) (T, error) {
	var zero T

	o, ok := LookupOption(key)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrUnknownOption, key)
	}
	if o.Type != want {
		return zero, fmt.Errorf("option %s is a %s, not a %s", key, o.Type, want)
	}

	v, _ := c.values[key].(T)
	return v, nil
}

func (c *Configuration) str(key string) string {
	v, _ := c.values[key].(string)
	return v
}

func (c *Configuration) boolean(key string) bool {
	v, _ := c.values[key].(bool)
	return v
}

func (c *Configuration) integer(key string) int {
	v, _ := c.values[key].(int)
	return v
}

func (c *Configuration) list(key string) []string {
	v, _ := c.values[key].([]string)
	return cloneList(v)
}

func cloneList(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Bundle-related configuration.

// BundleLocation returns the bundle.location option.
func (c *Configuration) BundleLocation() string { return c.str(KeyBundleLocation) }

// BundleIncludes returns a copy of the bundle.includes list.
func (c *Configuration) BundleIncludes() []string { return c.list(KeyBundleIncludes) }

// BundleExcludes returns a copy of the bundle.excludes list.
func (c *Configuration) BundleExcludes() []string { return c.list(KeyBundleExcludes) }

// Asset-related configuration.

// IsAssetMinificationEnabled reports the asset.minification option.
func (c *Configuration) IsAssetMinificationEnabled() bool { return c.boolean(KeyAssetMinification) }

// AssetLocationsResolutionStrategy returns a copy of the ordered locator
// keys of asset.locations.resolution.strategy.
func (c *Configuration) AssetLocationsResolutionStrategy() []string {
	return c.list(KeyAssetLocationsResolutionStrategy)
}

// AssetProcessors returns a copy of the asset.processors list.
func (c *Configuration) AssetProcessors() []string { return c.list(KeyAssetProcessors) }

// AssetProcessorEncoding returns the asset.processors.encoding option.
func (c *Configuration) AssetProcessorEncoding() string { return c.str(KeyAssetProcessorsEncoding) }

// AssetJsExcludes returns a copy of the asset.js.excludes list.
func (c *Configuration) AssetJsExcludes() []string { return c.list(KeyAssetJsExcludes) }

// AssetCSSExcludes returns a copy of the asset.css.excludes list.
func (c *Configuration) AssetCSSExcludes() []string { return c.list(KeyAssetCSSExcludes) }

// Caching-related configuration.

// IsAssetCachingEnabled reports the asset.caching option.
func (c *Configuration) IsAssetCachingEnabled() bool { return c.boolean(KeyAssetCaching) }

// CacheName returns the cache.name option.
func (c *Configuration) CacheName() string { return c.str(KeyCacheName) }

// CacheAssetMaxSize returns the cache.asset.max.size option.
func (c *Configuration) CacheAssetMaxSize() int { return c.integer(KeyCacheAssetMaxSize) }

// CacheRequestMaxSize returns the cache.request.max.size option.
func (c *Configuration) CacheRequestMaxSize() int { return c.integer(KeyCacheRequestMaxSize) }

// CacheManagerName returns the cache.manager.name option.
func (c *Configuration) CacheManagerName() string { return c.str(KeyCacheManagerName) }

// CacheConfigurationLocation returns the cache.configuration.location option.
func (c *Configuration) CacheConfigurationLocation() string { return c.str(KeyCacheConfigurationLocation) }

// Tooling-related configuration.

// IsToolAssetPrettyPrintingEnabled reports the tool.asset.pretty.printing
// option.
func (c *Configuration) IsToolAssetPrettyPrintingEnabled() bool {
	return c.boolean(KeyToolAssetPrettyPrinting)
}

// IsToolBundleGraphEnabled reports the tool.bundle.graph option. It also
// gates the HTTP diagnostics routes.
func (c *Configuration) IsToolBundleGraphEnabled() bool { return c.boolean(KeyToolBundleGraph) }

// IsToolBundleReloadingEnabled reports the tool.bundle.reloading option.
func (c *Configuration) IsToolBundleReloadingEnabled() bool { return c.boolean(KeyToolBundleReloading) }

// Misc configuration.

// IsMonitoringJmxEnabled reports the monitoring.jmx option.
func (c *Configuration) IsMonitoringJmxEnabled() bool { return c.boolean(KeyMonitoringJmx) }

// IsServlet3Enabled reports the override.servlet3 option.
func (c *Configuration) IsServlet3Enabled() bool { return c.boolean(KeyOverrideServlet3) }
