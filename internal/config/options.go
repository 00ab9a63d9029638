// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// ValueType is the declared type of an option's resolved value.
type ValueType uint8

const (
	// TypeString values are used verbatim.
	TypeString ValueType = iota
	// TypeBoolean values are parsed case-insensitively; anything but "true" is false.
	TypeBoolean
	// TypeInteger values are base-10 integers.
	TypeInteger
	// TypeList values are comma-separated lists of trimmed, non-empty elements.
	TypeList
)

// String returns the lower-case name of the type.
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeList:
		return "list"
	default:
		return "unknown"
	}
}

// Option describes a single configuration option: its key, its declared type
// and the raw default value of each built-in profile.
//
// Options are defined once in the package catalog and never mutated.
type Option struct {
	// Key is the property name looked up in every source
	// (e.g. "asset.minification").
	Key string

	// Type is the declared type the raw value is coerced to.
	Type ValueType

	// Defaults maps a profile name to the raw default value for that profile.
	Defaults map[string]string
}

// Default returns the raw default value of the option for profile.
// Profiles without an explicit entry inherit the "dev" default.
func (o Option) Default(profile string) string {
	if v, ok := o.Defaults[profile]; ok {
		return v
	}
	return o.Defaults[DevProfile]
}

// DevDefault returns the raw default value of the "dev" profile.
func (o Option) DevDefault() string {
	return o.Defaults[DevProfile]
}

// ProdDefault returns the raw default value of the "prod" profile.
func (o Option) ProdDefault() string {
	return o.Default(ProdProfile)
}

// Option keys.
const (
	KeyBundleLocation = "bundle.location"
	KeyBundleIncludes = "bundle.includes"
	KeyBundleExcludes = "bundle.excludes"

	KeyAssetMinification                = "asset.minification"
	KeyAssetLocationsResolutionStrategy = "asset.locations.resolution.strategy"
	KeyAssetProcessors                  = "asset.processors"
	KeyAssetProcessorsEncoding          = "asset.processors.encoding"
	KeyAssetJsExcludes                  = "asset.js.excludes"
	KeyAssetCSSExcludes                 = "asset.css.excludes"

	KeyAssetCaching               = "asset.caching"
	KeyCacheName                  = "cache.name"
	KeyCacheAssetMaxSize          = "cache.asset.max.size"
	KeyCacheRequestMaxSize        = "cache.request.max.size"
	KeyCacheManagerName           = "cache.manager.name"
	KeyCacheConfigurationLocation = "cache.configuration.location"

	KeyToolAssetPrettyPrinting = "tool.asset.pretty.printing"
	KeyToolBundleGraph         = "tool.bundle.graph"
	KeyToolBundleReloading     = "tool.bundle.reloading"

	KeyMonitoringJmx    = "monitoring.jmx"
	KeyOverrideServlet3 = "override.servlet3"
)

func option(key string, t ValueType, devDefault, prodDefault string) Option {
	return Option{
		Key:  key,
		Type: t,
		Defaults: map[string]string{
			DevProfile:  devDefault,
			ProdProfile: prodDefault,
		},
	}
}

// catalog is ordered the way options are documented and reported.
var catalog = []Option{
	// bundle
	option(KeyBundleLocation, TypeString, "", ""),
	option(KeyBundleIncludes, TypeList, "", ""),
	option(KeyBundleExcludes, TypeList, "", ""),

	// asset
	option(KeyAssetMinification, TypeBoolean, "false", "true"),
	option(KeyAssetLocationsResolutionStrategy, TypeList, "webapp,webjar,jar,cdn", "webapp,webjar,jar,cdn"),
	option(KeyAssetProcessors, TypeList, "cssurlrewriting,jsmin,cssmin", "cssurlrewriting,jsmin,cssmin"),
	option(KeyAssetProcessorsEncoding, TypeString, "UTF-8", "UTF-8"),
	option(KeyAssetJsExcludes, TypeList, "", ""),
	option(KeyAssetCSSExcludes, TypeList, "", ""),

	// caching
	option(KeyAssetCaching, TypeBoolean, "false", "true"),
	option(KeyCacheName, TypeString, "", ""),
	option(KeyCacheAssetMaxSize, TypeInteger, "50", "500"),
	option(KeyCacheRequestMaxSize, TypeInteger, "50", "500"),
	option(KeyCacheManagerName, TypeString, "", ""),
	option(KeyCacheConfigurationLocation, TypeString, "", ""),

	// tooling
	option(KeyToolAssetPrettyPrinting, TypeBoolean, "true", "false"),
	option(KeyToolBundleGraph, TypeBoolean, "true", "false"),
	option(KeyToolBundleReloading, TypeBoolean, "true", "false"),

	// misc
	option(KeyMonitoringJmx, TypeBoolean, "false", "false"),
	option(KeyOverrideServlet3, TypeBoolean, "true", "true"),
}

var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(catalog))
	for i, o := range catalog {
		if _, dup := idx[o.Key]; dup {
			panic("config: duplicate option key " + o.Key)
		}
		idx[o.Key] = i
	}
	return idx
}()

// Catalog returns every known option in catalog order.
// The returned slice is a copy; the options themselves must not be modified.
func Catalog() []Option {
	out := make([]Option, len(catalog))
	copy(out, catalog)
	return out
}

// LookupOption returns the option registered under key.
func LookupOption(key string) (Option, bool) {
	i, ok := catalogIndex[key]
	if !ok {
		return Option{}, false
	}
	return catalog[i], true
}
