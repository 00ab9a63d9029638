// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package asset turns the candidate locations of an asset into the URL a
// browser should fetch, following the configured location resolution
// strategy (the asset.locations.resolution.strategy option).
package asset

import (
	"net/http"
	"strings"
)

// Locator keys as they appear in the resolution strategy.
const (
	LocatorWebapp = "webapp"
	LocatorWebjar = "webjar"
	LocatorJar    = "jar"
	LocatorCdn    = "cdn"
)

// StorageUnit is an asset together with its candidate locations, keyed by
// locator (e.g. {"webjar": "jquery.js", "cdn": "//code.jquery.com/jquery.js"}).
type StorageUnit struct {
	Name      string
	Locations map[string]string
}

// NewStorageUnit returns a storage unit with a copy of locations.
func NewStorageUnit(name string, locations map[string]string) StorageUnit {
	copied := make(map[string]string, len(locations))
	for k, v := range locations {
		copied[k] = v
	}
	return StorageUnit{Name: name, Locations: copied}
}

// Locator computes the URL of an asset for one kind of location.
type Locator interface {
	// Key is the strategy name the locator answers to.
	Key() string
	// Location returns the URL of asu for the request r.
	Location(asu StorageUnit, r *http.Request) (string, error)
}

// WebappLocator serves assets bundled with the web application. The location
// is relative to the application's context path.
type WebappLocator struct {
	ContextPath string
}

// Key returns "webapp".
func (WebappLocator) Key() string { return LocatorWebapp }

// Location joins the context path and the webapp location.
func (l WebappLocator) Location(asu StorageUnit, _ *http.Request) (string, error) {
	loc, ok := asu.Locations[LocatorWebapp]
	if !ok || strings.TrimSpace(loc) == "" {
		return "", ErrNoLocation
	}
	return joinURLPath(l.ContextPath, loc), nil
}

// CdnLocator returns the CDN location verbatim; protocol-relative URLs are
// allowed.
type CdnLocator struct{}

// Key returns "cdn".
func (CdnLocator) Key() string { return LocatorCdn }

// Location returns the cdn location.
func (CdnLocator) Location(asu StorageUnit, _ *http.Request) (string, error) {
	loc, ok := asu.Locations[LocatorCdn]
	if !ok || strings.TrimSpace(loc) == "" {
		return "", ErrNoLocation
	}
	return strings.TrimSpace(loc), nil
}

func joinURLPath(prefix, p string) string {
	prefix = strings.TrimRight(prefix, "/")
	return prefix + "/" + strings.TrimLeft(p, "/")
}
