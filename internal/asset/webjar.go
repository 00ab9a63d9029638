// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package asset

import (
	"fmt"
	"net/http"
	"path"
	"sort"
	"strings"
)

// Webjar describes a packaged client-side library: its artifact name, its
// version and the files it contains, relative to the webjar root.
type Webjar struct {
	Artifact string   `json:"artifact" yaml:"artifact"`
	Version  string   `json:"version" yaml:"version"`
	Files    []string `json:"files" yaml:"files"`
}

// WebjarLocator resolves webjar locations ("jquery.js",
// "jquery/1.11.0/jquery.js", ...) against an index of registered webjars.
// It is immutable once built.
type WebjarLocator struct {
	contextPath string
	paths       []string
}

// NewWebjarLocator indexes the files of webjars. Resolved URLs are prefixed
// with contextPath.
func NewWebjarLocator(contextPath string, webjars ...Webjar) *WebjarLocator {
	l := &WebjarLocator{contextPath: contextPath}
	for _, w := range webjars {
		for _, f := range w.Files {
			l.paths = append(l.paths, path.Join(w.Artifact, w.Version, strings.TrimLeft(f, "/")))
		}
	}
	sort.Strings(l.paths)
	return l
}

// Key returns "webjar".
func (*WebjarLocator) Key() string { return LocatorWebjar }

// Location returns "/webjars/<artifact>/<version>/<file>" for the webjar
// location of asu.
func (l *WebjarLocator) Location(asu StorageUnit, _ *http.Request) (string, error) {
	key, ok := asu.Locations[LocatorWebjar]
	if !ok || strings.TrimSpace(key) == "" {
		return "", ErrNoLocation
	}

	full, err := l.FullPath(key)
	if err != nil {
		return "", err
	}
	return joinURLPath(l.contextPath, path.Join("webjars", full)), nil
}

// FullPath returns the indexed path ending with key. The match must cover
// whole path segments.
func (l *WebjarLocator) FullPath(key string) (string, error) {
	key = strings.Trim(strings.TrimSpace(key), "/")

	var matches []string
	for _, p := range l.paths {
		if p == key || strings.HasSuffix(p, "/"+key) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrWebjarAssetNotFound, key)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s matches %s", ErrWebjarAssetAmbiguous, key, strings.Join(matches, ", "))
	}
}
