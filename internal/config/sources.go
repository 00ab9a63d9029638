// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

//go:generate mockgen -source=sources.go -destination=../mock/source_mock.go -package=mock

// Names under which the standard sources and the profile defaults are
// reported by [Configuration.Origin].
const (
	SourceSystem    = "system"
	SourceInitParam = "init-param"
	SourceUser      = "user"
	SourceDefault   = "default"
)

// Source supplies raw string values by key.
type Source interface {
	// Name identifies the source in logs and diagnostics.
	Name() string
	// Lookup returns the raw value of key and whether the key is present.
	// A present key with a blank value must report true.
	Lookup(key string) (string, bool)
}

// MapSource is a read-only [Source] backed by a map. A nil map is empty.
type MapSource struct {
	name   string
	values map[string]string
}

// NewMapSource returns a source reported under name and backed by values.
// The map is not copied and must not be modified while resolutions run.
func NewMapSource(name string, values map[string]string) MapSource {
	return MapSource{name: name, values: values}
}

// Name returns the source name.
func (s MapSource) Name() string {
	return s.name
}

// Lookup returns the value of key.
func (s MapSource) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Sources groups the three candidate sources of a resolution. Any of them may
// be nil, which is the same as empty.
type Sources struct {
	System     Source
	InitParams Source
	User       Source
}

// Chain returns the sources in priority order.
func (s Sources) Chain() SourceChain {
	return NewSourceChain(s.System, s.InitParams, s.User)
}

// SourceChain queries sources in priority order and stops at the first one
// that has the key.
type SourceChain struct {
	sources []Source
}

// NewSourceChain returns a chain over sources, highest priority first.
// Nil sources are skipped.
func NewSourceChain(sources ...Source) SourceChain {
	chain := SourceChain{sources: make([]Source, 0, len(sources))}
	for _, s := range sources {
		if isNilSource(s) {
			continue
		}
		chain.sources = append(chain.sources, s)
	}
	return chain
}

// Len returns the number of sources in the chain.
func (c SourceChain) Len() int {
	return len(c.sources)
}

// Lookup returns the first value present for key and the name of the source
// that supplied it. Blank values are present and stop the search.
func (c SourceChain) Lookup(key string) (value, source string, ok bool) {
	for _, s := range c.sources {
		if v, found := s.Lookup(key); found {
			return v, s.Name(), true
		}
	}
	return "", "", false
}

// isNilSource catches typed nils such as a nil *Properties stored in the
// interface.
func isNilSource(s Source) bool {
	if s == nil {
		return true
	}
	if p, ok := s.(*Properties); ok && p == nil {
		return true
	}
	return false
}
