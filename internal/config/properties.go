// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"sort"
	"sync"

	"dario.cat/mergo"
)

// SystemProperties is the process-wide property bag. It is the highest
// priority source of every resolution started with [FromProcess] and holds
// the profile activation signal under [ProfileActiveKey].
var SystemProperties = NewProperties(SourceSystem)

// Properties is a named, concurrency-safe string property bag.
// It implements [Source].
type Properties struct {
	name string

	mu   sync.RWMutex
	data map[string]string
}

// NewProperties returns an empty bag reported under name.
func NewProperties(name string) *Properties {
	return &Properties{
		name: name,
		data: make(map[string]string),
	}
}

// PropertiesFromMap returns a bag holding a copy of m.
func PropertiesFromMap(name string, m map[string]string) *Properties {
	p := NewProperties(name)
	for k, v := range m {
		p.data[k] = v
	}
	return p
}

// Name returns the name the bag is reported under.
func (p *Properties) Name() string {
	return p.name
}

// Set stores value under key.
func (p *Properties) Set(key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data[key] = value
}

// Get returns the value stored under key, or "" if there is none.
func (p *Properties) Get(key string) string {
	v, _ := p.Lookup(key)
	return v
}

// Lookup returns the value stored under key and whether it is present.
// A blank value is present.
func (p *Properties) Lookup(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.data[key]
	return v, ok
}

// Clear removes key.
func (p *Properties) Clear(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.data, key)
}

// Len returns the number of stored keys.
func (p *Properties) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.data)
}

// Keys returns the stored keys in lexical order.
func (p *Properties) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := make([]string, 0, len(p.data))
	for k := range p.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToMap returns a copy of the stored properties.
func (p *Properties) ToMap() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]string, len(p.data))
	for k, v := range p.data {
		out[k] = v
	}
	return out
}

// Merge copies other into the bag. With override every key of other replaces
// the stored value; without it only keys that are missing or blank are
// filled in.
func (p *Properties) Merge(other map[string]string, override bool) error {
	var opts []func(*mergo.Config)
	if override {
		opts = append(opts, mergo.WithOverride)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	merged := make(map[string]string, len(p.data)+len(other))
	for k, v := range p.data {
		merged[k] = v
	}
	if err := mergo.Merge(&merged, other, opts...); err != nil {
		return fmt.Errorf("error merging %s properties: %w", p.name, err)
	}
	p.data = merged

	return nil
}
