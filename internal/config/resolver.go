// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dandelion/internal/logger"
)

type resolver struct {
	rawProfile string
	profile    string
	chain      SourceChain
	logger     *logger.Logger

	values  map[string]any
	origins map[string]string
	err     error
}

func newResolver(signal string, sources Sources, log *logger.Logger) *resolver {
	if log == nil {
		log = logger.Nop()
	}

	rawProfile := ResolveActiveProfile(signal)
	return &resolver{
		rawProfile: rawProfile,
		profile:    EffectiveProfile(rawProfile),
		chain:      sources.Chain(),
		logger:     log,
		values:     make(map[string]any, len(catalog)),
		origins:    make(map[string]string, len(catalog)),
	}
}

func (r *resolver) withOptions(options []Option) *resolver {
	for _, o := range options {
		if r.err != nil {
			return r
		}
		r.withOption(o)
	}
	return r
}

func (r *resolver) withOption(o Option) *resolver {
	raw, origin, ok := r.chain.Lookup(o.Key)
	if !ok {
		raw, origin = o.Default(r.profile), SourceDefault
	}

	value, err := Coerce(raw, o.Type)
	if err != nil {
		var invalid *InvalidValueError
		if errors.As(err, &invalid) {
			invalid.Key = o.Key
		}
		r.err = fmt.Errorf("error resolving %s from %s source: %w", o.Key, origin, err)
		return r
	}

	r.values[o.Key] = value
	r.origins[o.Key] = origin

	r.logger.Debug().
		Str("key", o.Key).
		Str("origin", origin).
		Interface("value", value).
		Msg("option resolved")

	return r
}

func (r *resolver) build() (*Configuration, error) {
	if r.err != nil {
		return nil, fmt.Errorf("error occurred during resolving configuration: %w", r.err)
	}

	if !IsBuiltinProfile(r.profile) {
		r.logger.Info().
			Str("profile", r.rawProfile).
			Msg("custom profile has no defaults, dev defaults are used")
	}

	r.logger.Debug().
		Str("profile", r.rawProfile).
		Int("options", len(r.values)).
		Msg("configuration resolved")

	return &Configuration{
		rawProfile: r.rawProfile,
		profile:    r.profile,
		values:     r.values,
		origins:    r.origins,
	}, nil
}
