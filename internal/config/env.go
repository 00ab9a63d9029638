// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Bootstrap holds the process-level settings read from environment
// variables before any configuration is resolved.
type Bootstrap struct {
	// ProfileActive is the profile activation signal used when the
	// dandelion.profile.active system property is unset.
	// Env: DANDELION_PROFILE_ACTIVE
	ProfileActive string `env:"PROFILE_ACTIVE"`

	// LogLevel is the zerolog level name (e.g. "debug", "info").
	// Env: DANDELION_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

const envPrefix = "DANDELION_"

// LoadBootstrap reads [Bootstrap] from the environment using the
// caarlos0/env library.
//
// Returns a wrapped error if env.Parse fails.
func LoadBootstrap() (Bootstrap, error) {
	var boot Bootstrap
	if err := parseEnv(&boot); err != nil {
		return Bootstrap{}, err
	}
	return boot, nil
}

func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
