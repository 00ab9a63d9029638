// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfigurationValue indicates that a resolved raw value cannot be
// coerced to the declared type of its option. It aborts the resolution.
var ErrInvalidConfigurationValue = errors.New("invalid configuration value")

// ErrUnknownOption is returned by the generic accessors when the key is not
// part of the catalog.
var ErrUnknownOption = errors.New("unknown configuration option")

// InvalidValueError carries the offending option key and raw value of a
// failed coercion. It matches [ErrInvalidConfigurationValue] with [errors.Is].
type InvalidValueError struct {
	Key  string
	Raw  string
	Type ValueType
	Err  error
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	key := e.Key
	if key == "" {
		key = "<unnamed>"
	}
	return fmt.Sprintf("%s: option %q expects %s, got %q", ErrInvalidConfigurationValue, key, e.Type, e.Raw)
}

// Unwrap returns the underlying parse error.
func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrInvalidConfigurationValue].
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidConfigurationValue
}

// Sentinel errors of the command-line and property file layer.
var (
	// ErrInvalidProperty is returned when a -D, -i or -p flag value is not
	// of the form key=value or has a blank key.
	ErrInvalidProperty = errors.New("property must be in a form `key=value`")

	// ErrUnsupportedPropertiesFile is returned for a properties file whose
	// extension is none of .json, .yaml and .yml.
	ErrUnsupportedPropertiesFile = errors.New("unsupported properties file format")
)
