// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

const (
	// ProfileActiveKey is the system property holding the active profile.
	ProfileActiveKey = "dandelion.profile.active"

	// DevProfile is the built-in development profile and the fallback for
	// a blank signal and for profiles without defaults of their own.
	DevProfile = "dev"

	// ProdProfile is the built-in production profile.
	ProdProfile = "prod"
)

var profileAliases = map[string]string{
	"development": DevProfile,
	"production":  ProdProfile,
}

// ResolveActiveProfile returns the active profile for the given activation
// signal. Surrounding whitespace is stripped; a blank signal selects
// [DevProfile]. Case is preserved.
func ResolveActiveProfile(signal string) string {
	profile := strings.TrimSpace(signal)
	if profile == "" {
		return DevProfile
	}
	return profile
}

// EffectiveProfile returns the profile whose defaults apply to raw.
// "development" and "production" are aliases of the built-in profiles; any
// other name is returned unchanged.
func EffectiveProfile(raw string) string {
	if p, ok := profileAliases[raw]; ok {
		return p
	}
	return raw
}

// IsBuiltinProfile reports whether profile carries its own default values.
func IsBuiltinProfile(profile string) bool {
	return profile == DevProfile || profile == ProdProfile
}

// ProfileSignal reads the process-wide profile activation signal: the
// [ProfileActiveKey] system property, or the DANDELION_PROFILE_ACTIVE
// environment variable when the property is unset.
//
// It is read on every call so that a changed signal takes effect on the next
// resolution.
func ProfileSignal(sys *Properties, boot Bootstrap) string {
	if sys != nil {
		if v, ok := sys.Lookup(ProfileActiveKey); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return boot.ProfileActive
}
