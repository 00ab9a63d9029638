// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"sync"
	"testing"

	"github.com/MKhiriev/go-dandelion/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func userProps(kv map[string]string) *Properties {
	return PropertiesFromMap(SourceUser, kv)
}

func initParams(kv map[string]string) Source {
	return NewMapSource(SourceInitParam, kv)
}

func sysProps(kv map[string]string) Source {
	return NewMapSource(SourceSystem, kv)
}

// assertProfileDefaults checks that every option not listed in overridden
// holds the coerced default of profile.
func assertProfileDefaults(t *testing.T, cfg *Configuration, profile string, overridden ...string) {
	t.Helper()

	skip := make(map[string]bool, len(overridden))
	for _, k := range overridden {
		skip[k] = true
	}

	for _, o := range Catalog() {
		if skip[o.Key] {
			continue
		}
		want, err := Coerce(o.Default(profile), o.Type)
		require.NoError(t, err)

		got, ok := cfg.Value(o.Key)
		require.True(t, ok, "missing %s", o.Key)
		assert.Equal(t, want, got, "option %s", o.Key)

		origin, _ := cfg.Origin(o.Key)
		assert.Equal(t, SourceDefault, origin, "origin of %s", o.Key)
	}
}

func mustNew(t *testing.T, signal string, sources Sources) *Configuration {
	t.Helper()
	cfg, err := New(signal, sources, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	return cfg
}

// ── dev profile ───────────────────────────────────────────────────────────────

func TestNew_DevDefaults(t *testing.T) {
	cfg := mustNew(t, "", Sources{})

	assert.Equal(t, DevProfile, cfg.ActiveRawProfile())
	assert.Equal(t, DevProfile, cfg.ActiveProfile())
	assertProfileDefaults(t, cfg, DevProfile)

	assert.Empty(t, cfg.BundleLocation())
	assert.Empty(t, cfg.BundleIncludes())
	assert.Empty(t, cfg.BundleExcludes())
	assert.False(t, cfg.IsAssetMinificationEnabled())
	assert.Equal(t, []string{"webapp", "webjar", "jar", "cdn"}, cfg.AssetLocationsResolutionStrategy())
	assert.Equal(t, []string{"cssurlrewriting", "jsmin", "cssmin"}, cfg.AssetProcessors())
	assert.Equal(t, "UTF-8", cfg.AssetProcessorEncoding())
	assert.Empty(t, cfg.AssetJsExcludes())
	assert.Empty(t, cfg.AssetCSSExcludes())
	assert.False(t, cfg.IsAssetCachingEnabled())
	assert.Empty(t, cfg.CacheName())
	assert.Equal(t, 50, cfg.CacheAssetMaxSize())
	assert.Equal(t, 50, cfg.CacheRequestMaxSize())
	assert.Empty(t, cfg.CacheManagerName())
	assert.Empty(t, cfg.CacheConfigurationLocation())
	assert.True(t, cfg.IsToolAssetPrettyPrintingEnabled())
	assert.True(t, cfg.IsToolBundleGraphEnabled())
	assert.True(t, cfg.IsToolBundleReloadingEnabled())
	assert.False(t, cfg.IsMonitoringJmxEnabled())
	assert.True(t, cfg.IsServlet3Enabled())
}

func TestNew_BlankSignalIsDev(t *testing.T) {
	cfg := mustNew(t, " \t ", Sources{})
	assert.Equal(t, DevProfile, cfg.ActiveRawProfile())
	assertProfileDefaults(t, cfg, DevProfile)
}

func TestNew_EveryOptionResolved(t *testing.T) {
	cfg := mustNew(t, "", Sources{})

	snapshot := cfg.Snapshot()
	assert.Len(t, snapshot, len(Catalog()))
	for _, o := range Catalog() {
		assert.Contains(t, snapshot, o.Key)
	}
}

func TestNew_OverrideMinification(t *testing.T) {
	cfg := mustNew(t, "", Sources{User: userProps(map[string]string{KeyAssetMinification: "false"})})
	assert.False(t, cfg.IsAssetMinificationEnabled())

	cfg = mustNew(t, "", Sources{User: userProps(map[string]string{KeyAssetMinification: "TRUE"})})
	assert.True(t, cfg.IsAssetMinificationEnabled())
}

// ── prod profile ──────────────────────────────────────────────────────────────

func TestNew_ProdDefaults(t *testing.T) {
	for _, signal := range []string{"prod", "  prod ", "production"} {
		t.Run(signal, func(t *testing.T) {
			cfg := mustNew(t, signal, Sources{User: userProps(nil)})

			assert.Equal(t, ProdProfile, cfg.ActiveProfile())
			assertProfileDefaults(t, cfg, ProdProfile)

			assert.True(t, cfg.IsAssetMinificationEnabled())
			assert.True(t, cfg.IsAssetCachingEnabled())
			assert.Equal(t, 500, cfg.CacheAssetMaxSize())
			assert.False(t, cfg.IsToolBundleGraphEnabled())
		})
	}
}

func TestNew_ProdRawProfileIsTrimmedSignal(t *testing.T) {
	cfg := mustNew(t, "  prod ", Sources{})
	assert.Equal(t, "prod", cfg.ActiveRawProfile())

	cfg = mustNew(t, "production", Sources{})
	assert.Equal(t, "production", cfg.ActiveRawProfile())
	assert.Equal(t, ProdProfile, cfg.ActiveProfile())
}

func TestNew_ProdWithUserProperties(t *testing.T) {
	user := userProps(map[string]string{
		KeyAssetLocationsResolutionStrategy: "foo,bar",
		KeyCacheAssetMaxSize:                "40",
	})

	cfg := mustNew(t, "prod", Sources{User: user})

	assert.Equal(t, []string{"foo", "bar"}, cfg.AssetLocationsResolutionStrategy())
	assert.Equal(t, 40, cfg.CacheAssetMaxSize())
	assertProfileDefaults(t, cfg, ProdProfile, KeyAssetLocationsResolutionStrategy, KeyCacheAssetMaxSize)

	origin, _ := cfg.Origin(KeyCacheAssetMaxSize)
	assert.Equal(t, SourceUser, origin)
}

func TestNew_ProdWithInitParamsAndNilUser(t *testing.T) {
	sources := Sources{
		InitParams: initParams(map[string]string{
			KeyAssetLocationsResolutionStrategy: "  foo,bar , baz",
			KeyCacheAssetMaxSize:                "30",
		}),
		User: nil,
	}

	cfg := mustNew(t, "prod", sources)

	assert.Equal(t, []string{"foo", "bar", "baz"}, cfg.AssetLocationsResolutionStrategy())
	assert.Equal(t, 30, cfg.CacheAssetMaxSize())
	assertProfileDefaults(t, cfg, ProdProfile, KeyAssetLocationsResolutionStrategy, KeyCacheAssetMaxSize)
}

func TestNew_ProdWithSystemProperties(t *testing.T) {
	sources := Sources{
		System: sysProps(map[string]string{
			KeyAssetLocationsResolutionStrategy: "bar ,foo  ,baz,qux  ",
			KeyCacheAssetMaxSize:                "20",
		}),
	}

	cfg := mustNew(t, "prod", sources)

	assert.Equal(t, []string{"bar", "foo", "baz", "qux"}, cfg.AssetLocationsResolutionStrategy())
	assert.Equal(t, 20, cfg.CacheAssetMaxSize())
	assertProfileDefaults(t, cfg, ProdProfile, KeyAssetLocationsResolutionStrategy, KeyCacheAssetMaxSize)
}

// ── custom profile ────────────────────────────────────────────────────────────

func TestNew_CustomProfileInheritsDevDefaults(t *testing.T) {
	for _, signal := range []string{"qa", " qa"} {
		t.Run(signal, func(t *testing.T) {
			cfg := mustNew(t, signal, Sources{User: userProps(nil)})

			assert.Equal(t, "qa", cfg.ActiveRawProfile())
			assert.Equal(t, "qa", cfg.ActiveProfile())
			assertProfileDefaults(t, cfg, DevProfile)
			assert.False(t, cfg.IsAssetMinificationEnabled())
		})
	}
}

func TestNew_CustomProfileWithOverrides(t *testing.T) {
	tests := []struct {
		name     string
		sources  Sources
		wantList []string
		wantSize int
	}{
		{
			name: "user properties",
			sources: Sources{User: userProps(map[string]string{
				KeyAssetLocationsResolutionStrategy: "foo,bar",
				KeyCacheAssetMaxSize:                "40",
			})},
			wantList: []string{"foo", "bar"},
			wantSize: 40,
		},
		{
			name: "init parameters",
			sources: Sources{InitParams: initParams(map[string]string{
				KeyAssetLocationsResolutionStrategy: "  foo,bar , baz",
				KeyCacheAssetMaxSize:                "30",
			})},
			wantList: []string{"foo", "bar", "baz"},
			wantSize: 30,
		},
		{
			name: "system properties",
			sources: Sources{System: sysProps(map[string]string{
				KeyAssetLocationsResolutionStrategy: "bar ,foo  ,baz,qux  ",
				KeyCacheAssetMaxSize:                "20",
			})},
			wantList: []string{"bar", "foo", "baz", "qux"},
			wantSize: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := mustNew(t, "qa", tt.sources)

			assert.Equal(t, tt.wantList, cfg.AssetLocationsResolutionStrategy())
			assert.Equal(t, tt.wantSize, cfg.CacheAssetMaxSize())
			assertProfileDefaults(t, cfg, DevProfile, KeyAssetLocationsResolutionStrategy, KeyCacheAssetMaxSize)
		})
	}
}

// ── precedence ────────────────────────────────────────────────────────────────

func TestNew_Precedence(t *testing.T) {
	key := KeyCacheName

	t.Run("init parameter beats user property", func(t *testing.T) {
		cfg := mustNew(t, "", Sources{
			InitParams: initParams(map[string]string{key: "init"}),
			User:       userProps(map[string]string{key: "user"}),
		})
		assert.Equal(t, "init", cfg.CacheName())
	})

	t.Run("system property beats both", func(t *testing.T) {
		cfg := mustNew(t, "", Sources{
			System:     sysProps(map[string]string{key: "system"}),
			InitParams: initParams(map[string]string{key: "init"}),
			User:       userProps(map[string]string{key: "user"}),
		})
		assert.Equal(t, "system", cfg.CacheName())
		origin, _ := cfg.Origin(key)
		assert.Equal(t, SourceSystem, origin)
	})

	t.Run("integer override independent of profile", func(t *testing.T) {
		for _, profile := range []string{"", "prod", "qa"} {
			cfg := mustNew(t, profile, Sources{User: userProps(map[string]string{KeyCacheAssetMaxSize: "40"})})
			assert.Equal(t, 40, cfg.CacheAssetMaxSize(), "profile %q", profile)
		}
	})
}

func TestNew_BlankValueOverrides(t *testing.T) {
	cfg := mustNew(t, "prod", Sources{User: userProps(map[string]string{
		KeyAssetProcessorsEncoding: "",
		KeyAssetMinification:       "",
		KeyAssetProcessors:         "  ",
	})})

	assert.Equal(t, "", cfg.AssetProcessorEncoding())
	assert.False(t, cfg.IsAssetMinificationEnabled())
	assert.Equal(t, []string{}, cfg.AssetProcessors())
}

// ── failures ──────────────────────────────────────────────────────────────────

func TestNew_InvalidInteger(t *testing.T) {
	tests := []struct {
		name    string
		sources Sources
	}{
		{name: "user", sources: Sources{User: userProps(map[string]string{KeyCacheAssetMaxSize: "abc"})}},
		{name: "init", sources: Sources{InitParams: initParams(map[string]string{KeyCacheAssetMaxSize: "abc"})}},
		{name: "system", sources: Sources{System: sysProps(map[string]string{KeyCacheAssetMaxSize: "abc"})}},
		{name: "blank", sources: Sources{User: userProps(map[string]string{KeyCacheAssetMaxSize: ""})}},
		{name: "beyond 32 bits", sources: Sources{User: userProps(map[string]string{KeyCacheAssetMaxSize: "3000000000"})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New("prod", tt.sources, logger.Nop())
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfigurationValue)

			var invalid *InvalidValueError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, KeyCacheAssetMaxSize, invalid.Key)
		})
	}
}

func TestNew_NilLogger(t *testing.T) {
	cfg, err := New("", Sources{}, nil)
	require.NoError(t, err)
	assert.Equal(t, DevProfile, cfg.ActiveProfile())
}

// ── accessors ─────────────────────────────────────────────────────────────────

func TestConfiguration_GenericAccessors(t *testing.T) {
	cfg := mustNew(t, "", Sources{})

	s, err := cfg.StringValue(KeyAssetProcessorsEncoding)
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", s)

	b, err := cfg.BoolValue(KeyOverrideServlet3)
	require.NoError(t, err)
	assert.True(t, b)

	n, err := cfg.IntValue(KeyCacheRequestMaxSize)
	require.NoError(t, err)
	assert.Equal(t, 50, n)

	l, err := cfg.ListValue(KeyAssetProcessors)
	require.NoError(t, err)
	assert.Equal(t, []string{"cssurlrewriting", "jsmin", "cssmin"}, l)

	_, err = cfg.StringValue("no.such.option")
	assert.ErrorIs(t, err, ErrUnknownOption)

	_, err = cfg.IntValue(KeyAssetProcessors)
	assert.Error(t, err)

	_, ok := cfg.Value("no.such.option")
	assert.False(t, ok)
	_, ok = cfg.Origin("no.such.option")
	assert.False(t, ok)
}

func TestConfiguration_ListsAreCopies(t *testing.T) {
	cfg := mustNew(t, "", Sources{})

	strategy := cfg.AssetLocationsResolutionStrategy()
	strategy[0] = "mutated"

	l, err := cfg.ListValue(KeyAssetLocationsResolutionStrategy)
	require.NoError(t, err)
	l[1] = "mutated"

	snapshot := cfg.Snapshot()
	snapshot[KeyAssetLocationsResolutionStrategy].([]string)[2] = "mutated"

	assert.Equal(t, []string{"webapp", "webjar", "jar", "cdn"}, cfg.AssetLocationsResolutionStrategy())
}

func TestConfiguration_ConcurrentReads(t *testing.T) {
	cfg := mustNew(t, "prod", Sources{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = cfg.Snapshot()
			_ = cfg.AssetProcessors()
			_ = cfg.CacheAssetMaxSize()
		}()
	}
	wg.Wait()
}

// ── FromProcess ───────────────────────────────────────────────────────────────

func setSystemProperty(t *testing.T, key, value string) {
	t.Helper()
	SystemProperties.Set(key, value)
	t.Cleanup(func() { SystemProperties.Clear(key) })
}

func TestFromProcess_ReadsProfileProperty(t *testing.T) {
	t.Setenv("DANDELION_PROFILE_ACTIVE", "")
	setSystemProperty(t, ProfileActiveKey, "prod")

	cfg, err := FromProcess(nil, nil, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, ProdProfile, cfg.ActiveRawProfile())
	assertProfileDefaults(t, cfg, ProdProfile)
}

func TestFromProcess_ReadsProfileEnv(t *testing.T) {
	t.Setenv("DANDELION_PROFILE_ACTIVE", " qa ")

	cfg, err := FromProcess(nil, nil, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "qa", cfg.ActiveRawProfile())
}

func TestFromProcess_SignalReReadOnEveryResolution(t *testing.T) {
	t.Setenv("DANDELION_PROFILE_ACTIVE", "")

	setSystemProperty(t, ProfileActiveKey, "prod")
	first, err := FromProcess(nil, nil, logger.Nop())
	require.NoError(t, err)

	SystemProperties.Clear(ProfileActiveKey)
	second, err := FromProcess(nil, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, ProdProfile, first.ActiveProfile())
	assert.Equal(t, DevProfile, second.ActiveProfile())
}

func TestFromProcess_SystemPropertiesWin(t *testing.T) {
	t.Setenv("DANDELION_PROFILE_ACTIVE", "")
	setSystemProperty(t, KeyCacheAssetMaxSize, "20")

	cfg, err := FromProcess(
		map[string]string{KeyCacheAssetMaxSize: "30", KeyCacheName: "init"},
		userProps(map[string]string{KeyCacheAssetMaxSize: "40", KeyCacheName: "user", KeyCacheManagerName: "user"}),
		logger.Nop(),
	)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.CacheAssetMaxSize())
	assert.Equal(t, "init", cfg.CacheName())
	assert.Equal(t, "user", cfg.CacheManagerName())
}
