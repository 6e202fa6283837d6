package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: ":memory:"}},
		Server:  Server{HTTPAddress: ":8080"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a zero config fails validation:
// there is no fallback token sign key.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	first := validConfig()
	first.App.Version = "1.0.0"
	second := &StructuredConfig{App: App{TokenSignKey: "override"}}
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.App.TokenSignKey)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
}

// ── withEnv / withFlags / withJSON ───────────────────────────────────────────

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
	assert.Len(t, b.configs, 1)
}

func TestWithFlags_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-d", ":memory:"}))
	require.Len(t, b.configs, 1)
	assert.Equal(t, ":memory:", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeJSONFile(t, `{"app": {"version": "3.1.4"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "3.1.4", b.configs[1].App.Version)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()
	assert.Error(t, b.err)
}

// ── validate ─────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "cost too low", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 1 }, wantErr: ErrInvalidAppConfigs},
		{name: "cost too high", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 40 }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "negative pool", mutate: func(c *StructuredConfig) { c.Storage.DB.MaxOpenConns = -1 }, wantErr: ErrInvalidStorageConfigs},
		{name: "no addresses", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "grpc only", mutate: func(c *StructuredConfig) {
			c.Server.HTTPAddress = ""
			c.Server.GRPCAddress = ":9090"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
