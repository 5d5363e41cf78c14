package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 9090,
		"database_url": "postgres://localhost/coach",
		"weight_preset": "technical",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/coach", cfg.DatabaseURL)
	assert.Equal(t, "technical", cfg.WeightPreset)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"port": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_PortRange(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.NoError(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}
	defaults := Config{Port: 8080, DatabaseURL: "postgres://localhost/coach", Model: "gemini-1.5-flash"}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 9090, merged.Port, "explicit values win")
	assert.Equal(t, "postgres://localhost/coach", merged.DatabaseURL)
	assert.Equal(t, "gemini-1.5-flash", merged.Model)
}

func TestNewJWTConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()

	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "0")

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewPasswordConfig_CostRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)

	t.Setenv("BCRYPT_COST", "9")
	_, err = NewPasswordConfig()
	assert.Error(t, err)

	t.Setenv("BCRYPT_COST", "15")
	_, err = NewPasswordConfig()
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
}
