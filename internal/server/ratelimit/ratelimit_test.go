package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(configs []EndpointConfig) *Limiter {
	return NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 0, // no cleanup goroutine in tests
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: configs,
	})
}

func TestTokenBucket_ExhaustsBurst(t *testing.T) {
	// Slow refill so the burst is effectively fixed during the test
	bucket := newTokenBucket(3, 0.001)

	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())
}

func TestTokenBucket_Refills(t *testing.T) {
	bucket := newTokenBucket(1, 100) // 100 tokens/sec

	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestLimiter_EnforcesBurst(t *testing.T) {
	limiter := newTestLimiter([]EndpointConfig{
		{Path: "/scores", Method: "POST", Limit: 120, Window: time.Hour, Burst: 2},
	})
	defer limiter.Stop()

	allowed1, _ := limiter.Allow("1.2.3.4", "/scores", "POST")
	allowed2, _ := limiter.Allow("1.2.3.4", "/scores", "POST")
	allowed3, info := limiter.Allow("1.2.3.4", "/scores", "POST")

	assert.True(t, allowed1)
	assert.True(t, allowed2)
	assert.False(t, allowed3)
	assert.Equal(t, 120, info.Limit)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_BucketsArePerClient(t *testing.T) {
	limiter := newTestLimiter([]EndpointConfig{
		{Path: "/scores", Method: "POST", Limit: 60, Window: time.Hour, Burst: 1},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("1.2.3.4", "/scores", "POST")
	require.True(t, allowed)
	blocked, _ := limiter.Allow("1.2.3.4", "/scores", "POST")
	require.False(t, blocked)

	other, _ := limiter.Allow("5.6.7.8", "/scores", "POST")
	assert.True(t, other, "a different client gets its own bucket")
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/scores", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := newTestLimiter([]EndpointConfig{
		{Path: "/scores", Method: "POST", Limit: 60, Window: time.Hour, Burst: 1},
	})
	defer limiter.Stop()
	limiter.config.Whitelist["10.0.0.1"] = true

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/scores", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := newTestLimiter(nil)
	defer limiter.Stop()
	limiter.config.Blacklist["10.0.0.2"] = true

	allowed, info := limiter.Allow("10.0.0.2", "/health", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
}

func TestMatchEndpoint_HealthIsUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())

	require.NotNil(t, config)
	assert.Equal(t, 0, config.Limit)
}

func TestMatchEndpoint_ExactMatch(t *testing.T) {
	config := MatchEndpoint("/scores", "POST", DefaultEndpointConfigs())

	require.NotNil(t, config)
	assert.Equal(t, 120, config.Limit)
	assert.Equal(t, time.Hour, config.Window)
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	config := MatchEndpoint("/users/123/weights", "PUT", DefaultEndpointConfigs())

	require.NotNil(t, config)
	assert.Equal(t, "/users/", config.Path)
}

func TestMatchEndpoint_MethodMustMatch(t *testing.T) {
	assert.Nil(t, MatchEndpoint("/scores", "GET", DefaultEndpointConfigs()))
}

func TestMatchEndpoint_NoMatch(t *testing.T) {
	assert.Nil(t, MatchEndpoint("/users/123/profile", "GET", DefaultEndpointConfigs()))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "")

	config := LoadConfig()

	assert.True(t, config.Enabled)
	assert.Equal(t, 1000, config.DefaultLimit)
	assert.Equal(t, time.Minute, config.DefaultWindow)
	assert.NotEmpty(t, config.EndpointConfigs)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	config := LoadConfig()

	assert.False(t, config.Enabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "50")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")
	t.Setenv("RATE_LIMIT_BLACKLIST", "192.0.2.1")

	config := LoadConfig()

	assert.Equal(t, 50, config.DefaultLimit)
	assert.Equal(t, 30*time.Second, config.DefaultWindow)
	assert.True(t, config.Whitelist["10.0.0.1"])
	assert.True(t, config.Whitelist["10.0.0.2"])
	assert.True(t, config.Blacklist["192.0.2.1"])
}

func TestParseIPList(t *testing.T) {
	assert.Empty(t, parseIPList(""))

	list := parseIPList(" 1.1.1.1 ,2.2.2.2,, ")
	assert.Len(t, list, 2)
	assert.True(t, list["1.1.1.1"])
	assert.True(t, list["2.2.2.2"])
}
