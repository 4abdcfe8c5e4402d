package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	c := Default()
	data := []byte(`
upstream:
  base_url: http://localhost:3000
  timeout: 2s
vault:
  photo_limit: 12
`)

	require.NoError(t, Parse(data, &c))

	assert.Equal(t, "http://localhost:3000", c.Upstream.BaseURL)
	assert.Equal(t, 2*time.Second, c.Upstream.Timeout)
	assert.Equal(t, 12, c.Vault.PhotoLimit)
	assert.Equal(t, 10, c.Feed.PostLimit)
	assert.Equal(t, 1, c.Feed.EmptyCommentsPostID)
	assert.Equal(t, ":8080", c.Server.Addr)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	c := Default()
	err := Parse([]byte("feed: [unclosed"), &c)
	assert.Error(t, err)
}

func TestApplyEnvOverridesUpstream(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://upstream.test")
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVICE_NAME", "fanvue-front-canary")

	c := Default()
	applyEnv(&c)

	assert.Equal(t, "http://upstream.test", c.Upstream.BaseURL)
	assert.Equal(t, ":9090", c.Server.Addr)
	assert.Equal(t, "fanvue-front-canary", c.Logging.ServiceName)
	assert.Equal(t, "debug", c.Logging.Level)
}
