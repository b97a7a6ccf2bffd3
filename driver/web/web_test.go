package web

import (
	"testing"

	"github.com/gravitational/trace"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	var config Config
	require.NoError(t, config.CheckAndSetDefaults())
	require.Equal(t, "chrome", config.Browser)

	config = Config{Browser: "firefox"}
	require.True(t, trace.IsBadParameter(config.CheckAndSetDefaults()))

	config = Config{Browser: "firefox", URL: "http://localhost:4444/wd/hub"}
	require.NoError(t, config.CheckAndSetDefaults())
}

func TestHeadlessArgs(t *testing.T) {
	config := Config{Headless: true, Args: []string{"--lang=en"}}
	args := config.args()
	require.Contains(t, args, "--headless")
	require.Equal(t, "--lang=en", args[len(args)-1])
}
