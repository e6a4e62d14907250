package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		errorMsg    string
	}{
		{
			name: "Success with minimal required config",
			envVars: map[string]string{
				"UPSTREAM_BASE_URL": "http://backoffice.local/api",
				"API_KEY":           "test-api-key",
			},
			expectError: false,
		},
		{
			name: "Success with all config specified",
			envVars: map[string]string{
				"SERVER_HOST":              "localhost",
				"SERVER_PORT":              "9090",
				"UPSTREAM_BASE_URL":        "http://backoffice.local/api",
				"UPSTREAM_API_KEY":         "upstream-key",
				"UPSTREAM_TIMEOUT_SECONDS": "15",
				"SESSION_TTL_MINUTES":      "45",
				"LOG_LEVEL":                "debug",
				"LOG_FORMAT":               "console",
				"API_KEY":                  "test-key-123",
			},
			expectError: false,
		},
		{
			name: "Error - missing upstream base URL",
			envVars: map[string]string{
				"API_KEY": "test-key",
			},
			expectError: true,
			errorMsg:    "upstream base URL is required",
		},
		{
			name: "Error - missing API key",
			envVars: map[string]string{
				"UPSTREAM_BASE_URL": "http://backoffice.local/api",
				"API_KEY":           "",
			},
			expectError: true,
			errorMsg:    "API key is required",
		},
		{
			name: "Error - invalid server port",
			envVars: map[string]string{
				"SERVER_PORT":       "99999",
				"UPSTREAM_BASE_URL": "http://backoffice.local/api",
				"API_KEY":           "test-key",
			},
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name: "Error - upstream timeout too small",
			envVars: map[string]string{
				"UPSTREAM_BASE_URL":        "http://backoffice.local/api",
				"UPSTREAM_TIMEOUT_SECONDS": "0",
				"API_KEY":                  "test-key",
			},
			expectError: true,
			errorMsg:    "upstream timeout must be at least 1s",
		},
		{
			name: "Error - session TTL too small",
			envVars: map[string]string{
				"UPSTREAM_BASE_URL":   "http://backoffice.local/api",
				"SESSION_TTL_MINUTES": "0",
				"API_KEY":             "test-key",
			},
			expectError: true,
			errorMsg:    "session TTL must be at least 1 minute",
		},
		{
			name: "Error - invalid log level",
			envVars: map[string]string{
				"UPSTREAM_BASE_URL": "http://backoffice.local/api",
				"LOG_LEVEL":         "invalid",
				"API_KEY":           "test-key",
			},
			expectError: true,
			errorMsg:    "invalid log level",
		},
		{
			name: "Error - invalid log format",
			envVars: map[string]string{
				"UPSTREAM_BASE_URL": "http://backoffice.local/api",
				"LOG_FORMAT":        "xml",
				"API_KEY":           "test-key",
			},
			expectError: true,
			errorMsg:    "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
			}

			// Clean up
			os.Clearenv()
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("UPSTREAM_BASE_URL", "http://backoffice.local/api")
	os.Setenv("API_KEY", "test-key")
	defer os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{
				Host: "localhost",
				Port: 8080,
			},
			Upstream: UpstreamConfig{
				BaseURL: "http://backoffice.local/api",
				APIKey:  "upstream-key",
				Timeout: 10 * time.Second,
			},
			Session: SessionConfig{
				TTL: 30 * time.Minute,
			},
			Logger: LoggerConfig{
				Level:  "info",
				Format: "json",
			},
			Auth: AuthConfig{
				APIKey: "test-key",
			},
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
		errorMsg    string
	}{
		{
			name:        "Valid configuration",
			mutate:      func(*Config) {},
			expectError: false,
		},
		{
			name:        "Invalid - server port too high",
			mutate:      func(c *Config) { c.Server.Port = 99999 },
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name:        "Invalid - server port zero",
			mutate:      func(c *Config) { c.Server.Port = 0 },
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name:        "Invalid - empty upstream base URL",
			mutate:      func(c *Config) { c.Upstream.BaseURL = "" },
			expectError: true,
			errorMsg:    "upstream base URL is required",
		},
		{
			name:        "Invalid - upstream timeout below 1s",
			mutate:      func(c *Config) { c.Upstream.Timeout = 500 * time.Millisecond },
			expectError: true,
			errorMsg:    "upstream timeout must be at least 1s",
		},
		{
			name:        "Invalid - session TTL below 1 minute",
			mutate:      func(c *Config) { c.Session.TTL = 30 * time.Second },
			expectError: true,
			errorMsg:    "session TTL must be at least 1 minute",
		},
		{
			name:        "Invalid - empty API key",
			mutate:      func(c *Config) { c.Auth.APIKey = "" },
			expectError: true,
			errorMsg:    "API key is required",
		},
		{
			name:        "Invalid - unknown log level",
			mutate:      func(c *Config) { c.Logger.Level = "trace2" },
			expectError: true,
			errorMsg:    "invalid log level",
		},
		{
			name:        "Invalid - unknown log format",
			mutate:      func(c *Config) { c.Logger.Format = "text" },
			expectError: true,
			errorMsg:    "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name     string
		config   ServerConfig
		expected string
	}{
		{
			name: "Standard configuration",
			config: ServerConfig{
				Host: "localhost",
				Port: 8080,
			},
			expected: "localhost:8080",
		},
		{
			name: "All interfaces",
			config: ServerConfig{
				Host: "0.0.0.0",
				Port: 9090,
			},
			expected: "0.0.0.0:9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.Address())
		})
	}
}

func TestGetEnv(t *testing.T) {
	os.Clearenv()

	// Test with environment variable set
	os.Setenv("TEST_VAR", "test_value")
	assert.Equal(t, "test_value", getEnv("TEST_VAR", "default"))

	// Test with environment variable not set
	assert.Equal(t, "default", getEnv("NON_EXISTENT_VAR", "default"))

	os.Clearenv()
}

func TestGetEnvAsInt(t *testing.T) {
	os.Clearenv()

	// Test with valid integer
	os.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, getEnvAsInt("TEST_INT", 10))

	// Test with invalid integer (should return default)
	os.Setenv("TEST_INVALID", "not_a_number")
	assert.Equal(t, 10, getEnvAsInt("TEST_INVALID", 10))

	// Test with non-existent variable
	assert.Equal(t, 10, getEnvAsInt("NON_EXISTENT_INT", 10))

	os.Clearenv()
}
