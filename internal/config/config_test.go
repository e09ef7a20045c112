package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"APP_PORT", "APP_HOST", "APP_ENV", "LOG_LEVEL", "JWT_SECRET", "DATABASE_URL",
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSLMODE", "DB_PATH",
	"SEED_FILE", "NOTIFIER_DRIVER", "KAFKA_BROKERS", "KAFKA_PRICE_TOPIC",
	"OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SAMPLE_RATIO",
}

// clearConfigEnv blanks every variable LoadConfig reads; t.Setenv restores them afterwards
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, v := range configEnvVars {
		t.Setenv(v, "")
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.envValue)
			assert.Equal(t, tt.expected, GetEnvWithDefault(tt.key, tt.defaultValue))
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("TYPED_INT", "42")
	t.Setenv("TYPED_BOOL", "true")
	t.Setenv("TYPED_FLOAT", "0.25")
	t.Setenv("TYPED_BAD", "not-a-number")

	assert.Equal(t, 42, GetEnvAsType("TYPED_INT", 0))
	assert.True(t, GetEnvAsType("TYPED_BOOL", false))
	assert.Equal(t, 0.25, GetEnvAsType("TYPED_FLOAT", 1.0))
	assert.Equal(t, 7, GetEnvAsType("TYPED_BAD", 7), "unparsable values fall back to the default")
	assert.Equal(t, "fallback", GetEnvAsType("TYPED_MISSING", "fallback"))
}

func TestLoadConfig(t *testing.T) {
	t.Run("successful config load with all env vars", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("JWT_SECRET", "super_secret_jwt_key")
		t.Setenv("DATABASE_URL", "postgres://pizzeria:hunter2@db:5432/pizzeria?sslmode=disable")
		t.Setenv("NOTIFIER_DRIVER", "kafka")
		t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
		t.Setenv("OTEL_ENABLED", "true")
		t.Setenv("OTEL_SAMPLE_RATIO", "0.5")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "kafka", config.NotifierDriver)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, config.KafkaBrokers)
		assert.True(t, config.OTelEnabled)
		assert.Equal(t, 0.5, config.OTelSampleRatio)

		db := config.Database()
		assert.Equal(t, "postgres", db.Driver, "a database URL implies postgres")
		assert.Equal(t, config.DatabaseURL, db.DSN())

		assert.NotContains(t, config.String(), "hunter2")
		assert.NotContains(t, config.String(), "super_secret_jwt_key")
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with invalid database url", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("DATABASE_URL", "not a url")

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with out of range sample ratio", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("OTEL_SAMPLE_RATIO", "1.5")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		clearConfigEnv(t)

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 8080, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, "email", config.NotifierDriver)
		assert.Empty(t, config.KafkaBrokers)
		assert.False(t, config.OTelEnabled)

		db := config.Database()
		assert.Equal(t, "", db.Driver)
		assert.Equal(t, "pizzeria.sqlite", db.DSN())
	})
}

func TestLevelForEnvironment(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, LevelForEnvironment("development"))
	assert.Equal(t, logrus.ErrorLevel, LevelForEnvironment("production"))
	assert.Equal(t, logrus.InfoLevel, LevelForEnvironment("staging"))
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	b.Setenv("BENCH_KEY", "test_value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
