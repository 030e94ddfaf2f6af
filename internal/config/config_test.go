package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	cases := map[string]logger.Level{
		"debug": logger.DebugLevel,
		"warn":  logger.WarnLevel,
		"error": logger.ErrorLevel,
		"info":  logger.InfoLevel,
		"":      logger.InfoLevel,
	}

	for in, want := range cases {
		assert.Equal(t, want, LoggerConfig{Level: in}.LogLevel(), in)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{
		Host: "db", Port: 5432, User: "desk", Password: "secret",
		Database: "attendance", SSLMode: "disable",
	}

	assert.Equal(t, "host=db port=5432 user=desk password=secret dbname=attendance sslmode=disable", p.DSN())
}
