package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Load — lectura de enteros desde el entorno
// ──────────────────────────────────────────────────────────────────────────────

// Un valor no numérico en una env var entera cae al default declarado, no a 0.
func TestLoad_EnteroInvalidoUsaDefault(t *testing.T) {
	t.Setenv("DB_PORT", "abc")
	t.Setenv("HTTP_PORT", "  ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.DB.Port, "DB_PORT=abc debe caer al default")
	assert.Equal(t, 8080, cfg.HTTP.Port, "HTTP_PORT en blanco debe caer al default")
}

func TestLoad_EnteroValidoDesdeEnv(t *testing.T) {
	t.Setenv("DB_PORT", "6543")
	t.Setenv("JWT_EXPIRATION_MINUTES", " 120 ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 120, cfg.JWT.Expiration, "se acepta el valor con espacios alrededor")
}

func TestLoad_LogLevel(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.App.LogLevel, "sin LOG_LEVEL el default es info")

	t.Setenv("LOG_LEVEL", "debug")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestDSN_CodificaCaracteresEspeciales(t *testing.T) {
	db := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/w:rd",
		DBName:   "inventario",
		SSLMode:  "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fw%3Ard", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}
