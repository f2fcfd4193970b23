package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NODE_ENV", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SMTP_USER", "team@qbrain.in")
	t.Setenv("ADMIN_EMAIL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "3001", cfg.App.Port)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.App.AllowedOrigins)
	assert.Equal(t, "smtp.hostinger.com", cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "team@qbrain.in", cfg.Mail.AdminEmail, "admin email falls back to the SMTP user")
	assert.Equal(t, "http://localhost:3001/uploads", cfg.Blob.BaseURL)
}

func TestLoad_ProductionOrigins(t *testing.T) {
	t.Setenv("NODE_ENV", "production")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://qbrain.vercel.app", "https://qbrain.in"}, cfg.App.AllowedOrigins)
}

func TestWarnings_MissingAdminEmailInProduction(t *testing.T) {
	t.Setenv("NODE_ENV", "production")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("SMTP_USER", "")
	t.Setenv("ADMIN_EMAIL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.Warnings(), 1)
	assert.Contains(t, cfg.Warnings()[0], "ADMIN_EMAIL")

	cfg.Mail.AdminEmail = "admin@qbrain.in"
	assert.Empty(t, cfg.Warnings())

	cfg.App.Environment = "development"
	cfg.Mail.AdminEmail = ""
	assert.Empty(t, cfg.Warnings())
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("NODE_ENV", "production")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("NODE_ENV", "development")
	t.Setenv("STORE_DRIVER", "firestore")

	_, err := Load()
	assert.ErrorContains(t, err, "STORE_DRIVER")
}

func TestAllowedOrigins_Override(t *testing.T) {
	got := allowedOrigins("production", " https://a.example , https://b.example,,")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, got)
}
