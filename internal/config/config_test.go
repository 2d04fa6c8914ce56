package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so host settings do not leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CORS_ALLOW_ORIGIN", "DB_HOST", "DB_NAME", "DB_MAX_OPEN_CONNS", "MIGRATIONS_PATH",
		"JWT_SECRET", "JWT_TOKEN_TTL", "JWT_ISSUER", "BCRYPT_COST",
		"UPLOAD_DIR", "UPLOAD_URL_PREFIX", "MAX_IMAGE_SIZE", "MAX_PRODUCT_IMAGES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.AllowOrigin)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "./uploads", cfg.Media.UploadDir)
	assert.Equal(t, "/uploads", cfg.Media.URLPrefix)
	assert.Equal(t, int64(5*1024*1024), cfg.Media.MaxFileSize)
	assert.Equal(t, 5, cfg.Media.MaxProductImages)
	assert.Equal(t, "./migrations", cfg.Database.MigrationsPath)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("JWT_TOKEN_TTL", "12h")
	t.Setenv("MAX_IMAGE_SIZE", "1048576")
	t.Setenv("MAX_PRODUCT_IMAGES", "3")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "prod-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, int64(1<<20), cfg.Media.MaxFileSize)
	assert.Equal(t, 3, cfg.Media.MaxProductImages)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns, "unparseable values fall back to the default")
}

func TestLoad_RequiresSecretOutsideDevelopment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{Host: "localhost", Name: "company_site"},
			Auth:     AuthConfig{JWTSecret: "s", TokenTTL: time.Hour},
			Media:    MediaConfig{UploadDir: "./uploads", MaxFileSize: 1, MaxProductImages: 1},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing host", func(c *Config) { c.Database.Host = "" }, "DB_HOST"},
		{"zero ttl", func(c *Config) { c.Auth.TokenTTL = 0 }, "JWT_TOKEN_TTL"},
		{"no upload dir", func(c *Config) { c.Media.UploadDir = "" }, "UPLOAD_DIR"},
		{"zero size limit", func(c *Config) { c.Media.MaxFileSize = 0 }, "MAX_IMAGE_SIZE"},
		{"zero images", func(c *Config) { c.Media.MaxProductImages = 0 }, "MAX_PRODUCT_IMAGES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.GetDSN())
}
