// Package config loads immutable process configuration from the environment.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/focusflow/backend/internal/crypto"
	"github.com/focusflow/backend/internal/token"
)

// Config holds everything the process needs at startup. It is constructed
// once by Load and passed by injection; nothing mutates it afterwards.
type Config struct {
	Address  string        // HTTP listen address
	DSN      string        // PostgreSQL DSN
	SignKey  []byte        // HS256 signing secret for session tokens
	EncKey   []byte        // 32-byte field-encryption key
	TokenTTL time.Duration // session token lifetime
}

// Load reads configuration from environment variables. DATABASE_DSN,
// JWT_SECRET and ENC_KEY are required; an absent or malformed value is an
// error and the process must not start without a valid Config.
func Load() (Config, error) {
	dsn, err := must("DATABASE_DSN")
	if err != nil {
		return Config{}, err
	}
	signKey, err := must("JWT_SECRET")
	if err != nil {
		return Config{}, err
	}
	encHex, err := must("ENC_KEY")
	if err != nil {
		return Config{}, err
	}
	encKey, err := hex.DecodeString(encHex)
	if err != nil {
		return Config{}, fmt.Errorf("ENC_KEY is not valid hex: %w", err)
	}
	if len(encKey) != crypto.KeyLen {
		return Config{}, fmt.Errorf("ENC_KEY must decode to %d bytes, got %d", crypto.KeyLen, len(encKey))
	}

	cfg := Config{
		Address:  ":8080",
		DSN:      dsn,
		SignKey:  []byte(signKey),
		EncKey:   encKey,
		TokenTTL: token.DefaultTTL,
	}
	if v := os.Getenv("ADDRESS"); v != "" {
		cfg.Address = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return Config{}, fmt.Errorf("TOKEN_TTL is not a positive duration: %q", v)
		}
		cfg.TokenTTL = ttl
	}
	return cfg, nil
}

// must retrieves a required environment variable.
func must(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("missing required env var: %s", key)
	}
	return v, nil
}
