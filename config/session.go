package config

import (
	"os"
	"time"
)

var SessionSecret []byte
var SessionLifetime time.Duration

func init() {
	LoadSession()
}

// LoadSession reads the session settings from the environment. main
// calls it again after godotenv so a secret kept only in .env is picked
// up instead of the development fallback.
func LoadSession() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "tajny-klic-change-this-in-production"
	}
	SessionSecret = []byte(secret)
	SessionLifetime = 24 * time.Hour
}
