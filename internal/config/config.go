package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config collects everything the server reads from the environment.
type Config struct {
	Addr     string // listen address
	DBPath   string // sqlite file
	FieldKey string // base64 AES key; overrides the key file when set
	KeyFile  string // raw key file, generated on first run if absent
	Seed     bool   // insert the sample menu into an empty database
}

// Load reads an optional .env file and then the environment.
func Load() Config {
	_ = godotenv.Load() // missing .env is fine

	return Config{
		Addr:     getEnv("ADDR", ":8080"),
		DBPath:   getEnv("CANTEEN_DB", "canteen.db"),
		FieldKey: os.Getenv("CANTEEN_FIELD_KEY"),
		KeyFile:  getEnv("CANTEEN_KEY_FILE", "canteen.key"),
		Seed:     os.Getenv("CANTEEN_SEED") == "1",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
