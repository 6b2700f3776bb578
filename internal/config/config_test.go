package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "CANTEEN_DB", "CANTEEN_FIELD_KEY", "CANTEEN_KEY_FILE", "CANTEEN_SEED"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr default: %q", cfg.Addr)
	}
	if cfg.DBPath != "canteen.db" {
		t.Errorf("DBPath default: %q", cfg.DBPath)
	}
	if cfg.KeyFile != "canteen.key" {
		t.Errorf("KeyFile default: %q", cfg.KeyFile)
	}
	if cfg.Seed {
		t.Error("Seed should default to off")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("CANTEEN_DB", "/tmp/x.db")
	t.Setenv("CANTEEN_FIELD_KEY", "abc=")
	t.Setenv("CANTEEN_SEED", "1")

	cfg := Load()
	if cfg.Addr != ":9999" || cfg.DBPath != "/tmp/x.db" || cfg.FieldKey != "abc=" || !cfg.Seed {
		t.Errorf("env not honored: %+v", cfg)
	}
}
