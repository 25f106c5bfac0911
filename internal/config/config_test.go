package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_DefaultsAndFile(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"

[db]
host = "db.local"
database = "habitpet"

[leaderboard]
ttl = "10m"
warm_limits = [10, 100]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Log.Level != slog.LevelDebug {
		t.Errorf("Log.Level = %v, want debug", cfg.Log.Level)
	}
	if cfg.DB.Host != "db.local" || cfg.DB.Port != 5432 {
		t.Errorf("DB = %s:%d, want db.local:5432", cfg.DB.Host, cfg.DB.Port)
	}
	if cfg.Leaderboard.TTL.Duration != 10*time.Minute {
		t.Errorf("Leaderboard.TTL = %v, want 10m", cfg.Leaderboard.TTL)
	}
	if cfg.Leaderboard.RankWindow != RankWindow {
		t.Errorf("Leaderboard.RankWindow = %d, want %d", cfg.Leaderboard.RankWindow, RankWindow)
	}
	if cfg.Growth.HatchLevel != 2 || cfg.Growth.EvolveLevel != 10 {
		t.Errorf("Growth levels = %d/%d, want 2/10", cfg.Growth.HatchLevel, cfg.Growth.EvolveLevel)
	}
	if cfg.DB.Isolation != "serializable" {
		t.Errorf("DB.Isolation = %q, want serializable", cfg.DB.Isolation)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
[db]
host = "from-file"
`)
	t.Setenv("HABITPET_DB_HOST", "from-env")
	t.Setenv("HABITPET_LEADERBOARD_TTL", "45s")
	t.Setenv("HABITPET_WEB_JWT_SECRET", "s3cret")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DB.Host != "from-env" {
		t.Errorf("DB.Host = %q, want from-env", cfg.DB.Host)
	}
	if cfg.Leaderboard.TTL.Duration != 45*time.Second {
		t.Errorf("Leaderboard.TTL = %v, want 45s", cfg.Leaderboard.TTL)
	}
	if cfg.Web.JWTSecret != "s3cret" {
		t.Errorf("Web.JWTSecret = %q, want s3cret", cfg.Web.JWTSecret)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "evolve below hatch",
			body: `
[growth]
hatch_level = 5
evolve_level = 3
`,
			wantErr: "hatch_level",
		},
		{
			name: "redis without addr",
			body: `
[leaderboard]
store = "redis"
`,
			wantErr: "redis.addr",
		},
		{
			name: "bad duration",
			body: `
[leaderboard]
ttl = "soon"
`,
			wantErr: "invalid duration",
		},
		{
			name: "unknown isolation",
			body: `
[db]
isolation = "chaos"
`,
			wantErr: "db.isolation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("LoadConfig() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("LoadConfig() error = nil, want error")
	}
}
