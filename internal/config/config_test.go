package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var fromYAML SuperheroConfig
	if err := yaml.Unmarshal(GetDefaultYAML("superhero"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultSuperheroConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", fromYAML, DefaultSuperheroConfig())
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("pacman") != nil {
		t.Error("unknown game should have no embedded YAML")
	}
}

func TestLoadSuperheroCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hero.yaml")
	data := []byte("player:\n  lives: 7\ncombat:\n  contact_damage: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSuperhero(path)
	if err != nil {
		t.Fatalf("LoadSuperhero: %v", err)
	}
	if cfg.Player.Lives != 7 || cfg.Combat.ContactDamage != 5 {
		t.Errorf("overrides not applied: lives=%d contact=%d", cfg.Player.Lives, cfg.Combat.ContactDamage)
	}
	if cfg.World.Width != 800 || cfg.Projectile.Speed != 12 {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestLoadSuperheroErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSuperhero(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSuperhero(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadSuperhero(invalid)
	if err == nil {
		t.Error("expected validation error for zero lives")
	}
	if cfg != DefaultSuperheroConfig() {
		t.Error("failed load should return the defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SuperheroConfig)
		ok     bool
	}{
		{"defaults", func(*SuperheroConfig) {}, true},
		{"zero width", func(c *SuperheroConfig) { c.World.Width = 0 }, false},
		{"negative stars", func(c *SuperheroConfig) { c.World.Stars = -1 }, false},
		{"zero player height", func(c *SuperheroConfig) { c.Player.Height = 0 }, false},
		{"zero max health", func(c *SuperheroConfig) { c.Player.MaxHealth = 0 }, false},
		{"zero weapon tier", func(c *SuperheroConfig) { c.Player.MaxWeaponTier = 0 }, false},
		{"weapon tier above 3", func(c *SuperheroConfig) { c.Player.MaxWeaponTier = 5 }, false},
		{"weapon tier 2", func(c *SuperheroConfig) { c.Player.MaxWeaponTier = 2 }, true},
		{"max health above 100", func(c *SuperheroConfig) { c.Player.MaxHealth = 250 }, false},
		{"max health 60", func(c *SuperheroConfig) { c.Player.MaxHealth = 60 }, true},
		{"world inside spawn band", func(c *SuperheroConfig) { c.World.Height = 250 }, false},
		{"world just above spawn band", func(c *SuperheroConfig) { c.World.Height = 251 }, true},
		{"negative cooldown", func(c *SuperheroConfig) { c.Player.ShootCooldown = -1 }, false},
		{"zero projectile speed", func(c *SuperheroConfig) { c.Projectile.Speed = 0 }, false},
		{"zero damage", func(c *SuperheroConfig) { c.Projectile.Damage = 0 }, false},
		{"no contact damage", func(c *SuperheroConfig) { c.Combat.ContactDamage = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSuperheroConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadRejectsOverCapTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superhero.yaml")
	data := []byte("player:\n  max_weapon_tier: 5\n  max_health: 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSuperhero(path)
	if err == nil {
		t.Fatal("expected error for tier and health above their caps")
	}
	if cfg.Player.MaxWeaponTier != WeaponTierCap || cfg.Player.MaxHealth != MaxHealthCap {
		t.Errorf("fallback config %+v should be the defaults", cfg.Player)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		contact int
	}{
		{DifficultyEasy, 5, 10},
		{DifficultyNormal, 3, 15},
		{DifficultyHard, 2, 20},
		{"", 3, 15},
	}

	for _, tt := range tests {
		cfg := DefaultSuperheroConfig()
		ApplySuperheroPreset(&cfg, tt.preset)
		if cfg.Player.Lives != tt.lives || cfg.Combat.ContactDamage != tt.contact {
			t.Errorf("preset %q: lives=%d contact=%d, expected %d/%d",
				tt.preset, cfg.Player.Lives, cfg.Combat.ContactDamage, tt.lives, tt.contact)
		}
		if cfg.Projectile != DefaultSuperheroConfig().Projectile {
			t.Errorf("preset %q should not touch projectile tuning", tt.preset)
		}
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, s := range []string{"", "easy", "Normal", " HARD "} {
		if _, err := ParseDifficultyPreset(s); err != nil {
			t.Errorf("ParseDifficultyPreset(%q): %v", s, err)
		}
	}
	if _, err := ParseDifficultyPreset("nightmare"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
