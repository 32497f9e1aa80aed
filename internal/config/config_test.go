package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	emptyPath := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(emptyPath, []byte(""), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(emptyPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PaneWidth != DefaultPaneWidth {
		t.Fatalf("PaneWidth = %d, want %d", cfg.PaneWidth, DefaultPaneWidth)
	}
	if cfg.TabSize != DefaultTabSize {
		t.Fatalf("TabSize = %d, want %d", cfg.TabSize, DefaultTabSize)
	}
	if cfg.Theme != DefaultThemeName {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, DefaultThemeName)
	}
	if cfg.UseDisplayWidth != DefaultUseDisplayWidth {
		t.Fatalf("UseDisplayWidth = %v, want %v", cfg.UseDisplayWidth, DefaultUseDisplayWidth)
	}
}

func TestLoadValidFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".synless.yaml")
	content := "pane_width: 120\ntab_size: 2\ntheme: light\nuse_display_width: false\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PaneWidth != 120 {
		t.Fatalf("PaneWidth = %d, want 120", cfg.PaneWidth)
	}
	if cfg.TabSize != 2 {
		t.Fatalf("TabSize = %d, want 2", cfg.TabSize)
	}
	if cfg.Theme != "light" {
		t.Fatalf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.UseDisplayWidth {
		t.Fatalf("UseDisplayWidth = true, want false")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero pane width", Config{PaneWidth: 0, TabSize: 4, Theme: "dark"}, ErrInvalidPaneWidth},
		{"negative tab size", Config{PaneWidth: 80, TabSize: -1, Theme: "dark"}, ErrInvalidTabSize},
		{"unknown theme", Config{PaneWidth: 80, TabSize: 4, Theme: "nonexistent"}, ErrUnknownTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, want an error")
			}
			if tt.want == ErrUnknownTheme {
				return
			}
			if err != tt.want {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResolveThemeFallsBackOnUnknownName(t *testing.T) {
	cfg := Config{Theme: "nonexistent"}
	theme := cfg.ResolveTheme()
	if theme == nil {
		t.Fatalf("ResolveTheme returned nil")
	}
}
