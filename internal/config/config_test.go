package config

import (
	"strings"
	"testing"

	"github.com/atomicstack/dragmenu/internal/app"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected terminal-sized viewport, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.SeedPath != "" || cfg.App.MetricsAddr != "" || cfg.App.Print {
		t.Fatalf("unexpected defaults %+v", cfg.App)
	}
	if len(cfg.App.Moves) != 0 {
		t.Fatalf("expected no moves, got %v", cfg.App.Moves)
	}
}

func TestLoadArgsReadsEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{
		"DRAGMENU_WIDTH=42",
		"DRAGMENU_FOOTER=true",
		"DRAGMENU_TRACE=1",
		"DRAGMENU_SEED=/tmp/seed.toml",
		"DRAGMENU_METRICS_ADDR=127.0.0.1:9100",
		"DRAGMENU_LOG_FILE=/tmp/dragmenu.log",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 42 || !cfg.App.ShowFooter {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/dragmenu.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.App.SeedPath != "/tmp/seed.toml" || cfg.App.MetricsAddr != "127.0.0.1:9100" {
		t.Fatalf("unexpected seed/metrics %+v", cfg.App)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-width", "10", "-verbose"}, []string{"DRAGMENU_WIDTH=42", "DRAGMENU_VERBOSE=false"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 10 {
		t.Fatalf("expected flag width 10, got %d", cfg.App.Width)
	}
	if !cfg.App.Verbose || !cfg.Features.Verbose {
		t.Fatalf("expected verbose from flag")
	}
	if cfg.Flags["width"] != "10" || cfg.Flags["verbose"] != "true" {
		t.Fatalf("unexpected flags map %v", cfg.Flags)
	}
}

func TestInvalidEnvironmentFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"DRAGMENU_HEIGHT=tall", "DRAGMENU_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Height != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected defaults for unparsable env, got %+v", cfg.App)
	}
}

func TestNegativeDimensionsRejected(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-3"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestRepeatedMoves(t *testing.T) {
	cfg, err := LoadArgs([]string{"-print", "-move", "1:9", "-move", " 4 : 2 "}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.Print {
		t.Fatalf("expected print mode")
	}
	want := []app.Move{{Drag: "1", Hover: "9"}, {Drag: "4", Hover: "2"}}
	if len(cfg.App.Moves) != len(want) {
		t.Fatalf("expected %d moves, got %v", len(want), cfg.App.Moves)
	}
	for i := range want {
		if cfg.App.Moves[i] != want[i] {
			t.Fatalf("move %d: expected %v, got %v", i, want[i], cfg.App.Moves[i])
		}
	}
	if cfg.Flags["moves"] != "1:9,4:2" {
		t.Fatalf("unexpected moves flag %q", cfg.Flags["moves"])
	}
}

func TestMalformedMoveRejected(t *testing.T) {
	for _, bad := range []string{"1", ":9", "1:", ""} {
		_, err := LoadArgs([]string{"-move", bad}, nil)
		if err == nil || !strings.Contains(err.Error(), "drag:hover") {
			t.Fatalf("expected drag:hover error for %q, got %v", bad, err)
		}
	}
}

func TestValidateMetricsAddr(t *testing.T) {
	ok := Config{App: app.Config{MetricsAddr: "127.0.0.1:9100"}}
	if err := Validate(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, addr := range []string{"localhost", "127.0.0.1:"} {
		cfg := Config{App: app.Config{MetricsAddr: addr}}
		if err := Validate(cfg); err == nil {
			t.Fatalf("expected error for metrics addr %q", addr)
		}
	}
}

func TestValidateMoves(t *testing.T) {
	cfg := Config{App: app.Config{Moves: []app.Move{{Drag: "1", Hover: ""}}}}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for incomplete move")
	}
}
