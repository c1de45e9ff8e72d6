package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/dragmenu/internal/app"
	"github.com/atomicstack/dragmenu/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Verbose:    true,
			SeedPath:   "seed.toml",
			Moves:      []app.Move{{Drag: "1", Hover: "9"}},
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"verbose": "true",
			"seed":    "seed.toml",
			"moves":   "1:9",
		},
		Args: []string{"-seed", "seed.toml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["seed"] != "seed.toml" {
		t.Fatalf("expected seed flag %q, got %v", "seed.toml", flagsValue["seed"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["moves"] != "1:9" {
		t.Fatalf("expected moves 1:9, got %v", flagsValue["moves"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if !reflect.DeepEqual(cfgValue.App, cfg.App) {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestRunPrintMode(t *testing.T) {
	cfg, err := config.LoadArgs([]string{"-print", "-move", "sub1:9"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "move sub1:9: top-level\n") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestReportErrorExitCodes(t *testing.T) {
	var stderr bytes.Buffer
	seedErr := fmt.Errorf("%w: bad file", app.ErrSeed)
	if code := reportError(&stderr, seedErr); code != 2 {
		t.Fatalf("expected exit code 2 for seed errors, got %d", code)
	}
	if !strings.HasPrefix(stderr.String(), "Configuration error:") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
	stderr.Reset()
	if code := reportError(&stderr, errors.New("boom")); code != 1 {
		t.Fatalf("expected exit code 1 for runtime errors, got %d", code)
	}
	if stderr.String() != "Error: boom\n" {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}
