package config

import (
	"flag"
	"testing"
)

func TestBuildConfigFromFlagsRequiresSrc(t *testing.T) {
	_, err := BuildConfigFromFlags(nil)
	if err != flag.ErrHelp {
		t.Errorf("BuildConfigFromFlags(nil) error = %v, want flag.ErrHelp", err)
	}
}

func TestBuildConfigFromFlagsDefaultsOutputFromSrc(t *testing.T) {
	cfg, err := BuildConfigFromFlags([]string{"ImGui.h"})
	if err != nil {
		t.Fatalf("BuildConfigFromFlags() error = %v", err)
	}
	if cfg.Src != "ImGui.h" {
		t.Errorf("cfg.Src = %q, want %q", cfg.Src, "ImGui.h")
	}
	if cfg.Output != "ImGui" {
		t.Errorf("cfg.Output = %q, want %q", cfg.Output, "ImGui")
	}
	if cfg.CacheDB == "" {
		t.Error("cfg.CacheDB should default to a non-empty path")
	}
}

func TestBuildConfigFromFlagsHonorsExplicitOutput(t *testing.T) {
	cfg, err := BuildConfigFromFlags([]string{"--output", "out/Bindings", "ImGui.h"})
	if err != nil {
		t.Fatalf("BuildConfigFromFlags() error = %v", err)
	}
	if cfg.Output != "out/Bindings" {
		t.Errorf("cfg.Output = %q, want %q", cfg.Output, "out/Bindings")
	}
}

func TestBuildConfigFromFlagsParsesBoolFlags(t *testing.T) {
	cfg, err := BuildConfigFromFlags([]string{"--verbose", "--json", "--no-cache", "ImGui.h"})
	if err != nil {
		t.Fatalf("BuildConfigFromFlags() error = %v", err)
	}
	if !cfg.Verbose || !cfg.JSON || !cfg.NoCache {
		t.Errorf("cfg = %+v, want Verbose, JSON, NoCache all true", cfg)
	}
}

func TestPeekEnvFile(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--env-file", ".env.local", "ImGui.h"}, ".env.local"},
		{[]string{"--env-file=.env.prod", "ImGui.h"}, ".env.prod"},
		{[]string{"ImGui.h"}, ""},
	}
	for _, c := range cases {
		if got := peekEnvFile(c.args); got != c.want {
			t.Errorf("peekEnvFile(%v) = %q, want %q", c.args, got, c.want)
		}
	}
}
