package config

import "testing"

func TestConfigZeroValue(t *testing.T) {
	var cfg Config
	if cfg.Src != "" || cfg.NoCache || cfg.Verbose {
		t.Errorf("zero-value Config should have empty/false fields, got %+v", cfg)
	}
}
