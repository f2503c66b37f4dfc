package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rlla/contrib-reward/go-scorer/internal/score"
)

const fixtureJSON = `{
  "description": "value-delta smoke fixture",
  "config": {
    "policy": "c1",
    "beta": 0.05,
    "min_reasoning_words": 3
  },
  "steps": [
    {
      "step": 0,
      "response": "<think>planning the next tool call in detail</think>",
      "prev_value_est": 0.3,
      "cur_value_est": 0.5,
      "task_complexity": 1.0,
      "format_score": 1.0,
      "correct_score": 0.0,
      "length_score": 0.0
    }
  ],
  "expected_results": [
    {"step": 0, "total": 1.01, "contribution": 0.2}
  ]
}`

func TestLoadFixture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.json")
	if err := os.WriteFile(path, []byte(fixtureJSON), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if f.Description != "value-delta smoke fixture" {
		t.Fatalf("description mismatch: %q", f.Description)
	}
	if len(f.Steps) != 1 || len(f.ExpectedResults) != 1 {
		t.Fatalf("expected 1 step and 1 expectation, got %d/%d", len(f.Steps), len(f.ExpectedResults))
	}

	cfg := f.Config.ToScoreConfig()
	if cfg.Policy != score.PolicyC1 || cfg.Beta != 0.05 {
		t.Fatalf("config conversion mismatch: %+v", cfg)
	}
	if cfg.Contrib.MinReasoningWords != 3 {
		t.Fatalf("threshold override not applied: %d", cfg.Contrib.MinReasoningWords)
	}
	// Unset thresholds keep their defaults.
	if cfg.Contrib.FallbackLengthNorm != score.DefaultScoreConfig().Contrib.FallbackLengthNorm {
		t.Fatalf("unset threshold must keep default, got %d", cfg.Contrib.FallbackLengthNorm)
	}

	in := f.Steps[0].ToStepInput()
	if in.Prev.ValueEst.(float64) != 0.3 || in.Cur.ValueEst.(float64) != 0.5 {
		t.Fatalf("value estimates not carried over: %+v", in)
	}

	// The loaded fixture must replay cleanly end to end.
	_, summary := NewHarness(DefaultReplayConfig()).Run(f)
	if summary.Mismatches != 0 {
		t.Fatalf("fixture replay mismatched: %+v", summary)
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestLoadFixtureMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected parse error")
	}
}
