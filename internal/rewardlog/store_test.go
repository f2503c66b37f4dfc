package rewardlog

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rlla/contrib-reward/go-scorer/internal/contrib"
	"github.com/rlla/contrib-reward/go-scorer/internal/score"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func strptr(s string) *string { return &s }

func TestCreateEpisodeAndGet(t *testing.T) {
	s := tempStore(t)

	cfg := score.DefaultScoreConfig()
	cfg.Policy = score.PolicyC1
	cfg.Beta = 0.05

	ep, err := s.CreateEpisode("qwen_test", cfg)
	if err != nil {
		t.Fatalf("CreateEpisode: %v", err)
	}
	if ep.EpisodeID == "" {
		t.Fatal("expected non-empty episode ID")
	}

	got, err := s.GetEpisode(ep.EpisodeID)
	if err != nil {
		t.Fatalf("GetEpisode: %v", err)
	}
	if got.Experiment != "qwen_test" || got.Policy != "c1" || got.Beta != 0.05 {
		t.Fatalf("episode round-trip mismatch: %+v", got)
	}
}

func TestLogStepAndReadBack(t *testing.T) {
	s := tempStore(t)

	cfg := score.DefaultScoreConfig()
	cfg.Policy = score.PolicyC0
	ep, err := s.CreateEpisode("exp", cfg)
	if err != nil {
		t.Fatalf("CreateEpisode: %v", err)
	}

	in := score.StepInput{
		Response:       "<think>working through the problem in several words</think>",
		Step:           3,
		Prev:           score.StepDict{BBHash: strptr("{}")},
		Cur:            score.StepDict{BBHash: strptr("{\"LAX\":1}"), ValueEst: 0.7},
		TaskComplexity: 2.5,
		TaskInfo:       &contrib.TaskInfo{TaskType: contrib.TaskExploration, ExpectedSteps: 8},
	}
	sc := score.StepScore{Total: 2.05, Format: 1.0, Correctness: 1.0, Contribution: 1.0}

	if err := s.LogStep(ep.EpisodeID, in, sc); err != nil {
		t.Fatalf("LogStep: %v", err)
	}

	steps, err := s.Steps(ep.EpisodeID)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}

	rec := steps[0]
	if rec.Step != 3 || rec.Total != 2.05 || rec.Contribution != 1.0 {
		t.Fatalf("step round-trip mismatch: %+v", rec)
	}
	if rec.TaskComplexity != 2.5 {
		t.Fatalf("task complexity round-trip mismatch: %+v", rec)
	}
	var info contrib.TaskInfo
	if err := json.Unmarshal([]byte(rec.TaskInfoJSON), &info); err != nil {
		t.Fatalf("unmarshal task info: %v", err)
	}
	if info.TaskType != contrib.TaskExploration || info.ExpectedSteps != 8 {
		t.Fatalf("task info round-trip mismatch: %+v", info)
	}

	// Stored dicts must reconstruct the original scoring inputs.
	var cur score.StepDict
	if err := json.Unmarshal([]byte(rec.CurDictJSON), &cur); err != nil {
		t.Fatalf("unmarshal cur dict: %v", err)
	}
	if cur.BBHash == nil || *cur.BBHash != "{\"LAX\":1}" {
		t.Fatalf("cur dict bb_hash mismatch: %+v", cur)
	}
	if est, ok := cur.ValueEst.(float64); !ok || est != 0.7 {
		t.Fatalf("cur dict value_est mismatch: %+v", cur.ValueEst)
	}
}

func TestStepsOrderedByIndex(t *testing.T) {
	s := tempStore(t)
	ep, err := s.CreateEpisode("exp", score.DefaultScoreConfig())
	if err != nil {
		t.Fatalf("CreateEpisode: %v", err)
	}

	for _, step := range []int{2, 0, 1} {
		in := score.StepInput{Step: step}
		if err := s.LogStep(ep.EpisodeID, in, score.StepScore{}); err != nil {
			t.Fatalf("LogStep: %v", err)
		}
	}

	steps, err := s.Steps(ep.EpisodeID)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	for i, rec := range steps {
		if rec.Step != i {
			t.Fatalf("expected step %d at position %d, got %d", i, i, rec.Step)
		}
	}
}

func TestRecentEpisodesLimit(t *testing.T) {
	s := tempStore(t)
	for i := 0; i < 5; i++ {
		if _, err := s.CreateEpisode("exp", score.DefaultScoreConfig()); err != nil {
			t.Fatalf("CreateEpisode: %v", err)
		}
	}

	eps, err := s.RecentEpisodes(3)
	if err != nil {
		t.Fatalf("RecentEpisodes: %v", err)
	}
	if len(eps) != 3 {
		t.Fatalf("expected 3 episodes, got %d", len(eps))
	}
}

func TestLatestEpisode(t *testing.T) {
	s := tempStore(t)
	if _, err := s.LatestEpisode(); err == nil {
		t.Fatal("expected error on empty store")
	}

	if _, err := s.CreateEpisode("first", score.DefaultScoreConfig()); err != nil {
		t.Fatalf("CreateEpisode: %v", err)
	}

	got, err := s.LatestEpisode()
	if err != nil {
		t.Fatalf("LatestEpisode: %v", err)
	}
	if got.Experiment != "first" {
		t.Fatalf("expected latest episode, got %+v", got)
	}
}
