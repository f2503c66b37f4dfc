package replay

import (
	"math"

	"github.com/rlla/contrib-reward/go-scorer/internal/audit"
	"github.com/rlla/contrib-reward/go-scorer/internal/score"
)

// #region types

// ReplayConfig holds tolerances for fixture comparison.
type ReplayConfig struct {
	Tolerance float64 // allowed |got - want| per compared value
}

// DefaultReplayConfig returns sensible defaults.
func DefaultReplayConfig() ReplayConfig {
	return ReplayConfig{Tolerance: 1e-6}
}

// ReplayResult captures the outcome of re-scoring one recorded step.
type ReplayResult struct {
	Step  int
	Got   score.StepScore
	Want  *FixtureExpected // nil when the fixture has no expectation for this step
	Match bool             // true when Want is present and both values agree
	Delta float64          // worst absolute deviation from the expectation
}

// ReplaySummary provides aggregate stats from a replay run.
type ReplaySummary struct {
	TotalSteps int
	Matches    int
	Mismatches int
	Unchecked  int
	WorstDelta float64
	Audit      audit.AuditResult
}

// #endregion types

// #region harness

// Harness re-scores recorded steps through the composite scorer and compares
// the results against fixture expectations.
type Harness struct {
	config ReplayConfig
}

// NewHarness creates a replay harness with the given configuration.
func NewHarness(config ReplayConfig) *Harness {
	return &Harness{config: config}
}

// Run replays every step of a fixture under its own score configuration.
// Scoring is deterministic, so any mismatch means either the fixture or the
// policies changed.
func (h *Harness) Run(f *Fixture) ([]ReplayResult, ReplaySummary) {
	scoreCfg := f.Config.ToScoreConfig()
	scorer := score.NewScorer(scoreCfg)

	expected := make(map[int]*FixtureExpected, len(f.ExpectedResults))
	for i := range f.ExpectedResults {
		e := &f.ExpectedResults[i]
		expected[e.Step] = e
	}

	results := make([]ReplayResult, 0, len(f.Steps))
	scores := make([]score.StepScore, 0, len(f.Steps))
	summary := ReplaySummary{TotalSteps: len(f.Steps)}

	for _, fs := range f.Steps {
		got := scorer.Score(fs.ToStepInput())
		scores = append(scores, got)

		r := ReplayResult{Step: fs.Step, Got: got, Want: expected[fs.Step]}
		if r.Want == nil {
			summary.Unchecked++
			results = append(results, r)
			continue
		}

		totalDelta := math.Abs(got.Total - r.Want.Total)
		contribDelta := math.Abs(got.Contribution - r.Want.Contribution)
		r.Delta = math.Max(totalDelta, contribDelta)
		r.Match = r.Delta <= h.config.Tolerance

		if r.Match {
			summary.Matches++
		} else {
			summary.Mismatches++
		}
		if r.Delta > summary.WorstDelta {
			summary.WorstDelta = r.Delta
		}
		results = append(results, r)
	}

	summary.Audit = audit.NewAuditor(audit.DefaultAuditConfig()).Run(scores, scoreCfg.Beta)
	return results, summary
}

// #endregion harness
