package score

import (
	"github.com/rlla/contrib-reward/go-scorer/internal/contrib"
)

// #region scorer

// Scorer computes the composite per-step reward:
// format + correctness + length + beta * contribution.
type Scorer struct {
	config ScoreConfig
}

// NewScorer creates a scorer with the given configuration.
func NewScorer(config ScoreConfig) *Scorer {
	return &Scorer{config: config}
}

// Config returns the immutable configuration the scorer was built with.
func (s *Scorer) Config() ScoreConfig {
	return s.config
}

// Score computes the composite score for one step. Pure and total: every
// input, however degenerate, yields a defined result.
func (s *Scorer) Score(in StepInput) StepScore {
	contribution := s.contribution(in)
	return StepScore{
		Total:        in.FormatScore + in.CorrectScore + in.LengthScore + s.config.Beta*contribution,
		Format:       in.FormatScore,
		Correctness:  in.CorrectScore,
		Length:       in.LengthScore,
		Contribution: contribution,
	}
}

// #endregion scorer

// #region dispatch

// contribution dispatches to the configured policy. Each policy prefers its
// explicit signal (bb_hash pair, value_est) and falls back to its text-only
// form when the step dicts do not carry it.
func (s *Scorer) contribution(in StepInput) float64 {
	switch s.config.Policy {
	case PolicyC0:
		if in.Prev.BBHash != nil && in.Cur.BBHash != nil {
			return contrib.BinaryStateDiff(*in.Prev.BBHash, *in.Cur.BBHash)
		}
		return contrib.BinaryResponse(in.Response, in.Step, s.config.Contrib)

	case PolicyC1:
		if in.Prev.ValueEst != nil || in.Cur.ValueEst != nil {
			if in.TaskInfo != nil {
				return contrib.ValueDeltaAdvanced(in.Prev.ValueEst, in.Cur.ValueEst, in.Step, in.TaskInfo, s.config.Contrib)
			}
			complexity := in.TaskComplexity
			if complexity <= 0 {
				complexity = 1.0
			}
			return contrib.ValueDelta(in.Prev.ValueEst, in.Cur.ValueEst, in.Step, complexity, s.config.Contrib)
		}
		base := in.FormatScore + in.CorrectScore + in.LengthScore
		return contrib.ValueDeltaText(in.Response, in.Step, base, s.config.Contrib)
	}
	return 0.0
}

// #endregion dispatch
