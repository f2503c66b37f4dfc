package score

import (
	"strings"

	"github.com/rlla/contrib-reward/go-scorer/internal/contrib"
)

// #region policy-id

// PolicyID selects which contribution policy the composite scorer invokes.
type PolicyID string

const (
	PolicyOff PolicyID = "off"
	PolicyC0  PolicyID = "c0"
	PolicyC1  PolicyID = "c1"
)

// ParsePolicy maps the training loop's CONTRIBUTION/CONTRIB_TYPE surface onto
// a PolicyID. Anything unrecognized disables the contribution term.
func ParsePolicy(enabled bool, contribType string) PolicyID {
	if !enabled {
		return PolicyOff
	}
	switch strings.ToUpper(strings.TrimSpace(contribType)) {
	case "C0":
		return PolicyC0
	case "C1":
		return PolicyC1
	}
	return PolicyOff
}

// #endregion policy-id

// #region config

// ScoreConfig is built once at training-loop start and passed into every
// scoring call; the policies never read ambient process state.
type ScoreConfig struct {
	Policy  PolicyID
	Beta    float64 // weight on the contribution term, non-negative
	Contrib contrib.ContribConfig
}

// DefaultScoreConfig returns a configuration with the contribution term
// disabled, matching a reward scheme that has no contribution component.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		Policy:  PolicyOff,
		Beta:    0.05,
		Contrib: contrib.DefaultContribConfig(),
	}
}

// #endregion config

// #region step-dict

// StepDict is the per-step auxiliary dictionary handed over by the training
// loop. Field names mirror the loop's JSON keys. ValueEst stays untyped
// because the loop may send numbers or malformed strings and the policy must
// degrade to 0.0, not fail.
type StepDict struct {
	BBHash   *string `json:"bb_hash,omitempty"`
	ValueEst any     `json:"value_est,omitempty"`
}

// #endregion step-dict

// #region step-input

// StepInput bundles everything the composite scorer needs for one step.
// Format, correctness, and length scores are computed by the training loop;
// this module only folds them together with the contribution term.
type StepInput struct {
	Response       string
	Step           int
	Prev           StepDict
	Cur            StepDict
	TaskComplexity float64
	TaskInfo       *contrib.TaskInfo

	FormatScore  float64
	CorrectScore float64
	LengthScore  float64
}

// #endregion step-input

// #region step-score

// StepScore is the composite result for one step.
type StepScore struct {
	Total        float64
	Format       float64
	Correctness  float64
	Length       float64
	Contribution float64
}

// #endregion step-score
