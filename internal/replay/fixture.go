package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rlla/contrib-reward/go-scorer/internal/contrib"
	"github.com/rlla/contrib-reward/go-scorer/internal/score"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a scoring replay fixture.
type Fixture struct {
	Description     string            `json:"description"`
	Config          FixtureConfig     `json:"config"`
	Steps           []FixtureStep     `json:"steps"`
	ExpectedResults []FixtureExpected `json:"expected_results"`
}

// FixtureConfig mirrors score.ScoreConfig with JSON tags. Zero-valued
// threshold fields fall back to the contrib defaults.
type FixtureConfig struct {
	Policy             string  `json:"policy"`
	Beta               float64 `json:"beta"`
	MinReasoningWords  int     `json:"min_reasoning_words,omitempty"`
	FallbackLengthNorm int     `json:"fallback_length_norm,omitempty"`
}

// FixtureStep mirrors score.StepInput with JSON tags.
type FixtureStep struct {
	Step           int               `json:"step"`
	Response       string            `json:"response,omitempty"`
	PrevBBHash     *string           `json:"prev_bb_hash,omitempty"`
	CurBBHash      *string           `json:"cur_bb_hash,omitempty"`
	PrevValueEst   any               `json:"prev_value_est,omitempty"`
	CurValueEst    any               `json:"cur_value_est,omitempty"`
	TaskComplexity float64           `json:"task_complexity,omitempty"`
	TaskInfo       *contrib.TaskInfo `json:"task_info,omitempty"`
	FormatScore    float64           `json:"format_score"`
	CorrectScore   float64           `json:"correct_score"`
	LengthScore    float64           `json:"length_score"`
}

// FixtureExpected captures the expected scores for one step.
type FixtureExpected struct {
	Step         int     `json:"step"`
	Total        float64 `json:"total"`
	Contribution float64 `json:"contribution"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToScoreConfig converts a FixtureConfig to a domain ScoreConfig.
func (fc *FixtureConfig) ToScoreConfig() score.ScoreConfig {
	cfg := score.DefaultScoreConfig()
	cfg.Policy = score.PolicyID(fc.Policy)
	cfg.Beta = fc.Beta
	if fc.MinReasoningWords > 0 {
		cfg.Contrib.MinReasoningWords = fc.MinReasoningWords
	}
	if fc.FallbackLengthNorm > 0 {
		cfg.Contrib.FallbackLengthNorm = fc.FallbackLengthNorm
	}
	return cfg
}

// ToStepInput converts a FixtureStep to a domain StepInput.
func (fs *FixtureStep) ToStepInput() score.StepInput {
	return score.StepInput{
		Response:       fs.Response,
		Step:           fs.Step,
		Prev:           score.StepDict{BBHash: fs.PrevBBHash, ValueEst: fs.PrevValueEst},
		Cur:            score.StepDict{BBHash: fs.CurBBHash, ValueEst: fs.CurValueEst},
		TaskComplexity: fs.TaskComplexity,
		TaskInfo:       fs.TaskInfo,
		FormatScore:    fs.FormatScore,
		CorrectScore:   fs.CorrectScore,
		LengthScore:    fs.LengthScore,
	}
}

// #endregion fixture-loader
