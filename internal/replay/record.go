package replay

import (
	"encoding/json"
	"fmt"

	"github.com/rlla/contrib-reward/go-scorer/internal/contrib"
	"github.com/rlla/contrib-reward/go-scorer/internal/rewardlog"
	"github.com/rlla/contrib-reward/go-scorer/internal/score"
)

// #region record-conversion

// FixtureFromRecords rebuilds a replay fixture from an episode's logged
// steps, with the stored totals as expectations. Every scoring input the
// store persists is carried over, so a clean episode replays clean.
func FixtureFromRecords(ep rewardlog.Episode, steps []rewardlog.StepRecord) (*Fixture, error) {
	f := &Fixture{
		Description: fmt.Sprintf("episode %s (%s)", ep.EpisodeID, ep.Experiment),
		Config:      FixtureConfig{Policy: ep.Policy, Beta: ep.Beta},
	}
	for _, rec := range steps {
		var prev, cur score.StepDict
		if err := json.Unmarshal([]byte(rec.PrevDictJSON), &prev); err != nil {
			return nil, fmt.Errorf("step %d prev dict: %w", rec.Step, err)
		}
		if err := json.Unmarshal([]byte(rec.CurDictJSON), &cur); err != nil {
			return nil, fmt.Errorf("step %d cur dict: %w", rec.Step, err)
		}
		var info *contrib.TaskInfo
		if rec.TaskInfoJSON != "" {
			info = &contrib.TaskInfo{}
			if err := json.Unmarshal([]byte(rec.TaskInfoJSON), info); err != nil {
				return nil, fmt.Errorf("step %d task info: %w", rec.Step, err)
			}
		}
		f.Steps = append(f.Steps, FixtureStep{
			Step:           rec.Step,
			Response:       rec.Response,
			PrevBBHash:     prev.BBHash,
			CurBBHash:      cur.BBHash,
			PrevValueEst:   prev.ValueEst,
			CurValueEst:    cur.ValueEst,
			TaskComplexity: rec.TaskComplexity,
			TaskInfo:       info,
			FormatScore:    rec.Format,
			CorrectScore:   rec.Correctness,
			LengthScore:    rec.Length,
		})
		f.ExpectedResults = append(f.ExpectedResults, FixtureExpected{
			Step:         rec.Step,
			Total:        rec.Total,
			Contribution: rec.Contribution,
		})
	}
	return f, nil
}

// #endregion record-conversion
