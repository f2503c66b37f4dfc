package rewardlog

import "time"

// #region episode

// Episode groups the step scores of one rollout under the scoring
// configuration that produced them.
type Episode struct {
	EpisodeID  string
	Experiment string
	Policy     string
	Beta       float64
	CreatedAt  time.Time
}

// #endregion episode

// #region step-record

// StepRecord is a single row in the step_scores table: the step's inputs as
// the training loop supplied them, and the composite score that came back.
type StepRecord struct {
	ID             int64
	EpisodeID      string
	Step           int
	Response       string
	PrevDictJSON   string
	CurDictJSON    string
	TaskComplexity float64
	TaskInfoJSON   string // empty when the step carried no task info
	Format         float64
	Correctness    float64
	Length         float64
	Contribution   float64
	Total          float64
	CreatedAt      time.Time
}

// #endregion step-record
