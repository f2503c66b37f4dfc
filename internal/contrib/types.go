package contrib

// #region task-type

// TaskType categorizes a task for the advanced value-delta policy.
type TaskType string

const (
	TaskMultiStep   TaskType = "multi_step"
	TaskExploration TaskType = "exploration"
	TaskGeneral     TaskType = "general"
)

// #endregion task-type

// #region task-info

// TaskInfo carries task-level characteristics into the advanced
// value-delta policy.
type TaskInfo struct {
	TaskType        TaskType `json:"task_type"`
	ExpectedSteps   int      `json:"expected_steps"`
	CurrentProgress float64  `json:"current_progress"`
}

// #endregion task-info

// #region config

// ContribConfig holds tuning knobs for the contribution policies.
type ContribConfig struct {
	MinReasoningWords    int     // reasoning segments with fewer words count as "too short"
	FallbackLengthNorm   int     // word count at which the text fallback's length term saturates
	StepDecayHorizon     float64 // steps over which the linear reward decay runs
	StepFactorFloor      float64 // decay floor, keeps late-step rewards above zero
	MinComplexity        float64 // lower clamp on task_complexity
	DefaultExpectedSteps int     // expected_steps fallback for the advanced policy
}

// DefaultContribConfig returns sensible defaults.
func DefaultContribConfig() ContribConfig {
	return ContribConfig{
		MinReasoningWords:    5,
		FallbackLengthNorm:   50,
		StepDecayHorizon:     100.0,
		StepFactorFloor:      0.1,
		MinComplexity:        0.1,
		DefaultExpectedSteps: 50,
	}
}

// #endregion config
