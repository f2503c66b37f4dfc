package contrib

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/rlla/contrib-reward/go-scorer/internal/textparse"
)

// #region fingerprint

// Fingerprint returns a deterministic hex digest of a serialized state
// snapshot. Equal content gives equal digests; any byte difference changes
// the digest. Absent snapshots are treated as the empty string by callers.
func Fingerprint(stateText string) string {
	sum := md5.Sum([]byte(stateText))
	return hex.EncodeToString(sum[:])
}

// #endregion fingerprint

// #region binary

// BinaryStateDiff is the C-0 policy in its state-diff form: 1 when the
// blackboard snapshot changed between two steps, 0 otherwise.
func BinaryStateDiff(prevState, curState string) float64 {
	if Fingerprint(prevState) != Fingerprint(curState) {
		return 1.0
	}
	return 0.0
}

// BinaryResponse is the C-0 policy in its response-quality form: 1 when the
// response carries non-trivial reasoning or a tool invocation, 0 otherwise.
// step is accepted for parity with the other policies and does not affect
// the outcome.
func BinaryResponse(response string, step int, cfg ContribConfig) float64 {
	_ = step
	reasoning := textparse.ExtractReasoning(response)
	if textparse.WordCount(reasoning) >= cfg.MinReasoningWords {
		return 1.0
	}
	if textparse.ExtractToolCall(response) != "" {
		return 1.0
	}
	return 0.0
}

// #endregion binary

// #region value-delta

// ValueDelta is the C-1 policy: reward positive movement of the critic's
// value estimate, normalized by task complexity and decayed over the step
// horizon. Estimates arrive untyped from the training loop; anything that
// does not coerce to a finite number yields 0.0 rather than an error.
func ValueDelta(prevV, curV any, step int, taskComplexity float64, cfg ContribConfig) float64 {
	prev, ok := toNumber(prevV)
	if !ok {
		return 0.0
	}
	cur, ok := toNumber(curV)
	if !ok {
		return 0.0
	}

	improvement := cur - prev
	if improvement <= 0 {
		return 0.0
	}

	normalized := improvement / math.Max(taskComplexity, cfg.MinComplexity)
	return clip(normalized*stepFactor(step, cfg), 0.0, 1.0)
}

// ValueDeltaText is the text-only fallback for C-1, used when no critic value
// estimate is available. The improvement proxy combines response length with
// structural richness (reasoning segment, tool invocation), scaled by the
// caller's current base score and the same step decay as ValueDelta.
func ValueDeltaText(response string, step int, currentScore float64, cfg ContribConfig) float64 {
	words := textparse.WordCount(response)
	if words == 0 {
		return 0.0
	}

	lengthNorm := cfg.FallbackLengthNorm
	if lengthNorm <= 0 {
		lengthNorm = DefaultContribConfig().FallbackLengthNorm
	}
	proxy := 0.4 * math.Min(1.0, float64(words)/float64(lengthNorm))

	reasoning := textparse.ExtractReasoning(response)
	if textparse.WordCount(reasoning) >= cfg.MinReasoningWords {
		proxy += 0.3
	}
	if textparse.ExtractToolCall(response) != "" {
		proxy += 0.3
	}

	proxy *= clip(currentScore, 0.0, 1.0)
	return clip(proxy*stepFactor(step, cfg), 0.0, 1.0)
}

// stepFactor weights early steps more heavily, floored so late-step rewards
// never vanish from decay alone.
func stepFactor(step int, cfg ContribConfig) float64 {
	horizon := cfg.StepDecayHorizon
	if horizon <= 0 {
		horizon = DefaultContribConfig().StepDecayHorizon
	}
	return math.Max(cfg.StepFactorFloor, 1.0-float64(step)/horizon)
}

// #endregion value-delta

// #region value-delta-advanced

// progressCurve scales a positive improvement according to the task category.
type progressCurve func(improvement float64, step int, info TaskInfo, cfg ContribConfig) float64

// ValueDeltaAdvanced is the task-type-aware variant of C-1. A per-category
// curve scales the raw improvement, then x/(1+|x|) squashes the result into
// (-1, 1) with diminishing returns for large improvements. Non-positive
// improvement and non-numeric estimates yield 0.0, as in ValueDelta.
func ValueDeltaAdvanced(prevV, curV any, step int, info *TaskInfo, cfg ContribConfig) float64 {
	prev, ok := toNumber(prevV)
	if !ok {
		return 0.0
	}
	cur, ok := toNumber(curV)
	if !ok {
		return 0.0
	}

	improvement := cur - prev
	if improvement <= 0 {
		return 0.0
	}

	ti := TaskInfo{TaskType: TaskGeneral}
	if info != nil {
		ti = *info
	}

	raw := curveFor(ti.TaskType)(improvement, step, ti, cfg)
	return raw / (1.0 + math.Abs(raw))
}

// curveFor selects the progress curve for a task type. Unknown types fall
// back to the general curve.
func curveFor(t TaskType) progressCurve {
	switch t {
	case TaskMultiStep:
		return multiStepCurve
	case TaskExploration:
		return explorationCurve
	default:
		return generalCurve
	}
}

// multiStepCurve rewards sustained progress proportionally to how far into
// the expected horizon the step occurs.
func multiStepCurve(improvement float64, step int, info TaskInfo, cfg ContribConfig) float64 {
	expected := info.ExpectedSteps
	if expected <= 0 {
		expected = cfg.DefaultExpectedSteps
	}
	if expected <= 0 {
		expected = DefaultContribConfig().DefaultExpectedSteps
	}
	progress := math.Min(1.0, float64(step)/float64(expected))
	return improvement * (1.0 + progress)
}

// explorationCurve front-loads reward within the first ~20 steps.
func explorationCurve(improvement float64, step int, _ TaskInfo, _ ContribConfig) float64 {
	earlyBonus := math.Max(0.0, 1.0-float64(step)/20.0)
	return improvement * (1.0 + earlyBonus)
}

func generalCurve(improvement float64, _ int, _ TaskInfo, _ ContribConfig) float64 {
	return improvement
}

// #endregion value-delta-advanced

// #region info-gain

// InfoGain is the C-2 interface point, reserved for a vocabulary-diversity
// reward. It is a deliberate no-op until that reward has a real definition;
// callers can rely on it returning 0.0 for every input.
func InfoGain(response string, step int) float64 {
	_ = response
	_ = step
	return 0.0
}

// #endregion info-gain

// #region helpers

// toNumber coerces a raw step-dict value to a finite float64. nil and
// unparsable values report false; the policies degrade to 0.0 instead of
// failing.
func toNumber(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// clip restricts v to [lo, hi].
func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion helpers
