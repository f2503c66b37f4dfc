package contrib

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

// #region fingerprint-tests

func TestFingerprintDeterministic(t *testing.T) {
	a := Fingerprint("{\"LAX\": 1}")
	b := Fingerprint("{\"LAX\": 1}")
	if a != b {
		t.Fatalf("equal content must give equal digests: %s vs %s", a, b)
	}
}

func TestFingerprintDistinguishesContent(t *testing.T) {
	if Fingerprint("{}") == Fingerprint("{\"LAX\":1}") {
		t.Fatal("different content produced equal digests")
	}
}

func TestFingerprintEmptyInput(t *testing.T) {
	if Fingerprint("") == "" {
		t.Fatal("expected a fixed-length digest for empty input")
	}
}

// #endregion fingerprint-tests

// #region binary-tests

func TestBinaryStateDiffUnchanged(t *testing.T) {
	if got := BinaryStateDiff("{}", "{}"); got != 0.0 {
		t.Fatalf("unchanged state must score 0, got %f", got)
	}
}

func TestBinaryStateDiffChanged(t *testing.T) {
	if got := BinaryStateDiff("{}", "{\"LAX\":1}"); got != 1.0 {
		t.Fatalf("changed state must score 1, got %f", got)
	}
}

func TestBinaryStateDiffEmptyStrings(t *testing.T) {
	if got := BinaryStateDiff("", ""); got != 0.0 {
		t.Fatalf("two empty states must score 0, got %f", got)
	}
	if got := BinaryStateDiff("", "x"); got != 1.0 {
		t.Fatalf("empty vs non-empty must score 1, got %f", got)
	}
}

func TestBinaryResponseMeaningfulReasoning(t *testing.T) {
	cfg := DefaultContribConfig()
	response := "<think>Let me solve this step by step. First, I need to understand the problem.</think>"
	if got := BinaryResponse(response, 0, cfg); got != 1.0 {
		t.Fatalf("non-trivial reasoning must score 1, got %f", got)
	}
}

func TestBinaryResponseShortReasoning(t *testing.T) {
	cfg := DefaultContribConfig()
	if got := BinaryResponse("<think>Short</think>", 0, cfg); got != 0.0 {
		t.Fatalf("too-short reasoning must score 0, got %f", got)
	}
}

func TestBinaryResponseToolCall(t *testing.T) {
	cfg := DefaultContribConfig()
	response := "<tool_call>\n{\"name\": \"calculator\", \"parameters\": {\"expression\": \"2+2\"}}\n</tool_call>"
	if got := BinaryResponse(response, 0, cfg); got != 1.0 {
		t.Fatalf("tool invocation must score 1, got %f", got)
	}
}

func TestBinaryResponseEmptyReasoning(t *testing.T) {
	cfg := DefaultContribConfig()
	if got := BinaryResponse("<think></think>", 0, cfg); got != 0.0 {
		t.Fatalf("empty reasoning must score 0, got %f", got)
	}
}

func TestBinaryResponseNoStructure(t *testing.T) {
	cfg := DefaultContribConfig()
	if got := BinaryResponse("Just some text without structure", 0, cfg); got != 0.0 {
		t.Fatalf("unstructured response must score 0, got %f", got)
	}
}

func TestBinaryResponseStepIgnored(t *testing.T) {
	cfg := DefaultContribConfig()
	response := "<tool_call>{\"name\": \"search\"}</tool_call>"
	if BinaryResponse(response, 0, cfg) != BinaryResponse(response, 99, cfg) {
		t.Fatal("step must not affect the response-quality form")
	}
}

// #endregion binary-tests

// #region value-delta-tests

func TestValueDeltaBasicImprovement(t *testing.T) {
	cfg := DefaultContribConfig()
	got := ValueDelta(0.3, 0.5, 0, 1.0, cfg)
	if !almostEqual(got, 0.2) {
		t.Fatalf("expected 0.2, got %f", got)
	}
}

func TestValueDeltaClippedAtOne(t *testing.T) {
	cfg := DefaultContribConfig()
	if got := ValueDelta(0.0, 1.0, 0, 1.0, cfg); got != 1.0 {
		t.Fatalf("expected clip at 1.0, got %f", got)
	}
	// Low complexity inflates the normalized improvement; clip must hold.
	if got := ValueDelta(0.0, 5.0, 0, 0.01, cfg); got != 1.0 {
		t.Fatalf("expected clip at 1.0 for inflated improvement, got %f", got)
	}
}

func TestValueDeltaNoRewardForRegression(t *testing.T) {
	cfg := DefaultContribConfig()
	if got := ValueDelta(0.5, 0.3, 0, 1.0, cfg); got != 0.0 {
		t.Fatalf("regression must score 0, got %f", got)
	}
}

func TestValueDeltaExactTie(t *testing.T) {
	cfg := DefaultContribConfig()
	for _, step := range []int{0, 7, 50, 200} {
		if got := ValueDelta(0.5, 0.5, step, 1.0, cfg); got != 0.0 {
			t.Fatalf("tie at step %d must score 0, got %f", step, got)
		}
	}
}

func TestValueDeltaStepDecayMonotonic(t *testing.T) {
	cfg := DefaultContribConfig()
	prev := 0.0
	last := math.Inf(1)
	for _, step := range []int{0, 10, 25, 50, 75, 100, 150} {
		got := ValueDelta(prev, 0.2, step, 1.0, cfg)
		if got > last {
			t.Fatalf("decay must be non-increasing: step %d scored %f > %f", step, got, last)
		}
		last = got
	}
}

func TestValueDeltaEarlierStrictlyLarger(t *testing.T) {
	cfg := DefaultContribConfig()
	early := ValueDelta(0.4, 0.6, 0, 1.0, cfg)
	late := ValueDelta(0.4, 0.6, 100, 1.0, cfg)
	if early <= 0 || late <= 0 {
		t.Fatalf("both must stay positive: early=%f late=%f", early, late)
	}
	if early <= late {
		t.Fatalf("earlier step must score strictly higher: early=%f late=%f", early, late)
	}
}

func TestValueDeltaFloorAtLateSteps(t *testing.T) {
	cfg := DefaultContribConfig()
	// Past the 90% mark of the horizon the floor clamps the factor to 0.1.
	at90 := ValueDelta(0.4, 0.6, 90, 1.0, cfg)
	at150 := ValueDelta(0.4, 0.6, 150, 1.0, cfg)
	if !almostEqual(at90, at150) {
		t.Fatalf("floor must clamp both equal: step90=%f step150=%f", at90, at150)
	}
	if !almostEqual(at90, 0.2*0.1) {
		t.Fatalf("expected floored score 0.02, got %f", at90)
	}
}

func TestValueDeltaComplexityNormalization(t *testing.T) {
	cfg := DefaultContribConfig()
	easy := ValueDelta(0.3, 0.5, 0, 0.5, cfg)
	hard := ValueDelta(0.3, 0.5, 0, 2.0, cfg)
	if easy <= hard {
		t.Fatalf("higher complexity must not score higher: %f vs %f", easy, hard)
	}
	if !almostEqual(hard, 0.1) {
		t.Fatalf("expected 0.2/2.0 = 0.1, got %f", hard)
	}
}

func TestValueDeltaComplexityClamp(t *testing.T) {
	cfg := DefaultContribConfig()
	// Near-zero and negative complexity clamp to 0.1 instead of blowing up.
	zero := ValueDelta(0.3, 0.31, 0, 0.0, cfg)
	negative := ValueDelta(0.3, 0.31, 0, -3.0, cfg)
	if !almostEqual(zero, negative) {
		t.Fatalf("clamped complexity must score identically: %f vs %f", zero, negative)
	}
	if zero > 1.0 || math.IsInf(zero, 0) || math.IsNaN(zero) {
		t.Fatalf("clamp failed, got %f", zero)
	}
}

func TestValueDeltaNonNumericInputs(t *testing.T) {
	cfg := DefaultContribConfig()
	cases := []struct {
		name string
		prev any
		cur  any
	}{
		{"nil prev", nil, 0.5},
		{"nil cur", 0.5, nil},
		{"both nil", nil, nil},
		{"malformed strings", "abc", "def"},
		{"malformed cur", 0.1, "not-a-number"},
		{"nan", math.NaN(), 0.5},
		{"inf", 0.1, math.Inf(1)},
		{"wrong type", []string{"x"}, 0.5},
	}
	for _, c := range cases {
		if got := ValueDelta(c.prev, c.cur, 0, 1.0, cfg); got != 0.0 {
			t.Fatalf("%s: expected 0.0, got %f", c.name, got)
		}
	}
}

func TestValueDeltaNumericStrings(t *testing.T) {
	cfg := DefaultContribConfig()
	got := ValueDelta("0.3", " 0.5 ", 0, 1.0, cfg)
	if !almostEqual(got, 0.2) {
		t.Fatalf("numeric strings must coerce: expected 0.2, got %f", got)
	}
}

func TestValueDeltaBounded(t *testing.T) {
	cfg := DefaultContribConfig()
	inputs := []struct {
		prev, cur  float64
		step       int
		complexity float64
	}{
		{0, 100, 0, 0.001},
		{-50, 50, 3, 0.5},
		{0.1, 0.2, 1000, 1.0},
		{0.9, 0.90001, 0, 10},
	}
	for _, in := range inputs {
		got := ValueDelta(in.prev, in.cur, in.step, in.complexity, cfg)
		if got < 0.0 || got > 1.0 {
			t.Fatalf("score out of [0,1]: %f for %+v", got, in)
		}
	}
}

// #endregion value-delta-tests

// #region text-fallback-tests

func TestValueDeltaTextRichResponse(t *testing.T) {
	cfg := DefaultContribConfig()
	response := "<think>This is a detailed analysis with many words to test the length scoring mechanism.</think>"
	got := ValueDeltaText(response, 0, 1.0, cfg)
	if got <= 0.0 || got > 1.0 {
		t.Fatalf("expected score in (0,1], got %f", got)
	}
}

func TestValueDeltaTextToolCall(t *testing.T) {
	cfg := DefaultContribConfig()
	response := "<think>Let me calculate this carefully before answering.</think><tool_call>\n{\"name\": \"calculator\"}\n</tool_call>"
	got := ValueDeltaText(response, 0, 1.0, cfg)
	if got <= 0.0 {
		t.Fatalf("tool-bearing response must score above 0, got %f", got)
	}
}

func TestValueDeltaTextStepDecay(t *testing.T) {
	cfg := DefaultContribConfig()
	response := "<think>This is a detailed analysis with many words to test the length scoring mechanism.</think>"
	early := ValueDeltaText(response, 0, 1.0, cfg)
	late := ValueDeltaText(response, 25, 1.0, cfg)
	if early <= late {
		t.Fatalf("earlier step must score higher: early=%f late=%f", early, late)
	}
}

func TestValueDeltaTextEmptyResponse(t *testing.T) {
	cfg := DefaultContribConfig()
	if got := ValueDeltaText("", 0, 1.0, cfg); got != 0.0 {
		t.Fatalf("empty response must score 0, got %f", got)
	}
	if got := ValueDeltaText("   \n\t ", 0, 1.0, cfg); got != 0.0 {
		t.Fatalf("whitespace-only response must score 0, got %f", got)
	}
}

func TestValueDeltaTextZeroBaseScore(t *testing.T) {
	cfg := DefaultContribConfig()
	response := "<think>Plenty of structure and words in this particular response text.</think>"
	if got := ValueDeltaText(response, 0, 0.0, cfg); got != 0.0 {
		t.Fatalf("zero base score must zero the fallback, got %f", got)
	}
}

// #endregion text-fallback-tests

// #region advanced-tests

func TestValueDeltaAdvancedMultiStep(t *testing.T) {
	cfg := DefaultContribConfig()
	info := &TaskInfo{TaskType: TaskMultiStep, ExpectedSteps: 50, CurrentProgress: 0.3}
	// improvement 0.3 at step 25/50: 0.3 * 1.5 = 0.45 raw, squashed to 0.45/1.45.
	got := ValueDeltaAdvanced(0.3, 0.6, 25, info, cfg)
	want := 0.45 / 1.45
	if !almostEqual(got, want) {
		t.Fatalf("expected %f, got %f", want, got)
	}
}

func TestValueDeltaAdvancedExploration(t *testing.T) {
	cfg := DefaultContribConfig()
	info := &TaskInfo{TaskType: TaskExploration}
	// step 10 of the 20-step bonus window: 0.3 * 1.5 raw.
	got := ValueDeltaAdvanced(0.3, 0.6, 10, info, cfg)
	want := 0.45 / 1.45
	if !almostEqual(got, want) {
		t.Fatalf("expected %f, got %f", want, got)
	}
	// Past the window the bonus is gone.
	late := ValueDeltaAdvanced(0.3, 0.6, 40, info, cfg)
	if !almostEqual(late, 0.3/1.3) {
		t.Fatalf("expected bare squashed improvement, got %f", late)
	}
}

func TestValueDeltaAdvancedGeneral(t *testing.T) {
	cfg := DefaultContribConfig()
	got := ValueDeltaAdvanced(0.3, 0.6, 10, &TaskInfo{TaskType: TaskGeneral}, cfg)
	if !almostEqual(got, 0.3/1.3) {
		t.Fatalf("expected %f, got %f", 0.3/1.3, got)
	}
}

func TestValueDeltaAdvancedUnknownTaskType(t *testing.T) {
	cfg := DefaultContribConfig()
	unknown := ValueDeltaAdvanced(0.3, 0.6, 10, &TaskInfo{TaskType: "mystery"}, cfg)
	general := ValueDeltaAdvanced(0.3, 0.6, 10, &TaskInfo{TaskType: TaskGeneral}, cfg)
	if unknown != general {
		t.Fatalf("unknown task type must use the general curve: %f vs %f", unknown, general)
	}
}

func TestValueDeltaAdvancedNilTaskInfo(t *testing.T) {
	cfg := DefaultContribConfig()
	got := ValueDeltaAdvanced(0.3, 0.6, 10, nil, cfg)
	if !almostEqual(got, 0.3/1.3) {
		t.Fatalf("nil task info must use the general curve, got %f", got)
	}
}

func TestValueDeltaAdvancedNoReward(t *testing.T) {
	cfg := DefaultContribConfig()
	info := &TaskInfo{TaskType: TaskMultiStep, ExpectedSteps: 50}
	if got := ValueDeltaAdvanced(0.6, 0.3, 5, info, cfg); got != 0.0 {
		t.Fatalf("regression must score 0, got %f", got)
	}
	if got := ValueDeltaAdvanced(0.5, 0.5, 5, info, cfg); got != 0.0 {
		t.Fatalf("tie must score 0, got %f", got)
	}
}

func TestValueDeltaAdvancedNonNumeric(t *testing.T) {
	cfg := DefaultContribConfig()
	if got := ValueDeltaAdvanced(nil, 0.5, 0, nil, cfg); got != 0.0 {
		t.Fatalf("nil estimate must score 0, got %f", got)
	}
	if got := ValueDeltaAdvanced("abc", "def", 0, nil, cfg); got != 0.0 {
		t.Fatalf("malformed estimates must score 0, got %f", got)
	}
}

func TestValueDeltaAdvancedZeroExpectedSteps(t *testing.T) {
	cfg := DefaultContribConfig()
	info := &TaskInfo{TaskType: TaskMultiStep, ExpectedSteps: 0}
	got := ValueDeltaAdvanced(0.3, 0.6, 25, info, cfg)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("zero expected_steps must clamp, got %f", got)
	}
	// Clamped to the default horizon of 50, same as the explicit case.
	explicit := ValueDeltaAdvanced(0.3, 0.6, 25, &TaskInfo{TaskType: TaskMultiStep, ExpectedSteps: 50}, cfg)
	if got != explicit {
		t.Fatalf("expected default horizon behavior: %f vs %f", got, explicit)
	}
}

func TestValueDeltaAdvancedBoundedBelowOne(t *testing.T) {
	cfg := DefaultContribConfig()
	got := ValueDeltaAdvanced(0.0, 1000.0, 0, &TaskInfo{TaskType: TaskExploration}, cfg)
	if got <= 0.0 || got >= 1.0 {
		t.Fatalf("squash must keep large improvements inside (0,1), got %f", got)
	}
}

// #endregion advanced-tests

// #region info-gain-tests

func TestInfoGainAlwaysZero(t *testing.T) {
	responses := []string{
		"",
		"<think>This response contains many different unique words.</think>",
		"<tool_call>{\"name\": \"tool1\"}</tool_call>",
	}
	for _, r := range responses {
		for _, step := range []int{0, 5, 100} {
			if got := InfoGain(r, step); got != 0.0 {
				t.Fatalf("info gain must be 0.0 for every input, got %f", got)
			}
		}
	}
}

// #endregion info-gain-tests
