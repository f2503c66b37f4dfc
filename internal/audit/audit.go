package audit

import (
	"fmt"
	"math"

	"github.com/rlla/contrib-reward/go-scorer/internal/score"
)

// #region auditor
// Auditor runs invariant checks over batches of computed step scores.
type Auditor struct {
	config AuditConfig
}

// NewAuditor creates an auditor with the given configuration.
func NewAuditor(config AuditConfig) *Auditor {
	return &Auditor{config: config}
}

// Run validates a batch of step scores against the reward invariants:
// contributions are finite, non-negative, and capped; totals equal the sum of
// their components under the given beta.
func (a *Auditor) Run(scores []score.StepScore, beta float64) AuditResult {
	var finiteViolations, signViolations, capViolations, sumViolations int

	for _, sc := range scores {
		if math.IsNaN(sc.Contribution) || math.IsInf(sc.Contribution, 0) ||
			math.IsNaN(sc.Total) || math.IsInf(sc.Total, 0) {
			finiteViolations++
			continue
		}
		if sc.Contribution < 0 {
			signViolations++
		}
		if sc.Contribution > a.config.ContributionCap {
			capViolations++
		}
		expected := sc.Format + sc.Correctness + sc.Length + beta*sc.Contribution
		if math.Abs(sc.Total-expected) > a.config.SumTolerance {
			sumViolations++
		}
	}

	metrics := []AuditMetric{
		{Name: "contribution_finite", Value: finiteViolations, Pass: finiteViolations == 0},
		{Name: "contribution_non_negative", Value: signViolations, Pass: signViolations == 0},
		{Name: "contribution_capped", Value: capViolations, Pass: capViolations == 0},
		{Name: "total_component_sum", Value: sumViolations, Pass: sumViolations == 0},
	}

	passed := true
	reason := "all checks passed"
	for _, m := range metrics {
		if !m.Pass {
			passed = false
			reason = fmt.Sprintf("audit failed: %s violated on %d of %d steps", m.Name, m.Value, len(scores))
			break
		}
	}

	return AuditResult{
		Passed:  passed,
		Steps:   len(scores),
		Metrics: metrics,
		Reason:  reason,
	}
}

// #endregion auditor
