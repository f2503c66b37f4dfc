package audit

// #region audit-config
// AuditConfig holds thresholds for score invariant checks.
type AuditConfig struct {
	ContributionCap float64 // upper bound on a single contribution score
	SumTolerance    float64 // allowed drift between total and its components
}

// DefaultAuditConfig returns sensible defaults.
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{
		ContributionCap: 1.0,
		SumTolerance:    1e-6,
	}
}

// #endregion audit-config

// #region audit-metric
// AuditMetric captures a single invariant check over a batch of scores.
// Value counts the steps that violated the invariant.
type AuditMetric struct {
	Name  string
	Value int
	Pass  bool
}

// #endregion audit-metric

// #region audit-result
// AuditResult is the output of a batch audit.
type AuditResult struct {
	Passed  bool
	Steps   int
	Metrics []AuditMetric
	Reason  string
}

// #endregion audit-result
