package service

import "time"

// Operation outcomes reported to AuthMetrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// AuthMetrics receives operation outcomes and hashing latency.
type AuthMetrics interface {
	RecordOperation(operation, outcome, code string)
	ObserveSecretHash(kind string, elapsed time.Duration)
}
