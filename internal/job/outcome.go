package job

import "fmt"

// FailureClass separates task-logic failures from infrastructure failures.
type FailureClass string

const (
	// FailureBusiness means the task logic failed (wrong output,
	// validation error, tests fail).
	FailureBusiness FailureClass = "business"
	// FailureSystem means the infrastructure failed (API timeout,
	// rate limit, network error).
	FailureSystem FailureClass = "system"
)

// FailureKind describes why a job stage failed. Both classes are retried
// with the same backoff cadence.
type FailureKind struct {
	Class  FailureClass `json:"class"`
	Reason string       `json:"reason"`
}

// BusinessFailure builds a business-class failure.
func BusinessFailure(reason string) FailureKind {
	return FailureKind{Class: FailureBusiness, Reason: reason}
}

// SystemFailure builds a system-class failure.
func SystemFailure(reason string) FailureKind {
	return FailureKind{Class: FailureSystem, Reason: reason}
}

func (k FailureKind) String() string {
	switch k.Class {
	case FailureBusiness:
		return fmt.Sprintf("Business failure: %s", k.Reason)
	case FailureSystem:
		return fmt.Sprintf("System failure: %s", k.Reason)
	default:
		return fmt.Sprintf("%s failure: %s", k.Class, k.Reason)
	}
}

// Outcome is the result of executing a job stage: success, or failure
// with a kind.
type Outcome struct {
	Failure *FailureKind `json:"failure,omitempty"`
}

// Success returns a successful outcome.
func Success() Outcome {
	return Outcome{}
}

// Fail returns a failed outcome carrying the given kind.
func Fail(kind FailureKind) Outcome {
	return Outcome{Failure: &kind}
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool {
	return o.Failure == nil
}

func (o Outcome) String() string {
	if o.OK() {
		return "success"
	}
	return o.Failure.String()
}
