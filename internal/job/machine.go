package job

import "time"

// TransitionKind discriminates the result of evaluating a state + outcome.
type TransitionKind string

const (
	// TransitionNext advances to the following state.
	TransitionNext TransitionKind = "next"
	// TransitionRetry re-runs the current state after a failure.
	TransitionRetry TransitionKind = "retry"
	// TransitionComplete ends the job, successfully or not.
	TransitionComplete TransitionKind = "complete"
)

// Transition is the computed result of evaluating a state and an outcome.
// Exactly one of the payload fields is meaningful for each kind: State for
// next/retry, Reason for retry, Outcome for complete.
type Transition struct {
	Kind    TransitionKind
	State   State
	Reason  *FailureKind
	Outcome Outcome
}

// Next computes the transition for the job's current state and the given
// outcome, then applies it to the job atomically with the decision.
//
// Decision table:
//   - INIT, DEFINE_AGENT, PROCESS on success advance to the next state in
//     order.
//   - Any state on failure increments the retry count; within MaxRetries
//     the same state is retried, beyond it the job completes as failed.
//   - END is terminal and always yields Complete(success), regardless of
//     the outcome passed in.
//
// Apply rules: advancing pushes the prior state onto the history; a retry
// pushes the retried state again, so the history records every attempt,
// not just distinct states; completing pushes the current state and sets
// the final status. No other code mutates State, RetryCount or
// StateHistory.
func Next(j *Job, outcome Outcome) Transition {
	var t Transition
	switch j.State {
	case StateInit, StateDefineAgent, StateProcess:
		if outcome.OK() {
			t = Transition{Kind: TransitionNext, State: following(j.State)}
		} else {
			t = handleFailure(j, *outcome.Failure)
		}
	case StateEnd:
		t = Transition{Kind: TransitionComplete, Outcome: Success()}
	default:
		// Unknown state: treat as terminal failure rather than guessing.
		t = Transition{Kind: TransitionComplete, Outcome: Fail(SystemFailure("unknown state " + string(j.State)))}
	}

	apply(j, t)
	return t
}

// handleFailure increments the retry count and decides between retrying
// in place and terminal failure.
func handleFailure(j *Job, kind FailureKind) Transition {
	j.RetryCount++
	if j.RetryCount <= j.RetryConfig.MaxRetries {
		return Transition{Kind: TransitionRetry, State: j.State, Reason: &kind}
	}
	return Transition{Kind: TransitionComplete, Outcome: Fail(kind)}
}

// apply mutates the job according to the computed transition.
func apply(j *Job, t Transition) {
	switch t.Kind {
	case TransitionNext:
		j.StateHistory = append(j.StateHistory, j.State)
		j.State = t.State
		if t.State == StateEnd {
			j.Status = StatusCompleted
		}
	case TransitionRetry:
		// State stays put; the retry counter was already incremented.
		j.StateHistory = append(j.StateHistory, t.State)
	case TransitionComplete:
		j.StateHistory = append(j.StateHistory, j.State)
		if t.Outcome.OK() {
			j.Status = StatusCompleted
		} else {
			j.Status = StatusFailed
		}
	}
	j.UpdatedAt = time.Now().UTC()
}

// following returns the state after s in traversal order. END follows
// itself; callers never reach this for END.
func following(s State) State {
	switch s {
	case StateInit:
		return StateDefineAgent
	case StateDefineAgent:
		return StateProcess
	case StateProcess:
		return StateEnd
	default:
		return StateEnd
	}
}
