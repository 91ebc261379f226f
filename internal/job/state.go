package job

// State is one of the four lifecycle states a job traverses.
type State string

const (
	StateInit        State = "INIT"
	StateDefineAgent State = "DEFINE_AGENT"
	StateProcess     State = "PROCESS"
	StateEnd         State = "END"
)

// AllStates returns the lifecycle states in traversal order.
func AllStates() []State {
	return []State{StateInit, StateDefineAgent, StateProcess, StateEnd}
}

// ModelTier is the cost/capability level assigned to a job.
type ModelTier string

const (
	TierHaiku  ModelTier = "haiku"
	TierSonnet ModelTier = "sonnet"
	TierOpus   ModelTier = "opus"
)

// CostUSD returns the flat estimated cost per job for the tier.
func (t ModelTier) CostUSD() float64 {
	switch t {
	case TierHaiku:
		return 0.001
	case TierSonnet:
		return 0.005
	case TierOpus:
		return 0.05
	default:
		return 0
	}
}

// APIModel returns the API model identifier for the tier.
func (t ModelTier) APIModel() string {
	switch t {
	case TierHaiku:
		return "claude-haiku-4-5-20251001"
	case TierOpus:
		return "claude-opus-4-6"
	default:
		return "claude-sonnet-4-5-20250929"
	}
}

// Valid reports whether the tier is one of the known values.
func (t ModelTier) Valid() bool {
	switch t {
	case TierHaiku, TierSonnet, TierOpus:
		return true
	}
	return false
}
