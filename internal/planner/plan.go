package planner

// SessionType is the kind of session the planner proposes.
type SessionType string

const (
	TypeReview   SessionType = "review"
	TypeNewCards SessionType = "new_cards"
	TypeMixed    SessionType = "mixed"
	TypeCatchUp  SessionType = "catch_up"
)

// Priority ranks how urgently a plan or recommendation should be acted on.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// SessionCap bounds how many cards a planned session selects.
const SessionCap = 20

// mixedDueShare is the fraction of a mixed session reserved for due cards.
const mixedDueShare = 0.7

// Goals are the targets attached to a session plan.
type Goals struct {
	TargetCards    int
	TargetAccuracy float64
	TargetMinutes  float64
}

// Plan is a forward-looking session proposal, regenerated fresh from the
// current item/pattern snapshot on every call. Nothing here is persisted
// by the engine.
type Plan struct {
	Type             SessionType
	Priority         Priority
	CardIDs          []string
	EstimatedMinutes float64
	Goals            Goals
}
