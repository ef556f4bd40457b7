package types

// Enum values for agent operational status
type AgentStatus string

const (
	StatusActive      AgentStatus = "active"
	StatusInactive    AgentStatus = "inactive"
	StatusUnderReview AgentStatus = "under-review"
)

func (s AgentStatus) String() string {
	return string(s)
}
