package types

import "time"

// AgentSource indicates how an agent entered the registry.
type AgentSource string

const (
	SourceCatalog       AgentSource = "catalog"
	SourceUserSubmitted AgentSource = "user-submitted"
)

func (s AgentSource) String() string {
	return string(s)
}

// Agent is an identity to be scored. Agents come from the static catalog
// or from user submissions persisted in the database.
type Agent struct {
	ID            string
	Name          string
	ProtocolID    string
	WalletAddress string
	Chains        []string
	Skills        []string
	CreatedAt     time.Time
	Source        AgentSource
}

// Walletless reports whether the agent has no on-chain address and must
// be scored on metadata alone.
func (a *Agent) Walletless() bool {
	return a.WalletAddress == ""
}

// AgeMonths returns the agent age in fractional months relative to now.
func (a *Agent) AgeMonths(now time.Time) float64 {
	age := now.Sub(a.CreatedAt)
	if age < 0 {
		return 0
	}
	return age.Hours() / (24 * 30)
}
