package model

import (
	"time"

	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

const SubmittedAgentCollection = "submitted_agents"

// SubmittedAgentDocument is a user-submitted agent persisted for
// merging into the scoring registry. Validation happens at submission
// time; the scoring engine trusts admitted documents.
type SubmittedAgentDocument struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	ProtocolID    string    `bson:"protocol_id"`
	WalletAddress string    `bson:"wallet_address,omitempty"`
	Chains        []string  `bson:"chains"`
	Skills        []string  `bson:"skills"`
	CreatedAt     time.Time `bson:"created_at"`
}

// ToAgent converts the document into the registry representation,
// tagged as user-submitted.
func (d *SubmittedAgentDocument) ToAgent() types.Agent {
	return types.Agent{
		ID:            d.ID,
		Name:          d.Name,
		ProtocolID:    d.ProtocolID,
		WalletAddress: d.WalletAddress,
		Chains:        d.Chains,
		Skills:        d.Skills,
		CreatedAt:     d.CreatedAt,
		Source:        types.SourceUserSubmitted,
	}
}

// FromAgent builds a document from a registry agent.
func FromAgent(a *types.Agent) *SubmittedAgentDocument {
	return &SubmittedAgentDocument{
		ID:            a.ID,
		Name:          a.Name,
		ProtocolID:    a.ProtocolID,
		WalletAddress: a.WalletAddress,
		Chains:        a.Chains,
		Skills:        a.Skills,
		CreatedAt:     a.CreatedAt,
	}
}
