package split

import "github.com/minhnc2843/FinVault/internal/money"

// Type identifies how a shared expense is divided among its participants.
type Type string

const (
	TypeEqual  Type = "equal"
	TypeCustom Type = "custom"
)

// Valid reports whether t is one of the known split types.
func (t Type) Valid() bool {
	return t == TypeEqual || t == TypeCustom
}

// Policy describes how to divide a total amount. The set of policies is
// closed: either an equal division or caller-supplied per-participant
// amounts. Amounts is keyed by participant identity and is only consulted
// for TypeCustom.
type Policy struct {
	Type    Type
	Amounts map[string]money.Amount
}

// Equal returns the policy that divides the total evenly.
func Equal() Policy {
	return Policy{Type: TypeEqual}
}

// Custom returns the policy that assigns each participant the exact
// amount listed for them. Participants absent from the map owe nothing.
func Custom(amounts map[string]money.Amount) Policy {
	return Policy{Type: TypeCustom, Amounts: amounts}
}

// Share is one participant's computed owed amount.
type Share struct {
	ParticipantID string
	Amount        money.Amount
}
