package domain

// Person is a known counterparty (worker or supplier) of the ledger owner.
// People are optional bookkeeping helpers: transactions carry the counterparty
// name as free text and do not require a matching Person record.
type Person struct {
	PersonID string     `json:"personID"`
	OwnerID  string     `json:"-"`
	Name     string     `json:"name"`
	Type     PersonType `json:"type"`
	Phone    string     `json:"phone,omitempty"`
	AuditFields
}
