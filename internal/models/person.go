package models

// Person mirrors the people table.
type Person struct {
	PersonID string `db:"person_id"`
	OwnerID  string `db:"owner_id"`
	Name     string `db:"name"`
	Type     string `db:"type"` // worker | supplier
	Phone    string `db:"phone"`
	AuditFields
}
