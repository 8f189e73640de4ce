package dto

// Ref pairs a foreign key with its display label so consumers never have to
// parse a formatted label back into a key.
type Ref struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
