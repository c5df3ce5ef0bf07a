package model

// Student is created once on first login for a given (roll, className) pair
// and never mutated afterwards.
type Student struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Father    string `json:"father"`
	Roll      string `json:"roll"`
	ClassName string `json:"className"`
	Phone     string `json:"phone"`
}
