package models

// Employee represents an employee record
type Employee struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	Position string  `json:"position"`
	City     *string `json:"city"` // optional, null when not set
}

// EmployeeFields carries the fields of an employee payload that were present
// in the request body. A nil pointer means the field was omitted and must not
// be touched by the repository.
type EmployeeFields struct {
	Name     *string
	Surname  *string
	Position *string
	City     *string
	// CitySet distinguishes "city": null (clear the value) from city being
	// omitted entirely, since both leave City nil.
	CitySet bool
}
