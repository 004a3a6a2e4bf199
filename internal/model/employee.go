package model

// Employee is the profile of the single tracked employee.
type Employee struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName,omitempty"`
	JobTitle    string `json:"jobTitle,omitempty"`
	WorkEmail   string `json:"workEmail,omitempty"`
	Department  string `json:"department,omitempty"`
}

// Name returns the best display name available.
func (e Employee) Name() string {
	if e.DisplayName != "" {
		return e.DisplayName
	}
	if e.FirstName == "" && e.LastName == "" {
		return "Unknown"
	}
	return e.FirstName + " " + e.LastName
}
