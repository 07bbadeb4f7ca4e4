package hierarchy

import "fmt"

// Conference is a top-level league grouping (SEC, Big Ten, ...).
type Conference struct {
	ID    string
	Name  string
	Alias *string
}

// Division is a conference-scoped grouping. Division names are not globally
// unique, so a division is always identified together with its conference.
type Division struct {
	ID           string
	Name         string
	Alias        *string
	ConferenceID string
}

func (c Conference) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("conference id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("conference name is required")
	}
	return nil
}

func (d Division) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("division id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("division name is required")
	}
	if d.ConferenceID == "" {
		return fmt.Errorf("division conference id is required")
	}
	return nil
}
