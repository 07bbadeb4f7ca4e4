package season

import "fmt"

// Season is one (year, type) slice of the league calendar. The pair is the
// natural key; duplicate definitions across feed calls collapse to one row.
type Season struct {
	ID        string
	Year      int
	StartDate *string
	EndDate   *string
	Status    *string
	TypeCode  string
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.Year <= 0 {
		return fmt.Errorf("season year must be greater than zero")
	}
	if s.TypeCode == "" {
		return fmt.Errorf("season type code is required")
	}
	return nil
}
