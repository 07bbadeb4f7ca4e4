package roster

import "fmt"

// UnknownLastName marks a player whose roster entry carried no usable name.
// The row is kept rather than dropped so statistics can still attach to it.
const UnknownLastName = "Unknown"

// Player is a rostered athlete. The feed's player token is the canonical
// identity; a player appears once even when listed on multiple documents.
type Player struct {
	ID           string
	FirstName    *string
	LastName     string
	AbbrName     *string
	BirthPlace   *string
	Position     *string
	HeightInches *int
	Weight       *int
	Status       *string
	Eligibility  *string
	TeamID       string
}

// Coach is a member of a team's coaching staff.
type Coach struct {
	ID       string
	FullName string
	Position *string
	TeamID   string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("player last name is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	return nil
}

func (c Coach) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("coach id is required")
	}
	if c.FullName == "" {
		return fmt.Errorf("coach full name is required")
	}
	if c.TeamID == "" {
		return fmt.Errorf("coach team id is required")
	}
	return nil
}
