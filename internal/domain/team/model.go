package team

import "fmt"

// Team is a program in the league. The feed's team token is trusted as the
// canonical identity; conference, division and venue links are best-effort
// and stay null when the reference cannot be resolved.
type Team struct {
	ID               string
	Market           *string
	Name             *string
	Alias            *string
	Founded          *int
	Mascot           *string
	FightSong        *string
	ChampionshipsWon *int
	ConferenceID     *string
	DivisionID       *string
	VenueID          *string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	return nil
}
