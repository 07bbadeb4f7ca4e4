package schedule

// Game is an advisory schedule row. Team references keep the raw feed tokens
// without resolution; the schedule is display data, not referentially
// enforced against the teams table.
type Game struct {
	ID         string
	HomeTeamID *string
	AwayTeamID *string
	Scheduled  *string
	VenueName  *string
}
