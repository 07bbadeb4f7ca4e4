package ranking

// Ranking is one team's slot in one poll snapshot. Unlike season statistics,
// a ranking row survives a failed season lookup with a null season reference;
// poll standings are useful on their own.
type Ranking struct {
	ID            string
	PollID        string
	PollName      *string
	SeasonID      *string
	Week          *int
	EffectiveTime *string
	TeamID        string
	Rank          *int
	PrevRank      *int
	Points        *int
	FirstPlace    *int
	Wins          *int
	Losses        *int
	Ties          *int
}
