package playerstats

// SeasonStat is one player's accumulated line for a season. Rows are emitted
// only when player, team and season all resolved; a row without a season
// would be undedupable, so the whole batch is dropped instead.
type SeasonStat struct {
	ID                  string
	PlayerID            string
	TeamID              string
	SeasonID            string
	GamesPlayed         *int
	GamesStarted        *int
	RushingYards        *int
	RushingTouchdowns   *int
	ReceivingYards      *int
	ReceivingTouchdowns *int
	KickReturnYards     *int
	Fumbles             *int
}
