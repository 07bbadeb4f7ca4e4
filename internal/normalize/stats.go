package normalize

import "github.com/gridironhq/leaguesync/internal/domain/playerstats"

// normalizeSeasonStats builds player statistic rows for one (year, type)
// season. The season must already be resolved: season is part of the
// statistic's dedup key, so without it the whole batch is skipped rather
// than partially emitted. Rows for players or teams that never resolved are
// discarded silently; statistics for unknown entities are not fabricated.
func (p *Pipeline) normalizeSeasonStats(statsByTeam map[string]Document, year int, seasonType string) {
	seasonID, ok := p.seasons.Lookup(seasonKey(year, seasonType))
	if !ok {
		p.logger.Warn("season statistics skipped: season not resolved",
			"year", year,
			"season_type", seasonType,
		)
		return
	}

	for _, teamToken := range sortedKeys(statsByTeam) {
		doc := statsByTeam[teamToken]

		teamID, ok := p.teams.Lookup(teamToken)
		if !ok {
			continue
		}

		for _, ps := range Items(doc, "players") {
			token := Token(ps["id"])
			if token == nil {
				continue
			}
			playerID, ok := p.players.Lookup(*token)
			if !ok {
				continue
			}

			id, created := p.stats.Register(Key(playerID, teamID, seasonID))
			if !created {
				continue
			}

			stats := Get(ps, "statistics")

			p.tables.PlayerStatistics = append(p.tables.PlayerStatistics, playerstats.SeasonStat{
				ID:                  id,
				PlayerID:            playerID,
				TeamID:              teamID,
				SeasonID:            seasonID,
				GamesPlayed:         Int(Get(stats, "games_played")),
				GamesStarted:        Int(Get(stats, "games_started")),
				RushingYards:        Int(Get(stats, "rushing", "yards")),
				RushingTouchdowns:   Int(Get(stats, "rushing", "touchdowns")),
				ReceivingYards:      Int(Get(stats, "receiving", "yards")),
				ReceivingTouchdowns: Int(Get(stats, "receiving", "touchdowns")),
				KickReturnYards:     Int(Get(stats, "kick_returns", "yards")),
				Fumbles:             Int(Get(stats, "fumbles", "total")),
			})
		}
	}
}
