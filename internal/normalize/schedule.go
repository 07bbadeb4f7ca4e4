package normalize

import (
	"strconv"

	"github.com/gridironhq/leaguesync/internal/domain/schedule"
)

// normalizeSchedule builds advisory game rows. The feed varies field names
// per call for the game list, both team sides, the venue and the kickoff
// time, so every one of them is probed under its observed aliases. Team
// references stay raw feed tokens without resolution.
func (p *Pipeline) normalizeSchedule(doc Document) {
	games := Items(doc, "schedule")
	if games == nil {
		games = Items(doc, "games")
	}

	for i, item := range games {
		home := firstDocument(item, "home", "home_team")
		away := firstDocument(item, "away", "away_team")
		venue := firstDocument(item, "venue")
		scheduled := firstValue(item, "scheduled", "date", "start_time")

		homeToken := Token(Get(home, "id"))
		awayToken := Token(Get(away, "id"))
		scheduledAt := Date(scheduled)

		key := Key(deref(homeToken), deref(awayToken), deref(scheduledAt))
		if homeToken == nil && awayToken == nil && scheduledAt == nil {
			// No identifying fields at all. Key on list position so the
			// rows stay distinct instead of collapsing into one.
			key = Key("game", strconv.Itoa(i))
		}
		id, created := p.games.Register(key)
		if !created {
			continue
		}

		p.tables.ScheduleGames = append(p.tables.ScheduleGames, schedule.Game{
			ID:         id,
			HomeTeamID: homeToken,
			AwayTeamID: awayToken,
			Scheduled:  scheduledAt,
			VenueName:  String(Get(venue, "name")),
		})
	}
}

func firstDocument(item Document, keys ...string) Document {
	for _, key := range keys {
		if doc, ok := item[key].(map[string]any); ok {
			return doc
		}
	}
	return nil
}

func firstValue(item Document, keys ...string) any {
	for _, key := range keys {
		if v, ok := item[key]; ok && v != nil {
			return v
		}
	}
	return nil
}
