package normalize

import (
	"strconv"

	"github.com/gridironhq/leaguesync/internal/domain/ranking"
)

// normalizeRankings builds ranking rows from one poll document. The season
// reference is best-effort: a ranking is independently useful, so a failed
// season lookup keeps the row with a null season instead of dropping it.
// This is deliberately asymmetric with season statistics, where season is
// part of the dedup key.
func (p *Pipeline) normalizeRankings(doc Document, year int, week *int) {
	pollName := String(Get(doc, "poll", "name"))

	var pollID string
	if token := Token(Get(doc, "poll", "id")); token != nil {
		pollID = *token
	} else {
		pollID, _ = p.polls.Register(Key("poll", deref(pollName)))
	}

	if week == nil {
		week = Int(doc["week"])
	}

	var seasonID *string
	if id, ok := p.seasons.Lookup(seasonKey(year, "REG")); ok {
		seasonID = &id
	}

	effective := Date(doc["effective_time"])

	for _, item := range Items(doc, "rankings") {
		// The poll lists team tokens directly on the ranking item, not
		// nested under a team object.
		token := Token(item["id"])
		if token == nil {
			continue
		}
		teamID, ok := p.teams.Lookup(*token)
		if !ok {
			continue
		}

		id, created := p.rankings.Register(Key(pollID, weekKey(week), teamID))
		if !created {
			continue
		}

		p.tables.Rankings = append(p.tables.Rankings, ranking.Ranking{
			ID:            id,
			PollID:        pollID,
			PollName:      pollName,
			SeasonID:      seasonID,
			Week:          week,
			EffectiveTime: effective,
			TeamID:        teamID,
			Rank:          Int(item["rank"]),
			PrevRank:      Int(item["prev_rank"]),
			Points:        Int(item["points"]),
			FirstPlace:    Int(item["fp_votes"]),
			Wins:          Int(item["wins"]),
			Losses:        Int(item["losses"]),
			Ties:          Int(item["ties"]),
		})
	}
}

func weekKey(week *int) string {
	if week == nil {
		return "current"
	}
	return strconv.Itoa(*week)
}
