package normalize

import (
	"strings"

	"github.com/gridironhq/leaguesync/internal/domain/hierarchy"
	"github.com/gridironhq/leaguesync/internal/domain/roster"
)

// normalizePlayers walks per-team roster documents. Roster documents also
// carry venue and conference/division objects the hierarchy endpoint may
// have missed, so those are harvested first. Players on teams the teams
// stage never resolved are discarded, not attached to fabricated teams.
func (p *Pipeline) normalizePlayers(rosters map[string]Document) {
	for _, teamToken := range sortedKeys(rosters) {
		doc := rosters[teamToken]

		if v, ok := doc["venue"].(map[string]any); ok {
			p.extractVenue(v)
		}
		p.extractRosterHierarchy(doc)

		teamID, ok := p.teams.Lookup(teamToken)
		if !ok {
			p.logger.Debug("roster skipped: unknown team", "team_token", teamToken)
			continue
		}

		for _, pl := range Items(doc, "players") {
			token := Token(pl["id"])
			if token == nil {
				continue
			}
			if _, created := p.players.Register(*token); !created {
				continue
			}

			first, last, abbr := playerName(pl)

			p.tables.Players = append(p.tables.Players, roster.Player{
				ID:           *token,
				FirstName:    first,
				LastName:     last,
				AbbrName:     abbr,
				BirthPlace:   String(pl["birth_place"]),
				Position:     PositionName(pl["position"]),
				HeightInches: HeightInches(pl["height"]),
				Weight:       Int(pl["weight"]),
				Status:       String(pl["status"]),
				Eligibility:  String(pl["eligibility"]),
				TeamID:       teamID,
			})
		}
	}
}

// playerName reconciles every observed name shape into first/last/abbr.
// Direct first_name/last_name fields win, then the structured name object,
// then splitting a plain-string name. A player with no name information at
// all keeps the sentinel last name rather than losing the row.
func playerName(pl Document) (first *string, last string, abbr *string) {
	firstPtr := String(pl["first_name"])
	if firstPtr == nil {
		firstPtr = String(Get(pl, "name", "first"))
	}
	lastPtr := String(pl["last_name"])
	if lastPtr == nil {
		lastPtr = String(Get(pl, "name", "last"))
	}

	if lastPtr == nil {
		f, l := PersonName(pl["name"])
		lastPtr = l
		if firstPtr == nil {
			firstPtr = f
		}
	}

	abbr = String(pl["abbr_name"])
	if abbr == nil {
		abbr = String(Get(pl, "name", "abbr"))
	}

	if lastPtr == nil {
		return firstPtr, roster.UnknownLastName, abbr
	}
	return firstPtr, *lastPtr, abbr
}

// extractRosterHierarchy records conference/division objects embedded in a
// roster document. Unlike the hierarchy walk these are only trusted when
// they carry a feed token; roster documents repeat hierarchy data loosely
// and a bare name is not enough to mint an identity here.
func (p *Pipeline) extractRosterHierarchy(doc Document) {
	conf, hasConf := doc["conference"].(map[string]any)
	if !hasConf {
		return
	}
	confName := String(conf["name"])
	confToken := Token(conf["id"])
	if confName == nil || confToken == nil {
		return
	}

	confID, _ := p.conferences.Adopt(*confName, *confToken)
	if !p.confSeen[confID] {
		p.confSeen[confID] = true
		p.tables.Conferences = append(p.tables.Conferences, hierarchy.Conference{
			ID:    confID,
			Name:  *confName,
			Alias: String(conf["alias"]),
		})
	}

	div, hasDiv := doc["division"].(map[string]any)
	if !hasDiv {
		return
	}
	divName := String(div["name"])
	divToken := Token(div["id"])
	if divName == nil || divToken == nil {
		return
	}

	divID, _ := p.divisions.Adopt(Key(confID, *divName), *divToken)
	if !p.divSeen[divID] {
		p.divSeen[divID] = true
		p.tables.Divisions = append(p.tables.Divisions, hierarchy.Division{
			ID:           divID,
			Name:         *divName,
			Alias:        String(div["alias"]),
			ConferenceID: confID,
		})
	}
}

// normalizeCoaches builds coach rows from roster documents. Coaches often
// lack feed tokens, so identity falls back to a synthesized token scoped by
// team and name. A coach with no recoverable name at all is dropped; unlike
// players, nothing downstream references coaches.
func (p *Pipeline) normalizeCoaches(rosters map[string]Document) {
	for _, teamToken := range sortedKeys(rosters) {
		doc := rosters[teamToken]

		teamID, ok := p.teams.Lookup(teamToken)
		if !ok {
			continue
		}

		for _, c := range Items(doc, "coaches") {
			fullName := coachFullName(c)
			if fullName == nil {
				continue
			}

			id, created := p.coaches.Adopt(Key(teamID, *fullName), deref(Token(c["id"])))
			if !created {
				continue
			}

			p.tables.Coaches = append(p.tables.Coaches, roster.Coach{
				ID:       id,
				FullName: *fullName,
				Position: PositionName(c["position"]),
				TeamID:   teamID,
			})
		}
	}
}

func coachFullName(c Document) *string {
	if full := String(c["full_name"]); full != nil {
		return full
	}
	first := String(c["first_name"])
	last := String(c["last_name"])
	switch {
	case first != nil && last != nil:
		full := strings.Join([]string{*first, *last}, " ")
		return &full
	case last != nil:
		return last
	default:
		return nil
	}
}
