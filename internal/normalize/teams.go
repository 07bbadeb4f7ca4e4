package normalize

import "github.com/gridironhq/leaguesync/internal/domain/team"

// normalizeTeams builds team rows from the teams document. A team without a
// valid feed token cannot participate in the canonical identifier space and
// is skipped; a team whose conference, division or venue reference fails to
// resolve is still inserted with that link null. Partial linkage is
// acceptable, dropping the team is not.
func (p *Pipeline) normalizeTeams(doc Document) {
	for _, t := range Items(doc, "teams") {
		token := Token(t["id"])
		if token == nil {
			continue
		}
		if _, created := p.teams.Register(*token); !created {
			continue
		}

		var conferenceID, divisionID, venueID *string

		if confName := String(Get(t, "conference", "name")); confName != nil {
			if confID, ok := p.conferences.Lookup(*confName); ok {
				conferenceID = &confID
				if divName := String(Get(t, "division", "name")); divName != nil {
					if divID, ok := p.divisions.Lookup(Key(confID, *divName)); ok {
						divisionID = &divID
					}
				}
			}
		}

		if v, ok := t["venue"].(map[string]any); ok {
			venueID = p.lookupVenue(v)
		}

		p.tables.Teams = append(p.tables.Teams, team.Team{
			ID:               *token,
			Market:           String(t["market"]),
			Name:             String(t["name"]),
			Alias:            String(t["alias"]),
			Founded:          Int(t["founded"]),
			Mascot:           String(t["mascot"]),
			FightSong:        String(t["fight_song"]),
			ChampionshipsWon: Int(GetOr(t, 0, "championships_won")),
			ConferenceID:     conferenceID,
			DivisionID:       divisionID,
			VenueID:          venueID,
		})
	}
}

// lookupVenue resolves an embedded venue reference against already-extracted
// venues, by token first and name second. It never registers: an unknown
// venue reference becomes a null link.
func (p *Pipeline) lookupVenue(v Document) *string {
	if token := Token(v["id"]); token != nil {
		if id, ok := p.venues.Lookup(*token); ok {
			return &id
		}
		return nil
	}
	if name := String(v["name"]); name != nil {
		if id, ok := p.venues.Lookup(*name); ok {
			return &id
		}
	}
	return nil
}
