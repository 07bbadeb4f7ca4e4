package normalize

import "github.com/gridironhq/leaguesync/internal/domain/hierarchy"

// normalizeHierarchy walks the league hierarchy document. The feed nests
// conferences under divisions, the reverse of the relational model, so the
// walk inverts it: every conference is recorded once even when reachable
// through several divisions, and every division is scoped by the owning
// conference because division names are not globally unique.
func (p *Pipeline) normalizeHierarchy(doc Document) {
	for _, div := range Items(doc, "divisions") {
		divName := String(div["name"])
		if divName == nil {
			continue
		}
		divAlias := String(div["alias"])
		divToken := deref(Token(div["id"]))

		for _, conf := range Items(div, "conferences") {
			confName := String(conf["name"])
			if confName == nil {
				continue
			}

			confID, _ := p.conferences.Adopt(*confName, deref(Token(conf["id"])))
			if !p.confSeen[confID] {
				p.confSeen[confID] = true
				p.tables.Conferences = append(p.tables.Conferences, hierarchy.Conference{
					ID:    confID,
					Name:  *confName,
					Alias: String(conf["alias"]),
				})
			}

			divID, _ := p.divisions.Adopt(Key(confID, *divName), divToken)
			if !p.divSeen[divID] {
				p.divSeen[divID] = true
				p.tables.Divisions = append(p.tables.Divisions, hierarchy.Division{
					ID:           divID,
					Name:         *divName,
					Alias:        divAlias,
					ConferenceID: confID,
				})
			}

			// Hierarchy team entries often embed the venue long before the
			// teams endpoint is processed.
			for _, t := range Items(conf, "teams") {
				if v, ok := t["venue"].(map[string]any); ok {
					p.extractVenue(v)
				}
			}
		}
	}
}
