package normalize

import "github.com/gridironhq/leaguesync/internal/domain/venue"

// normalizeVenues sweeps the teams document for embedded venue objects.
// There is no venue endpoint; venues only ever arrive attached to team and
// roster documents.
func (p *Pipeline) normalizeVenues(doc Document) {
	for _, t := range Items(doc, "teams") {
		if v, ok := t["venue"].(map[string]any); ok {
			p.extractVenue(v)
		}
	}
}

// extractVenue registers a venue on first occurrence and returns its
// canonical id. Identity is the feed token when the venue carries a valid
// one, otherwise it is synthesized from the name; later occurrences of the
// same venue never overwrite the first. Venues with neither token nor name
// are unusable and dropped.
func (p *Pipeline) extractVenue(v Document) *string {
	token := Token(v["id"])
	name := String(v["name"])

	var key string
	switch {
	case token != nil:
		key = *token
	case name != nil:
		key = *name
	default:
		return nil
	}

	id, created := p.venues.Adopt(key, deref(token))
	if !created {
		return &id
	}

	location := Get(v, "location")
	country := String(GetOr(v, "USA", "country"))

	p.tables.Venues = append(p.tables.Venues, venue.Venue{
		ID:        id,
		Name:      name,
		City:      String(v["city"]),
		State:     String(v["state"]),
		Country:   country,
		Zip:       String(v["zip"]),
		Address:   String(v["address"]),
		Capacity:  Int(v["capacity"]),
		Surface:   String(v["surface"]),
		RoofType:  String(v["roof_type"]),
		Latitude:  Float(Get(location, "lat")),
		Longitude: Float(Get(location, "lng")),
	})
	return &id
}
