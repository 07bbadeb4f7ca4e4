package normalize

import (
	"strconv"

	"github.com/gridironhq/leaguesync/internal/domain/season"
)

// normalizeSeasons builds season rows keyed by (year, type code). The type
// arrives either nested ({"type":{"code":"REG"}}) or as a bare string;
// duplicate (year, type) pairs across calls collapse to the first row.
func (p *Pipeline) normalizeSeasons(doc Document) {
	for _, s := range Items(doc, "seasons") {
		year := Int(s["year"])
		typeCode := String(Get(s, "type", "code"))
		if typeCode == nil {
			typeCode = String(s["type"])
		}
		if year == nil || typeCode == nil {
			continue
		}

		id, created := p.seasons.Adopt(seasonKey(*year, *typeCode), deref(Token(s["id"])))
		if !created {
			continue
		}

		p.tables.Seasons = append(p.tables.Seasons, season.Season{
			ID:        id,
			Year:      *year,
			StartDate: Date(s["start_date"]),
			EndDate:   Date(s["end_date"]),
			Status:    String(s["status"]),
			TypeCode:  *typeCode,
		})
	}
}

func seasonKey(year int, typeCode string) string {
	return Key(strconv.Itoa(year), typeCode)
}
