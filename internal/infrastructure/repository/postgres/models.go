package postgres

import (
	"github.com/gridironhq/leaguesync/internal/domain/hierarchy"
	"github.com/gridironhq/leaguesync/internal/domain/playerstats"
	"github.com/gridironhq/leaguesync/internal/domain/ranking"
	"github.com/gridironhq/leaguesync/internal/domain/roster"
	"github.com/gridironhq/leaguesync/internal/domain/schedule"
	"github.com/gridironhq/leaguesync/internal/domain/season"
	"github.com/gridironhq/leaguesync/internal/domain/team"
	"github.com/gridironhq/leaguesync/internal/domain/venue"
)

type conferenceTableModel struct {
	ID    string  `db:"id"`
	Name  string  `db:"name"`
	Alias *string `db:"alias"`
}

func (m conferenceTableModel) toDomain() hierarchy.Conference {
	return hierarchy.Conference{ID: m.ID, Name: m.Name, Alias: m.Alias}
}

func conferenceFromDomain(c hierarchy.Conference) conferenceTableModel {
	return conferenceTableModel{ID: c.ID, Name: c.Name, Alias: c.Alias}
}

type divisionTableModel struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Alias        *string `db:"alias"`
	ConferenceID string  `db:"conference_id"`
}

func (m divisionTableModel) toDomain() hierarchy.Division {
	return hierarchy.Division{ID: m.ID, Name: m.Name, Alias: m.Alias, ConferenceID: m.ConferenceID}
}

func divisionFromDomain(d hierarchy.Division) divisionTableModel {
	return divisionTableModel{ID: d.ID, Name: d.Name, Alias: d.Alias, ConferenceID: d.ConferenceID}
}

type venueTableModel struct {
	ID        string   `db:"id"`
	Name      *string  `db:"name"`
	City      *string  `db:"city"`
	State     *string  `db:"state"`
	Country   *string  `db:"country"`
	Zip       *string  `db:"zip"`
	Address   *string  `db:"address"`
	Capacity  *int     `db:"capacity"`
	Surface   *string  `db:"surface"`
	RoofType  *string  `db:"roof_type"`
	Latitude  *float64 `db:"latitude"`
	Longitude *float64 `db:"longitude"`
}

func (m venueTableModel) toDomain() venue.Venue {
	return venue.Venue{
		ID: m.ID, Name: m.Name, City: m.City, State: m.State, Country: m.Country,
		Zip: m.Zip, Address: m.Address, Capacity: m.Capacity, Surface: m.Surface,
		RoofType: m.RoofType, Latitude: m.Latitude, Longitude: m.Longitude,
	}
}

func venueFromDomain(v venue.Venue) venueTableModel {
	return venueTableModel{
		ID: v.ID, Name: v.Name, City: v.City, State: v.State, Country: v.Country,
		Zip: v.Zip, Address: v.Address, Capacity: v.Capacity, Surface: v.Surface,
		RoofType: v.RoofType, Latitude: v.Latitude, Longitude: v.Longitude,
	}
}

type teamTableModel struct {
	ID               string  `db:"id"`
	Market           *string `db:"market"`
	Name             *string `db:"name"`
	Alias            *string `db:"alias"`
	Founded          *int    `db:"founded"`
	Mascot           *string `db:"mascot"`
	FightSong        *string `db:"fight_song"`
	ChampionshipsWon *int    `db:"championships_won"`
	ConferenceID     *string `db:"conference_id"`
	DivisionID       *string `db:"division_id"`
	VenueID          *string `db:"venue_id"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID: m.ID, Market: m.Market, Name: m.Name, Alias: m.Alias, Founded: m.Founded,
		Mascot: m.Mascot, FightSong: m.FightSong, ChampionshipsWon: m.ChampionshipsWon,
		ConferenceID: m.ConferenceID, DivisionID: m.DivisionID, VenueID: m.VenueID,
	}
}

func teamFromDomain(t team.Team) teamTableModel {
	return teamTableModel{
		ID: t.ID, Market: t.Market, Name: t.Name, Alias: t.Alias, Founded: t.Founded,
		Mascot: t.Mascot, FightSong: t.FightSong, ChampionshipsWon: t.ChampionshipsWon,
		ConferenceID: t.ConferenceID, DivisionID: t.DivisionID, VenueID: t.VenueID,
	}
}

type seasonTableModel struct {
	ID        string  `db:"id"`
	Year      int     `db:"year"`
	TypeCode  string  `db:"type_code"`
	StartDate *string `db:"start_date"`
	EndDate   *string `db:"end_date"`
	Status    *string `db:"status"`
}

func (m seasonTableModel) toDomain() season.Season {
	return season.Season{
		ID: m.ID, Year: m.Year, TypeCode: m.TypeCode,
		StartDate: m.StartDate, EndDate: m.EndDate, Status: m.Status,
	}
}

func seasonFromDomain(s season.Season) seasonTableModel {
	return seasonTableModel{
		ID: s.ID, Year: s.Year, TypeCode: s.TypeCode,
		StartDate: s.StartDate, EndDate: s.EndDate, Status: s.Status,
	}
}

type playerTableModel struct {
	ID           string  `db:"id"`
	FirstName    *string `db:"first_name"`
	LastName     string  `db:"last_name"`
	AbbrName     *string `db:"abbr_name"`
	BirthPlace   *string `db:"birth_place"`
	Position     *string `db:"position"`
	HeightInches *int    `db:"height_inches"`
	Weight       *int    `db:"weight"`
	Status       *string `db:"status"`
	Eligibility  *string `db:"eligibility"`
	TeamID       string  `db:"team_id"`
}

func (m playerTableModel) toDomain() roster.Player {
	return roster.Player{
		ID: m.ID, FirstName: m.FirstName, LastName: m.LastName, AbbrName: m.AbbrName,
		BirthPlace: m.BirthPlace, Position: m.Position, HeightInches: m.HeightInches,
		Weight: m.Weight, Status: m.Status, Eligibility: m.Eligibility, TeamID: m.TeamID,
	}
}

func playerFromDomain(p roster.Player) playerTableModel {
	return playerTableModel{
		ID: p.ID, FirstName: p.FirstName, LastName: p.LastName, AbbrName: p.AbbrName,
		BirthPlace: p.BirthPlace, Position: p.Position, HeightInches: p.HeightInches,
		Weight: p.Weight, Status: p.Status, Eligibility: p.Eligibility, TeamID: p.TeamID,
	}
}

type coachTableModel struct {
	ID       string  `db:"id"`
	FullName string  `db:"full_name"`
	Position *string `db:"position"`
	TeamID   string  `db:"team_id"`
}

func (m coachTableModel) toDomain() roster.Coach {
	return roster.Coach{ID: m.ID, FullName: m.FullName, Position: m.Position, TeamID: m.TeamID}
}

func coachFromDomain(c roster.Coach) coachTableModel {
	return coachTableModel{ID: c.ID, FullName: c.FullName, Position: c.Position, TeamID: c.TeamID}
}

type playerStatTableModel struct {
	ID                  string `db:"id"`
	PlayerID            string `db:"player_id"`
	TeamID              string `db:"team_id"`
	SeasonID            string `db:"season_id"`
	GamesPlayed         *int   `db:"games_played"`
	GamesStarted        *int   `db:"games_started"`
	RushingYards        *int   `db:"rushing_yards"`
	RushingTouchdowns   *int   `db:"rushing_touchdowns"`
	ReceivingYards      *int   `db:"receiving_yards"`
	ReceivingTouchdowns *int   `db:"receiving_touchdowns"`
	KickReturnYards     *int   `db:"kick_return_yards"`
	Fumbles             *int   `db:"fumbles"`
}

func (m playerStatTableModel) toDomain() playerstats.SeasonStat {
	return playerstats.SeasonStat{
		ID: m.ID, PlayerID: m.PlayerID, TeamID: m.TeamID, SeasonID: m.SeasonID,
		GamesPlayed: m.GamesPlayed, GamesStarted: m.GamesStarted,
		RushingYards: m.RushingYards, RushingTouchdowns: m.RushingTouchdowns,
		ReceivingYards: m.ReceivingYards, ReceivingTouchdowns: m.ReceivingTouchdowns,
		KickReturnYards: m.KickReturnYards, Fumbles: m.Fumbles,
	}
}

func playerStatFromDomain(s playerstats.SeasonStat) playerStatTableModel {
	return playerStatTableModel{
		ID: s.ID, PlayerID: s.PlayerID, TeamID: s.TeamID, SeasonID: s.SeasonID,
		GamesPlayed: s.GamesPlayed, GamesStarted: s.GamesStarted,
		RushingYards: s.RushingYards, RushingTouchdowns: s.RushingTouchdowns,
		ReceivingYards: s.ReceivingYards, ReceivingTouchdowns: s.ReceivingTouchdowns,
		KickReturnYards: s.KickReturnYards, Fumbles: s.Fumbles,
	}
}

type rankingTableModel struct {
	ID            string  `db:"id"`
	PollID        string  `db:"poll_id"`
	PollName      *string `db:"poll_name"`
	SeasonID      *string `db:"season_id"`
	Week          *int    `db:"week"`
	EffectiveTime *string `db:"effective_time"`
	TeamID        string  `db:"team_id"`
	Rank          *int    `db:"rank"`
	PrevRank      *int    `db:"prev_rank"`
	Points        *int    `db:"points"`
	FirstPlace    *int    `db:"first_place_votes"`
	Wins          *int    `db:"wins"`
	Losses        *int    `db:"losses"`
	Ties          *int    `db:"ties"`
}

func (m rankingTableModel) toDomain() ranking.Ranking {
	return ranking.Ranking{
		ID: m.ID, PollID: m.PollID, PollName: m.PollName, SeasonID: m.SeasonID,
		Week: m.Week, EffectiveTime: m.EffectiveTime, TeamID: m.TeamID, Rank: m.Rank,
		PrevRank: m.PrevRank, Points: m.Points, FirstPlace: m.FirstPlace,
		Wins: m.Wins, Losses: m.Losses, Ties: m.Ties,
	}
}

func rankingFromDomain(r ranking.Ranking) rankingTableModel {
	return rankingTableModel{
		ID: r.ID, PollID: r.PollID, PollName: r.PollName, SeasonID: r.SeasonID,
		Week: r.Week, EffectiveTime: r.EffectiveTime, TeamID: r.TeamID, Rank: r.Rank,
		PrevRank: r.PrevRank, Points: r.Points, FirstPlace: r.FirstPlace,
		Wins: r.Wins, Losses: r.Losses, Ties: r.Ties,
	}
}

type gameTableModel struct {
	ID         string  `db:"id"`
	HomeTeamID *string `db:"home_team_id"`
	AwayTeamID *string `db:"away_team_id"`
	Scheduled  *string `db:"scheduled"`
	VenueName  *string `db:"venue_name"`
}

func (m gameTableModel) toDomain() schedule.Game {
	return schedule.Game{
		ID: m.ID, HomeTeamID: m.HomeTeamID, AwayTeamID: m.AwayTeamID,
		Scheduled: m.Scheduled, VenueName: m.VenueName,
	}
}

func gameFromDomain(g schedule.Game) gameTableModel {
	return gameTableModel{
		ID: g.ID, HomeTeamID: g.HomeTeamID, AwayTeamID: g.AwayTeamID,
		Scheduled: g.Scheduled, VenueName: g.VenueName,
	}
}
