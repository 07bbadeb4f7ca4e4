package normalize

import (
	"reflect"
	"testing"

	"github.com/gridironhq/leaguesync/internal/domain/roster"
)

const (
	teamToken      = "aaaaaaaa-0000-4000-8000-000000000001"
	orphanToken    = "aaaaaaaa-0000-4000-8000-000000000002"
	playerToken    = "bbbbbbbb-0000-4000-8000-000000000001"
	namelessToken  = "bbbbbbbb-0000-4000-8000-000000000002"
	strangerToken  = "bbbbbbbb-0000-4000-8000-000000000099"
	venueToken     = "cccccccc-0000-4000-8000-000000000001"
	awayTeamToken  = "aaaaaaaa-0000-4000-8000-000000000003"
)

func fullSnapshot() Snapshot {
	return Snapshot{
		Hierarchy: map[string]any{
			"divisions": []any{
				map[string]any{
					"name": "East",
					"conferences": []any{
						map[string]any{"name": "SEC", "alias": "SEC"},
					},
				},
				map[string]any{
					"name": "East",
					"conferences": []any{
						map[string]any{"name": "ACC", "alias": "ACC"},
					},
				},
			},
		},
		Teams: map[string]any{
			"teams": []any{
				map[string]any{
					"id":         teamToken,
					"market":     "Texas A&M",
					"name":       "Aggies",
					"alias":      "TAMU",
					"conference": map[string]any{"name": "SEC"},
					"division":   map[string]any{"name": "East"},
					"venue": map[string]any{
						"id":       venueToken,
						"name":     "Kyle Field",
						"city":     "College Station",
						"capacity": 102733.0,
						"location": map[string]any{"lat": 30.61, "lng": -96.34},
					},
				},
				map[string]any{
					"id":         orphanToken,
					"name":       "Eagles",
					"conference": map[string]any{"name": "Mountain West"},
				},
				map[string]any{"name": "No Token U"},
			},
		},
		Seasons: map[string]any{
			"seasons": []any{
				map[string]any{
					"year":       2025.0,
					"type":       map[string]any{"code": "REG"},
					"start_date": "2025-08-23",
					"status":     "inprogress",
				},
				map[string]any{"year": 2025.0, "type": "REG"},
			},
		},
		Rosters: map[string]any{
			teamToken: map[string]any{
				"players": []any{
					map[string]any{
						"id":       playerToken,
						"name":     "Bo Jackson",
						"position": map[string]any{"name": "Running Back", "abbr": "RB"},
						"height":   "6-3",
						"weight":   220.0,
					},
					map[string]any{"id": namelessToken, "weight": 305.0},
					map[string]any{"name": "No Token Walker"},
				},
				"coaches": []any{
					map[string]any{"full_name": "Mike Elko", "position": "Head Coach"},
					map[string]any{"position": "Assistant"},
				},
			},
			"not-a-registered-team": map[string]any{
				"players": []any{map[string]any{"id": strangerToken, "name": "Ghost Player"}},
			},
		},
		SeasonStats: map[string]any{
			teamToken: map[string]any{
				"players": []any{
					map[string]any{
						"id": playerToken,
						"statistics": map[string]any{
							"games_played": 12.0,
							"rushing":      map[string]any{"yards": 1134.0, "touchdowns": 14.0},
						},
					},
					map[string]any{
						"id":         strangerToken,
						"statistics": map[string]any{"games_played": 9.0},
					},
				},
			},
		},
		Rankings: map[string]any{
			"poll":           map[string]any{"name": "AP Top 25"},
			"week":           5.0,
			"effective_time": "2025-10-01T00:00:00Z",
			"rankings": []any{
				map[string]any{"id": teamToken, "rank": 1.0, "points": 1550.0, "wins": 5.0},
				map[string]any{"id": strangerToken, "rank": 2.0},
			},
		},
		Schedule: map[string]any{
			"games": []any{
				map[string]any{
					"home_team": map[string]any{"id": teamToken},
					"away_team": map[string]any{"id": awayTeamToken},
					"date":      "2025-09-06T19:30:00Z",
					"venue":     map[string]any{"name": "Kyle Field"},
				},
				map[string]any{
					"home":       map[string]any{"id": awayTeamToken},
					"away":       map[string]any{"id": teamToken},
					"start_time": "2025-11-29T20:00:00Z",
				},
			},
		},
		Year:       2025,
		SeasonType: "REG",
	}
}

func TestPipelineRun(t *testing.T) {
	tables, err := NewPipeline(nil).Run(fullSnapshot())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	t.Run("division names scoped by conference", func(t *testing.T) {
		if len(tables.Conferences) != 2 {
			t.Fatalf("expected 2 conferences, got %d", len(tables.Conferences))
		}
		if len(tables.Divisions) != 2 {
			t.Fatalf("expected 2 distinct East divisions, got %d", len(tables.Divisions))
		}
		if tables.Divisions[0].ID == tables.Divisions[1].ID {
			t.Fatal("divisions under different conferences share an identity")
		}
		if tables.Divisions[0].ConferenceID == tables.Divisions[1].ConferenceID {
			t.Fatal("divisions resolved to the same conference")
		}
	})

	t.Run("team links resolve or stay null", func(t *testing.T) {
		if len(tables.Teams) != 2 {
			t.Fatalf("expected 2 teams (tokenless one dropped), got %d", len(tables.Teams))
		}

		linked := tables.Teams[0]
		if linked.ID != teamToken {
			t.Fatalf("unexpected team id: %s", linked.ID)
		}
		if linked.ConferenceID == nil || linked.DivisionID == nil || linked.VenueID == nil {
			t.Fatal("resolvable references were not linked")
		}
		if *linked.VenueID != venueToken {
			t.Fatalf("venue pass-through identity mismatch: %s", *linked.VenueID)
		}

		orphan := tables.Teams[1]
		if orphan.ConferenceID != nil {
			t.Fatalf("unresolvable conference must be null, got %s", *orphan.ConferenceID)
		}
	})

	t.Run("seasons collapse by year and type", func(t *testing.T) {
		if len(tables.Seasons) != 1 {
			t.Fatalf("expected 1 season, got %d", len(tables.Seasons))
		}
		if tables.Seasons[0].Year != 2025 || tables.Seasons[0].TypeCode != "REG" {
			t.Fatalf("unexpected season: %+v", tables.Seasons[0])
		}
	})

	t.Run("player name reconciliation", func(t *testing.T) {
		if len(tables.Players) != 2 {
			t.Fatalf("expected 2 players, got %d", len(tables.Players))
		}

		bo := tables.Players[0]
		if deref(bo.FirstName) != "Bo" || bo.LastName != "Jackson" {
			t.Fatalf("string name not split: first=%v last=%s", bo.FirstName, bo.LastName)
		}
		if deref(bo.Position) != "Running Back" {
			t.Fatalf("position name not taken: %v", bo.Position)
		}
		if bo.HeightInches == nil || *bo.HeightInches != 75 {
			t.Fatalf("height not converted: %v", bo.HeightInches)
		}

		nameless := tables.Players[1]
		if nameless.LastName != roster.UnknownLastName {
			t.Fatalf("nameless player not kept with sentinel: %q", nameless.LastName)
		}
	})

	t.Run("coach without name dropped", func(t *testing.T) {
		if len(tables.Coaches) != 1 {
			t.Fatalf("expected 1 coach, got %d", len(tables.Coaches))
		}
		if tables.Coaches[0].FullName != "Mike Elko" || tables.Coaches[0].TeamID != teamToken {
			t.Fatalf("unexpected coach: %+v", tables.Coaches[0])
		}
	})

	t.Run("statistics only for resolved players", func(t *testing.T) {
		if len(tables.PlayerStatistics) != 1 {
			t.Fatalf("expected 1 statistic row, got %d", len(tables.PlayerStatistics))
		}
		stat := tables.PlayerStatistics[0]
		if stat.PlayerID != playerToken || stat.TeamID != teamToken {
			t.Fatalf("unexpected statistic linkage: %+v", stat)
		}
		if stat.RushingYards == nil || *stat.RushingYards != 1134 {
			t.Fatalf("nested statistic not extracted: %v", stat.RushingYards)
		}
	})

	t.Run("rankings only for resolved teams", func(t *testing.T) {
		if len(tables.Rankings) != 1 {
			t.Fatalf("expected 1 ranking row, got %d", len(tables.Rankings))
		}
		row := tables.Rankings[0]
		if row.TeamID != teamToken || row.SeasonID == nil {
			t.Fatalf("unexpected ranking: %+v", row)
		}
		if deref(row.PollName) != "AP Top 25" || row.Week == nil || *row.Week != 5 {
			t.Fatalf("poll metadata missing: %+v", row)
		}
	})

	t.Run("schedule keeps raw team tokens", func(t *testing.T) {
		if len(tables.ScheduleGames) != 2 {
			t.Fatalf("expected 2 games, got %d", len(tables.ScheduleGames))
		}
		game := tables.ScheduleGames[0]
		if deref(game.HomeTeamID) != teamToken || deref(game.AwayTeamID) != awayTeamToken {
			t.Fatalf("alternate team fields not read: %+v", game)
		}
		if deref(game.Scheduled) != "2025-09-06T19:30:00Z" {
			t.Fatalf("alternate time field not read: %+v", game)
		}
		if deref(tables.ScheduleGames[1].Scheduled) != "2025-11-29T20:00:00Z" {
			t.Fatalf("start_time alias not read: %+v", tables.ScheduleGames[1])
		}
	})
}

func TestPipelineRunDeterministic(t *testing.T) {
	first, err := NewPipeline(nil).Run(fullSnapshot())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := NewPipeline(nil).Run(fullSnapshot())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical input produced different output tables")
	}
}

func TestPipelineStatisticsRequireSeason(t *testing.T) {
	snap := fullSnapshot()
	snap.Seasons = nil

	tables, err := NewPipeline(nil).Run(snap)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(tables.PlayerStatistics) != 0 {
		t.Fatalf("statistics batch must be skipped without a season, got %d rows", len(tables.PlayerStatistics))
	}

	// Rankings take the opposite policy: the row survives with a null season.
	if len(tables.Rankings) != 1 {
		t.Fatalf("expected 1 ranking row, got %d", len(tables.Rankings))
	}
	if tables.Rankings[0].SeasonID != nil {
		t.Fatalf("ranking season must be null, got %s", *tables.Rankings[0].SeasonID)
	}
}

func TestPipelineSkipsAbsentStages(t *testing.T) {
	tables, err := NewPipeline(nil).Run(Snapshot{
		Teams: map[string]any{
			"teams": []any{map[string]any{"id": teamToken, "name": "Aggies"}},
		},
		Year:       2025,
		SeasonType: "REG",
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(tables.Teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(tables.Teams))
	}
	if len(tables.Conferences) != 0 || len(tables.Players) != 0 || len(tables.Rankings) != 0 {
		t.Fatal("skipped stages produced rows")
	}
}

func TestPipelineKeepsFieldlessGamesDistinct(t *testing.T) {
	tables, err := NewPipeline(nil).Run(Snapshot{
		Schedule: map[string]any{
			"games": []any{map[string]any{}, map[string]any{}},
		},
		Year:       2025,
		SeasonType: "REG",
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(tables.ScheduleGames) != 2 {
		t.Fatalf("games without teams or kickoff must not merge, got %d rows", len(tables.ScheduleGames))
	}
	if tables.ScheduleGames[0].ID == tables.ScheduleGames[1].ID {
		t.Fatalf("degenerate games share id %s", tables.ScheduleGames[0].ID)
	}
}

func TestPipelineRejectsNonMappingInput(t *testing.T) {
	_, err := NewPipeline(nil).Run(Snapshot{Hierarchy: []any{"not", "a", "mapping"}})
	if err == nil {
		t.Fatal("expected hard failure for non-mapping top-level document")
	}
}

func TestPipelineWeeklyRankings(t *testing.T) {
	snap := fullSnapshot()
	snap.WeekRankings = map[int]any{
		1: map[string]any{
			"poll": map[string]any{"name": "AP Top 25"},
			"rankings": []any{
				map[string]any{"id": teamToken, "rank": 4.0},
			},
		},
	}

	tables, err := NewPipeline(nil).Run(snap)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(tables.Rankings) != 2 {
		t.Fatalf("expected current + week 1 rows, got %d", len(tables.Rankings))
	}
	weekly := tables.Rankings[1]
	if weekly.Week == nil || *weekly.Week != 1 {
		t.Fatalf("weekly ranking week mismatch: %+v", weekly)
	}
	if weekly.ID == tables.Rankings[0].ID {
		t.Fatal("sequential ranking ids collided")
	}
}
