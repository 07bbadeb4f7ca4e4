package normalize

import (
	"fmt"
	"sort"

	"github.com/gridironhq/leaguesync/internal/domain/hierarchy"
	"github.com/gridironhq/leaguesync/internal/domain/playerstats"
	"github.com/gridironhq/leaguesync/internal/domain/ranking"
	"github.com/gridironhq/leaguesync/internal/domain/roster"
	"github.com/gridironhq/leaguesync/internal/domain/schedule"
	"github.com/gridironhq/leaguesync/internal/domain/season"
	"github.com/gridironhq/leaguesync/internal/domain/team"
	"github.com/gridironhq/leaguesync/internal/domain/venue"
	"github.com/gridironhq/leaguesync/internal/platform/logging"
)

// Snapshot is one fetched set of raw feed documents, one entry per logical
// resource. Fields are typed any because the feed's shape is not trusted: a
// nil entry skips the stage, a present non-mapping value fails it.
type Snapshot struct {
	Hierarchy    any
	Teams        any
	Seasons      any
	Rosters      map[string]any // team external id -> roster document
	SeasonStats  map[string]any // team external id -> statistics document
	Rankings     any            // current poll
	WeekRankings map[int]any    // week number -> poll document
	Schedule     any

	Year       int
	SeasonType string
}

// Tables is the normalized output of one pipeline run, ordered so that a
// downstream upsert that follows slice order never writes a child row before
// its parent.
type Tables struct {
	Conferences      []hierarchy.Conference
	Divisions        []hierarchy.Division
	Venues           []venue.Venue
	Teams            []team.Team
	Seasons          []season.Season
	Players          []roster.Player
	Coaches          []roster.Coach
	PlayerStatistics []playerstats.SeasonStat
	Rankings         []ranking.Ranking
	ScheduleGames    []schedule.Game
}

// Counts reports rows per table, keyed by table name.
func (t Tables) Counts() map[string]int {
	return map[string]int{
		"conferences":       len(t.Conferences),
		"divisions":         len(t.Divisions),
		"venues":            len(t.Venues),
		"teams":             len(t.Teams),
		"seasons":           len(t.Seasons),
		"players":           len(t.Players),
		"coaches":           len(t.Coaches),
		"player_statistics": len(t.PlayerStatistics),
		"rankings":          len(t.Rankings),
		"schedule_games":    len(t.ScheduleGames),
	}
}

// Pipeline normalizes one Snapshot into Tables. All entity tables and
// identity maps are private to one Pipeline value; concurrent runs must use
// separate Pipelines.
type Pipeline struct {
	tables Tables
	logger *logging.Logger

	// Conferences and divisions can surface under several resolution keys
	// (one per nesting path); record append is deduped by identity so each
	// canonical id yields exactly one row.
	confSeen map[string]bool
	divSeen  map[string]bool

	conferences *Resolver
	divisions   *Resolver
	venues      *Resolver
	teams       *Resolver
	seasons     *Resolver
	players     *Resolver
	coaches     *Resolver
	stats       *Resolver
	rankings    *Resolver
	games       *Resolver
	polls       *Resolver
}

func NewPipeline(logger *logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.Default()
	}
	return &Pipeline{
		logger:      logger,
		confSeen:    make(map[string]bool),
		divSeen:     make(map[string]bool),
		conferences: NewResolver(StrategySynthesized, "conference"),
		divisions:   NewResolver(StrategySynthesized, "division"),
		venues:      NewResolver(StrategySynthesized, "venue"),
		teams:       NewResolver(StrategyPassThrough, "team"),
		seasons:     NewResolver(StrategySynthesized, "season"),
		players:     NewResolver(StrategyPassThrough, "player"),
		coaches:     NewResolver(StrategySynthesized, "coach"),
		stats:       NewResolver(StrategySequential, "player_statistic"),
		rankings:    NewResolver(StrategySequential, "ranking"),
		games:       NewResolver(StrategySequential, "schedule_game"),
		polls:       NewResolver(StrategySynthesized, "poll"),
	}
}

// Run executes the stages in strict dependency order: hierarchy, venues,
// teams, seasons, rosters, statistics, rankings (current then weekly),
// schedule. A stage with no input is skipped and the run continues; a stage
// whose top-level input is present but not a mapping fails the run, since
// that means no document was actually provided.
func (p *Pipeline) Run(snap Snapshot) (Tables, error) {
	if doc, ok, err := stageDocument("hierarchy", snap.Hierarchy); err != nil {
		return Tables{}, err
	} else if ok {
		p.normalizeHierarchy(doc)
	} else {
		p.logger.Debug("stage skipped: no input", "stage", "hierarchy")
	}

	if doc, ok, err := stageDocument("teams", snap.Teams); err != nil {
		return Tables{}, err
	} else if ok {
		p.normalizeVenues(doc)
		p.normalizeTeams(doc)
	} else {
		p.logger.Debug("stage skipped: no input", "stage", "teams")
	}

	if doc, ok, err := stageDocument("seasons", snap.Seasons); err != nil {
		return Tables{}, err
	} else if ok {
		p.normalizeSeasons(doc)
	} else {
		p.logger.Debug("stage skipped: no input", "stage", "seasons")
	}

	if len(snap.Rosters) > 0 {
		rosters, err := stageDocumentSet("rosters", snap.Rosters)
		if err != nil {
			return Tables{}, err
		}
		p.normalizePlayers(rosters)
		p.normalizeCoaches(rosters)
	} else {
		p.logger.Debug("stage skipped: no input", "stage", "rosters")
	}

	if len(snap.SeasonStats) > 0 {
		stats, err := stageDocumentSet("season_statistics", snap.SeasonStats)
		if err != nil {
			return Tables{}, err
		}
		p.normalizeSeasonStats(stats, snap.Year, snap.SeasonType)
	} else {
		p.logger.Debug("stage skipped: no input", "stage", "season_statistics")
	}

	if doc, ok, err := stageDocument("rankings", snap.Rankings); err != nil {
		return Tables{}, err
	} else if ok {
		p.normalizeRankings(doc, snap.Year, nil)
	} else {
		p.logger.Debug("stage skipped: no input", "stage", "rankings")
	}

	for _, week := range sortedWeeks(snap.WeekRankings) {
		doc, ok, err := stageDocument(fmt.Sprintf("rankings_week_%d", week), snap.WeekRankings[week])
		if err != nil {
			return Tables{}, err
		}
		if !ok {
			continue
		}
		w := week
		p.normalizeRankings(doc, snap.Year, &w)
	}

	if doc, ok, err := stageDocument("schedule", snap.Schedule); err != nil {
		return Tables{}, err
	} else if ok {
		p.normalizeSchedule(doc)
	} else {
		p.logger.Debug("stage skipped: no input", "stage", "schedule")
	}

	return p.tables, nil
}

func stageDocument(stage string, v any) (Document, bool, error) {
	if v == nil {
		return nil, false, nil
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, false, fmt.Errorf("stage %s: top-level document is not a mapping", stage)
	}
	return doc, true, nil
}

func stageDocumentSet(stage string, set map[string]any) (map[string]Document, error) {
	out := make(map[string]Document, len(set))
	for key, v := range set {
		doc, ok, err := stageDocument(stage, v)
		if err != nil {
			return nil, fmt.Errorf("%w (team=%s)", err, key)
		}
		if ok {
			out[key] = doc
		}
	}
	return out, nil
}

// sortedKeys keeps per-team iteration deterministic so sequential ids and
// output order are stable across runs on identical input.
func sortedKeys(set map[string]Document) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedWeeks(set map[int]any) []int {
	weeks := make([]int, 0, len(set))
	for week := range set {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	return weeks
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
