package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridironhq/leaguesync/internal/platform/logging"
)

// SQLGenerator turns a natural language question into a SQL statement.
// Satisfied by the llm chat client.
type SQLGenerator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// QueryRunner executes one read-only statement and returns the result grid.
type QueryRunner interface {
	QueryRows(ctx context.Context, query string) (columns []string, rows [][]any, err error)
}

type AssistantAnswer struct {
	Question string
	SQL      string
	Columns  []string
	Rows     [][]any
}

const assistantRowLimit = 200

// assistantSchemaPrompt describes the relational surface the model may query.
// Kept in lockstep with db/migrations.
const assistantSchemaPrompt = `You translate questions about a college football database into a single PostgreSQL SELECT statement.

Schema:
  conferences(id, name, alias)
  divisions(id, name, alias, conference_id)
  venues(id, name, city, state, country, zip, address, capacity, surface, roof_type, latitude, longitude)
  teams(id, market, name, alias, founded, mascot, fight_song, championships_won, conference_id, division_id, venue_id)
  seasons(id, year, type_code, start_date, end_date, status)
  players(id, first_name, last_name, abbr_name, birth_place, position, height_inches, weight, status, eligibility, team_id)
  coaches(id, full_name, position, team_id)
  player_statistics(id, player_id, team_id, season_id, games_played, games_started, rushing_yards, rushing_touchdowns, receiving_yards, receiving_touchdowns, kick_return_yards, fumbles)
  rankings(id, poll_id, poll_name, season_id, week, effective_time, team_id, rank, prev_rank, points, first_place_votes, wins, losses, ties)
  schedule_games(id, home_team_id, away_team_id, scheduled, venue_name)

Rules:
- Respond with exactly one SELECT statement and nothing else.
- Never modify data. No INSERT, UPDATE, DELETE, DDL, or multiple statements.
- Prefer explicit JOINs over subqueries when linking tables.`

type AssistantService struct {
	generator SQLGenerator
	runner    QueryRunner
	logger    *logging.Logger
}

func NewAssistantService(generator SQLGenerator, runner QueryRunner, logger *logging.Logger) *AssistantService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AssistantService{generator: generator, runner: runner, logger: logger}
}

func (s *AssistantService) Query(ctx context.Context, question string) (AssistantAnswer, error) {
	ctx, span := startUsecaseSpan(ctx, "AssistantService.Query")
	defer span.End()

	question = strings.TrimSpace(question)
	if question == "" {
		return AssistantAnswer{}, fmt.Errorf("%w: question is required", ErrInvalidInput)
	}
	if s.generator == nil || s.runner == nil {
		return AssistantAnswer{}, fmt.Errorf("%w: assistant is not configured", ErrDependencyUnavailable)
	}

	raw, err := s.generator.Complete(ctx, assistantSchemaPrompt, question)
	if err != nil {
		return AssistantAnswer{}, fmt.Errorf("%w: generate sql: %v", ErrDependencyUnavailable, err)
	}

	statement, err := sanitizeGeneratedSQL(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "assistant produced a non-executable statement", "error", err)
		return AssistantAnswer{}, err
	}

	columns, rows, err := s.runner.QueryRows(ctx, statement)
	if err != nil {
		return AssistantAnswer{}, fmt.Errorf("execute generated sql: %w", err)
	}

	s.logger.InfoContext(ctx, "assistant query answered", "rows", len(rows))
	return AssistantAnswer{
		Question: question,
		SQL:      statement,
		Columns:  columns,
		Rows:     rows,
	}, nil
}

// sanitizeGeneratedSQL strips markdown fencing and enforces the single
// read-only SELECT contract. Anything else is rejected before it reaches
// the database.
func sanitizeGeneratedSQL(raw string) (string, error) {
	statement := strings.TrimSpace(raw)
	statement = strings.TrimPrefix(statement, "```sql")
	statement = strings.TrimPrefix(statement, "```")
	statement = strings.TrimSuffix(statement, "```")
	statement = strings.TrimSpace(statement)
	statement = strings.TrimSuffix(statement, ";")
	statement = strings.TrimSpace(statement)

	if statement == "" {
		return "", fmt.Errorf("%w: model returned an empty statement", ErrInvalidInput)
	}
	if strings.Contains(statement, ";") {
		return "", fmt.Errorf("%w: multiple statements are not allowed", ErrInvalidInput)
	}

	lower := strings.ToLower(statement)
	if !strings.HasPrefix(lower, "select") && !strings.HasPrefix(lower, "with") {
		return "", fmt.Errorf("%w: only SELECT statements are allowed", ErrInvalidInput)
	}

	for _, keyword := range []string{"insert", "update", "delete", "drop", "alter", "create", "truncate", "grant", "revoke", "copy", "vacuum"} {
		if containsWord(lower, keyword) {
			return "", fmt.Errorf("%w: statement contains forbidden keyword %q", ErrInvalidInput, keyword)
		}
	}

	if !containsWord(lower, "limit") {
		statement = fmt.Sprintf("%s LIMIT %d", statement, assistantRowLimit)
	}
	return statement, nil
}

func containsWord(haystack, word string) bool {
	idx := 0
	for {
		pos := strings.Index(haystack[idx:], word)
		if pos < 0 {
			return false
		}
		pos += idx
		before := pos == 0 || !isWordByte(haystack[pos-1])
		afterIdx := pos + len(word)
		after := afterIdx >= len(haystack) || !isWordByte(haystack[afterIdx])
		if before && after {
			return true
		}
		idx = pos + len(word)
	}
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
