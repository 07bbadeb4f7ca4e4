// Package sportsdata fetches college football feed documents over HTTP and
// assembles them into a pipeline snapshot. Payloads are decoded into untyped
// maps on purpose: the normalizer owns field interpretation, the client only
// owns transport.
package sportsdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/gridironhq/leaguesync/internal/normalize"
	"github.com/gridironhq/leaguesync/internal/platform/logging"
	"github.com/gridironhq/leaguesync/internal/platform/resilience"
	"github.com/gridironhq/leaguesync/internal/usecase"
)

const (
	defaultBaseURL     = "https://api.sportradar.us/ncaafb"
	defaultAccessLevel = "trial"
	defaultFormat      = "json"
	defaultConcurrency = 4
	maxResponseBytes   = 16 << 20
)

var apiKeyParamRegex = regexp.MustCompile(`api_key=[^&\s"']+`)
var errFeedTransient = crerr.New("feed transient failure")

type ClientConfig struct {
	HTTPClient       *http.Client
	BaseURL          string
	APIKey           string
	AccessLevel      string
	Format           string // payload extension on every endpoint, "json" by default
	Timeout          time.Duration
	MaxRetries       int
	FetchConcurrency int
	Logger           *logging.Logger
	CircuitBreaker   resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	accessLevel    string
	format         string
	maxRetries     int
	concurrency    int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	accessLevel := strings.TrimSpace(cfg.AccessLevel)
	if accessLevel == "" {
		accessLevel = defaultAccessLevel
	}
	format := strings.TrimSpace(cfg.Format)
	if format == "" {
		format = defaultFormat
	}
	concurrency := cfg.FetchConcurrency
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		accessLevel:    accessLevel,
		format:         format,
		maxRetries:     max(cfg.MaxRetries, 0),
		concurrency:    concurrency,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchHierarchy(ctx context.Context) (map[string]any, error) {
	return c.doJSON(ctx, c.path("league/hierarchy"))
}

func (c *Client) FetchTeams(ctx context.Context) (map[string]any, error) {
	return c.doJSON(ctx, c.path("league/teams"))
}

func (c *Client) FetchSeasons(ctx context.Context) (map[string]any, error) {
	return c.doJSON(ctx, c.path("league/seasons"))
}

func (c *Client) FetchRoster(ctx context.Context, teamID string) (map[string]any, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, fmt.Errorf("%w: team id is required", usecase.ErrInvalidInput)
	}
	return c.doJSON(ctx, c.path("teams/%s/full_roster", teamID))
}

func (c *Client) FetchSeasonStatistics(ctx context.Context, year int, seasonType, teamID string) (map[string]any, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, fmt.Errorf("%w: team id is required", usecase.ErrInvalidInput)
	}
	return c.doJSON(ctx, c.path("seasons/%d/%s/teams/%s/statistics", year, seasonType, teamID))
}

func (c *Client) FetchRankings(ctx context.Context, year int) (map[string]any, error) {
	return c.doJSON(ctx, c.path("polls/AP25/%d/rankings", year))
}

func (c *Client) FetchWeekRankings(ctx context.Context, year, week int) (map[string]any, error) {
	if week < 1 {
		return nil, fmt.Errorf("%w: week must be >= 1", usecase.ErrInvalidInput)
	}
	return c.doJSON(ctx, c.path("polls/AP25/%d/%d/rankings", year, week))
}

func (c *Client) FetchSchedule(ctx context.Context, year int, seasonType string) (map[string]any, error) {
	return c.doJSON(ctx, c.path("games/%d/%s/schedule", year, seasonType))
}

// FetchSnapshot pulls every resource for one season into a Snapshot. League
// level documents are fetched serially; per-team rosters and statistics fan
// out over a bounded worker pool. A failed per-team fetch is logged and left
// out of the snapshot rather than failing the whole pull.
func (c *Client) FetchSnapshot(ctx context.Context, year int, seasonType string, rankingWeeks []int) (normalize.Snapshot, error) {
	snap := normalize.Snapshot{
		Year:       year,
		SeasonType: seasonType,
	}

	hierarchy, err := c.FetchHierarchy(ctx)
	if err != nil {
		return normalize.Snapshot{}, fmt.Errorf("fetch hierarchy: %w", err)
	}
	snap.Hierarchy = hierarchy

	teams, err := c.FetchTeams(ctx)
	if err != nil {
		return normalize.Snapshot{}, fmt.Errorf("fetch teams: %w", err)
	}
	snap.Teams = teams

	seasons, err := c.FetchSeasons(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "fetch seasons failed, season-scoped stages will be skipped", "error", err)
	} else {
		snap.Seasons = seasons
	}

	teamIDs := teamTokens(teams)
	rosters, stats, err := c.fetchTeamDocuments(ctx, teamIDs, year, seasonType)
	if err != nil {
		return normalize.Snapshot{}, err
	}
	snap.Rosters = rosters
	snap.SeasonStats = stats

	rankings, err := c.FetchRankings(ctx, year)
	if err != nil {
		c.logger.WarnContext(ctx, "fetch current rankings failed, stage will be skipped", "year", year, "error", err)
	} else {
		snap.Rankings = rankings
	}

	if len(rankingWeeks) > 0 {
		snap.WeekRankings = make(map[int]any, len(rankingWeeks))
		for _, week := range rankingWeeks {
			doc, err := c.FetchWeekRankings(ctx, year, week)
			if err != nil {
				if ctx.Err() != nil {
					return normalize.Snapshot{}, ctx.Err()
				}
				c.logger.WarnContext(ctx, "fetch week rankings failed, week skipped", "year", year, "week", week, "error", err)
				continue
			}
			snap.WeekRankings[week] = doc
		}
	}

	schedule, err := c.FetchSchedule(ctx, year, seasonType)
	if err != nil {
		c.logger.WarnContext(ctx, "fetch schedule failed, stage will be skipped", "year", year, "error", err)
	} else {
		snap.Schedule = schedule
	}

	return snap, nil
}

func (c *Client) fetchTeamDocuments(ctx context.Context, teamIDs []string, year int, seasonType string) (map[string]any, map[string]any, error) {
	rosters := make(map[string]any, len(teamIDs))
	stats := make(map[string]any, len(teamIDs))
	if len(teamIDs) == 0 {
		return rosters, stats, nil
	}

	pool, err := ants.NewPool(c.concurrency)
	if err != nil {
		return nil, nil, fmt.Errorf("create fetch pool: %w", err)
	}
	defer pool.Release()

	var mu sync.Mutex
	var workers sync.WaitGroup
	for _, teamID := range teamIDs {
		teamID := teamID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			roster, rosterErr := c.FetchRoster(ctx, teamID)
			if rosterErr != nil {
				c.logger.WarnContext(ctx, "fetch roster failed, team skipped", "team_id", teamID, "error", rosterErr)
			}
			stat, statErr := c.FetchSeasonStatistics(ctx, year, seasonType, teamID)
			if statErr != nil {
				c.logger.WarnContext(ctx, "fetch season statistics failed, team skipped", "team_id", teamID, "error", statErr)
			}

			mu.Lock()
			if rosterErr == nil {
				rosters[teamID] = roster
			}
			if statErr == nil {
				stats[teamID] = stat
			}
			mu.Unlock()
		}); err != nil {
			workers.Done()
			return nil, nil, fmt.Errorf("submit team fetch: %w", err)
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return rosters, stats, nil
}

// teamTokens collects the pass-through team identifiers from the league teams
// document, sorted so downstream fetch order is stable.
func teamTokens(doc map[string]any) []string {
	items := normalize.Items(doc, "teams")
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		token := normalize.Token(normalize.Get(item, "id"))
		if token == nil || seen[*token] {
			continue
		}
		seen[*token] = true
		out = append(out, *token)
	}
	sort.Strings(out)
	return out
}

func (c *Client) path(pattern string, args ...any) string {
	return "/" + c.accessLevel + "/v1/" + fmt.Sprintf(pattern, args...) + "." + c.format
}

func (c *Client) doJSON(ctx context.Context, path string) (map[string]any, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "feed circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	values.Set("api_key", c.apiKey)
	fullURL := c.baseURL + path + "?" + values.Encode()

	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	var doc map[string]any
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode feed payload: %w", err)
	}
	return doc, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errFeedTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errFeedTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: feed status=%d body=%s", errFeedTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "feed request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errFeedTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if key != "" {
		value = strings.ReplaceAll(value, key, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "api_key=REDACTED")
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	if query.Has("api_key") {
		query.Set("api_key", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
