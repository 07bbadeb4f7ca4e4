package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/gridironhq/leaguesync/external/llm"
	"github.com/gridironhq/leaguesync/external/sportsdata"
	"github.com/gridironhq/leaguesync/internal/config"
	"github.com/gridironhq/leaguesync/internal/infrastructure/repository/memory"
	"github.com/gridironhq/leaguesync/internal/infrastructure/repository/postgres"
	"github.com/gridironhq/leaguesync/internal/interfaces/httpapi"
	"github.com/gridironhq/leaguesync/internal/platform/logging"
	"github.com/gridironhq/leaguesync/internal/platform/resilience"
	"github.com/gridironhq/leaguesync/internal/usecase"
)

// Services bundles every use case the binaries can serve. Repositories are
// Postgres-backed when DB_URL is set and in-memory otherwise, so local runs
// and tests never need a database.
type Services struct {
	League    *usecase.LeagueService
	Team      *usecase.TeamService
	Player    *usecase.PlayerService
	Ranking   *usecase.RankingService
	Schedule  *usecase.ScheduleService
	Assistant *usecase.AssistantService
	Ingestion *usecase.IngestionService

	db *sqlx.DB
}

func (s *Services) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func OpenDatabase(cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	if cfg.DBURL == "" {
		logger.Info("database disabled, using in-memory repositories", "reason", "DB_URL empty")
		return nil, nil
	}

	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL))
	return db, nil
}

func BuildServices(cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := OpenDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	services := &Services{db: db}

	deps := usecase.IngestionServiceDeps{Logger: logger}
	var assistantRunner usecase.QueryRunner

	if db != nil {
		hierarchyRepo := postgres.NewHierarchyRepository(db)
		venueRepo := postgres.NewVenueRepository(db)
		teamRepo := postgres.NewTeamRepository(db)
		seasonRepo := postgres.NewSeasonRepository(db)
		rosterRepo := postgres.NewRosterRepository(db)
		statsRepo := postgres.NewPlayerStatsRepository(db)
		rankingRepo := postgres.NewRankingRepository(db)
		scheduleRepo := postgres.NewScheduleRepository(db)

		deps.Hierarchy = hierarchyRepo
		deps.Venues = venueRepo
		deps.Teams = teamRepo
		deps.Seasons = seasonRepo
		deps.Players = rosterRepo
		deps.Coaches = rosterRepo
		deps.Stats = statsRepo
		deps.Rankings = rankingRepo
		deps.Schedule = scheduleRepo

		assistantRunner = postgres.NewQueryRunner(db)

		services.League = usecase.NewLeagueService(hierarchyRepo, venueRepo, seasonRepo)
		services.Team = usecase.NewTeamService(teamRepo, rosterRepo, rosterRepo)
		services.Player = usecase.NewPlayerService(rosterRepo, statsRepo)
		services.Ranking = usecase.NewRankingService(rankingRepo)
		services.Schedule = usecase.NewScheduleService(scheduleRepo)
	} else {
		store := memory.NewStore()

		deps.Hierarchy = store
		deps.Venues = store
		deps.Teams = store
		deps.Seasons = store
		deps.Players = store
		deps.Coaches = store
		deps.Stats = store
		deps.Rankings = store
		deps.Schedule = store

		services.League = usecase.NewLeagueService(store, store, store)
		services.Team = usecase.NewTeamService(store, store, store)
		services.Player = usecase.NewPlayerService(store, store)
		services.Ranking = usecase.NewRankingService(store)
		services.Schedule = usecase.NewScheduleService(store)
	}

	services.Ingestion = usecase.NewIngestionService(deps)

	var generator usecase.SQLGenerator
	if cfg.AssistantEnabled {
		client, err := llm.NewClient(llm.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.OpenAITimeout,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("build llm client: %w", err)
		}
		generator = client
	}
	services.Assistant = usecase.NewAssistantService(generator, assistantRunner, logger)

	return services, nil
}

func NewSnapshotFetcher(cfg config.Config, logger *logging.Logger) (*sportsdata.Client, error) {
	if !cfg.FeedEnabled {
		return nil, fmt.Errorf("feed is disabled, set FEED_ENABLED=true and FEED_API_KEY")
	}

	return sportsdata.NewClient(sportsdata.ClientConfig{
		BaseURL:          cfg.FeedBaseURL,
		APIKey:           cfg.FeedAPIKey,
		AccessLevel:      cfg.FeedAccessLevel,
		Format:           cfg.FeedFormat,
		Timeout:          cfg.FeedTimeout,
		MaxRetries:       cfg.FeedMaxRetries,
		FetchConcurrency: cfg.FeedFetchConcurrency,
		Logger:           logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FeedCircuitEnabled,
			FailureThreshold: cfg.FeedCircuitFailureCount,
			OpenTimeout:      cfg.FeedCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMax,
		},
	}), nil
}

func NewHTTPServer(cfg config.Config, services *Services, logger *slog.Logger) (*http.Server, error) {
	handler := httpapi.NewHandler(
		services.League,
		services.Team,
		services.Player,
		services.Ranking,
		services.Schedule,
		services.Assistant,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
