package main

import (
	"context"
	"database/sql"
	"net/http"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	server "stayhaven/internal/adapters/http_server"
	"stayhaven/internal/adapters/observability"
	redisad "stayhaven/internal/adapters/redis"
	"stayhaven/internal/app"
	"stayhaven/internal/shared"
	mysqlrepo "stayhaven/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	repo := mysqlrepo.New(db)

	ctx := context.Background()
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}
	if err := repo.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(repo, cache, cfg.CacheTTL)
	b := app.NewBookingService(repo)

	prewarmCaches(ctx, q, cfg.PrewarmWorkers)

	renderer, err := server.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("template parse failed")
	}

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:             q,
		B:             b,
		R:             renderer,
		SubmitLimiter: rate.NewLimiter(rate.Limit(cfg.BookRateRPS), cfg.BookRateRPS),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("site listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// prewarmCaches fills redis with the pages every visitor hits first: the city
// list, the featured set, and each featured hotel's rooms. Room fan-out is
// bounded by a weighted semaphore. Best-effort: failures are logged, startup
// continues.
func prewarmCaches(ctx context.Context, q *app.QueryService, workers int) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := q.Cities(ctx); err != nil {
		log.Warn().Err(err).Msg("prewarm cities failed")
	}
	hotels, err := q.FeaturedHotels(ctx, 4)
	if err != nil {
		log.Warn().Err(err).Msg("prewarm featured failed")
		return
	}

	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	for _, h := range hotels {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("prewarm semaphore acquire failed")
			break
		}
		wg.Add(1)
		go func(hotelID int64) {
			defer wg.Done()
			defer sem.Release(1)
			if _, err := q.RoomsForHotel(ctx, hotelID); err != nil {
				log.Warn().Int64("hotel", hotelID).Err(err).Msg("prewarm rooms failed")
				return
			}
		}(h.ID)
	}
	wg.Wait()
	log.Info().Int("hotels", len(hotels)).Msg("cache prewarm done")
}
