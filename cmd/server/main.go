package main // Entry point package

import (
    "context"
    "errors"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
    "github.com/rs/zerolog/log"

    "github.com/iliyamo/venue-booking/internal/config"
    "github.com/iliyamo/venue-booking/internal/database"
    "github.com/iliyamo/venue-booking/internal/handler"
    "github.com/iliyamo/venue-booking/internal/logging"
    "github.com/iliyamo/venue-booking/internal/middleware"
    "github.com/iliyamo/venue-booking/internal/repository"
    "github.com/iliyamo/venue-booking/internal/router"
    "github.com/iliyamo/venue-booking/internal/service"
    "github.com/iliyamo/venue-booking/internal/view"
)

func main() {
    // .env is optional; real environment variables win
    _ = godotenv.Load()

    cfg, err := config.Load()
    if err != nil {
        log.Fatal().Err(err).Msg("load config")
    }
    rlCfg, err := config.LoadRateLimitConfig()
    if err != nil {
        log.Fatal().Err(err).Msg("load rate limit config")
    }

    logger, logCloser, err := logging.New(cfg)
    if err != nil {
        log.Fatal().Err(err).Msg("init logging")
    }
    defer logCloser.Close()

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    db, err := database.Open(ctx, cfg.DB)
    if err != nil {
        logger.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("open database")
    }
    defer db.Close()

    var publisher service.EventPublisher = service.NopPublisher{}
    if cfg.RabbitMQURL != "" {
        publisher = service.NewAMQPPublisher(cfg.RabbitMQURL)
    }
    dir := service.NewDirectory(
        repository.NewVenueRepo(db),
        repository.NewArtistRepo(db),
        repository.NewShowRepo(db),
        service.WithPublisher(publisher),
    )

    renderer, err := view.New()
    if err != nil {
        logger.Fatal().Err(err).Msg("parse templates")
    }

    rdb := config.NewRedisClient(cfg.Redis)
    if rdb != nil {
        defer rdb.Close()
    } else if cfg.Redis.Enabled {
        logger.Warn().Str("addr", cfg.Redis.Address()).Msg("redis unreachable, rate limiting disabled")
    }

    e := echo.New()
    e.HideBanner = true
    e.Renderer = renderer
    e.HTTPErrorHandler = handler.HTTPErrorHandler
    e.Use(middleware.RequestLogger())
    e.Use(echomw.Recover())
    router.RegisterRoutes(e, handler.New(dir), middleware.NewTokenBucket(rlCfg, rdb))

    addr := ":" + cfg.Port
    go func() {
        logger.Info().Str("addr", addr).Str("env", cfg.Env).Str("db", cfg.DB.Driver).Msg("listening")
        if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logger.Error().Err(err).Msg("server stopped")
            stop()
        }
    }()

    <-ctx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := e.Shutdown(shutdownCtx); err != nil {
        logger.Error().Err(err).Msg("shutdown")
    }
}
