package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"stayquote/internal/app/commands"
	availabilityapp "stayquote/internal/app/handlers/availability"
	hostapp "stayquote/internal/app/handlers/host"
	quoteapp "stayquote/internal/app/handlers/quote"
	"stayquote/internal/app/policies"
	"stayquote/internal/app/queries"
	domainavailability "stayquote/internal/domain/availability"
	domainpricing "stayquote/internal/domain/pricing"
	"stayquote/internal/domain/shared/money"
	"stayquote/internal/infra/broker/kafka"
	rediscache "stayquote/internal/infra/cache/redis"
	"stayquote/internal/infra/config"
	mongodb "stayquote/internal/infra/db/mongo"
	ginserver "stayquote/internal/infra/http/gin"
	"stayquote/internal/infra/obs"
	"stayquote/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	repo, ready, err := buildRepository(cfg, logger)
	if err != nil {
		logger.Error("storage init failed", "error", err)
		os.Exit(1)
	}

	publisher := buildPublisher(cfg, logger)
	cache := buildQuoteCache(cfg)

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, availabilityapp.GetCalendarQuery{}.Key(), &availabilityapp.GetCalendarHandler{Repo: repo})
	queries.RegisterHandler(queryBus, availabilityapp.ResolveClickQuery{}.Key(), &availabilityapp.ResolveClickHandler{Repo: repo})
	queries.RegisterHandler(queryBus, quoteapp.GetQuoteQuery{}.Key(), &quoteapp.GetQuoteHandler{
		Repo:       repo,
		Calculator: domainpricing.NewEngine(),
		Cache:      cache,
		Publisher:  publisher,
	})

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler(commandBus, hostapp.BlockDatesCommand{}.Key(), &hostapp.BlockDatesHandler{Repo: repo, Publisher: publisher})
	commands.RegisterHandler(commandBus, hostapp.ReleaseDateCommand{}.Key(), &hostapp.ReleaseDateHandler{Repo: repo, Publisher: publisher})
	commands.RegisterHandler(commandBus, hostapp.SetRatesCommand{}.Key(), &hostapp.SetRatesHandler{Repo: repo, Publisher: publisher})

	if cfg.StorageMode == "memory" {
		fixturesPath := getenv("PROPERTY_FIXTURES", filepath.Join("data", "properties.json"))
		if err := loadPropertyFixtures(ctx, repo, cfg, fixturesPath, logger); err != nil {
			logger.Warn("property fixtures load failed", "error", err, "path", fixturesPath)
		}
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{Ready: ready}, ginserver.Handlers{
		Availability: ginserver.AvailabilityHandler{Queries: queryBus},
		Quote:        ginserver.QuoteHandler{Queries: queryBus},
		Host:         ginserver.HostHandler{Commands: commandBus},
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

func buildRepository(cfg config.Config, logger *slog.Logger) (domainavailability.Repository, func() error, error) {
	if cfg.StorageMode == "mongo" {
		client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("mongo storage attached", "db", cfg.MongoDB)
		ready := func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx)
		}
		return mongodb.NewCalendarRepository(client.DB), ready, nil
	}
	return memory.NewCalendarRepository(), func() error { return nil }, nil
}

func buildPublisher(cfg config.Config, logger *slog.Logger) policies.EventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("kafka brokers not configured, events disabled")
		return nil
	}
	producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
	if err != nil {
		logger.Warn("kafka producer init failed, events disabled", "error", err)
		return nil
	}
	return &kafka.EventPublisher{Producer: producer, TopicPrefix: cfg.KafkaTopicPrefix, Logger: logger}
}

func buildQuoteCache(cfg config.Config) quoteapp.Cache {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	return rediscache.NewQuoteCache(client, cfg.QuoteCacheTTL)
}

type propertyFixture struct {
	ID               string  `json:"id"`
	BaseNightlyCents int64   `json:"base_nightly_cents"`
	MinStay          int     `json:"min_stay"`
	MaxStay          int     `json:"max_stay"`
	CleaningFeeCents int64   `json:"cleaning_fee_cents"`
	ServiceFeePct    float64 `json:"service_fee_percent"`
	TaxPct           float64 `json:"tax_percent"`
	Blocked          []struct {
		Date   string `json:"date"`
		Reason string `json:"reason"`
	} `json:"blocked"`
	Overrides []struct {
		Date    string `json:"date"`
		Cents   int64  `json:"cents"`
		Special bool   `json:"special"`
	} `json:"overrides"`
}

func loadPropertyFixtures(ctx context.Context, repo domainavailability.Repository, cfg config.Config, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("property fixtures file not found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("read fixtures: %w", err)
	}
	var fixtures []propertyFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	for _, fx := range fixtures {
		cal := domainavailability.NewCalendar(
			domainavailability.PropertyID(fx.ID),
			money.Money{Amount: fx.BaseNightlyCents, Currency: cfg.Currency},
			fx.MinStay,
			fx.MaxStay,
		)
		cal.CleaningFee = money.Money{Amount: fx.CleaningFeeCents, Currency: cfg.Currency}
		if fx.ServiceFeePct > 0 {
			cal.ServiceFeePercent = fx.ServiceFeePct
		} else {
			cal.ServiceFeePercent = cfg.ServiceFeePercent
		}
		if fx.TaxPct > 0 {
			cal.TaxPercent = fx.TaxPct
		} else {
			cal.TaxPercent = cfg.TaxPercent
		}
		for _, b := range fx.Blocked {
			d, err := time.Parse("2006-01-02", b.Date)
			if err != nil {
				logger.Error("fixture blocked date invalid", "property_id", fx.ID, "date", b.Date)
				continue
			}
			cal.Blocked = append(cal.Blocked, domainavailability.BlockedDate{Date: d, Reason: domainavailability.BlockReason(b.Reason)})
		}
		for _, o := range fx.Overrides {
			d, err := time.Parse("2006-01-02", o.Date)
			if err != nil {
				logger.Error("fixture override date invalid", "property_id", fx.ID, "date", o.Date)
				continue
			}
			cal.Overrides = append(cal.Overrides, domainavailability.RateOverride{
				Date:    d,
				Nightly: money.Money{Amount: o.Cents, Currency: cfg.Currency},
				Special: o.Special,
			})
		}
		if err := repo.Save(ctx, cal); err != nil {
			logger.Error("cannot store fixture calendar", "property_id", fx.ID, "error", err)
			continue
		}
		logger.Info("property fixture imported", "property_id", fx.ID)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
