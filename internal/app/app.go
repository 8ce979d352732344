package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpapp "music_portfolio/internal/app/http"
	"music_portfolio/internal/config"
	"music_portfolio/internal/lib/logger/sl"
	"music_portfolio/internal/repository"
	admin "music_portfolio/internal/services/admin_service"
	feedback "music_portfolio/internal/services/feedback_service"
	gallery "music_portfolio/internal/services/gallery_service"
	media "music_portfolio/internal/services/media_service"
	page "music_portfolio/internal/services/page_service"
	portfolio "music_portfolio/internal/services/portfolio_service"
	publication "music_portfolio/internal/services/publication_service"
	seed "music_portfolio/internal/services/seed_service"
	"music_portfolio/internal/storage/filestorage"
	"music_portfolio/internal/storage/kv/memory"
	"music_portfolio/internal/storage/postgresql"
	redisapp "music_portfolio/internal/storage/redis"
	httprouters "music_portfolio/internal/transport/http"
)

const startupTimeout = 30 * time.Second

type App struct {
	HTTPServer *httpapp.Server
	log        *slog.Logger
	closers    []func()
}

// New собирает приложение: хранилище, миграции, демо-данные и HTTP-сервер.
// Миграции и заполнение выполняются до старта listener'а.
func New(log *slog.Logger, cfg *config.Config) *App {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	a := &App{log: log}

	repo, err := a.openRepository(ctx, cfg)
	if err != nil {
		a.Close()
		panic(err)
	}

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL)
	if err != nil {
		a.Close()
		panic(err)
	}

	seedService := seed.NewSeedService(log, repo)

	if cfg.SeedDemo {
		if _, err := seedService.Seed(ctx); err != nil {
			a.Close()
			panic(err)
		}
	}

	routers := httprouters.NewRouter(log, httprouters.Services{
		Publications: publication.NewPublicationService(log, repo.Publications),
		Gallery:      gallery.NewGalleryService(log, repo.Albums),
		Portfolio:    portfolio.NewPortfolioService(log, repo.Portfolio, repo.Achievements),
		Feedback:     feedback.NewFeedbackService(log, repo.Reviews, repo.Messages),
		Media:        media.NewMediaService(log, repo.Audio, repo.Videos, fileStorage, cfg.FileStorage.MaxSize),
		Pages:        page.NewPageService(log, repo.Pages),
		Admin:        admin.NewAdminService(log, cfg.AdminPassword, repo),
		Seed:         seedService,
	})

	a.HTTPServer = httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL, routers)

	return a
}

func (a *App) openRepository(ctx context.Context, cfg *config.Config) (*repository.Repository, error) {
	const op = "app.openRepository"

	log := a.log.With(slog.String("op", op), slog.String("driver", cfg.Storage.Driver))

	switch cfg.Storage.Driver {
	case config.DriverPostgres, config.DriverKVPostgres:
		storage, err := postgresql.New(ctx, cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.closers = append(a.closers, storage.Stop)

		if err := storage.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		log.Info("postgres storage ready")

		if cfg.Storage.Driver == config.DriverKVPostgres {
			return repository.NewKVRepository(postgresql.NewKV(storage)), nil
		}
		return repository.NewPostgresRepository(storage), nil

	case config.DriverRedis:
		client := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
		a.closers = append(a.closers, func() {
			if err := client.Close(); err != nil {
				a.log.Error("failed to close redis client", sl.Err(err))
			}
		})

		if err := client.HealthCheck(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		log.Info("redis storage ready")
		return repository.NewKVRepository(redisapp.NewKV(client)), nil

	case config.DriverMemory:
		log.Warn("in-memory storage, data is lost on restart")
		return repository.NewKVRepository(memory.New()), nil
	}

	return nil, fmt.Errorf("%s: unknown storage driver %q", op, cfg.Storage.Driver)
}

// Close освобождает соединения с хранилищем в обратном порядке
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
