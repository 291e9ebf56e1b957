package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/mfardini/multiconta/internal/accounts"
	"github.com/mfardini/multiconta/internal/cart"
	"github.com/mfardini/multiconta/internal/config"
	"github.com/mfardini/multiconta/internal/domain"
	"github.com/mfardini/multiconta/internal/http/controllers"
	"github.com/mfardini/multiconta/internal/http/router"
	"github.com/mfardini/multiconta/internal/metrics"
	"github.com/mfardini/multiconta/internal/observability/logger"
	"github.com/mfardini/multiconta/internal/store"
	"github.com/mfardini/multiconta/internal/store/memory"
	"github.com/mfardini/multiconta/internal/store/pg"
)

func main() {
	// .env é opcional; variáveis do sistema prevalecem
	_ = godotenv.Load()

	cfg, err := config.Load(configPath())
	if err != nil {
		panic(err)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.App.LogLevel,
		ServiceName: "multiconta",
	})
	defer func() { _ = logger.Sync() }()
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Coleções por driver. O handle é único para o processo inteiro:
	// inicializado aqui e injetado em todos os componentes.
	var (
		imobiliariaCol store.Collection[*domain.ImobiliariaUser]
		lojaCol        store.Collection[*domain.LojaUser]
		blogCol        store.Collection[*domain.BlogUser]
		pinger         router.Pinger
	)

	switch cfg.Storage.Driver {
	case "memory":
		imobiliariaCol = memory.NewImobiliaria()
		lojaCol = memory.NewLoja()
		blogCol = memory.NewBlog()
		log.Info("storage em memória selecionado")
	default:
		pgStore, err := pg.New(ctx, cfg.Storage.DSN, pg.Config{
			MaxConns:        cfg.Storage.Postgres.MaxConns,
			MinConns:        cfg.Storage.Postgres.MinConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime(),
		})
		if err != nil {
			log.Fatal("pg store init failed", logger.Err(err))
		}
		defer pgStore.Close()

		if err := pgStore.Migrate(ctx); err != nil {
			log.Fatal("migration failed", logger.Err(err))
		}

		imobiliariaCol = pgStore.Imobiliaria()
		lojaCol = pgStore.Loja()
		blogCol = pgStore.Blog()
		pinger = pgStore
	}

	handler := router.New(router.Deps{
		Imobiliaria: controllers.NewImobiliaria(
			accounts.NewRegistry("imobiliaria", imobiliariaCol),
			accounts.NewVerifier("imobiliaria", imobiliariaCol),
		),
		Loja: controllers.NewLoja(
			accounts.NewRegistry("loja", lojaCol),
			accounts.NewVerifier("loja", lojaCol),
			cart.NewLedger(lojaCol),
		),
		Blog: controllers.NewBlog(
			accounts.NewRegistry("blog", blogCol),
			accounts.NewVerifier("blog", blogCol),
		),
		Store:              pinger,
		Metrics:            metrics.Register(prometheus.DefaultRegisterer),
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeoutDuration(),
		WriteTimeout: cfg.WriteTimeoutDuration(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("servidor rodando", logger.Addr(cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return srv.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server failed", logger.Err(err))
	}
	log.Info("servidor encerrado")
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yaml"
}
