package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/Marco16005/pag-web-web/internal/admin"
	adminrepo "github.com/Marco16005/pag-web-web/internal/admin/repo"
	"github.com/Marco16005/pag-web-web/internal/chat"
	"github.com/Marco16005/pag-web-web/internal/contact"
	contactrepo "github.com/Marco16005/pag-web-web/internal/contact/repo"
	"github.com/Marco16005/pag-web-web/internal/gateway"
	"github.com/Marco16005/pag-web-web/internal/leaderboard"
	lbrepo "github.com/Marco16005/pag-web-web/internal/leaderboard/repo"
	"github.com/Marco16005/pag-web-web/internal/router"
	"github.com/Marco16005/pag-web-web/internal/token"
	"github.com/Marco16005/pag-web-web/internal/user"
	"github.com/Marco16005/pag-web-web/pkg/database"
	"github.com/Marco16005/pag-web-web/pkg/utilities"
)

func main() {
	// load .env file if present so os.Getenv picks values from it
	_ = godotenv.Load()

	lg, err := utilities.Init(utilities.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	sugar := lg.Sugar()
	sugar.Info("starting campus chaos api")

	sqlDB, err := database.Connect(database.ConfigFromEnv())
	if err != nil {
		sugar.Fatalf("db connect: %v", err)
	}
	defer sqlDB.Close()

	sqlxDB := sqlx.NewDb(sqlDB, "postgres")
	gw := gateway.NewSQLGateway(sqlxDB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens := token.New(token.ConfigFromEnv())
	if !tokens.Enabled() {
		sugar.Warn("JWT_SECRET not set; admin routes are not guarded")
	}

	chatCfg := chat.ConfigFromEnv()
	var model chat.Model
	if chatCfg.APIKey != "" {
		m, err := chat.NewGeminiModel(ctx, chatCfg)
		if err != nil {
			sugar.Fatalf("gemini client: %v", err)
		}
		model = m
	} else {
		sugar.Warn("GEMINI_API_KEY not set; chat endpoint will report a configuration error")
	}

	users := user.NewUserService(gw, nil)
	contacts := contactrepo.NewContactRepo(gw)

	cfg := router.ConfigFromEnv()
	handler := router.RegisterRoutes(cfg, router.Handlers{
		Users:       user.NewHandler(users, tokens, sugar),
		Contact:     contact.NewHandler(contacts, sugar),
		Leaderboard: leaderboard.NewHandler(lbrepo.NewLeaderboardRepo(gw), sugar),
		Admin:       admin.NewHandler(users, contacts, adminrepo.NewAdminRepo(gw), sugar),
		Chat:        chat.NewHandler(model, chatCfg.Timeout, sugar),
		Tokens:      tokens,
		Store:       gw,
	}, router.DefaultLimits, sugar)

	srv := &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infow("http server listening", "addr", srv.Addr, "env", cfg.Env, "static_dir", cfg.StaticDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	sugar.Info("shutting down")

	// give a short grace period for cleanup
	doneCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(doneCtx); err != nil {
		sugar.Warnf("http server shutdown failed: %v", err)
	}

	sugar.Info("goodbye")
}
