package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zhouzirui/folio/backend/internal/analysis/matcher"
	"github.com/zhouzirui/folio/backend/internal/config"
	"github.com/zhouzirui/folio/backend/internal/handler"
	"github.com/zhouzirui/folio/backend/internal/model/knowledge"
	"github.com/zhouzirui/folio/backend/internal/model/profile"
	"github.com/zhouzirui/folio/backend/internal/service/chat"
	"github.com/zhouzirui/folio/backend/internal/service/contact"
	"github.com/zhouzirui/folio/backend/pkg/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Log.Options())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	base := knowledge.Seed(cfg.Owner)
	welcome := cfg.Chat.Welcome
	if welcome == "" {
		welcome = knowledge.Welcome(cfg.Owner)
	}
	chatService := chat.NewService(matcher.New(base), chat.Config{
		MinReplyDelay: cfg.Chat.MinReplyDelay,
		MaxReplyDelay: cfg.Chat.MaxReplyDelay,
		Welcome:       welcome,
	}, chat.WithLogger(logger.Named("chat")))
	defer chatService.Shutdown()
	logger.Info("knowledge base loaded", zap.Int("entries", base.Len()), zap.String("owner", cfg.Owner))

	inbox, err := openInbox(cfg.Contact, logger)
	if err != nil {
		return err
	}
	defer inbox.Close()
	contactService := contact.NewService(inbox, contact.Config{SubmitDelay: cfg.Contact.SubmitDelay}, logger.Named("contact"))

	router := handler.NewRouter(handler.Deps{
		Profiles:       profile.NewMemoryStore(profile.Seed(cfg.Owner)),
		Chat:           chatService,
		Contact:        contactService,
		Logger:         logger.Named("http"),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AdminToken:     cfg.Contact.AdminToken,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	// live event streams only end once their sessions are torn down
	srv.RegisterOnShutdown(chatService.Shutdown)

	return runServer(ctx, srv, logger)
}

func openInbox(cfg config.ContactConfig, logger *zap.Logger) (contact.Inbox, error) {
	if cfg.DBPath == "" {
		logger.Info("contact inbox: in-memory")
		return contact.NewMemoryInbox(), nil
	}
	logger.Info("contact inbox: sqlite", zap.String("path", cfg.DBPath))
	return contact.NewSQLiteInbox(cfg.DBPath)
}

func runServer(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("folio backend listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown failed", zap.Error(err))
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
