package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/tubenotes/internal/assets"
	"github.com/MrSnakeDoc/tubenotes/internal/config"
	"github.com/MrSnakeDoc/tubenotes/internal/httpserver"
	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tubenotes/internal/logger"
	"github.com/MrSnakeDoc/tubenotes/internal/service"
	"github.com/MrSnakeDoc/tubenotes/internal/sources/bookmarks"
	"github.com/MrSnakeDoc/tubenotes/internal/store"
	"github.com/MrSnakeDoc/tubenotes/internal/summarizer"
	"github.com/MrSnakeDoc/tubenotes/internal/transcript"
	"github.com/MrSnakeDoc/tubenotes/internal/version"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	store   store.Store
	service *service.Service
	server  *httpserver.Server
}

func New() *App {
	cfg := config.Load()
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
	return newApp(context.Background(), cfg, loggerClient)
}

func newApp(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) *App {
	st := openStore(ctx, cfg, loggerClient)
	loggerClient.Info("store ready", logger.String("backend", st.Backend()))

	if !cfg.SummarizationEnabled() {
		loggerClient.Warn("OPENAI_API_KEY not set, summaries will contain fallback text")
	}

	transcripts := transcript.New(transcript.Options{
		Timeout: cfg.TranscriptTimeout,
		Langs:   cfg.TranscriptLangs,
	}, loggerClient.With(logger.String("component", "transcript")))

	llm := summarizer.New(summarizer.Options{
		APIKey:  cfg.OpenAIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.LLMTimeout,
	}, loggerClient.With(logger.String("component", "summarizer")))

	svc := service.New(st, transcripts, llm, loggerClient.With(logger.String("component", "service")))

	if cfg.BookmarkSeedFile != "" {
		seedBookmarks(ctx, cfg.BookmarkSeedFile, svc, loggerClient)
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:            loggerClient,
		StartTime:         time.Now(),
		Version:           version.Version,
		Commit:            version.Commit,
		BuildDate:         version.BuildDate,
		GoVersion:         version.GoVersion,
		AllowedCIDRS:      cfg.AllowedCIDRS,
		TrustProxy:        cfg.TrustProxy,
		Service:           svc,
		Store:             st,
		Static:            staticFS(cfg.StaticDir, loggerClient),
		SummaryRatePerMin: cfg.SummaryRatePerMin,
		SummaryBurst:      cfg.SummaryBurst,
	}

	return &App{
		cfg:     cfg,
		logger:  loggerClient,
		store:   st,
		service: svc,
		server:  httpserver.New(cfg, loggerClient, d),
	}
}

// seedBookmarks imports the seed file. Failures are logged, never fatal.
func seedBookmarks(ctx context.Context, path string, svc *service.Service, log logger.Logger) {
	seed, err := bookmarks.NewLoader(path).Load()
	if err != nil {
		log.Warn("failed to load bookmark seed file",
			logger.String("file", path),
			logger.Error(err))
		return
	}

	inputs := bookmarks.ToInputs(seed)
	n, err := svc.ImportBookmarks(ctx, inputs)
	if err != nil {
		log.Warn("bookmark import stopped early",
			logger.String("file", path),
			logger.Int("imported", n),
			logger.Error(err))
		return
	}
	log.Info("bookmarks imported",
		logger.String("file", path),
		logger.Int("imported", n),
		logger.Int("skipped", len(inputs)-n))
}

// staticFS serves dir when it exists, the embedded frontend otherwise.
func staticFS(dir string, log logger.Logger) fs.FS {
	if dir == "" {
		return assets.Frontend()
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		log.Warn("static directory not usable, serving embedded frontend",
			logger.String("dir", dir))
		return assets.Frontend()
	}
	return os.DirFS(dir)
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting tubenotes v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("tubenotes %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.closeStore()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		a.closeStore()
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.closeStore()
	a.logger.Info("✅ tubenotes stopped cleanly")
	_ = a.logger.Sync()
	return nil
}

func (a *App) closeStore() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.store.Close(ctx); err != nil {
		a.logger.Warnf("failed to close %s store: %v", a.store.Backend(), err)
		return
	}
	a.logger.Info("✅ store closed cleanly", logger.String("backend", a.store.Backend()))
}
