package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"careerguide-engine/internal/advisor"
	"careerguide-engine/internal/auth"
	"careerguide-engine/internal/config"
	"careerguide-engine/internal/events"
	"careerguide-engine/internal/httpapi"
	"careerguide-engine/internal/logger"
	"careerguide-engine/internal/scheduler"
	"careerguide-engine/internal/secrets"
	"careerguide-engine/internal/store"
)

func main() {
	mintUser := flag.String("mint-token", "", "print a bearer token for this user id and exit")
	mintRole := flag.String("role", string(auth.RoleStudent), "role for -mint-token (student|admin)")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	// Engine data dir: use env if provided (the desktop shell passes one), else local folder.
	dataDir := os.Getenv("ENGINE_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(cfg)
	if !vr.OK() {
		log.Fatalf("config invalid (%s): %v", userCfgPath, vr.Errors)
	}
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil && p > 0 {
		cfg.App.Port = p
	}
	cfgVal.Store(cfg)
	currentCfg := func() config.Config { return cfgVal.Load().(config.Config) }

	lg, err := logger.New(cfg.App.LogMode)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer lg.Sync()
	for _, w := range vr.Warnings {
		lg.Warn("config warning", "detail", w)
	}

	sec := secrets.NewStore(cfg.Auth.KeyringAccount)
	secret, generated, err := sec.EnsureSigningSecret()
	if err != nil {
		lg.Fatal("jwt secret unavailable; set ENGINE_JWT_SECRET", "error", err)
	}
	if generated {
		lg.Info("generated jwt signing secret", "keyring_account", cfg.Auth.KeyringAccount)
	}
	issuer, err := auth.NewIssuer(secret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	if err != nil {
		lg.Fatal("jwt issuer init failed", "error", err)
	}

	if *mintUser != "" {
		tok, err := issuer.Sign(*mintUser, auth.Role(*mintRole))
		if err != nil {
			lg.Fatal("mint token failed", "error", err)
		}
		fmt.Println(tok)
		return
	}

	// One engine per data dir; sqlite wants a single writer.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		lg.Fatal("data dir lock failed", "dir", dataDir, "error", err)
	}
	if !locked {
		lg.Fatal("another engine is already running on this data dir", "dir", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	dbPath := filepath.Join(dataDir, "careerguide.db")
	db, err := store.Open(dbPath)
	if err != nil {
		lg.Fatal("db open failed", "path", dbPath, "error", err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		lg.Fatal("db migrate failed", "error", err)
	}

	catalog := config.DefaultCatalog()
	for _, p := range []string{filepath.Join("config", "catalog.yml"), filepath.Join(dataDir, "catalog.yml")} {
		if err := config.OverlayCatalog(&catalog, p); err != nil {
			lg.Fatal("catalog overlay failed", "path", p, "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := events.NewHub()
	svc := advisor.New(db.Pool, currentCfg, catalog, hub, lg)
	if err := svc.Bootstrap(ctx); err != nil {
		lg.Fatal("catalog seed failed", "error", err)
	}

	deps := httpapi.Deps{
		DB:          db.Pool,
		Svc:         svc,
		Hub:         hub,
		Log:         lg,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		Issuer:      issuer,
		Secrets:     sec,
		Limiter:     httpapi.NewUserLimiter(cfg.Limits.SubmissionsPerMinute, cfg.Limits.Burst),
	}
	mux := httpapi.NewMux(deps)

	srv := &http.Server{
		Handler:           httpapi.Wrap(deps, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	token, tokenPath, err := shutdownToken(dataDir)
	if err != nil {
		lg.Fatal("shutdown token write failed", "error", err)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv, lg))

	go scheduler.Every(ctx, lg, func() time.Duration {
		return time.Duration(currentCfg().Analytics.RefreshSeconds) * time.Second
	}, "dashboard_refresh", svc.PublishDashboardSnapshot)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		lg.Fatal("listen failed", "addr", addr, "error", err)
	}
	lg.Info("engine listening", "addr", "http://"+addr, "db", dbPath, "config", userCfgPath, "shutdown_file", tokenPath)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Error("server stopped", "error", err)
	}
	stop()
	if err := store.Checkpoint(context.Background(), db.Pool); err != nil {
		lg.Warn("final wal checkpoint failed", "error", err)
	}
	lg.Info("engine stopped")
}
