package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vkozyrev/floodwatch/internal/client/client"
	"github.com/vkozyrev/floodwatch/internal/client/config"
	"github.com/vkozyrev/floodwatch/internal/client/repositories/credentials"
	"github.com/vkozyrev/floodwatch/internal/client/services"
	"github.com/vkozyrev/floodwatch/internal/client/session"
	"github.com/vkozyrev/floodwatch/internal/cryptox"
	"github.com/vkozyrev/floodwatch/internal/filex"
	"github.com/vkozyrev/floodwatch/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	client   *client.GRPCClient
	sessions *services.SessionService
	reports  *services.ReportService
	reader   *bufio.Reader
}

// NewApp wires the full client stack: data directory, device key, credential
// cache per the configured strategy, gRPC gateway, and services.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", c.ServerEndpointAddr, err)
	}

	cache, err := buildCache(c)
	if err != nil {
		return nil, err
	}

	probe := &services.PingProber{Client: apiClient, Timeout: c.OnlineCheckInterval}
	sessions := services.NewSessionService(apiClient, apiClient, cache, probe, logger)
	reports := services.NewReportService(apiClient, sessions.State(), probe, logger)

	return &App{
		config:   c,
		client:   apiClient,
		sessions: sessions,
		reports:  reports,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// buildCache returns the credential store selected by the cache strategy. A
// missing or unreadable device key is fatal: running unencrypted is not a
// fallback.
func buildCache(c *config.Config) (credentials.Store, error) {
	if c.CacheStrategy == config.CacheRemoteOnly {
		return credentials.NewNoop(), nil
	}

	dir, err := filex.EnsureSubDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	key, err := cryptox.LoadOrCreateDeviceKey(dir)
	if err != nil {
		return nil, fmt.Errorf("device key: %w", err)
	}

	db, err := client.InitDatabase(context.Background(), filepath.Join(dir, "cache.db"))
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	return credentials.NewSQLiteStore(db, key)
}

// Run restores the previous session and enters the REPL. It blocks until the
// user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.sessions.Restore(ctx); err != nil {
		fmt.Println("Session restore interrupted:", err)
	}
	a.printPhase()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Welcome to FloodWatch CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) Close() {
	a.sessions.Close()
	_ = a.client.Close()
}

func (a *App) isLoggedIn() bool {
	return a.sessions.State().Phase().Kind == session.Authenticated
}

// status renders the prompt suffix: the current user's name when
// authenticated, blank otherwise.
func (a *App) status() string {
	if u := a.sessions.CurrentUser(); u != nil && a.isLoggedIn() {
		return fmt.Sprintf("(%s %s)", u.Name, u.Role)
	}
	return ""
}

// printPhase reports the outcome of the last session operation to the user.
func (a *App) printPhase() {
	phase := a.sessions.State().Phase()
	switch phase.Kind {
	case session.Authenticated:
		if u := a.sessions.CurrentUser(); u != nil {
			fmt.Printf("Signed in as %s (%s)\n", u.Name, u.Role)
		}
	case session.Unauthenticated:
		fmt.Println("Not signed in. Use 'register' or 'login'.")
	case session.PasswordResetSent:
		fmt.Println("Password reset email sent. Check your inbox.")
	case session.Failed:
		fmt.Println(phase.Message)
	}
}
