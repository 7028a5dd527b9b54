package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/contactmanager/contact-manager/internal/config"
	"github.com/contactmanager/contact-manager/internal/engine"
	"github.com/contactmanager/contact-manager/internal/server"
	"github.com/contactmanager/contact-manager/internal/state"
	"github.com/contactmanager/contact-manager/internal/ui"
)

// main delegates to runMain so deferred calls run before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain parses flags, sets up logging and signals, and returns the exit code.
func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	apiURL := flag.String(config.FlagAPI, "", config.FlagDescAPI)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	logCloser := setupLogging(*debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx, *apiURL); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires the store, the remote client, the feed server and the UI, then
// blocks until the main window closes.
func run(ctx context.Context, apiOverride string) error {
	a := app.NewWithID(config.AppID)
	prefs := a.Preferences()
	prefs.SetString(config.PrefLastRun, config.Version)

	// The flag wins for this run only; it is not written back.
	baseURL := prefs.StringWithFallback(config.PrefAPIURL, config.DefaultAPIURL)
	if apiOverride != "" {
		baseURL = apiOverride
	}

	client, err := engine.NewHTTPClient(baseURL, engine.NewIDGenerator(engine.RealClock{}))
	if err != nil {
		return err
	}
	slog.Info(config.MsgClientReady,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyURL, client.BaseURL())

	store := state.New()
	manager := engine.NewManager(client, store)
	srv := server.NewFeedServer(prefs.StringWithFallback(config.PrefFeedPort, config.DefaultPort))

	gui := ui.NewContactManagerApp(a, ctx, store, manager, srv)

	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	gui.Run()
	return nil
}

// printVersion writes the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	writers = append(writers, os.Stdout)

	// The log file is optional; stdout always gets the records.
	if logPath, err := getLogFilePath(); err == nil {
		// Truncated on each start.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
