package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/starwell/focustop/internal/client"
	"github.com/starwell/focustop/internal/collector"
	"github.com/starwell/focustop/internal/config"
	"github.com/starwell/focustop/internal/ui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to the config file")
	backendURL := flag.String("backend", "", "backend URL (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *backendURL != "" {
		cfg.BackendURL = *backendURL
	}

	// Log to a file so output doesn't interfere with the TUI
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logPath := cfg.LogFile
	var logFile *os.File
	if logPath != "" {
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	} else {
		logFile, err = os.CreateTemp("", "focustop-*.log")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger.SetOutput(logFile)
	log := logger.WithField("app", "focustop")

	api := client.New(cfg.BackendURL, log)

	col := collector.New(api, cfg.PollInterval.Std(), log)
	snapCh := col.Start()
	defer col.Stop()

	model := ui.New(snapCh, api, cfg.SnapshotDir)
	model.SetCollector(col)
	model.SetInitialInterval(cfg.PollInterval.Std())

	prog := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
