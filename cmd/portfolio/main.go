package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/trace"
	"portfolio/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// stdout belongs to the TUI; log to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "portfolio")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	tp, err := trace.Setup(ctx, trace.Options{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
		Insecure:    true,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: trace shutdown: %v", err)
		}
	}()

	app := ui.NewAppModel(ui.Options{
		PhotoDir: cfg.PhotoDir,
		Tracer:   tp.Tracer(),
	})
	defer app.Close()

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	_, err = tea.NewProgram(app.AsTeaModel(), opts...).Run()
	return err
}
