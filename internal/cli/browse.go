package cli

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"faqdesk/internal/catalog"
	"faqdesk/internal/eventbus"
	"faqdesk/internal/ui"
	"faqdesk/internal/usage"
)

func runBrowse(cmd *cobra.Command, opts *rootOptions) error {
	closeLog := setupLogging()
	defer closeLog()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	cfg, err := opts.loadConfig(bus)
	if err != nil {
		return err
	}

	path := opts.resolveCatalogPath(cfg)
	cat, err := loadCatalog(path)
	if err != nil {
		return err
	}
	store := catalog.NewMemoryStore(cat)
	bus.Publish(eventbus.CatalogLoadedEvent{Source: cat.Source, Count: len(cat.Entries)})

	unsubscribeUsage := usage.LogUsage(bus)
	defer unsubscribeUsage()
	recorder := usage.NewRecorder(usage.NewMemoryStore(), usage.WithSink(usage.NewBusSink(bus)))

	log.Printf("Creating UI model...")
	model := ui.NewModel(ui.Options{
		Config:   cfg,
		Bus:      bus,
		Catalog:  store,
		Recorder: recorder,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward the events the view reacts to
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	defer bus.Subscribe(eventbus.EventCatalogReloaded, forward)()
	defer bus.Subscribe(eventbus.EventError, forward)()

	if path != "" && cfg.UISettings.WatchCatalog {
		watcher, err := catalog.NewWatcher(path, store, bus)
		if err != nil {
			log.Printf("Catalog watching disabled: %v", err)
		} else if err := watcher.Start(ctx); err != nil {
			log.Printf("Catalog watching disabled: %v", err)
			_ = watcher.Close()
		} else {
			defer watcher.Close()
		}
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("failed to run browser: %w", err)
	}
	log.Printf("UI exited normally, %d usage events recorded", len(recorder.Events()))
	return nil
}
