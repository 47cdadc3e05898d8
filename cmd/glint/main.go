package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/glintlabs/glint/core"
	"github.com/glintlabs/glint/internal/config"
	"github.com/glintlabs/glint/internal/logging"
	"github.com/glintlabs/glint/internal/replay"
	"github.com/glintlabs/glint/internal/session"
	"github.com/glintlabs/glint/runtime"
	"github.com/glintlabs/glint/screens"
	"github.com/glintlabs/glint/state"
	"github.com/glintlabs/glint/tabs"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := logging.Open(cfg.Logging.Path, cfg.Logging.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closeLog()

	core.SetTheme(core.BuildTheme(core.ThemeOverrides{
		Base:                cfg.Theme.Base,
		PrimaryColor:        cfg.Theme.PrimaryColor,
		BackgroundColor:     cfg.Theme.BackgroundColor,
		SecondaryBackground: cfg.Theme.SecondaryBackground,
		TextColor:           cfg.Theme.TextColor,
		BorderColor:         cfg.Theme.BorderColor,
	}))

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	db, err := session.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if err := session.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	valueRepo := session.NewValueRepo(db)
	runRepo := session.NewRunRepo(db)

	seeds, err := valueRepo.Seeds(ctx)
	if err != nil {
		log.Fatalf("load seeds: %v", err)
	}

	store := state.NewStore()
	// Every accepted write lands in sqlite so the next session can seed from
	// it.
	store.Watch(func(ev state.Event) {
		err := valueRepo.Upsert(ctx, session.StoredValue{
			WidgetID:   ev.WidgetID,
			Value:      ev.Value,
			FromUI:     ev.FromUI,
			FragmentID: ev.FragmentID,
		})
		if err != nil {
			logger.Warn("persist value", zap.String("widget_id", ev.WidgetID), zap.Error(err))
		}
	})

	sess := runtime.NewSession(store, logger, runtime.WithSeeds(seeds))
	sess.RunStarted = func(runID string) {
		if err := runRepo.Start(ctx, runID); err != nil {
			logger.Warn("persist run start", zap.String("run_id", runID), zap.Error(err))
		}
	}
	sess.RunEnded = func(runID string) {
		if err := runRepo.Finish(ctx, runID); err != nil {
			logger.Warn("persist run end", zap.String("run_id", runID), zap.Error(err))
		}
	}

	bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keybindings)
	keys := core.NewKeyRegistry(bindings)
	commands := core.NewCommandRegistry(core.DefaultCommands())

	tabList := []core.Tab{
		tabs.NewAppTab(sess),
		tabs.NewStateTab(sess),
		tabs.NewRunsTab(func() ([]tabs.RunRow, error) {
			recs, err := runRepo.List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]tabs.RunRow, 0, len(recs))
			for _, r := range recs {
				row := tabs.RunRow{
					RunID:     r.RunID,
					StartedAt: r.StartedAt.Format("15:04:05"),
					Active:    r.RunID == sess.ActiveRunID(),
				}
				if r.EndedAt.Valid {
					row.EndedAt = r.EndedAt.Time.Format("15:04:05")
				}
				rows = append(rows, row)
			}
			return rows, nil
		}),
	}

	m := core.NewModel(tabList, keys, commands, sess, logger)
	m.OpenCommandModal = func(mdl *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope,
			func(query string) []screens.CommandOption {
				results := mdl.CommandRegistry().Search(query, scope, mdl)
				opts := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					opts = append(opts, screens.CommandOption{
						ID: r.CommandID, Name: r.Name, Desc: r.Desc,
						Disabled: r.Disabled, Reason: r.Reason,
					})
				}
				return opts
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}

	if cfg.Replay.Path != "" {
		feed, err := replay.Load(cfg.Replay.Path, time.Duration(cfg.Replay.DelayMs)*time.Millisecond)
		if err != nil {
			log.Fatalf("recording: %v", err)
		}
		m.Advance = feed.Next
		m.SetAutoplay(cfg.Replay.Autoplay)
		logger.Info("recording loaded",
			zap.String("path", cfg.Replay.Path),
			zap.Int("pushes", feed.Len()))
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
