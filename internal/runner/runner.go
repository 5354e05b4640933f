// Package runner sequences one sync run: load configuration, create the
// events database, fetch an event, insert it. Each stage returns a
// rop.Result and the first failure of the first three stages ends the run.
// A failed insertion is reported but the run still completes.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ib-77/bevy-notion/internal/config"
	"github.com/ib-77/bevy-notion/internal/event"
	"github.com/ib-77/bevy-notion/internal/failure"
	"github.com/ib-77/bevy-notion/internal/notion"
	"github.com/ib-77/bevy-notion/pkg/rop"
	"github.com/ib-77/bevy-notion/pkg/rop/chain"
	"github.com/ib-77/bevy-notion/pkg/rop/solo"
)

// Workspace is the remote workspace the events are written to.
type Workspace interface {
	CreateDatabase(ctx context.Context, parentID, title string) (string, error)
	CreateEntry(ctx context.Context, databaseID string, ev event.Event) (notion.Entry, error)
}

// EventSource yields the single event of a run.
type EventSource interface {
	Fetch(ctx context.Context) rop.Result[event.Event]
}

// Connector builds the workspace once configuration is known.
type Connector func(cfg config.Config) Workspace

type Stage int

const (
	StageConfig Stage = iota
	StageContainer
	StageFetch
	StageInsert
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageConfig:
		return "config"
	case StageContainer:
		return "container"
	case StageFetch:
		return "fetch"
	case StageInsert:
		return "insert"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Report describes how a run ended. Stage is StageDone for a completed run,
// otherwise the stage that aborted it. Err is the aborting failure, or the
// insertion failure of a completed run.
type Report struct {
	RunID      uuid.UUID
	Stage      Stage
	ExitCode   int
	DatabaseID string
	Entry      *notion.Entry
	Err        error
}

type Runner struct {
	Connect Connector
	Events  EventSource
	Logger  *slog.Logger
	// Out receives the plain progress lines.
	Out io.Writer
}

type target struct {
	workspace  Workspace
	databaseID string
}

type draft struct {
	target
	event event.Event
}

func (r *Runner) Run(ctx context.Context, environ map[string]string) Report {
	report := Report{RunID: uuid.New()}
	log := r.logger().With("run_id", report.RunID.String())
	out := r.out()
	stage := StageConfig

	loaded := chain.Start(ctx, config.Load(environ)).
		Ensure(func(_ context.Context, cfg config.Config) {
			fmt.Fprintf(out, "Environment: %s\n", cfg.Mode)
		})

	created := chain.ThenTry(loaded, func(ctx context.Context, cfg config.Config) (target, error) {
		stage = StageContainer
		ws := r.Connect(cfg)
		id, err := ws.CreateDatabase(ctx, cfg.ParentID, cfg.DatabaseTitle)
		if err != nil {
			return target{}, failure.Remote(notion.OpCreateDatabase, err)
		}
		log.Info("database created", "database_id", id, "title", cfg.DatabaseTitle)
		return target{workspace: ws, databaseID: id}, nil
	})

	fetched := chain.Then(created, func(ctx context.Context, t target) rop.Result[draft] {
		stage = StageFetch
		report.DatabaseID = t.databaseID
		return solo.Map(ctx, r.Events.Fetch(ctx), func(_ context.Context, ev event.Event) draft {
			return draft{target: t, event: ev}
		})
	})

	return chain.Finally(fetched,
		func(ctx context.Context, d draft) Report {
			inserted := r.insert(ctx, log, d)
			if entry, ok := inserted.Get(); ok {
				report.Entry = &entry
			} else {
				report.Err = inserted.Err()
			}
			fmt.Fprintln(out, "Finish successfully.")
			report.Stage = StageDone
			return report
		},
		func(_ context.Context, err error) Report {
			abort(log, stage, err)
			report.Stage = stage
			report.ExitCode = 1
			report.Err = err
			return report
		})
}

func (r *Runner) insert(ctx context.Context, log *slog.Logger, d draft) rop.Result[notion.Entry] {
	inserted := solo.Try(ctx, rop.Success(d), func(ctx context.Context, d draft) (notion.Entry, error) {
		entry, err := d.workspace.CreateEntry(ctx, d.databaseID, d.event)
		if err != nil {
			return notion.Entry{}, failure.Remote(notion.OpCreatePage, err)
		}
		return entry, nil
	})

	return solo.DoubleTee(ctx, inserted,
		func(_ context.Context, entry notion.Entry) {
			log.Info("event added", "title", d.event.Title, "page_id", entry.ID, "url", entry.URL)
		},
		func(_ context.Context, err error) {
			log.Error("failed to add a new page to database", "title", d.event.Title, "error", err)
		})
}

func abort(log *slog.Logger, stage Stage, err error) {
	switch stage {
	case StageConfig:
		var missing *failure.ConfigMissing
		if errors.As(err, &missing) {
			log.Error("lack of required environment variables", "missing", missing.Fields)
			return
		}
		log.Error("invalid configuration", "error", err)
	case StageContainer:
		log.Error("failed to create a new database", "error", err)
	case StageFetch:
		log.Error("failed to fetch an event from bevy", "error", err)
	default:
		log.Error("run aborted", "stage", stage.String(), "error", err)
	}
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}
	return r.Out
}
