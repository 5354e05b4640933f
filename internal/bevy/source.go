// Package bevy reads Bevy event payloads and maps them to event.Event.
//
// ExampleSource serves the payload from Bevy's webhook documentation and
// stands in until events arrive from a real delivery. FileSource reads a
// payload saved to disk. Both satisfy the orchestrator's event source.
package bevy

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ib-77/bevy-notion/internal/event"
	"github.com/ib-77/bevy-notion/internal/failure"
	"github.com/ib-77/bevy-notion/pkg/rop"
	"github.com/ib-77/bevy-notion/pkg/rop/solo"
)

//go:embed example_event.json
var examplePayload []byte

var errMissing = errors.New("missing")

// ExampleSource yields the documented example event.
type ExampleSource struct{}

func (ExampleSource) Fetch(ctx context.Context) rop.Result[event.Event] {
	return solo.Switch(ctx, Decode(ctx, bytes.NewReader(examplePayload)), ToEvent)
}

// FileSource yields the event stored as a Bevy payload at Path.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) rop.Result[event.Event] {
	f, err := os.Open(s.Path)
	if err != nil {
		return rop.Fail[event.Event](failure.Mapping("", fmt.Errorf("open %s: %w", s.Path, err)))
	}
	defer f.Close()

	return solo.Switch(ctx, Decode(ctx, f), ToEvent)
}

// Decode reads one JSON payload from r.
func Decode(_ context.Context, r io.Reader) rop.Result[Payload] {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return rop.Fail[Payload](failure.Mapping("", err))
	}
	return rop.Success(p)
}

// ToEvent keeps title and chapter title as they are and parses start_date,
// preserving its UTC offset.
func ToEvent(ctx context.Context, p Payload) rop.Result[event.Event] {
	checked := solo.FailOnError(ctx, rop.Success(p), func(_ context.Context, p Payload) error {
		if p.Chapter == nil {
			return failure.Mapping("chapter", errMissing)
		}
		return nil
	})

	return solo.Try(ctx, checked, func(_ context.Context, p Payload) (event.Event, error) {
		if p.StartDate == "" {
			return event.Event{}, failure.Mapping("start_date", errMissing)
		}
		date, err := time.Parse(time.RFC3339, p.StartDate)
		if err != nil {
			return event.Event{}, failure.Mapping("start_date", err)
		}

		return event.Event{
			Title:   p.Title,
			Date:    date,
			Chapter: event.Chapter{Name: p.Chapter.Title},
		}, nil
	})
}
