// Package condenser is a reference implementation of the external
// "Condenser" collaborator the engine expects: something that watches a
// growing event log, decides when to shorten it, and emits a
// Condensation event at a safe manipulation index. The view engine
// never imports this package; it only consumes what the package
// produces.
package condenser

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/open-agentic/viewengine/internal/view"
	"github.com/open-agentic/viewengine/pkg/models"
)

// CharsPerToken is the same rough token estimate the teacher's
// compaction package uses: ~4 characters per token.
const CharsPerToken = 4

// EstimateTokens estimates token count from character count.
func EstimateTokens(s string) int {
	if len(s) == 0 {
		return 0
	}
	tokens := len(s) / CharsPerToken
	if tokens == 0 {
		return 1
	}
	return tokens
}

// Summarizer produces a natural-language summary of a run of events.
// Implementations typically call out to an LLM; Condense never cares
// which one.
type Summarizer interface {
	Summarize(ctx context.Context, events []models.Event) (string, error)
}

// Config tunes when and how much the condenser forgets.
type Config struct {
	// MaxContextTokens is the budget the condenser tries to stay under.
	MaxContextTokens int
	// KeepRecentEvents is never forgotten, regardless of token pressure.
	KeepRecentEvents int
	// ChunkTokens bounds how much history goes into a single Summarizer
	// call; larger runs are split and their summaries merged.
	ChunkTokens int
}

// DefaultConfig mirrors the teacher's compaction defaults, scaled to
// this package's constants.
func DefaultConfig() Config {
	return Config{
		MaxContextTokens: 100_000,
		KeepRecentEvents: 20,
		ChunkTokens:      20_000,
	}
}

// Condenser decides when a raw event log needs shortening and, when it
// does, asks a Summarizer to produce the replacement text.
type Condenser struct {
	cfg        Config
	summarizer Summarizer
	logger     *slog.Logger
}

// New constructs a Condenser. logger defaults to slog.Default() if nil.
func New(cfg Config, summarizer Summarizer, logger *slog.Logger) *Condenser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Condenser{cfg: cfg, summarizer: summarizer, logger: logger}
}

// NeedsCondensing reports whether raw's estimated token usage exceeds
// the configured budget.
func (c *Condenser) NeedsCondensing(raw []models.Event) bool {
	total := 0
	for _, e := range raw {
		total += EstimateTokens(eventText(e))
	}
	return total > c.cfg.MaxContextTokens
}

// Condense builds a Condensation event over raw: it picks a safe cut
// point via the engine's manipulation-index calculator, summarizes
// everything before that point, and returns an event ready to be
// appended to the log. It never mutates raw.
func (c *Condenser) Condense(ctx context.Context, raw []models.Event, idFn func() models.EventID) (models.Event, error) {
	result, err := view.BuildView(raw, false)
	if err != nil {
		return models.Event{}, err
	}

	keepFrom := len(raw) - c.cfg.KeepRecentEvents
	if keepFrom < 0 {
		keepFrom = 0
	}
	// Walk the safe manipulation indices and take the largest one at or
	// before keepFrom, so the cut both respects every view property and
	// leaves the configured number of recent events untouched.
	cut := 0
	for _, idx := range result.ManipulationIndices() {
		if idx > keepFrom {
			break
		}
		cut = idx
	}

	toForget := raw[:cut]
	if len(toForget) == 0 {
		return models.Event{}, view.ErrEmptySequence
	}

	summary, err := c.summarizeInChunks(ctx, toForget)
	if err != nil {
		return models.Event{}, err
	}

	forgottenIDs := make([]models.EventID, 0, len(toForget))
	for _, e := range toForget {
		forgottenIDs = append(forgottenIDs, e.ID)
	}

	id := models.EventID(uuid.NewString())
	if idFn != nil {
		id = idFn()
	}
	c.logger.Info("condensed events", "count", len(toForget), "cut_index", cut)
	return models.NewCondensationEvent(id, raw[len(raw)-1].Time, forgottenIDs, summary, 0), nil
}

// summarizeInChunks splits events into ChunkTokens-sized pieces,
// summarizes each independently, and merges the results — the same
// split/summarize/merge shape the teacher's compaction package uses for
// oversized histories.
func (c *Condenser) summarizeInChunks(ctx context.Context, events []models.Event) (string, error) {
	chunks := chunkByTokens(events, c.cfg.ChunkTokens)
	if len(chunks) == 1 {
		return c.summarizer.Summarize(ctx, chunks[0])
	}
	summaries := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		s, err := c.summarizer.Summarize(ctx, chunk)
		if err != nil {
			return "", err
		}
		summaries = append(summaries, s)
	}
	merged := ""
	for i, s := range summaries {
		if i > 0 {
			merged += "\n\n"
		}
		merged += s
	}
	return merged, nil
}

func chunkByTokens(events []models.Event, maxTokens int) [][]models.Event {
	if maxTokens <= 0 || len(events) == 0 {
		return [][]models.Event{events}
	}
	var chunks [][]models.Event
	var current []models.Event
	currentTokens := 0
	for _, e := range events {
		t := EstimateTokens(eventText(e))
		if currentTokens > 0 && currentTokens+t > maxTokens {
			chunks = append(chunks, current)
			current = nil
			currentTokens = 0
		}
		current = append(current, e)
		currentTokens += t
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	if len(chunks) == 0 {
		chunks = append(chunks, events)
	}
	return chunks
}

func eventText(e models.Event) string {
	switch e.Kind {
	case models.EventKindSystem:
		return e.System.Content
	case models.EventKindMessage:
		return e.Message.Content
	case models.EventKindAction:
		return e.Action.ToolName + " " + string(e.Action.Input)
	case models.EventKindObservation:
		return e.Observation.Content
	default:
		return ""
	}
}
