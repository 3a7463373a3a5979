package entrycmd

import (
	"context"
	"errors"
	"time"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-qa/internal/commands"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

const createOperation = "entry.create"

var _ command.Commander[CreateCommand] = (*CreateHandler)(nil)

// ResultSink receives the create result of a successful authoring run.
type ResultSink func(ctx context.Context, result *interfaces.CreateResult) error

// Clock supplies the time used when allocating entry identifiers. Tests
// substitute a fixed clock.
type Clock func() time.Time

// CreateHandler authors a new entry file via the shared command handler
// foundation.
type CreateHandler struct {
	inner *commands.Handler[CreateCommand]
}

// NewCreateHandler creates a handler bound to the supplied authoring service.
// clock may be nil, defaulting to time.Now; sink may be nil.
func NewCreateHandler(authoring interfaces.AuthoringService, clock Clock, sink ResultSink, logger interfaces.Logger, opts ...commands.HandlerOption[CreateCommand]) *CreateHandler {
	baseLogger := commands.EnsureLogger(logger)
	if clock == nil {
		clock = time.Now
	}

	exec := func(ctx context.Context, msg CreateCommand) error {
		if authoring == nil {
			return errors.New("entry command: authoring service is required")
		}

		id := msg.ID
		if id == "" {
			next, err := authoring.NextID(ctx, clock())
			if err != nil {
				return err
			}
			id = next
		}

		draft := interfaces.EntryDraft{
			ID:         id,
			Domain:     msg.Domain,
			Topic:      msg.Topic,
			Subtopic:   msg.Subtopic,
			Difficulty: msg.Difficulty,
			Keywords:   msg.Keywords,
			Question:   msg.Question,
			Think:      msg.Think,
			Answer:     msg.Answer,
		}

		result, err := authoring.Create(ctx, draft, interfaces.CreateOptions{
			Filename:  msg.Filename,
			Overwrite: msg.Overwrite,
		})
		if err != nil {
			return err
		}

		baseLogger.Info("entry.command.create.completed", "id", result.ID, "path", result.Path)

		if sink == nil {
			return nil
		}
		return sink(ctx, result)
	}

	handlerOpts := []commands.HandlerOption[CreateCommand]{
		commands.WithLogger[CreateCommand](baseLogger),
		commands.WithOperation[CreateCommand](createOperation),
		commands.WithMessageFields(func(msg CreateCommand) map[string]any {
			fields := map[string]any{
				"topic":      msg.Topic,
				"subtopic":   msg.Subtopic,
				"difficulty": msg.Difficulty,
			}
			if msg.ID != "" {
				fields["id"] = msg.ID
			}
			if msg.Domain != "" {
				fields["domain"] = msg.Domain
			}
			if msg.Overwrite {
				fields["overwrite"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[CreateCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CreateCommand].
func (h *CreateHandler) Execute(ctx context.Context, msg CreateCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RegisterEntryCommands builds the authoring command handlers and registers
// them with the provided registry.
func RegisterEntryCommands(reg commands.CommandRegistry, authoring interfaces.AuthoringService, clock Clock, sink ResultSink, provider interfaces.LoggerProvider) (*CreateHandler, error) {
	if authoring == nil {
		return nil, errors.New("entry command registration: authoring service is required")
	}

	handler := NewCreateHandler(authoring, clock, sink, commands.CommandLogger(provider, "entry"))

	if reg != nil {
		if err := reg.RegisterCommand(handler); err != nil {
			return nil, err
		}
	}
	return handler, nil
}
