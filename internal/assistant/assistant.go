// Package assistant builds prompts for the Spiriter assistant from the
// player catalog and relays the generated reply. Player points never leave
// the service: every payload goes through Redact first.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const (
	ChatFallback    = "I'm having trouble processing your request right now. Please try again later."
	SuggestFallback = "I'm having trouble analyzing the team data right now. Please try again later."
)

const hiddenKey = "points"

var errEmptyReply = errors.New("assistant returned an empty reply")

// Generator sends a prompt to a generative backend and returns its text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Bridge struct {
	gen    Generator
	logger zerolog.Logger
}

func NewBridge(gen Generator, logger zerolog.Logger) *Bridge {
	return &Bridge{gen: gen, logger: logger}
}

// Chat answers a free-form question about the catalog. Failures are logged
// and replaced with ChatFallback.
func (b *Bridge) Chat(ctx context.Context, utterance string, catalog any) string {
	payload, err := Redact(catalog)
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to redact chat payload")
		return ChatFallback
	}
	return b.ask(ctx, ChatPrompt(utterance, payload), ChatFallback, "chat")
}

// SuggestTeam asks for the strongest eleven from the catalog. Failures are
// logged and replaced with SuggestFallback.
func (b *Bridge) SuggestTeam(ctx context.Context, catalog any) string {
	payload, err := Redact(catalog)
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to redact suggestion payload")
		return SuggestFallback
	}
	return b.ask(ctx, SuggestPrompt(payload), SuggestFallback, "suggest")
}

func (b *Bridge) ask(ctx context.Context, prompt, fallback, kind string) string {
	reply, err := b.gen.Generate(ctx, prompt)
	if err == nil && strings.TrimSpace(reply) == "" {
		err = errEmptyReply
	}
	if err != nil {
		b.logger.Error().Err(err).Str("kind", kind).Msg("assistant request failed")
		return fallback
	}
	b.logger.Debug().Str("kind", kind).Int("reply_len", len(reply)).Msg("assistant replied")
	return reply
}

// Redact serialises v to JSON with every "points" key removed, at any depth.
func Redact(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	out, err := json.Marshal(strip(tree))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal redacted payload: %w", err)
	}
	return out, nil
}

func strip(node any) any {
	switch n := node.(type) {
	case map[string]any:
		delete(n, hiddenKey)
		for k, v := range n {
			n[k] = strip(v)
		}
		return n
	case []any:
		for i, v := range n {
			n[i] = strip(v)
		}
		return n
	default:
		return node
	}
}
