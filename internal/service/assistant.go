package service

import (
	"context"

	"github.com/rs/zerolog"

	"spirit11/internal/assistant"
	"spirit11/internal/constants"
)

type AssistantService struct {
	bridge  *assistant.Bridge
	players *PlayerService
	logger  zerolog.Logger
}

func NewAssistantService(bridge *assistant.Bridge, players *PlayerService, logger zerolog.Logger) *AssistantService {
	return &AssistantService{bridge: bridge, players: players, logger: logger}
}

// Chat never fails: catalog or backend errors become the chat fallback.
func (s *AssistantService) Chat(ctx context.Context, utterance string) string {
	players, err := s.players.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load catalog for chat")
		return assistant.ChatFallback
	}

	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()
	return s.bridge.Chat(ctx, utterance, players)
}

func (s *AssistantService) SuggestTeam(ctx context.Context) string {
	players, err := s.players.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load catalog for suggestion")
		return assistant.SuggestFallback
	}

	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()
	return s.bridge.SuggestTeam(ctx, players)
}
