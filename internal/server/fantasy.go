package server

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"

	"spirit11/internal/catalog"
	"spirit11/internal/constants"
	"spirit11/internal/middleware"
	"spirit11/internal/service"
)

var errAdminOnly = errors.New("admin privileges required")

type FantasyServer struct {
	players   *service.PlayerService
	teams     *service.TeamService
	assistant *service.AssistantService
	imports   *service.ImportService
	logger    zerolog.Logger
}

func NewFantasyServer(
	players *service.PlayerService,
	teams *service.TeamService,
	assistant *service.AssistantService,
	imports *service.ImportService,
	logger zerolog.Logger,
) *FantasyServer {
	return &FantasyServer{
		players:   players,
		teams:     teams,
		assistant: assistant,
		imports:   imports,
		logger:    logger,
	}
}

func principal(ctx context.Context) (service.Principal, error) {
	p, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		return service.Principal{}, connect.NewError(connect.CodeUnauthenticated, errors.New("missing principal"))
	}
	return p, nil
}

func (s *FantasyServer) ListPlayers(ctx context.Context, req *connect.Request[ListPlayersRequest]) (*connect.Response[ListPlayersResponse], error) {
	players, err := s.players.Search(ctx, catalog.Query{
		Search:   strings.TrimSpace(req.Msg.Search),
		Category: req.Msg.Category,
	})
	if err != nil {
		return nil, s.toConnectError(ctx, "ListPlayers", err)
	}
	return connect.NewResponse(&ListPlayersResponse{Players: toPlayerViews(players)}), nil
}

func (s *FantasyServer) GetPlayer(ctx context.Context, req *connect.Request[GetPlayerRequest]) (*connect.Response[GetPlayerResponse], error) {
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("id is required"))
	}
	player, err := s.players.Get(ctx, req.Msg.ID)
	if err != nil {
		return nil, s.toConnectError(ctx, "GetPlayer", err)
	}
	return connect.NewResponse(&GetPlayerResponse{Player: toPlayerView(*player)}), nil
}

func (s *FantasyServer) GetTeam(ctx context.Context, req *connect.Request[GetTeamRequest]) (*connect.Response[GetTeamResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	overview, err := s.teams.Overview(ctx, p, req.Msg.Category)
	if err != nil {
		return nil, s.toConnectError(ctx, "GetTeam", err)
	}
	return connect.NewResponse(&GetTeamResponse{
		Team:      toTeamView(overview.User, constants.MaxTeamSize),
		Available: toSelectionViews(overview.Available),
	}), nil
}

func (s *FantasyServer) GetBudget(ctx context.Context, req *connect.Request[GetBudgetRequest]) (*connect.Response[GetBudgetResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	budget, err := s.teams.Budget(ctx, p)
	if err != nil {
		return nil, s.toConnectError(ctx, "GetBudget", err)
	}
	return connect.NewResponse(toBudgetResponse(budget)), nil
}

func (s *FantasyServer) AddPlayer(ctx context.Context, req *connect.Request[TeamChangeRequest]) (*connect.Response[TeamChangeResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.PlayerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("playerId is required"))
	}
	user, err := s.teams.AddPlayer(ctx, p, req.Msg.PlayerID)
	if err != nil {
		return nil, s.toConnectError(ctx, "AddPlayer", err)
	}
	return connect.NewResponse(&TeamChangeResponse{Team: toTeamView(user, constants.MaxTeamSize)}), nil
}

func (s *FantasyServer) RemovePlayer(ctx context.Context, req *connect.Request[TeamChangeRequest]) (*connect.Response[TeamChangeResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.PlayerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("playerId is required"))
	}
	user, err := s.teams.RemovePlayer(ctx, p, req.Msg.PlayerID)
	if err != nil {
		return nil, s.toConnectError(ctx, "RemovePlayer", err)
	}
	return connect.NewResponse(&TeamChangeResponse{Team: toTeamView(user, constants.MaxTeamSize)}), nil
}

func (s *FantasyServer) Chat(ctx context.Context, req *connect.Request[ChatRequest]) (*connect.Response[ChatResponse], error) {
	msg := strings.TrimSpace(req.Msg.Message)
	if msg == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("message is required"))
	}
	return connect.NewResponse(&ChatResponse{Reply: s.assistant.Chat(ctx, msg)}), nil
}

func (s *FantasyServer) SuggestTeam(ctx context.Context, req *connect.Request[SuggestTeamRequest]) (*connect.Response[ChatResponse], error) {
	return connect.NewResponse(&ChatResponse{Reply: s.assistant.SuggestTeam(ctx)}), nil
}

func (s *FantasyServer) Leaderboard(ctx context.Context, req *connect.Request[LeaderboardRequest]) (*connect.Response[LeaderboardResponse], error) {
	users, err := s.teams.Leaderboard(ctx, req.Msg.Limit)
	if err != nil {
		return nil, s.toConnectError(ctx, "Leaderboard", err)
	}

	entries := make([]LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = LeaderboardEntry{
			Rank:        i + 1,
			UserID:      u.ID,
			Username:    u.Username,
			TotalPoints: u.TotalPoints,
		}
	}
	return connect.NewResponse(&LeaderboardResponse{Entries: entries}), nil
}

func (s *FantasyServer) ImportPlayers(ctx context.Context, req *connect.Request[ImportPlayersRequest]) (*connect.Response[ImportPlayersResponse], error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if !p.Admin {
		return nil, connect.NewError(connect.CodePermissionDenied, errAdminOnly)
	}
	result, err := s.imports.Import(ctx, strings.NewReader(req.Msg.CSV))
	if err != nil {
		return nil, s.toConnectError(ctx, "ImportPlayers", err)
	}
	return connect.NewResponse(&ImportPlayersResponse{Imported: result.Imported, Total: result.Total}), nil
}
