package server

import (
	"net/http"

	"connectrpc.com/connect"
)

const (
	FantasyServiceName = "spirit11.v1.Fantasy"
	FantasyPath        = "/" + FantasyServiceName + "/"
)

const (
	ListPlayersProcedure   = FantasyPath + "ListPlayers"
	GetPlayerProcedure     = FantasyPath + "GetPlayer"
	GetTeamProcedure       = FantasyPath + "GetTeam"
	GetBudgetProcedure     = FantasyPath + "GetBudget"
	AddPlayerProcedure     = FantasyPath + "AddPlayer"
	RemovePlayerProcedure  = FantasyPath + "RemovePlayer"
	ChatProcedure          = FantasyPath + "Chat"
	SuggestTeamProcedure   = FantasyPath + "SuggestTeam"
	LeaderboardProcedure   = FantasyPath + "Leaderboard"
	ImportPlayersProcedure = FantasyPath + "ImportPlayers"
)

// CodecOption makes connect speak plain JSON structs. Clients must pass it
// too.
func CodecOption() connect.Option {
	return connect.WithCodec(jsonCodec{})
}

// NewFantasyHandler returns the mount path and handler for every Fantasy
// procedure.
func NewFantasyHandler(s *FantasyServer, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{CodecOption()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ListPlayersProcedure, connect.NewUnaryHandler(ListPlayersProcedure, s.ListPlayers, opts...))
	mux.Handle(GetPlayerProcedure, connect.NewUnaryHandler(GetPlayerProcedure, s.GetPlayer, opts...))
	mux.Handle(GetTeamProcedure, connect.NewUnaryHandler(GetTeamProcedure, s.GetTeam, opts...))
	mux.Handle(GetBudgetProcedure, connect.NewUnaryHandler(GetBudgetProcedure, s.GetBudget, opts...))
	mux.Handle(AddPlayerProcedure, connect.NewUnaryHandler(AddPlayerProcedure, s.AddPlayer, opts...))
	mux.Handle(RemovePlayerProcedure, connect.NewUnaryHandler(RemovePlayerProcedure, s.RemovePlayer, opts...))
	mux.Handle(ChatProcedure, connect.NewUnaryHandler(ChatProcedure, s.Chat, opts...))
	mux.Handle(SuggestTeamProcedure, connect.NewUnaryHandler(SuggestTeamProcedure, s.SuggestTeam, opts...))
	mux.Handle(LeaderboardProcedure, connect.NewUnaryHandler(LeaderboardProcedure, s.Leaderboard, opts...))
	mux.Handle(ImportPlayersProcedure, connect.NewUnaryHandler(ImportPlayersProcedure, s.ImportPlayers, opts...))
	return FantasyPath, mux
}
