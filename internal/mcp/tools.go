package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"spirit11/internal/assistant"
	"spirit11/internal/catalog"
	"spirit11/internal/domain"
	"spirit11/internal/service"
	"spirit11/internal/stats"
)

const (
	ServerName    = "spirit11"
	ServerVersion = "0.1.0"
)

type SearchPlayersArgs struct {
	Search   string `json:"search,omitempty" jsonschema:"Substring of the player name or university (case-insensitive)"`
	Category string `json:"category,omitempty" jsonschema:"Batsman, Bowler, All-Rounder or all (default all)"`
}

type PlayerValueArgs struct {
	TotalRuns     int `json:"totalRuns" jsonschema:"Runs scored across all innings"`
	BallsFaced    int `json:"ballsFaced" jsonschema:"Balls faced while batting"`
	InningsPlayed int `json:"inningsPlayed" jsonschema:"Innings batted"`
	Wickets       int `json:"wickets" jsonschema:"Wickets taken"`
	OversBowled   int `json:"oversBowled" jsonschema:"Overs bowled"`
	RunsConceded  int `json:"runsConceded" jsonschema:"Runs conceded while bowling"`
}

type playerValue struct {
	BattingStrikeRate float64 `json:"battingStrikeRate"`
	BattingAverage    float64 `json:"battingAverage"`
	BowlingStrikeRate float64 `json:"bowlingStrikeRate"`
	EconomyRate       float64 `json:"economyRate"`
	Value             int64   `json:"value"`
}

// NewServer builds the read-only tool surface over the player catalog. No
// tool ever returns points.
func NewServer(players *service.PlayerService, logger zerolog.Logger) *gomcp.Server {
	server := gomcp.NewServer(&gomcp.Implementation{Name: ServerName, Version: ServerVersion}, nil)

	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "search_players",
		Description: "Search the player catalog by name, university and category",
	}, func(ctx context.Context, req *gomcp.CallToolRequest, args SearchPlayersArgs) (*gomcp.CallToolResult, any, error) {
		found, err := players.Search(ctx, catalog.Query{Search: args.Search, Category: args.Category})
		if err != nil {
			if !errors.Is(err, catalog.ErrUnknownCategory) {
				logger.Error().Err(err).Msg("search_players failed")
			}
			return toolError(err), nil, nil
		}
		return toolJSON(assistant.Redact(found))
	})

	gomcp.AddTool(server, &gomcp.Tool{
		Name:        "player_value",
		Description: "Derive strike rates, average, economy and price from raw tournament stats",
	}, func(ctx context.Context, req *gomcp.CallToolRequest, args PlayerValueArgs) (*gomcp.CallToolResult, any, error) {
		raw := domain.RawStats(args)
		for name, v := range map[string]int{
			"totalRuns": raw.TotalRuns, "ballsFaced": raw.BallsFaced, "inningsPlayed": raw.InningsPlayed,
			"wickets": raw.Wickets, "oversBowled": raw.OversBowled, "runsConceded": raw.RunsConceded,
		} {
			if v < 0 {
				return toolError(fmt.Errorf("%s must not be negative", name)), nil, nil
			}
		}
		d := stats.Derive(raw)
		return toolJSON(assistant.Redact(playerValue{
			BattingStrikeRate: d.BattingStrikeRate,
			BattingAverage:    d.BattingAverage,
			BowlingStrikeRate: d.BowlingStrikeRate,
			EconomyRate:       d.EconomyRate,
			Value:             d.Value,
		}))
	})

	return server
}

// Handler serves server over streamable HTTP with plain JSON responses.
func Handler(server *gomcp.Server) http.Handler {
	return gomcp.NewStreamableHTTPHandler(func(*http.Request) *gomcp.Server {
		return server
	}, &gomcp.StreamableHTTPOptions{JSONResponse: true})
}

func toolJSON(res []byte, err error) (*gomcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{
			&gomcp.TextContent{Text: string(res)},
		},
	}, nil, nil
}

func toolError(err error) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		IsError: true,
		Content: []gomcp.Content{
			&gomcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
