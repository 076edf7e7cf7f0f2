package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerHistoryTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"list_games",
			mcp.WithDescription("List recorded games with their players and hand counts"),
		),
		s.handleListGames,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"get_statistics",
			mcp.WithDescription("Get statistics for the whole history, one player or one game"),
			mcp.WithString("player_id", mcp.Description("Optional player id")),
			mcp.WithString("game_id", mcp.Description("Optional game id")),
		),
		s.handleGetStatistics,
	)
}

func (s *Server) handleListGames(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := s.history.ListGames(ctx)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handleGetStatistics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	playerID := request.GetString("player_id", "")
	gameID := request.GetString("game_id", "")
	switch {
	case playerID != "" && gameID != "":
		return toolError("invalid_request", "player_id and game_id are exclusive"), nil
	case playerID != "":
		resp, err := s.history.PlayerStatistics(ctx, playerID)
		if err != nil {
			return mapDomainError(err), nil
		}
		return toolResult(resp), nil
	case gameID != "":
		resp, err := s.history.GameStatistics(ctx, gameID)
		if err != nil {
			return mapDomainError(err), nil
		}
		return toolResult(resp), nil
	}
	resp, err := s.history.Statistics(ctx)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}
