package mcpserver

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	apphistory "tarot345/internal/app/history"
	appscoring "tarot345/internal/app/scoring"
)

func toolResult(data any) *mcp.CallToolResult {
	return mcp.NewToolResultStructuredOnly(data)
}

func toolError(code, message string) *mcp.CallToolResult {
	result := mcp.NewToolResultStructured(
		map[string]any{
			"error": map[string]any{
				"code":    code,
				"message": message,
			},
		},
		fmt.Sprintf("%s: %s", code, message),
	)
	result.IsError = true
	return result
}

func mapDomainError(err error) *mcp.CallToolResult {
	switch {
	case err == nil:
		return toolError("internal_error", "unknown error")
	case errors.Is(err, appscoring.ErrInvalidRequest), errors.Is(err, apphistory.ErrInvalidRequest):
		return toolError("invalid_request", err.Error())
	case errors.Is(err, appscoring.ErrInvalidHand), errors.Is(err, apphistory.ErrInvalidHand):
		return toolError("invalid_hand", err.Error())
	case errors.Is(err, apphistory.ErrPlayerNotFound):
		return toolError("player_not_found", err.Error())
	case errors.Is(err, apphistory.ErrGameNotFound):
		return toolError("game_not_found", err.Error())
	default:
		return toolError("internal_error", err.Error())
	}
}
