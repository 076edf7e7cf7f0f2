package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// handOptions describes the facts shared by compute_scores and verify_scores.
func handOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("players", mcp.Required(), mcp.Description("Table size, 3 to 5")),
		mcp.WithNumber("taker", mcp.Required(), mcp.Description("Seat index of the taker")),
		mcp.WithNumber("called", mcp.Description("Seat index of the called partner, 5 players only")),
		mcp.WithString("contract", mcp.Required(), mcp.Description("Petite|Garde|Garde Sans|Garde Contre")),
		mcp.WithNumber("attack_points", mcp.Required(), mcp.Description("Card points taken by the attack, 0 to 91")),
		mcp.WithNumber("bouts", mcp.Required(), mcp.Description("Oudlers held by the attack, 0 to 3")),
		mcp.WithNumber("last_trump", mcp.Description("Seat that took the petit au bout")),
		mcp.WithArray("miseres", mcp.Description("Seats that declared a misère"), mcp.WithNumberItems()),
		mcp.WithArray("handfuls", mcp.Description("Declared handfuls"), mcp.Items(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"player": map[string]any{"type": "integer"},
				"tier":   map[string]any{"type": "string", "enum": []string{"SIMPLE", "DOUBLE", "TRIPLE"}},
			},
			"required": []string{"player", "tier"},
		})),
		mcp.WithObject("slam", mcp.Description("Slam announcement and outcome"), mcp.Properties(map[string]any{
			"announced": map[string]any{"type": "boolean"},
			"succeeded": map[string]any{"type": "boolean"},
		})),
	}
}
