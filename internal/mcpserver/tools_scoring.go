package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	appscoring "tarot345/internal/app/scoring"
)

func (s *Server) registerScoringTools() {
	computeOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Compute the zero-sum score vector of one hand"),
	}, handOptions()...)
	s.mcpServer.AddTool(mcp.NewTool("compute_scores", computeOpts...), s.handleComputeScores)

	verifyOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Check that a score vector matches the facts of a hand"),
		mcp.WithArray("scores", mcp.Required(), mcp.Description("One score per seat"), mcp.WithNumberItems()),
	}, handOptions()...)
	s.mcpServer.AddTool(mcp.NewTool("verify_scores", verifyOpts...), s.handleVerifyScores)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"get_rules",
			mcp.WithDescription("Get the scoring constants and handful requirements"),
		),
		s.handleGetRules,
	)
}

func (s *Server) handleComputeScores(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var req appscoring.HandRequest
	if err := request.BindArguments(&req); err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	resp, err := s.scoring.Score(req)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handleVerifyScores(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var req appscoring.VerifyRequest
	if err := request.BindArguments(&req); err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	resp, err := s.scoring.Verify(req)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handleGetRules(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.scoring.Rules()), nil
}
