package mcpserver

import (
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	apphistory "tarot345/internal/app/history"
	appscoring "tarot345/internal/app/scoring"
)

type Server struct {
	scoring *appscoring.Service
	history *apphistory.Service

	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
}

func New(scoring *appscoring.Service, history *apphistory.Service) *Server {
	mcpSrv := server.NewMCPServer(
		"tarot345",
		"0.1.0",
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s := &Server{
		scoring:    scoring,
		history:    history,
		mcpServer:  mcpSrv,
		httpServer: server.NewStreamableHTTPServer(mcpSrv, server.WithStateLess(true), server.WithDisableStreaming(true)),
	}
	s.registerScoringTools()
	s.registerHistoryTools()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.httpServer
}
