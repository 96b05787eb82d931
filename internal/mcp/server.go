// Package mcp exposes the accessibility extractors and the SSR registry as
// MCP tools, so the travel-service MCP layers can call them without linking
// this module directly.
package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bitbucket.org/crgw/accessibility-hub/internal/extraction/implementations/amadeus"
	"bitbucket.org/crgw/accessibility-hub/internal/extraction/implementations/serpapi"
)

// Version is the MCP server version.
const Version = "0.1.0"

type Server struct {
	server  *mcp.Server
	serpapi *serpapi.Service
	amadeus *amadeus.Service
}

func NewServer() *Server {
	impl := &mcp.Implementation{
		Name:    "accessibility-hub",
		Version: Version,
	}

	s := &Server{
		server:  mcp.NewServer(impl, nil),
		serpapi: serpapi.New(),
		amadeus: amadeus.New(),
	}

	s.registerTools()

	return s
}

// HTTPHandler returns the streamable HTTP transport for mounting on the
// service router.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}
