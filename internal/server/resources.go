package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

const (
	categoriesURI = "catalog://categories"
	toolsURI      = "catalog://tools"
	recentURI     = "journal://recent"
	statsURI      = "journal://stats"

	recentLimit = 50
)

type listResourcesResult struct {
	Resources []resource `json:"resources"`
}

type resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

type readResourceParams struct {
	URI string `json:"uri"`
}

type readResourceResult struct {
	Contents []mcp.ContentBlock `json:"contents"`
}

func (s *Server) resources() []resource {
	res := []resource{
		{URI: categoriesURI, Name: "categories", Description: "Tool categories with their tool names", MimeType: "application/json"},
		{URI: toolsURI, Name: "tools", Description: "Every tool name with a short description", MimeType: "application/json"},
	}
	if s.journal != nil {
		res = append(res,
			resource{URI: recentURI, Name: "recent calls", Description: fmt.Sprintf("The last %d tool calls", recentLimit), MimeType: "application/json"},
			resource{URI: statsURI, Name: "call stats", Description: "Tool call counts per outcome", MimeType: "application/json"},
		)
	}
	return res
}

func (s *Server) handleListResources(req *mcp.Request) *mcp.Response {
	return s.respond(req.ID, listResourcesResult{Resources: s.resources()})
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.Request) *mcp.Response {
	var params readResourceParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return mcp.NewErrorResponse(req.ID, mcp.InvalidParams, "Invalid params: "+err.Error())
	}

	var payload any
	cat := s.dispatcher.Catalog()
	switch params.URI {
	case categoriesURI:
		payload = cat.Categories()
	case toolsURI:
		payload = cat.Search("", "", cat.Len())
	case recentURI, statsURI:
		if s.journal == nil {
			return mcp.NewErrorResponse(req.ID, mcp.InvalidParams, "No call journal configured")
		}
		var err error
		if params.URI == recentURI {
			payload, err = s.journal.Recent(ctx, "", recentLimit)
		} else {
			payload, err = s.journal.Stats(ctx)
		}
		if err != nil {
			return mcp.NewErrorResponse(req.ID, mcp.InternalError, err.Error())
		}
	default:
		return mcp.NewErrorResponse(req.ID, mcp.InvalidParams, fmt.Sprintf("Unsupported resource URI: %s", params.URI))
	}

	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewErrorResponse(req.ID, mcp.InternalError, err.Error())
	}
	result := readResourceResult{Contents: []mcp.ContentBlock{{Type: "text", Text: string(b), URI: params.URI, MimeType: "application/json"}}}
	return s.respond(req.ID, result)
}
