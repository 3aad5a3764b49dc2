// Package mcpserver expone las vistas del perfil y el escaneo de ingredientes
// como tools MCP sobre stdio.
package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pet-nutrition-guide/internal/domain/healthcheck"
	"pet-nutrition-guide/internal/domain/profile"
	"pet-nutrition-guide/internal/domain/scan"
	"pet-nutrition-guide/internal/services"
)

const Version = "1.0.0"

type Server struct {
	mcp *server.MCPServer
	svc services.Services
}

func New(svc services.Services) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"pet-nutrition-guide",
		Version,
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("get_profile",
		mcp.WithDescription("Devuelve el perfil actual de la mascota (pomerania)."),
	), s.getProfile)

	s.mcp.AddTool(mcp.NewTool("get_recommendations",
		mcp.WithDescription("Nutrientes recomendados para las condiciones de salud del perfil (luz verde)."),
	), s.getRecommendations)

	s.mcp.AddTool(mcp.NewTool("get_hazards",
		mcp.WithDescription("Venenos, precauciones de la raza y alergias declaradas (luz roja)."),
	), s.getHazards)

	s.mcp.AddTool(mcp.NewTool("get_weekly_checklist",
		mcp.WithDescription("Preguntas del checklist semanal según las condiciones del perfil."),
	), s.getWeeklyChecklist)

	s.mcp.AddTool(mcp.NewTool("scan_ingredients",
		mcp.WithDescription("Clasifica los ingredientes de la foto de un rótulo en Green/Yellow/Red para el perfil actual."),
		mcp.WithString("image_base64", mcp.Required(), mcp.Description("Foto del rótulo codificada en base64")),
		mcp.WithString("mime_type", mcp.Description("MIME de la imagen (p.ej. image/jpeg). Vacío => se detecta")),
	), s.scanIngredients)

	return s
}

func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) getProfile(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, err := s.svc.Profiles.Get(ctx)
	if err != nil {
		return profileError(err), nil
	}
	return jsonResult(profile.NewRecordDTO(rec))
}

func (s *Server) getRecommendations(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, err := s.svc.Profiles.Get(ctx)
	if err != nil {
		return profileError(err), nil
	}
	return jsonResult(s.svc.Recommender.Recommend(rec.Profile))
}

func (s *Server) getHazards(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, err := s.svc.Profiles.Get(ctx)
	if err != nil {
		return profileError(err), nil
	}

	return jsonResult(s.svc.Hazards.View(rec.Profile))
}

func (s *Server) getWeeklyChecklist(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cl, err := s.svc.Checklist.Checklist(ctx)
	if err != nil {
		return profileError(err), nil
	}
	return jsonResult(healthcheck.NewChecklistDTO(cl))
}

func (s *Server) scanIngredients(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("image_base64")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	image, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return mcp.NewToolResultError("image_base64 is not valid base64"), nil
	}
	if len(image) > scan.MaxImageBytes {
		return mcp.NewToolResultError("image too large"), nil
	}

	mimeType := strings.TrimSpace(req.GetString("mime_type", ""))
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}

	rec, err := s.svc.Profiles.Get(ctx)
	if err != nil {
		return profileError(err), nil
	}

	a, err := s.svc.Scans.Scan(ctx, rec.ID, rec.Profile, image, mimeType)
	if err != nil {
		return mcp.NewToolResultError(string(scan.KindOf(err)) + ": " + err.Error()), nil
	}
	return jsonResult(scan.NewScanResponseDTO(a))
}

func profileError(err error) *mcp.CallToolResult {
	if errors.Is(err, profile.ErrNotFound) {
		return mcp.NewToolResultError("profile not found: complete onboarding first")
	}
	return mcp.NewToolResultError(err.Error())
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}
