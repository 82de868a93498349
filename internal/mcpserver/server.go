// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes sowilo conversion tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/sowilo/internal/convert"
	"github.com/starford/sowilo/internal/markdown"
	"github.com/starford/sowilo/internal/pptx"
	"github.com/starford/sowilo/internal/storage"
)

// Server wraps the MCP server with sowilo tools.
type Server struct {
	mcp             *server.MCPServer
	conv            *convert.Converter
	resolver        *pptx.Resolver
	defaultTemplate string
}

// New creates a new MCP server with all sowilo tools registered.
func New(conv *convert.Converter, resolver *pptx.Resolver, defaultTemplate string) *Server {
	s := &Server{conv: conv, resolver: resolver, defaultTemplate: defaultTemplate}

	s.mcp = server.NewMCPServer(
		"Sowilo",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("convert_markdown",
		mcp.WithDescription("Convert markdown source into a PowerPoint deck written to disk. "+
			"The markdown MUST follow the slide format (H1/H2 headings start slides). Read the "+
			"contract first via the get_slide_format tool or the sowilo://slide-format resource."),
		mcp.WithString("markdown", mcp.Required(), mcp.Description("Markdown source following the sowilo slide format contract")),
		mcp.WithString("output_path", mcp.Required(), mcp.Description("Path for the generated .pptx file")),
		mcp.WithString("template", mcp.Description("Template name (default, professional, modern, minimal, or a configured custom template)")),
	), s.convertMarkdown)

	s.mcp.AddTool(mcp.NewTool("convert_file",
		mcp.WithDescription("Convert a markdown file on disk into a PowerPoint deck."),
		mcp.WithString("input_path", mcp.Required(), mcp.Description("Path to the markdown file (.md or .markdown)")),
		mcp.WithString("output_path", mcp.Required(), mcp.Description("Path for the generated .pptx file")),
		mcp.WithString("template", mcp.Description("Template name (empty for the configured default)")),
	), s.convertFile)

	s.mcp.AddTool(mcp.NewTool("preview_slides",
		mcp.WithDescription("Preview how markdown splits into slides without generating a deck. "+
			"Returns the slide outline as JSON."),
		mcp.WithString("markdown", mcp.Required(), mcp.Description("Markdown source to preview")),
	), s.previewSlides)

	s.mcp.AddTool(mcp.NewTool("list_templates",
		mcp.WithDescription("List the available slide template names. The first name marked "+
			"default is used when no template is specified."),
	), s.listTemplates)

	s.mcp.AddTool(mcp.NewTool("get_slide_format",
		mcp.WithDescription("Returns the canonical sowilo slide format contract. "+
			"Call this before writing markdown meant for conversion."),
	), s.getSlideFormat)

	// Resource: slide format contract.
	s.mcp.AddResource(
		mcp.NewResource("sowilo://slide-format", "Slide Format Contract",
			mcp.WithResourceDescription("Canonical markdown structure for slide conversion."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readSlideFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) convertMarkdown(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := req.RequireString("markdown")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputPath, err := req.RequireString("output_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	template := s.defaultTemplate
	if tpl, err := req.RequireString("template"); err == nil {
		template = tpl
	}

	doc, err := markdown.Parse([]byte(source))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	deck, err := pptx.FromDocument(doc, s.resolver.Resolve(template)).Build()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := storage.WriteFile(outputPath, deck); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created: %s (%d slides)", outputPath, len(doc.Slides))), nil
}

func (s *Server) convertFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputPath, err := req.RequireString("input_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputPath, err := req.RequireString("output_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	template := s.defaultTemplate
	if tpl, err := req.RequireString("template"); err == nil {
		template = tpl
	}

	if err := s.conv.File(ctx, inputPath, outputPath, template); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created: %s", outputPath)), nil
}

func (s *Server) previewSlides(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := req.RequireString("markdown")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := markdown.Parse([]byte(source))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outline := pptx.FromDocument(doc, s.resolver.Resolve(s.defaultTemplate)).Outline()
	out, _ := json.MarshalIndent(outline, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := s.resolver.Names()
	for i, name := range names {
		if name == s.defaultTemplate {
			names[i] = name + " (default)"
		}
	}
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}

func (s *Server) getSlideFormat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(SlideFormatContract), nil
}

func (s *Server) readSlideFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "sowilo://slide-format",
			MIMEType: "text/markdown",
			Text:     SlideFormatContract,
		},
	}, nil
}
