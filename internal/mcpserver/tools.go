package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"pylens/internal/demo"
	"pylens/internal/output"
	"pylens/internal/structure"
)

// ScanInput is the input schema for the pylens scan MCP tool.
type ScanInput struct {
	Path       string `json:"path" jsonschema:"Python file or directory to scan (defaults to current directory)"`
	Format     string `json:"format,omitempty" jsonschema:"Output format: json or markdown (default: json)"`
	Frameworks string `json:"frameworks,omitempty" jsonschema:"Comma-separated framework keywords for key imports (default: torch,cv2,numpy,PIL)"`
}

// DemoInput is the input schema for the pylens demo MCP tool.
type DemoInput struct {
	Target string `json:"target" jsonschema:"Python file the walkthrough narrates over"`
	OutDir string `json:"out_dir,omitempty" jsonschema:"Directory the template files are written into (default: current directory)"`
	Steps  string `json:"steps,omitempty" jsonschema:"Comma-separated step names to run (default: all, in scripted order)"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all pylens tools to the MCP server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan",
		Description: "Scan a Python file or directory for structure: classes, methods, imports, and framework key imports. Returns a JSON report.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleScan)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "demo",
		Description: "Run the scripted assistant walkthrough over a target file. Writes a canned unit-test template and a canned markdown document, and returns the narration text.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    false,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleDemo)
}

func handleScan(ctx context.Context, _ *mcp.CallToolRequest, input ScanInput) (*mcp.CallToolResult, any, error) {
	pathInfo, err := ResolvePath(input.Path)
	if err != nil {
		return nil, nil, err
	}

	format := "json"
	if input.Format != "" {
		format = input.Format
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}

	opts := structure.Options{
		FrameworkKeywords: splitAndTrim(input.Frameworks),
	}

	var reports []*structure.Report
	if pathInfo.IsDir {
		// Tree scans pick up pyproject-declared dependencies as keywords.
		if extra, kwErr := structure.ProjectKeywords(pathInfo.AbsPath); kwErr == nil && len(extra) > 0 {
			if len(opts.FrameworkKeywords) == 0 {
				opts.FrameworkKeywords = structure.DefaultFrameworkKeywords
			}
			opts.FrameworkKeywords = append(opts.FrameworkKeywords, extra...)
		}
		reports, err = structure.ScanTree(ctx, pathInfo.AbsPath, opts)
	} else {
		var r *structure.Report
		r, err = structure.Scan(pathInfo.AbsPath, opts)
		if r != nil {
			reports = []*structure.Report{r}
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("scan failed: %w", err)
	}

	var buf bytes.Buffer
	if err := formatter.Format(reports, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func handleDemo(ctx context.Context, _ *mcp.CallToolRequest, input DemoInput) (*mcp.CallToolResult, any, error) {
	outDir := input.OutDir
	if outDir == "" {
		outDir = "."
	}

	var buf bytes.Buffer
	env := &demo.Env{
		Target: input.Target,
		OutDir: outDir,
		Out:    &buf,
	}

	runner, err := demo.NewRunner(env, splitAndTrim(input.Steps))
	if err != nil {
		return nil, nil, err
	}
	if _, err := runner.Run(ctx); err != nil {
		return nil, nil, fmt.Errorf("walkthrough failed: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}
