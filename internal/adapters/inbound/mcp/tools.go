package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/valemcp/valemcp/internal/application"
	"github.com/valemcp/valemcp/internal/domain"
)

// notInstalledMessage is the uniform payload every gated tool returns when
// vale is absent.
const notInstalledMessage = "Vale is not installed or could not be found on PATH. " +
	"Call the vale_status tool for platform-specific installation instructions."

// missingStylesSignatures identify vale failures caused by an absent styles
// directory. Matching is substring-based and case-insensitive; it stays
// deliberately loose because vale's wording varies across versions.
var missingStylesSignatures = []string{
	"e100",
	"missing styles",
	"styles directory",
	"styles path",
}

// registerTools registers the three vale tools on the given server.
func registerTools(
	s *server.MCPServer,
	cache *application.InstallCache,
	checkSvc *application.CheckService,
	syncSvc *application.SyncService,
) {
	s.AddTool(
		mcplib.NewTool("vale_status",
			mcplib.WithDescription("Check whether the Vale prose linter is installed and report its version"),
		),
		handleStatus(cache),
	)

	s.AddTool(
		mcplib.NewTool("vale_sync",
			mcplib.WithDescription("Download the external style packages referenced by the Vale configuration"),
			mcplib.WithString("config_path",
				mcplib.Description("Path to a .vale.ini file to sync against (optional)"),
			),
		),
		handleSync(cache, syncSvc),
	)

	s.AddTool(
		mcplib.NewTool("vale_check_file",
			mcplib.WithDescription("Lint a prose file with Vale and return a markdown report plus structured issues"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to the file to check"),
			),
		),
		handleCheckFile(cache, checkSvc),
	)
}

type statusPayload struct {
	Installed                bool                 `json:"installed"`
	Version                  string               `json:"version,omitempty"`
	Platform                 string               `json:"platform"`
	InstallationInstructions *InstallInstructions `json:"installation_instructions,omitempty"`
	Message                  string               `json:"message"`
}

func handleStatus(cache *application.InstallCache) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		st := cache.Probe()

		payload := statusPayload{
			Installed: st.Installed,
			Version:   st.Version,
			Platform:  runtime.GOOS,
		}
		if st.Installed {
			payload.Message = fmt.Sprintf("Vale is installed: %s", st.Version)
		} else {
			ins := instructionsFor(runtime.GOOS)
			payload.InstallationInstructions = &ins
			payload.Message = notInstalledMessage
		}
		return jsonResult(payload)
	}
}

func handleSync(cache *application.InstallCache, syncSvc *application.SyncService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		if !cache.Probe().Installed {
			return notInstalledResult(), nil
		}

		configPath, _ := request.GetArguments()["config_path"].(string)
		result := syncSvc.Sync(configPath)

		return textResult(renderSyncResult(result)), nil
	}
}

func handleCheckFile(cache *application.InstallCache, checkSvc *application.CheckService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if strings.TrimSpace(path) == "" {
			return errorResult("path must not be empty"), nil
		}

		if !cache.Probe().Installed {
			return notInstalledResult(), nil
		}

		result, err := checkSvc.CheckFile(path, "")
		if err != nil {
			return dispatchError(err), nil
		}

		// Report is excluded from the JSON form, so the structured payload
		// carries exactly {file, issues, summary}.
		return &mcplib.CallToolResult{
			Content:           []mcplib.Content{mcplib.NewTextContent(result.Report)},
			StructuredContent: *result,
		}, nil
	}
}

// renderSyncResult renders a SyncResult into the fixed markdown template.
func renderSyncResult(r domain.SyncResult) string {
	var b strings.Builder
	if r.Success {
		b.WriteString("# Vale Sync Complete\n\n")
	} else {
		b.WriteString("# Vale Sync Failed\n\n")
	}
	b.WriteString(r.Message)
	if out := strings.TrimSpace(r.Output); out != "" {
		b.WriteString("\n\n```\n" + out + "\n```")
	}
	if r.Error != "" {
		b.WriteString("\n\nError: " + r.Error)
	}
	return b.String()
}

// dispatchError converts a pipeline failure into a tool result. Failures
// that look like a missing styles directory are rewritten into remediation
// guidance; everything else surfaces verbatim. Nothing propagates past the
// dispatcher as a protocol fault.
func dispatchError(err error) *mcplib.CallToolResult {
	if isMissingStylesError(err.Error()) {
		return errorResult("Vale's styles directory is missing or incomplete. " +
			"Run the vale_sync tool to download the configured style packages, then retry.")
	}
	return errorResult(err.Error())
}

func isMissingStylesError(msg string) bool {
	lower := strings.ToLower(msg)
	for _, sig := range missingStylesSignatures {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}

func notInstalledResult() *mcplib.CallToolResult {
	return errorResult(notInstalledMessage)
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
