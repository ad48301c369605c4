package mcp

// InstallInstructions tells the caller how to install vale on the host OS.
type InstallInstructions struct {
	Command string `json:"command,omitempty"`
	URL     string `json:"url"`
}

const installDocsURL = "https://vale.sh/docs/vale-cli/installation/"

// installInstructionsByOS is keyed by runtime.GOOS values.
var installInstructionsByOS = map[string]InstallInstructions{
	"darwin":  {Command: "brew install vale", URL: installDocsURL},
	"linux":   {Command: "snap install vale", URL: installDocsURL},
	"windows": {Command: "choco install vale", URL: installDocsURL},
}

// instructionsFor returns installation guidance for the given OS, falling
// back to the documentation link for anything unrecognized.
func instructionsFor(goos string) InstallInstructions {
	if ins, ok := installInstructionsByOS[goos]; ok {
		return ins
	}
	return InstallInstructions{URL: installDocsURL}
}
