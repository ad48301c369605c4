package domain

// ToolRunner is the narrow boundary around the external vale binary:
// command in, captured output or failure out.
type ToolRunner interface {
	// Version runs the tool's version query and returns trimmed stdout.
	Version() (string, error)

	// Sync fetches vale's external style packages, optionally scoped to a
	// config file. Returns combined stdout+stderr.
	Sync(configPath string) (string, error)

	// Check lints one file and returns raw stdout. A non-zero exit with
	// stdout present is success; empty stdout is an *ExecutionError.
	Check(filePath, configPath string) (string, error)
}

// ConfigResolver produces the configuration-file path to hand to vale, or ""
// when vale should run its own upward discovery.
type ConfigResolver interface {
	Resolve(explicit string) string
}
