package application_test

// fakeRunner is a canned-output domain.ToolRunner so the pipeline can be
// exercised without spawning processes.
type fakeRunner struct {
	version    string
	versionErr error

	syncOut string
	syncErr error

	checkOut string
	checkErr error

	versionCalls int
	syncCalls    int
	checkCalls   int

	lastCheckFile   string
	lastCheckConfig string
	lastSyncConfig  string
}

func (f *fakeRunner) Version() (string, error) {
	f.versionCalls++
	return f.version, f.versionErr
}

func (f *fakeRunner) Sync(configPath string) (string, error) {
	f.syncCalls++
	f.lastSyncConfig = configPath
	return f.syncOut, f.syncErr
}

func (f *fakeRunner) Check(filePath, configPath string) (string, error) {
	f.checkCalls++
	f.lastCheckFile = filePath
	f.lastCheckConfig = configPath
	return f.checkOut, f.checkErr
}

// passthroughResolver returns the explicit path unchanged, or a fixed
// fallback when none is given.
type passthroughResolver struct {
	fallback string
}

func (r *passthroughResolver) Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return r.fallback
}
