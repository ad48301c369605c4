package main

import (
	"os"

	"github.com/valemcp/valemcp/internal/adapters/inbound/cli"
	"github.com/valemcp/valemcp/internal/logging"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Error("command failed", "error", err)
		os.Exit(1)
	}
}
