package main

import (
	"os"

	"payreport/pkg/cli"
	"payreport/pkg/logging"
)

func main() {
	logger := logging.New(os.Stderr)

	code := cli.Execute(os.Args[1:], os.Stdout, os.Stderr, logger)

	_ = logger.Sync()
	os.Exit(code)
}
