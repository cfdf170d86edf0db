package main

import (
	_ "embed"
	"strings"

	"go.uber.org/zap"

	"github.com/seuros/kigen/internal/cli"
	"github.com/seuros/kigen/internal/logging"
)

//go:embed VERSION
var versionFile string

//go:embed index.html
var indexTemplate []byte

var executeCLI = cli.Execute

func run() error {
	version := strings.TrimSpace(versionFile)
	return executeCLI(version, indexTemplate)
}

func main() {
	if err := run(); err != nil {
		logging.Fatal("kigen execution failed", zap.Error(err))
	}
}
