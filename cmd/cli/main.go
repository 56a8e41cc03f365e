package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/docgraph/internal/app"
	"github.com/vk/docgraph/internal/cli"
	"github.com/vk/docgraph/internal/config"
	"github.com/vk/docgraph/internal/hcl_adapter"
	"github.com/vk/docgraph/internal/yaml_adapter"
)

// main is the entrypoint for the docgraph application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (unreadable or invalid
	// workspace), so we recover here to provide a clean exit message.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	docgraphApp := app.NewApp(outW, errW, appConfig, loaderFor(appConfig.WorkspacePath))
	return docgraphApp.Run(context.Background())
}

// loaderFor picks the workspace loader from the path's file extension.
// Directories default to the HCL loader.
func loaderFor(path string) config.Loader {
	for _, ext := range yaml_adapter.Extensions {
		if strings.HasSuffix(path, ext) {
			return yaml_adapter.NewLoader()
		}
	}
	return hcl_adapter.NewLoader()
}
