// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the wordprob statistics as a msgpack IPC server, or as an
interactive CLI over a corpus file for testing and debugging.

# Usage

Start the server with default settings:

	wordprob

Use a custom config and enable debug logging:

	wordprob -config ./wordprob.toml -d

Run the CLI over a file of reviews, one per line, cut into 2-word windows:

	wordprob -c -reviews reviews.txt -width 2 -limit 10

# Configuration

The TOML config controls the estimator workers, the length-bucket counting
mode, and the sampler's round cap, offset mode and seed. See pkg/config for
the full layout. The file is created with defaults if it doesn't exist.

# IPC Protocol

Requests and responses are msgpack values streamed over stdin/stdout; see
pkg/server for the message shapes. Logs go to stderr.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordprob/internal/cli"
	"github.com/bastiangx/wordprob/internal/utils"
	"github.com/bastiangx/wordprob/pkg/config"
	"github.com/bastiangx/wordprob/pkg/corpus"
	"github.com/bastiangx/wordprob/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "wordprob"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to a TOML config file")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	reviewsPath := flag.String("reviews", "", "Reviews file for CLI mode, one review per line")
	width := flag.Int("width", 2, "Words per review window in CLI mode")
	limit := flag.Int("limit", 10, "Number of next words to show in CLI mode")
	noFilter := flag.Bool("no-filter", false, "Disable prefix filtering in CLI mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", utils.AbsolutePath(usedPath))

	if *cliMode {
		if *reviewsPath == "" {
			log.Fatal("CLI mode needs -reviews")
		}
		batch, stats, err := corpus.ReadBatchFile(*reviewsPath, *width)
		if err != nil {
			log.Fatalf("Failed to load reviews: %v", err)
		}
		log.Debug("Corpus info:",
			"lines", stats.Lines,
			"reviews", stats.Reviews,
			"dropped", stats.DroppedWords)

		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(batch, cfg, *limit, *noFilter)
		if err := inputHandler.Start(os.Stdin); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(cfg, os.Stdin, os.Stdout)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// printVersion prints a small styled banner to stderr.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordprob ] next-word and substring statistics")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}
