// Package cli runs an interactive next-word prompt over a loaded corpus, for
// poking at the estimator by hand.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordprob/internal/logger"
	"github.com/bastiangx/wordprob/internal/utils"
	"github.com/bastiangx/wordprob/pkg/config"
	"github.com/bastiangx/wordprob/pkg/corpus"
	"github.com/bastiangx/wordprob/pkg/dist"
	"github.com/bastiangx/wordprob/pkg/stats"
	"github.com/bastiangx/wordprob/pkg/vocab"
	"github.com/charmbracelet/log"
)

// InputHandler reads prefixes line by line and prints the most likely next
// words from the corpus vocabulary.
//
// A line is split on whitespace into the prefix. A trailing token of the form
// "@letters" narrows the candidates to vocabulary words starting with letters.
type InputHandler struct {
	batch        corpus.Batch
	vocabulary   *vocab.Vocabulary
	config       *config.Config
	suggestLimit int
	noFilter     bool
	requestCount int
	statsLog     *log.Logger
}

// NewInputHandler builds the vocabulary for batch once and keeps it for every prompt.
func NewInputHandler(batch corpus.Batch, cfg *config.Config, limit int, noFilter bool) *InputHandler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &InputHandler{
		batch:        batch,
		vocabulary:   vocab.Build(batch),
		config:       cfg,
		suggestLimit: limit,
		noFilter:     noFilter,
		statsLog:     logger.NewWithConfig("stats", log.GetLevel(), false, false, log.TextFormatter),
	}
}

// Start begins the interface loop and returns when r is exhausted.
func (h *InputHandler) Start(r io.Reader) error {
	log.Print("wordprob CLI")
	log.Printf("%d reviews, %d unique words", h.batch.Rows(), h.vocabulary.Len())
	log.Print("type a prefix and press Enter to see likely next words (Ctrl+C to exit):")

	reader := bufio.NewReader(r)
	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			h.handleInput(line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// handleInput estimates and prints the top next words for one line.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	entries, err := h.Suggest(line)
	if err != nil {
		log.Errorf("Could not estimate next words for '%s': %v", line, err)
		return
	}
	if len(entries) == 0 {
		log.Warnf("No continuations found for '%s'", line)
		return
	}

	log.Printf("Top %d continuations for '%s':", len(entries), line)
	for i, e := range entries {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", e.Key)
		log.Printf("%2d. %-40s (p: %.6f, seen: %d)", i+1, clWord, e.Value, h.vocabulary.Count(e.Key))
	}
}

// Suggest returns the non-zero next-word probabilities for line, highest first.
func (h *InputHandler) Suggest(line string) ([]dist.Entry[string, float64], error) {
	prefix, letters := parseLine(line)
	if len(prefix) == 0 {
		return nil, fmt.Errorf("empty prefix")
	}
	if !h.noFilter && !utils.ValidTokens(prefix) {
		return nil, fmt.Errorf("prefix contains numbers or symbols")
	}

	candidates := h.vocabulary.Candidates(letters)
	start := time.Now()
	probs, err := stats.NextWordDistribution(candidates, prefix, h.batch, append(h.config.EstimatorOptions(), stats.WithLogger(h.statsLog))...)
	if err != nil {
		return nil, err
	}
	log.Debugf("Took [ %v ] for %d candidates", time.Since(start), len(candidates))

	var nonZero []dist.Entry[string, float64]
	for _, e := range probs.Top(0) {
		if e.Value > 0 {
			nonZero = append(nonZero, e)
		}
	}
	if h.suggestLimit > 0 && len(nonZero) > h.suggestLimit {
		nonZero = nonZero[:h.suggestLimit]
	}
	return nonZero, nil
}

// parseLine splits a prompt into prefix words and an optional "@letters" filter.
func parseLine(line string) ([]string, string) {
	fields := strings.Fields(line)
	if n := len(fields); n > 0 && strings.HasPrefix(fields[n-1], "@") {
		return fields[:n-1], strings.TrimPrefix(fields[n-1], "@")
	}
	return fields, ""
}
