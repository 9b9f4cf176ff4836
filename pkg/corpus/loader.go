package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// maxLineSize caps a single review line read by the loaders.
const maxLineSize = 1 << 20

// LoaderStats describes what ReadBatch kept and dropped.
type LoaderStats struct {
	Lines        int
	Reviews      int
	DroppedWords int
}

// ReadBatch reads one review per line, splits it on whitespace and cuts it
// into consecutive windows of width words. Words left over at the end of a
// line are dropped so the batch stays rectangular.
func ReadBatch(r io.Reader, width int) (Batch, LoaderStats, error) {
	var stats LoaderStats
	if width <= 0 {
		return nil, stats, fmt.Errorf("review width must be positive, got %d", width)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var batch Batch
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		stats.Lines++

		full := len(fields) - len(fields)%width
		for i := 0; i < full; i += width {
			batch = append(batch, fields[i:i+width:i+width])
		}
		stats.DroppedWords += len(fields) - full
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read reviews: %w", err)
	}

	stats.Reviews = len(batch)
	log.Debugf("Loaded %d reviews of width %d from %d lines (%d words dropped)",
		stats.Reviews, width, stats.Lines, stats.DroppedWords)
	return batch, stats, nil
}

// ReadBatchFile opens path and reads it with ReadBatch.
func ReadBatchFile(path string, width int) (Batch, LoaderStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, LoaderStats{}, fmt.Errorf("failed to open reviews file %s: %w", path, err)
	}
	defer file.Close()
	return ReadBatch(file, width)
}
