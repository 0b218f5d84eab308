package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/RedSiamese/sitter-tree-mcp/internal/service"
)

// batchProgress renders a progress bar on stderr for directory batches.
// Stdout stays clean for the projections themselves. Single-file calls
// show no bar.
type batchProgress struct {
	description string
	bar         *progressbar.ProgressBar
}

func newBatchProgress(description string) service.Progress {
	return &batchProgress{description: description}
}

func (p *batchProgress) Start(total int) {
	if total < 2 {
		return
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(p.description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}

func (p *batchProgress) Step(path string) {
	if p.bar != nil {
		p.bar.Add(1)
	}
}

func (p *batchProgress) Done() {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}
