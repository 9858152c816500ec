package progress

import (
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/minio/pkg/console"
)

// ProgressBar wrapper structure. A nil *ProgressBar is valid and does nothing.
type ProgressBar struct {
	*pb.ProgressBar
	done bool
}

// NewProgressBar - instantiate a progress bar counting benchmarks, drawn on w.
func NewProgressBar(total int64, w io.Writer) *ProgressBar {
	// Progress bar specific theme customization.
	console.SetColor("Bar", color.New(color.FgGreen, color.Bold))

	bar := pb.New64(total)
	bar.SetWriter(w)

	bar.SetRefreshRate(time.Millisecond * 125)
	bar.SetTemplateString(`{{string . "prefix"}} {{counters . }} {{bar . }} {{percent . }} {{etime . }}`)

	bar.Start()

	return &ProgressBar{ProgressBar: bar}
}

// SetCaption sets the caption of the progress bar.
func (p *ProgressBar) SetCaption(caption string) *ProgressBar {
	p.ProgressBar.Set("prefix", caption)
	return p
}

// Step shows the named benchmark as the one running.
func (p *ProgressBar) Step(caption string) {
	if p == nil {
		return
	}
	p.SetCaption(caption)
}

// Advance counts one finished benchmark.
func (p *ProgressBar) Advance() {
	if p == nil {
		return
	}
	p.Increment()
}

// Done completes the bar. Calls after the first do nothing.
func (p *ProgressBar) Done() {
	if p == nil || p.done {
		return
	}
	p.done = true
	p.SetCaption("done").Finish()
}

// Finished reports whether Done has been called.
func (p *ProgressBar) Finished() bool {
	return p != nil && p.done
}
