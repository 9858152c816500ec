package report

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Prefix is written before every label, naming the runtime being measured.
const Prefix = "Go"

// Footer is the closing comment explaining the units.
const Footer = "// values in millions per second"

// labelColumn is the tab stop every label is padded to.
const labelColumn = 24

// Throughput returns millions of operations per second.
// A zero elapsed time is clamped to one nanosecond so the result stays finite.
func Throughput(ops int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	mps := (float64(ops) / 1000000) / elapsed.Seconds()
	if math.IsNaN(mps) || mps < 0 {
		return 0
	}
	return mps
}

// Printer writes report lines to an output stream.
type Printer struct {
	out   io.Writer
	label *color.Color
}

// NewPrinter creates a printer. With colored set, labels are written in cyan.
func NewPrinter(out io.Writer, colored bool) *Printer {
	p := &Printer{out: out}
	if colored {
		p.label = color.New(color.FgCyan, color.Bold)
		p.label.EnableColor()
	}
	return p
}

// Result writes one "<label> := <value>" line.
func (p *Printer) Result(label string, ops int, elapsed time.Duration) error {
	return p.line(label, fmt.Sprintf("%0.2f", Throughput(ops, elapsed)))
}

// Version writes the runtime version line.
func (p *Printer) Version() error {
	return p.line("version", fmt.Sprintf("%q", runtime.Version()+" "+runtime.GOOS+"/"+runtime.GOARCH))
}

// Blank writes an empty separator line.
func (p *Printer) Blank() error {
	_, err := fmt.Fprintln(p.out)
	return err
}

// Footer writes the closing units comment.
func (p *Printer) Footer() error {
	_, err := fmt.Fprintln(p.out, Footer)
	return err
}

func (p *Printer) line(label, value string) error {
	name := Prefix + " " + label
	pad := PadTabs(name)
	if p.label != nil {
		name = p.label.Sprint(name)
	}
	_, err := fmt.Fprintf(p.out, "%s%s := %s\n", name, pad, value)
	return err
}

// PadTabs returns the tabs that move text of this width to the label column.
// At least one tab is always returned.
func PadTabs(text string) string {
	n := 1
	if width := len(text); width < labelColumn {
		n = (labelColumn - width + 7) / 8
	}
	return strings.Repeat("\t", n)
}
