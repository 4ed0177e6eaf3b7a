package console

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Reporter prints human readable status lines and drives a progress spinner
type Reporter struct {
	out     io.Writer
	spinner *spinner.Spinner
	success *color.Color
	failure *color.Color
	info    *color.Color
}

// Option configures a Reporter
type Option func(*Reporter)

// WithoutColor disables ANSI colors regardless of the terminal
func WithoutColor() Option {
	return func(r *Reporter) {
		r.success.DisableColor()
		r.failure.DisableColor()
		r.info.DisableColor()
	}
}

// WithoutSpinner turns Start and Stop into no-ops
func WithoutSpinner() Option {
	return func(r *Reporter) {
		r.spinner = nil
	}
}

// New creates a Reporter writing to out
func New(out io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		out:     out,
		spinner: spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out)),
		success: color.New(color.FgHiGreen),
		failure: color.New(color.FgHiRed),
		info:    color.New(color.FgHiBlue),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start shows the spinner with text, replacing any previous text
func (r *Reporter) Start(text string) {
	if r.spinner == nil {
		return
	}
	r.spinner.Suffix = " " + text
	r.spinner.Restart()
}

// Stop hides the spinner
func (r *Reporter) Stop() {
	if r.spinner == nil {
		return
	}
	r.spinner.Stop()
}

// Success prints msg in green
func (r *Reporter) Success(msg string) {
	r.success.Fprintln(r.out, msg)
}

// Failure prints msg in red
func (r *Reporter) Failure(msg string) {
	r.failure.Fprintln(r.out, msg)
}

// Info prints msg in blue
func (r *Reporter) Info(msg string) {
	r.info.Fprintln(r.out, msg)
}

// Printf writes uncolored output
func (r *Reporter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

// Table renders rows under header as an aligned table
func (r *Reporter) Table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.AppendBulk(rows)
	table.Render()
}
