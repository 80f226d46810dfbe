// Package workflow sequences themed log lines into titled, numbered steps.
// It only consumes the category methods of a cli.Logger.
package workflow

//go:generate mockgen -source=workflow.go -destination=mocks/mock_reporter.go -package=mocks

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/colorize/internal/cli"
	"github.com/agbru/colorize/internal/ui"
)

const tracerName = "github.com/agbru/colorize/internal/workflow"

// Markers prefixed to workflow lines.
const (
	TitleMarker   = "◆"
	SuccessMarker = "✓"
	ErrorMarker   = "✗"
	WarningMarker = "⚠"
)

// Reporter is the subset of *cli.Logger a Workflow writes through.
type Reporter interface {
	Info(text string, style ...ui.StyleName) *cli.Logger
	Success(text string, style ...ui.StyleName) *cli.Logger
	Error(text string, style ...ui.StyleName) *cli.Logger
	Warning(text string, style ...ui.StyleName) *cli.Logger
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithTracer replaces the tracer obtained from the global otel provider.
func WithTracer(t trace.Tracer) Option {
	return func(w *Workflow) { w.tracer = t }
}

// Workflow prints a titled sequence of numbered steps. Each Start/End pair
// is recorded as one span; steps and outcomes become span events.
//
// A Workflow is not safe for concurrent use.
type Workflow struct {
	reporter Reporter
	tracer   trace.Tracer

	parent context.Context
	ctx    context.Context
	span   trace.Span
	step   int
}

// New creates a workflow writing through r. Spans are children of any span
// carried by ctx.
func New(ctx context.Context, r Reporter, opts ...Option) *Workflow {
	w := &Workflow{
		reporter: r,
		tracer:   otel.Tracer(tracerName),
		parent:   ctx,
		ctx:      ctx,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start prints the title between blank lines and resets the step counter.
// A workflow still open from a previous Start is ended first.
func (w *Workflow) Start(title string) *Workflow {
	w.endSpan()
	w.ctx, w.span = w.tracer.Start(w.parent, "workflow",
		trace.WithAttributes(attribute.String("workflow.title", title)))
	w.step = 0
	w.banner(title)
	return w
}

// Step increments the counter and prints "  N. msg".
func (w *Workflow) Step(msg string) *Workflow {
	w.step++
	w.event("step", attribute.Int("workflow.step", w.step), attribute.String("workflow.message", msg))
	w.reporter.Info(fmt.Sprintf("  %d. %s", w.step, msg))
	return w
}

// Success prints msg with the success marker.
func (w *Workflow) Success(msg string) *Workflow {
	w.event("success", attribute.String("workflow.message", msg))
	w.reporter.Success(fmt.Sprintf("  %s %s", SuccessMarker, msg))
	return w
}

// Error prints msg with the error marker and marks the span as failed.
func (w *Workflow) Error(msg string) *Workflow {
	w.event("error", attribute.String("workflow.message", msg))
	if w.span != nil {
		w.span.SetStatus(codes.Error, msg)
	}
	w.reporter.Error(fmt.Sprintf("  %s %s", ErrorMarker, msg))
	return w
}

// Warning prints msg with the warning marker.
func (w *Workflow) Warning(msg string) *Workflow {
	w.event("warning", attribute.String("workflow.message", msg))
	w.reporter.Warning(fmt.Sprintf("  %s %s", WarningMarker, msg))
	return w
}

// End prints the closing title like Start and ends the span. The step
// counter is kept.
func (w *Workflow) End(title string) *Workflow {
	w.banner(title)
	w.endSpan()
	return w
}

// Steps returns the number of steps since the last Start.
func (w *Workflow) Steps() int { return w.step }

// Context returns the context carrying the current workflow span.
func (w *Workflow) Context() context.Context { return w.ctx }

func (w *Workflow) banner(title string) {
	w.reporter.Info("")
	w.reporter.Info(fmt.Sprintf("%s %s", TitleMarker, title), ui.Bright)
	w.reporter.Info("")
}

func (w *Workflow) event(name string, attrs ...attribute.KeyValue) {
	if w.span != nil {
		w.span.AddEvent(name, trace.WithAttributes(attrs...))
	}
}

func (w *Workflow) endSpan() {
	if w.span != nil {
		w.span.End()
		w.span = nil
		w.ctx = w.parent
	}
}
