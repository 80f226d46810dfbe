package cli

import (
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/colorize/internal/ui"
)

// DefaultSpinnerInterval is the delay between two frames.
const DefaultSpinnerInterval = 80 * time.Millisecond

// DefaultSpinnerFrames is the braille frame sequence used when none is given.
var DefaultSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// DefaultSpinnerStyle is applied to the frame glyph when no style is given.
var DefaultSpinnerStyle = ui.StyleConfig{Color: ui.Cyan, Style: ui.Bright}

// SpinnerOptions configures a Spinner. Zero values select the defaults.
type SpinnerOptions struct {
	// Frames is the glyph sequence. See CharSetFrames for ready-made sets.
	Frames []string
	// Interval is the delay between frames.
	Interval time.Duration
	// Style applies to the frame glyph only; the text is written unstyled.
	Style *ui.StyleConfig
}

// CharSetFrames returns the frames of the briandowns/spinner character set
// with the given index.
func CharSetFrames(index int) ([]string, bool) {
	frames, ok := spinner.CharSets[index]
	if !ok || len(frames) == 0 {
		return nil, false
	}
	out := make([]string, len(frames))
	copy(out, frames)
	return out, true
}

// ticker abstracts time.Ticker so tests can drive frames by hand.
type ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

func newTimeTicker(d time.Duration) ticker { return timeTicker{time.NewTicker(d)} }

// Spinner animates a glyph followed by a text on the current line until it is
// stopped. A running spinner owns a single goroutine; Stop waits for it to
// exit, so no frame is drawn once Stop has returned.
type Spinner struct {
	logger    *Logger
	frames    []string
	interval  time.Duration
	style     ui.StyleConfig
	newTicker func(time.Duration) ticker

	// lifecycle is held for the whole of Start and Stop, including the
	// teardown write, so a concurrent Start waits for Stop to finish.
	lifecycle sync.Mutex

	mu      sync.Mutex
	text    string
	frame   int
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewSpinner creates a stopped spinner drawn through this logger.
func (l *Logger) NewSpinner(text string, opts SpinnerOptions) *Spinner {
	s := &Spinner{
		logger:    l,
		frames:    opts.Frames,
		interval:  opts.Interval,
		style:     DefaultSpinnerStyle,
		newTicker: newTimeTicker,
		text:      text,
	}
	if len(s.frames) == 0 {
		s.frames = DefaultSpinnerFrames
	}
	if s.interval <= 0 {
		s.interval = DefaultSpinnerInterval
	}
	if opts.Style != nil {
		s.style = *opts.Style
	}
	return s
}

// Start hides the cursor and begins drawing frames. Starting a running
// spinner does nothing.
func (s *Spinner) Start() *Spinner {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return s
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stop, s.done
	s.mu.Unlock()

	s.logger.write(ui.HideCursor)
	go s.run(s.newTicker(s.interval), stop, done)
	return s
}

func (s *Spinner) run(t ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			select {
			case <-stop:
				return
			default:
			}
			s.tick()
		}
	}
}

// tick draws the current frame and advances to the next one.
func (s *Spinner) tick() {
	s.mu.Lock()
	frame := s.frames[s.frame]
	text := s.text
	s.frame = (s.frame + 1) % len(s.frames)
	s.mu.Unlock()

	s.logger.write(ui.ClearLine + s.logger.Colorize(frame, s.style) + " " + text)
	if s.logger.observer != nil {
		s.logger.observer.SpinnerTicked()
	}
}

// Update replaces the text shown next to the glyph from the next frame on.
// The frame sequence is not reset.
func (s *Spinner) Update(text string) *Spinner {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	return s
}

// Text returns the current text.
func (s *Spinner) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Running reports whether the spinner is animating.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Stop halts the animation, clears the line and restores the cursor. A
// non-empty text is then written as a plain line. Stopping a spinner that is
// not running does nothing.
func (s *Spinner) Stop(text string) *Spinner {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return s
	}
	stop, done := s.stop, s.done
	s.mu.Unlock()

	close(stop)
	<-done

	s.logger.write(ui.ClearLine + ui.ShowCursor)
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
	if text != "" {
		s.logger.writeLine(text)
	}
	return s
}

// Success stops the spinner and logs text, or the current text when empty,
// with the logger's success style.
func (s *Spinner) Success(text string) *Spinner {
	text = s.finalText(text)
	s.Stop("")
	s.logger.Success(text)
	return s
}

// Error stops the spinner and logs text, or the current text when empty,
// with the logger's error style.
func (s *Spinner) Error(text string) *Spinner {
	text = s.finalText(text)
	s.Stop("")
	s.logger.Error(text)
	return s
}

func (s *Spinner) finalText(text string) string {
	if text != "" {
		return text
	}
	return s.Text()
}
