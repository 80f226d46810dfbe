package cli

import (
	"bytes"
	"sync"

	"github.com/agbru/colorize/internal/ui"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine and the test
// goroutine, counting Write calls.
type syncBuffer struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	writes int
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writes++
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
	b.writes = 0
}

// recordingObserver counts notifications and signals spinner ticks.
type recordingObserver struct {
	mu       sync.Mutex
	messages map[ui.Category]int
	progress int
	ticks    chan struct{}
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{
		messages: make(map[ui.Category]int),
		ticks:    make(chan struct{}, 64),
	}
}

func (o *recordingObserver) MessageWritten(c ui.Category) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages[c]++
}

func (o *recordingObserver) ProgressRendered() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress++
}

func (o *recordingObserver) SpinnerTicked() {
	o.ticks <- struct{}{}
}

func (o *recordingObserver) count(c ui.Category) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.messages[c]
}

// newTestLogger returns a logger over a private registry writing to a buffer.
func newTestLogger(opts ...Option) (*Logger, *syncBuffer) {
	buf := &syncBuffer{}
	base := []Option{WithOutput(buf), WithRegistry(ui.NewRegistry())}
	return New(append(base, opts...)...), buf
}
