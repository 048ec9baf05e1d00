package app

import (
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2/data/binding"
)

const (
	logDebounceInterval = 150 * time.Millisecond
	maxLogLines         = 200
)

// logPane is an io.Writer that keeps the last maxLogLines log lines and
// pushes them to a string binding at most once per debounce interval.
type logPane struct {
	bind     binding.String
	mu       sync.Mutex
	lines    []string
	updateCh chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newLogPane(bind binding.String) *logPane {
	p := &logPane{
		bind:     bind,
		updateCh: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go p.updateLoop()
	return p
}

func (p *logPane) Write(b []byte) (int, error) {
	text := strings.TrimRight(string(b), "\n")
	if text == "" {
		return len(b), nil
	}
	p.mu.Lock()
	p.lines = append(p.lines, strings.Split(text, "\n")...)
	if len(p.lines) > maxLogLines {
		p.lines = p.lines[len(p.lines)-maxLogLines:]
	}
	p.mu.Unlock()

	select {
	case p.updateCh <- struct{}{}:
	default:
	}
	return len(b), nil
}

// Sync flushes pending lines to the binding immediately.
func (p *logPane) Sync() error {
	p.flush()
	return nil
}

func (p *logPane) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return strings.Join(p.lines, "\n")
}

func (p *logPane) Stop() {
	p.stopOnce.Do(func() { close(p.done) })
}

func (p *logPane) updateLoop() {
	timer := time.NewTimer(logDebounceInterval)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-p.done:
			timer.Stop()
			return
		case <-p.updateCh:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(logDebounceInterval)
		case <-timer.C:
			p.flush()
		}
	}
}

func (p *logPane) flush() {
	_ = p.bind.Set(p.Text())
}
