// Package hud implements the blocking "busy" indicator shown while the
// sign-in chain talks to the network.
//
// There is one indicator per process (see Default). On a terminal it draws a
// spinner on a single line and wipes it on Hide; on anything else (pipes,
// files, tests) it only tracks state.
package hud

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

const frameInterval = 120 * time.Millisecond

type HUD struct {
	w       io.Writer
	label   string
	animate bool

	mu    sync.Mutex
	shown bool
	stop  chan struct{}
	done  chan struct{}
}

var (
	defaultOnce sync.Once
	defaultHUD  *HUD
)

// Default returns the process-wide indicator drawing on stderr.
func Default() *HUD {
	defaultOnce.Do(func() {
		defaultHUD = New(os.Stderr, "working")
	})
	return defaultHUD
}

// New builds an indicator writing to w. The spinner is only animated when w
// is a terminal.
func New(w io.Writer, label string) *HUD {
	return &HUD{w: w, label: label, animate: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Show makes the indicator visible. Showing an already visible indicator is
// a no-op.
func (h *HUD) Show() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.shown {
		return
	}
	h.shown = true

	if !h.animate {
		return
	}
	h.stop = make(chan struct{})
	h.done = make(chan struct{})
	go h.spin(h.stop, h.done)
}

// Hide removes the indicator. Hiding a hidden indicator is a no-op.
func (h *HUD) Hide() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.shown {
		return
	}
	h.shown = false

	if h.stop == nil {
		return
	}
	close(h.stop)
	<-h.done
	h.stop, h.done = nil, nil
}

// Shown reports whether the indicator is visible.
func (h *HUD) Shown() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.shown
}

func (h *HUD) spin(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		fmt.Fprintf(h.w, "\r%s %s...", spinnerFrames[i%len(spinnerFrames)], h.label)
		select {
		case <-stop:
			fmt.Fprint(h.w, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}
