// Package spinner shows a progress indicator on a terminal while a source is
// being fetched.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var frames = []string{"◜", "◠", "◝", "◞", "◡", "◟"}

var frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

// Spinner animates a frame and a message on a single line.
type Spinner struct {
	writer  io.Writer
	delay   time.Duration
	message string

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start begins animating message on w and returns the running spinner.
// Writers that are not terminals get nothing written to them, so redirected
// output stays clean. Stop must be called to clear the line.
func Start(ctx context.Context, w io.Writer, message string) *Spinner {
	return start(ctx, w, message, isTerminal(w))
}

func start(ctx context.Context, w io.Writer, message string, animate bool) *Spinner {
	s := &Spinner{
		writer:  w,
		delay:   100 * time.Millisecond,
		message: message,
		done:    make(chan struct{}),
	}
	if !animate {
		close(s.done)
		return s
	}

	ctx, s.cancel = context.WithCancel(ctx)
	go s.run(ctx)
	return s
}

// Stop ends the animation and clears the line. It is safe to call more than
// once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		if s.cancel == nil {
			return
		}
		s.cancel()
		<-s.done
		fmt.Fprint(s.writer, "\r\033[2K")
	})
}

func (s *Spinner) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for i := 0; ; i++ {
		frame := frameStyle.Render(frames[i%len(frames)])
		fmt.Fprintf(s.writer, "\r%s %s", frame, s.message)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
