package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type answer struct {
	line string
	err  error
}

// promptConfirmer asks on the terminal before the wallet signs anything.
// A single goroutine owns the input, so a prompt abandoned on cancellation
// leaves the next line to the next prompt.
type promptConfirmer struct {
	mu     sync.Mutex
	start  sync.Once
	reader *bufio.Reader
	out    io.Writer
	lines  chan answer
}

func newPromptConfirmer(in io.Reader, out io.Writer) *promptConfirmer {
	return &promptConfirmer{
		reader: bufio.NewReader(in),
		out:    out,
		lines:  make(chan answer),
	}
}

func (p *promptConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.start.Do(func() { go p.readLines() })

	fmt.Fprintf(p.out, "%s [y/N] ", prompt)

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a, ok := <-p.lines:
		if !ok {
			return false, nil
		}
		if a.err != nil {
			return false, fmt.Errorf("read answer: %w", a.err)
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	}
}

// readLines feeds every input line to lines and closes it at end of input.
func (p *promptConfirmer) readLines() {
	defer close(p.lines)
	for {
		line, err := p.reader.ReadString('\n')
		if err == io.EOF {
			if line != "" {
				p.lines <- answer{line: line}
			}
			return
		}
		p.lines <- answer{line: line, err: err}
		if err != nil {
			return
		}
	}
}
