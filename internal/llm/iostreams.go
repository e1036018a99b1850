package llm

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// IOStreams abstracts standard I/O so the chat loop can be driven by tests
// and so TTY detection can be faked for non-interactive scenarios.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	isTerminalFunc func(fd int) bool
	stdinFd        int
}

// NewIOStreams returns IOStreams connected to the process's stdin, stdout
// and stderr.
func NewIOStreams() *IOStreams {
	return &IOStreams{
		In:             os.Stdin,
		Out:            os.Stdout,
		ErrOut:         os.Stderr,
		isTerminalFunc: term.IsTerminal,
		stdinFd:        int(os.Stdin.Fd()),
	}
}

// IsInteractive reports whether stdin is a terminal. The chat command
// checks this before starting its loop; piped input should go through a
// one-shot completion instead.
func (s *IOStreams) IsInteractive() bool {
	if s.isTerminalFunc == nil {
		return false
	}
	return s.isTerminalFunc(s.stdinFd)
}

// TestIOStreams returns in-memory streams that simulate a TTY, plus the
// input and output buffers for assertions.
func TestIOStreams() (*IOStreams, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	return &IOStreams{
		In:             in,
		Out:            out,
		ErrOut:         out,
		isTerminalFunc: func(int) bool { return true },
		stdinFd:        0,
	}, in, out
}

// TestIOStreamsNonInteractive is TestIOStreams for piped input (no TTY).
func TestIOStreamsNonInteractive() (*IOStreams, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	return &IOStreams{
		In:             in,
		Out:            out,
		ErrOut:         out,
		isTerminalFunc: func(int) bool { return false },
		stdinFd:        0,
	}, in, out
}
