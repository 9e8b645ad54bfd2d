package util

import (
	"bytes"
	"errors"
	"io"
	"os/exec"
	"sync"
)

// MaxLineSize is the longest line handed to onLine in one piece.
const MaxLineSize = 64 * 1024

// RunCombined runs cmd and collects stdout and stderr into one stream.
// Each line is also handed to onLine as it arrives, if set.
// The returned error is that of cmd.Wait, so a non-zero exit is an *exec.ExitError.
func RunCombined(cmd *exec.Cmd, output io.Writer, onLine func(string)) error {
	lines := &lineWriter{out: output, onLine: onLine}

	// The same writer for both makes exec share one pipe between them.
	cmd.Stdout = lines
	cmd.Stderr = lines

	err := cmd.Run()
	lines.Flush()

	// The script exited zero but something it left behind still held the output open.
	if errors.Is(err, exec.ErrWaitDelay) {
		return nil
	}
	return err
}

// ExitCode returns the exit code carried by err,
// 0 for nil and -1 if the process did not exit normally.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// lineWriter passes everything through to out
// and splits it into lines for onLine on the way.
// Lines longer than MaxLineSize are handed over in pieces.
type lineWriter struct {
	mutex   sync.Mutex
	out     io.Writer
	onLine  func(string)
	pending []byte
}

func (self *lineWriter) Write(p []byte) (int, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	if self.out != nil {
		if _, err := self.out.Write(p); err != nil {
			return 0, err
		}
	}
	if self.onLine == nil {
		return len(p), nil
	}

	self.pending = append(self.pending, p...)
	for {
		i := bytes.IndexByte(self.pending, '\n')
		switch {
		case i >= 0:
			self.emit(i, i+1)
		case len(self.pending) >= MaxLineSize:
			self.emit(MaxLineSize, MaxLineSize)
		default:
			return len(p), nil
		}
	}
}

func (self *lineWriter) emit(end, next int) {
	self.onLine(string(self.pending[:end]))
	self.pending = append(self.pending[:0], self.pending[next:]...)
}

// Flush hands over a last line that did not end in a newline.
func (self *lineWriter) Flush() {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	if self.onLine != nil && len(self.pending) > 0 {
		self.onLine(string(self.pending))
	}
	self.pending = nil
}
