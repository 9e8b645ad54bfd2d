package util

import (
	"github.com/pborman/ansi"
)

// TailBuffer keeps only the last Size bytes written to it.
type TailBuffer struct {
	Size      int
	buf       []byte
	truncated bool
}

func NewTailBuffer(size int) *TailBuffer {
	return &TailBuffer{Size: size}
}

func (self *TailBuffer) Write(p []byte) (int, error) {
	n := len(p)
	self.buf = append(self.buf, p...)
	if over := len(self.buf) - self.Size; over > 0 {
		self.buf = append(self.buf[:0], self.buf[over:]...)
		self.truncated = true
	}
	return n, nil
}

func (self *TailBuffer) Truncated() bool {
	return self.truncated
}

func (self *TailBuffer) Bytes() []byte {
	return self.buf
}

// CleanOutput strips ANSI escape sequences from process output.
// Output that cannot be parsed is returned unchanged.
func CleanOutput(b []byte) string {
	if sane, err := ansi.Strip(b); err == nil {
		return string(sane)
	}
	return string(b)
}
