package input

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// MaxLineSize is the longest line we keep. Longer lines can not be a sample
// and are dropped whole.
const MaxLineSize = 64 * 1024

// ReaderSession reads lines from an io.Reader, such as os.Stdin.
type ReaderSession struct {
	r io.Reader
}

// NewReaderSession creates a session reading from r.
func NewReaderSession(r io.Reader) *ReaderSession {
	return &ReaderSession{r: r}
}

// Start implements Session.
func (s *ReaderSession) Start(ctx context.Context, lines chan<- string) error {
	reader := bufio.NewReaderSize(s.r, MaxLineSize)

	// set while we are inside a line that overflowed the buffer
	var dropping bool

	for {
		chunk, err := reader.ReadSlice('\n')

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			dropping = true
			continue

		case err != nil && !errors.Is(err, io.EOF):
			return errors.Wrap(err, "failed to read input")
		}

		if !dropping && len(chunk) > 0 {
			line := strings.TrimRight(string(chunk), "\r\n")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case lines <- line:
			}
		}

		dropping = false

		if err != nil {
			return nil
		}
	}
}
