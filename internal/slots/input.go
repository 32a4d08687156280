package slots

import (
	"bufio"
	"context"
	"io"
)

// MaxInputLineBytes bounds one player answer. Longer lines are drained and
// read as a decline.
const MaxInputLineBytes = 1024

type lineResult struct {
	line    string
	tooLong bool
	err     error
}

// lineReader reads player answers one line at a time without blocking
// cancellation.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(in)}
}

// next returns the next line, or ctx.Err() as soon as ctx is done. The read
// itself keeps running in the background until the underlying reader returns;
// the reader must not be used after a cancelled call.
func (lr *lineReader) next(ctx context.Context) lineResult {
	ch := make(chan lineResult, 1)
	go func() {
		ch <- lr.readLine()
	}()

	select {
	case <-ctx.Done():
		return lineResult{err: ctx.Err()}
	case res := <-ch:
		return res
	}
}

// readLine drains one full line, keeping at most MaxInputLineBytes of it.
// A final line without a newline is returned before io.EOF.
func (lr *lineReader) readLine() lineResult {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := lr.r.ReadLine()
		if err != nil {
			return lineResult{err: err}
		}
		if !tooLong && len(buf)+len(chunk) <= MaxInputLineBytes {
			buf = append(buf, chunk...)
		} else {
			tooLong = true
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return lineResult{tooLong: true}
	}
	return lineResult{line: string(buf)}
}
