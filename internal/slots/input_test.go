package slots

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_ReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []lineResult
	}{
		{"plain lines", "y\nn\n", []lineResult{{line: "y"}, {line: "n"}}},
		{"crlf", "yes\r\n", []lineResult{{line: "yes"}}},
		{"final line without newline", "y", []lineResult{{line: "y"}}},
		{"empty line", "\n", []lineResult{{line: ""}}},
		{"at limit", strings.Repeat("a", MaxInputLineBytes) + "\n", []lineResult{{line: strings.Repeat("a", MaxInputLineBytes)}}},
		{"over limit then next line", strings.Repeat("a", MaxInputLineBytes+1) + "\ny\n", []lineResult{{tooLong: true}, {line: "y"}}},
		{"far over buffer size", strings.Repeat("n", 70000) + "\ny\n", []lineResult{{tooLong: true}, {line: "y"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := newLineReader(strings.NewReader(tt.input))
			for _, want := range tt.want {
				assert.Equal(t, want, lr.readLine())
			}
			assert.ErrorIs(t, lr.readLine().err, io.EOF)
		})
	}
}

func TestLineReader_NextHonoursCancellation(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := newLineReader(pr).next(ctx)
	require.ErrorIs(t, res.err, context.Canceled)
	assert.Empty(t, res.line)
}
