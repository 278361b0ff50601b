// internal/console/console.go
//
// Line-oriented console I/O for the game session.
// Console reads one line per call from an io.Reader and prints strings
// verbatim to an io.Writer. The session never touches os.Stdin/os.Stdout
// directly, so tests can drive it with strings.Reader and bytes.Buffer.

package console

import (
	"bufio"
	"io"
)

// Console couples a line scanner with an output writer.
type Console struct {
	sc  *bufio.Scanner
	out io.Writer
}

// New wraps in and out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{sc: bufio.NewScanner(in), out: out}
}

// ReadLine blocks until a full line is available and returns it without
// the line terminator ("\n" or "\r\n").
// Returns io.EOF once the input is exhausted.
func (c *Console) ReadLine() (string, error) {
	if c.sc.Scan() {
		return c.sc.Text(), nil
	}
	if err := c.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Print writes s as-is; callers add their own newlines.
func (c *Console) Print(s string) error {
	_, err := io.WriteString(c.out, s)
	return err
}
