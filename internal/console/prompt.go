package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter asks questions on out and reads one answer per line from in.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter wraps the given input and output streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// ReadString prints msg and returns the next line as typed. It returns io.EOF
// once the input is exhausted.
func (p *Prompter) ReadString(msg string) (string, error) {
	if msg != "" {
		fmt.Fprintln(p.out, msg)
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// ReadInt prints msg and keeps asking until a whole number is entered.
func (p *Prompter) ReadInt(msg string) (int, error) {
	for {
		line, err := p.ReadString(msg)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, "Please enter a whole number.")
	}
}

// ReadDecimal prints msg and keeps asking until a decimal amount is entered.
// A comma is accepted as decimal separator.
func (p *Prompter) ReadDecimal(msg string) (decimal.Decimal, error) {
	for {
		line, err := p.ReadString(msg)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(line), ",", ".", 1))
		if err == nil {
			return d, nil
		}
		fmt.Fprintln(p.out, "Please enter an amount such as 12.50.")
	}
}
