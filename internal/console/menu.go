package console

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Menu prints a numbered list of options and reads the user's choice.
type Menu struct {
	header  string
	options []string
	prompt  *Prompter
	out     io.Writer
}

// NewMenu creates a menu; options are numbered from 1 in the given order.
func NewMenu(header string, prompt *Prompter, out io.Writer, options ...string) *Menu {
	return &Menu{
		header:  header,
		options: slices.Clone(options),
		prompt:  prompt,
		out:     out,
	}
}

// Choose prints the menu until a valid option number is entered.
func (m *Menu) Choose() (int, error) {
	for {
		if m.header != "" {
			fmt.Fprintln(m.out, m.header)
			fmt.Fprintln(m.out, strings.Repeat("-", len(m.header)))
		}
		for i, opt := range m.options {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, opt)
		}
		fmt.Fprintln(m.out)
		fmt.Fprintf(m.out, "Choose an option (1-%d): ", len(m.options))

		line, err := m.prompt.ReadString("")
		if err != nil {
			return 0, err
		}
		fmt.Fprintln(m.out)

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 1 && choice <= len(m.options) {
			return choice, nil
		}
		fmt.Fprintln(m.out, "Invalid option.")
		fmt.Fprintln(m.out)
	}
}

// Add appends an option at the end of the menu.
func (m *Menu) Add(option string) {
	m.options = append(m.options, option)
}

// LastOption returns the number of the final option.
func (m *Menu) LastOption() int {
	return len(m.options)
}
