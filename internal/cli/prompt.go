package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// terminalOperator asks questions on a line-oriented terminal.
type terminalOperator struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalOperator(in io.Reader, out io.Writer) *terminalOperator {
	return &terminalOperator{in: bufio.NewReader(in), out: out}
}

// readLine prints prompt and returns the next input line, trimmed.
// A final line without a newline is still returned; running out of input is an error.
func (o *terminalOperator) readLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(o.out, prompt)
	line, err := o.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm prompts the user for a yes/no answer until one is given.
func (o *terminalOperator) Confirm(question string) (bool, error) {
	_, _ = fmt.Fprintln(o.out)
	for {
		answer, err := o.readLine(question + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		PrintWarning(o.out, "Please answer yes or no.")
	}
}

func (o *terminalOperator) Ask(prompt, retry string) (string, error) {
	for {
		answer, err := o.readLine(prompt)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		PrintWarning(o.out, retry)
	}
}

func (o *terminalOperator) AskOptional(prompt string) (string, error) {
	return o.readLine(prompt)
}

func (o *terminalOperator) AskNumber(prompt, retry string) (int, error) {
	for {
		answer, err := o.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if isDigits(answer) {
			if n, err := strconv.Atoi(answer); err == nil {
				return n, nil
			}
		}
		PrintWarning(o.out, retry)
	}
}

func (o *terminalOperator) Info(msg string)    { PrintInfo(o.out, msg) }
func (o *terminalOperator) Success(msg string) { PrintSuccess(o.out, msg) }
func (o *terminalOperator) Warn(msg string)    { PrintWarning(o.out, msg) }

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
