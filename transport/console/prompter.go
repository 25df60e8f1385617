package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Prompter writes questions and reads answer lines. Reading happens in one goroutine so Ask can give up on ctx.
type Prompter struct {
	out io.Writer

	lines   chan string
	readErr error
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	prompter := &Prompter{
		out:   out,
		lines: make(chan string),
	}

	go prompter.readLines(in)

	return prompter
}

func (that *Prompter) readLines(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		that.lines <- scanner.Text()
	}

	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}

	// written before close, read only after the channel is drained
	that.readErr = err
	close(that.lines)
}

// Ask prints question without a newline and waits for the next input line.
func (that *Prompter) Ask(ctx context.Context, question string) (string, error) {
	if _, err := fmt.Fprint(that.out, question); err != nil {
		return "", fmt.Errorf("failed to write question: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", that.readErr
		}

		return line, nil
	}
}

func (that *Prompter) Say(msg string) {
	fmt.Fprintln(that.out, msg)
}
