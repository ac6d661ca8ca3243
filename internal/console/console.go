// Package console plays the game over line-oriented input and output.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tatianab/print-shop/internal/engine"
	"github.com/tatianab/print-shop/internal/models"
)

// Console reads one command per line and prints plain text.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// ChooseLength asks for a game length until a valid choice is entered.
func (c *Console) ChooseLength(content *models.Content) (models.LengthSpec, error) {
	for {
		fmt.Fprintln(c.out, "Choose the length of the game:")
		for _, l := range content.Lengths {
			fmt.Fprintf(c.out, "  %d. %s (%d minutes)\n", l.Choice, l.Label, l.Minutes)
		}
		line, err := c.readLine("> ")
		if err != nil {
			return models.LengthSpec{}, err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(c.out, "%q is not a number.\n", line)
			continue
		}
		if l, ok := content.Length(choice); ok {
			return l, nil
		}
		fmt.Fprintf(c.out, "There is no option %d.\n", choice)
	}
}

// Play runs the turn loop until the session ends or input runs out. It
// returns the final outcome; Playing means the input ended first.
func (c *Console) Play(eng *engine.Engine) (engine.Outcome, error) {
	for {
		prompt := "> "
		if eng.Prompting() {
			prompt = eng.Prompt() + "\n"
		} else {
			fmt.Fprintln(c.out)
			for _, l := range eng.Look() {
				fmt.Fprintln(c.out, l)
			}
		}

		line, err := c.readLine(prompt)
		if errors.Is(err, io.EOF) {
			return engine.Playing, nil
		}
		if err != nil {
			return engine.Playing, err
		}

		turn, err := eng.Handle(line)
		if err != nil {
			return turn.Outcome, err
		}
		for _, l := range turn.Lines {
			fmt.Fprintln(c.out, l)
		}
		if turn.Outcome != engine.Playing {
			return turn.Outcome, nil
		}
	}
}

func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}
