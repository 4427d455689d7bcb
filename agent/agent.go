// Package agent implements a Gemini powered analyst commenting asset profiles.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the chat session between the user and the analyst.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Expert
	// Print writes a markdown answer, verbatim when nil.
	Print func(w io.Writer, markdown string)
}

// New creates a new Agent reading the user's questions from r and writing the
// answers to w.
func New(w io.Writer, r io.Reader, analyst *Expert) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Analyst: analyst,
	}
}

const prompt = "assist> "

// Run sends the prompts to the analyst, then reads more questions until the
// user types 'bye' or closes the input. With interactive false it returns
// once the prompts are answered.
func (a *Agent) Run(ctx context.Context, client *genai.Client, interactive bool, prompts ...string) error {
	if !a.Analyst.Started() {
		if err := a.Analyst.Start(ctx, client); err != nil {
			return err
		}
	}
	if interactive {
		fmt.Fprintln(a.w, "Type 'bye' to exit.")
	}

	for {
		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
		} else {
			if !interactive {
				return nil
			}
			fmt.Fprint(a.w, prompt)
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil && err != io.EOF {
				return err
			}
			if err == io.EOF && strings.TrimSpace(input) == "" {
				return nil // Clean exit on Ctrl+D
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Analyst.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.print(Text(content))
	}
}

func (a *Agent) print(markdown string) {
	if a.Print != nil {
		a.Print(a.w, markdown)
		return
	}
	fmt.Fprintln(a.w, markdown)
}
