package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/learngrid/learngrid/internal/api"
	"github.com/learngrid/learngrid/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer one quiz question on a topic",
	Long: `Fetch a single multiple-choice question for a topic and answer it
on the command line, by option number or by typing the option.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		_, client, cleanup, err := setup(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		return runQuiz(cmd.Context(), client, topic, os.Stdin, os.Stdout)
	},
}

func init() {
	quizCmd.Flags().String("topic", "", "Topic to be quizzed on (required)")
	_ = quizCmd.MarkFlagRequired("topic")
}

// runQuiz drives a quiz.Modal from line input: one question, one
// accepted answer.
func runQuiz(ctx context.Context, client api.Client, topic string, in io.Reader, out io.Writer) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return errors.New("topic must not be empty")
	}

	var m quiz.Modal
	req := m.Open(topic)
	fmt.Fprintln(out, m.Label())
	fmt.Fprintln(out, m.Question)

	q, err := client.Quiz(ctx, req.Topic)
	m.Resolve(req.Seq, q, err)
	if m.Phase == quiz.PhaseFailed {
		return errors.New(m.Question)
	}

	fmt.Fprintf(out, "\n%s\n", m.Question)
	for i, opt := range m.Options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
	}

	scanner := bufio.NewScanner(in)
	for !m.Answered() {
		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			return fmt.Errorf("no answer given: %w", io.ErrUnexpectedEOF)
		}

		idx, ok := parseChoice(strings.TrimSpace(scanner.Text()), m.Options)
		if !ok {
			fmt.Fprintf(out, "Enter a number from 1 to %d or one of the options.\n", len(m.Options))
			continue
		}
		m.SelectIndex(idx)
	}

	fmt.Fprintln(out, m.Feedback)
	return nil
}

// parseChoice accepts a 1-based option number or the option text.
func parseChoice(input string, options []string) (int, bool) {
	if input == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}
	for i, opt := range options {
		if strings.EqualFold(opt, input) {
			return i, true
		}
	}
	return 0, false
}
