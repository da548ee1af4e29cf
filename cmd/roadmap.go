package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/learngrid/learngrid/internal/api"
	"github.com/learngrid/learngrid/internal/config"
	"github.com/learngrid/learngrid/internal/export"
	"github.com/learngrid/learngrid/internal/roadmap"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a roadmap and write it as text, Markdown, JSON or Excel",
	Long: `Fetch a learning roadmap for a skill without starting the TUI.

The format defaults to text, or is taken from the --out extension
(.txt, .md, .json, .xlsx). With --quizzes one quiz per subtopic is
fetched as well; a quiz that fails to load is noted in the output.`,
	RunE: runRoadmap,
}

func init() {
	roadmapCmd.Flags().String("skill", "", "Skill to build a roadmap for (required)")
	roadmapCmd.Flags().String("format", "", "Output format: text, markdown, json or xlsx")
	roadmapCmd.Flags().StringP("out", "o", "", "Write to this file instead of stdout")
	roadmapCmd.Flags().Bool("quizzes", false, "Fetch a quiz for every subtopic")
	roadmapCmd.Flags().Int("concurrency", config.DefaultConcurrency, "Maximum parallel quiz requests")
	_ = roadmapCmd.MarkFlagRequired("skill")
}

type exportOptions struct {
	Skill       string
	Format      export.Format
	Quizzes     bool
	Concurrency int
}

func runRoadmap(cmd *cobra.Command, args []string) error {
	skill, _ := cmd.Flags().GetString("skill")
	formatVal, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	quizzes, _ := cmd.Flags().GetBool("quizzes")

	format, err := resolveFormat(formatVal, out)
	if err != nil {
		return err
	}
	if format == export.FormatXLSX && out == "" {
		return errors.New("xlsx output needs --out")
	}

	cfg, client, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := writeRoadmap(cmd.Context(), client, exportOptions{
		Skill:       skill,
		Format:      format,
		Quizzes:     quizzes,
		Concurrency: cfg.Concurrency,
	}, out, os.Stdout); err != nil {
		return err
	}

	if out != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s roadmap for %q to %s\n", format, strings.TrimSpace(skill), out)
	}
	return nil
}

func resolveFormat(flagVal, out string) (export.Format, error) {
	if flagVal != "" {
		return export.ParseFormat(flagVal)
	}
	if f, ok := export.FormatForPath(out); ok {
		return f, nil
	}
	return export.FormatText, nil
}

// writeRoadmap renders the export in memory and only then writes it to
// path, or to stdout when path is empty. A failed fetch leaves no file.
func writeRoadmap(ctx context.Context, client api.Client, opts exportOptions, path string, stdout io.Writer) error {
	var buf bytes.Buffer
	if err := exportRoadmap(ctx, client, opts, &buf); err != nil {
		return err
	}

	if path == "" {
		_, err := buf.WriteTo(stdout)
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// exportRoadmap fetches one roadmap, optionally its quizzes, and writes it.
func exportRoadmap(ctx context.Context, client api.Client, opts exportOptions, w io.Writer) error {
	var state roadmap.State
	req, ok := state.Submit(opts.Skill)
	if !ok {
		return errors.New("skill must not be empty")
	}

	rm, err := client.Roadmap(ctx, req.Skill)
	state.Resolve(req.Seq, rm, err)
	if state.Status == roadmap.StatusFailed {
		return errors.New(state.Err)
	}

	doc := export.Build(rm)
	if opts.Quizzes {
		if err := export.FetchQuizzes(ctx, client, doc, opts.Concurrency); err != nil {
			return fmt.Errorf("fetch quizzes: %w", err)
		}
	}
	return export.Write(w, doc, opts.Format)
}
