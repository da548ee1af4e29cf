// Package export renders a fetched roadmap to files: plain text,
// Markdown, JSON or an Excel workbook.
package export

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/learngrid/learngrid/internal/api"
	"github.com/learngrid/learngrid/internal/resources"
)

// Format selects the output encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatXLSX     Format = "xlsx"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatJSON, FormatXLSX}
}

// ParseFormat accepts a format name, case-insensitively. "md" is an
// alias for markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatMarkdown, FormatJSON, FormatXLSX:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, markdown, json or xlsx)", s)
}

// FormatForPath guesses the format from a file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FormatText, true
	case ".md", ".markdown":
		return FormatMarkdown, true
	case ".json":
		return FormatJSON, true
	case ".xlsx":
		return FormatXLSX, true
	}
	return "", false
}

// Document is a roadmap with its links resolved and, optionally, one
// quiz per subtopic.
type Document struct {
	Skill   string   `json:"skill"`
	Modules []Module `json:"modules"`
}

type Module struct {
	Title     string     `json:"title"`
	Subtopics []Subtopic `json:"subtopics"`
}

type Subtopic struct {
	Title string     `json:"title"`
	Links []Link     `json:"links"`
	Quiz  *QuizEntry `json:"quiz,omitempty"`
}

type Link struct {
	Platform string `json:"platform"`
	Label    string `json:"label"`
	URL      string `json:"url"`
}

// QuizEntry is the outcome of one quiz fetch. Error holds the
// user-facing message when the fetch failed.
type QuizEntry struct {
	Question string   `json:"question,omitempty"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Build converts a roadmap into a Document, keeping server order and
// dropping links for unknown platforms.
func Build(rm *api.Roadmap) *Document {
	doc := &Document{Skill: rm.Skill, Modules: make([]Module, 0, len(rm.Modules))}
	for _, m := range rm.Modules {
		mod := Module{Title: m.Title, Subtopics: make([]Subtopic, 0, len(m.Subtopics))}
		for _, st := range m.Subtopics {
			sub := Subtopic{Title: st.Title, Links: []Link{}}
			for _, l := range resources.ForSubtopic(st.Resources) {
				sub.Links = append(sub.Links, Link(l))
			}
			mod.Subtopics = append(mod.Subtopics, sub)
		}
		doc.Modules = append(doc.Modules, mod)
	}
	return doc
}

// HasQuizzes reports whether any subtopic carries a quiz entry.
func (d *Document) HasQuizzes() bool {
	for _, m := range d.Modules {
		for _, st := range m.Subtopics {
			if st.Quiz != nil {
				return true
			}
		}
	}
	return false
}

// FetchQuizzes fetches a quiz for every subtopic with at most
// concurrency requests in flight. Subtopics sharing a title share one
// in-flight request. A failed fetch is recorded on its subtopic; only
// cancellation of ctx aborts the whole run.
func FetchQuizzes(ctx context.Context, client api.Client, doc *Document, concurrency int) error {
	if concurrency < 1 {
		concurrency = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var sf singleflight.Group
	for mi := range doc.Modules {
		for si := range doc.Modules[mi].Subtopics {
			st := &doc.Modules[mi].Subtopics[si]
			g.Go(func() error {
				v, err, _ := sf.Do(st.Title, func() (any, error) {
					return client.Quiz(gctx, st.Title)
				})
				if gctx.Err() != nil {
					return gctx.Err()
				}
				if err != nil {
					st.Quiz = &QuizEntry{Error: api.Message(err)}
					return nil
				}
				q, _ := v.(*api.Quiz)
				if q == nil {
					st.Quiz = &QuizEntry{Error: api.FallbackMessage}
					return nil
				}
				st.Quiz = &QuizEntry{
					Question: q.Question,
					Options:  append([]string(nil), q.Options...),
					Answer:   q.Answer,
				}
				return nil
			})
		}
	}
	return g.Wait()
}

// Write encodes doc to w in format f.
func Write(w io.Writer, doc *Document, f Format) error {
	switch f {
	case FormatText:
		return writeText(w, doc)
	case FormatMarkdown:
		return writeMarkdown(w, doc)
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatXLSX:
		return writeXLSX(w, doc)
	}
	return fmt.Errorf("unknown format %q", f)
}
