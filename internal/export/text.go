package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/learngrid/learngrid/internal/quiz"
)

func writeText(w io.Writer, doc *Document) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Learning Path for %s\n", doc.Skill)

	for mi, m := range doc.Modules {
		fmt.Fprintf(&b, "\n%d. %s\n", mi+1, m.Title)
		for _, st := range m.Subtopics {
			fmt.Fprintf(&b, "   - %s\n", st.Title)
			for _, l := range st.Links {
				fmt.Fprintf(&b, "       %s: %s\n", l.Label, l.URL)
			}
			if st.Quiz != nil {
				writeTextQuiz(&b, st.Quiz)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTextQuiz(b *strings.Builder, q *QuizEntry) {
	if q.Error != "" {
		fmt.Fprintf(b, "       Quiz: %s%s\n", quiz.FailurePrefix, q.Error)
		return
	}
	fmt.Fprintf(b, "       Quiz: %s\n", q.Question)
	for i, opt := range q.Options {
		fmt.Fprintf(b, "         %d) %s\n", i+1, opt)
	}
	fmt.Fprintf(b, "         Answer: %s\n", q.Answer)
}

func writeMarkdown(w io.Writer, doc *Document) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Learning Path for %s\n", doc.Skill)

	for mi, m := range doc.Modules {
		fmt.Fprintf(&b, "\n## %d. %s\n", mi+1, m.Title)
		for _, st := range m.Subtopics {
			fmt.Fprintf(&b, "\n### %s\n\n", st.Title)
			for _, l := range st.Links {
				fmt.Fprintf(&b, "- [%s](%s)\n", l.Label, l.URL)
			}
			if st.Quiz == nil {
				continue
			}
			if st.Quiz.Error != "" {
				fmt.Fprintf(&b, "\n> %s%s\n", quiz.FailurePrefix, st.Quiz.Error)
				continue
			}
			fmt.Fprintf(&b, "\n**Quiz:** %s\n\n", st.Quiz.Question)
			for i, opt := range st.Quiz.Options {
				fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
			}
			fmt.Fprintf(&b, "\n<details><summary>Answer</summary>%s</details>\n", st.Quiz.Answer)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
