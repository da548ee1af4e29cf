package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	roadmapSheet = "Roadmap"
	quizSheet    = "Quiz"
)

func writeXLSX(w io.Writer, doc *Document) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", roadmapSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	if err := writeRoadmapSheet(f, doc, header); err != nil {
		return err
	}
	if doc.HasQuizzes() {
		if err := writeQuizSheet(f, doc, header); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeHeader(f *excelize.File, sheet string, cols []any, style int) error {
	if err := writeRow(f, sheet, 1, cols); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(cols), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeRoadmapSheet(f *excelize.File, doc *Document, header int) error {
	if err := writeHeader(f, roadmapSheet, []any{"Skill", "Module", "Subtopic", "Platform", "Link"}, header); err != nil {
		return fmt.Errorf("roadmap header: %w", err)
	}

	row := 2
	for _, m := range doc.Modules {
		for _, st := range m.Subtopics {
			if len(st.Links) == 0 {
				if err := writeRow(f, roadmapSheet, row, []any{doc.Skill, m.Title, st.Title}); err != nil {
					return fmt.Errorf("roadmap row %d: %w", row, err)
				}
				row++
				continue
			}
			for _, l := range st.Links {
				if err := writeRow(f, roadmapSheet, row, []any{doc.Skill, m.Title, st.Title, l.Label, l.URL}); err != nil {
					return fmt.Errorf("roadmap row %d: %w", row, err)
				}
				cell, _ := excelize.CoordinatesToCellName(5, row)
				if err := f.SetCellHyperLink(roadmapSheet, cell, l.URL, "External"); err != nil {
					return fmt.Errorf("link %s: %w", cell, err)
				}
				row++
			}
		}
	}

	if err := f.SetColWidth(roadmapSheet, "B", "C", 32); err != nil {
		return err
	}
	return f.SetColWidth(roadmapSheet, "E", "E", 64)
}

func writeQuizSheet(f *excelize.File, doc *Document, header int) error {
	if _, err := f.NewSheet(quizSheet); err != nil {
		return fmt.Errorf("quiz sheet: %w", err)
	}
	if err := writeHeader(f, quizSheet, []any{"Module", "Subtopic", "Question", "Options", "Answer", "Error"}, header); err != nil {
		return fmt.Errorf("quiz header: %w", err)
	}

	row := 2
	for _, m := range doc.Modules {
		for _, st := range m.Subtopics {
			q := st.Quiz
			if q == nil {
				continue
			}
			values := []any{m.Title, st.Title, q.Question, strings.Join(q.Options, "\n"), q.Answer, q.Error}
			if err := writeRow(f, quizSheet, row, values); err != nil {
				return fmt.Errorf("quiz row %d: %w", row, err)
			}
			row++
		}
	}
	return f.SetColWidth(quizSheet, "C", "C", 60)
}
