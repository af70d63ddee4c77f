// Package export renders task lists as csv, json, yaml or pdf documents.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/view"
)

// Format names an export document type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatPDF  Format = "pdf"
)

// CSVHeader is the first row of a csv export.
var CSVHeader = []string{"ID", "Text", "Completed", "Created At"}

// ParseFormat parses a format name case-insensitively. "yml" is accepted for
// yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatYAML, FormatPDF:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.NewInvalidInputError("format", s, "must be csv, json, yaml or pdf")
	}
}

// Options tunes the rendered documents.
type Options struct {
	// PDFFont is a TrueType font file used for pdf text. Without it pdf text
	// is limited to the cp1252 character set and other characters print as
	// dots.
	PDFFont string
}

// Render returns the tasks as a document in the given format.
func Render(tasks []domain.Task, format Format, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, tasks, format, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes the tasks to w as a document in the given format.
func Write(w io.Writer, tasks []domain.Task, format Format, opts Options) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, tasks)
	case FormatJSON:
		return writeJSON(w, tasks)
	case FormatYAML:
		return writeYAML(w, tasks)
	case FormatPDF:
		return writePDF(w, tasks, opts.PDFFont)
	default:
		return errors.NewInvalidInputError("format", string(format), "unsupported export format")
	}
}

func records(tasks []domain.Task) []domain.Record {
	mapper := domain.NewTaskMapper()
	return mapper.ToRecordSlice(tasks)
}

func writeCSV(w io.Writer, tasks []domain.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records(tasks) {
		if err := cw.Write([]string{r.ID, r.Text, strconv.FormatBool(r.Completed), r.CreatedAt}); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, tasks []domain.Task) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records(tasks)); err != nil {
		return fmt.Errorf("encode json export: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, tasks []domain.Task) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(tasks)); err != nil {
		return fmt.Errorf("encode yaml export: %w", err)
	}
	return enc.Close()
}

const pdfFontFamily = "tasks"

func writePDF(w io.Writer, tasks []domain.Task, fontFile string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	family := "Arial"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if fontFile != "" {
		pdf.AddUTF8Font(pdfFontFamily, "", fontFile)
		pdf.AddUTF8Font(pdfFontFamily, "B", fontFile)
		family = pdfFontFamily
		tr = func(s string) string { return s }
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("load pdf font %s: %w", fontFile, err)
	}
	pdf.SetTitle("Task List", true)
	pdf.AddPage()

	pdf.SetFont(family, "B", 14)
	pdf.Cell(40, 10, "Task List")
	pdf.Ln(12)

	s := view.Summarize(tasks)
	pdf.SetFont(family, "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %d  Active: %d  Completed: %d", s.Total, s.Active, s.Completed))
	pdf.Ln(10)

	pdf.SetFont(family, "", 10)
	for _, task := range tasks {
		line := fmt.Sprintf("%s %s  (%s)", task.Checkbox(), task.Text, task.CreatedAt.Local().Format(time.DateTime))
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf export: %w", err)
	}
	return nil
}
