package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// ReportWriter is the interface for writing position reports.
// Different implementations handle different output formats.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error
}

// TextWriter writes reports as ASCII diagrams with status lines.
type TextWriter struct {
	w io.Writer
}

// WriteReport writes the report as text.
func (tw *TextWriter) WriteReport(r *Report) error {
	return WriteText(tw.w, r)
}

// JSONWriter writes reports as indented JSON objects.
type JSONWriter struct {
	w io.Writer
}

// WriteReport writes the report as JSON.
func (jw *JSONWriter) WriteReport(r *Report) error {
	return WriteJSON(jw.w, r)
}

// SVGWriter writes the report's board as an SVG diagram, highlighting the
// engine move if there is one.
type SVGWriter struct {
	w          io.Writer
	squareSize int
}

// WriteReport writes the board as SVG.
func (sw *SVGWriter) WriteReport(r *Report) error {
	var highlight engine.Move
	if r.Engine != nil {
		highlight = r.Engine.Move
	}
	return WriteSVG(sw.w, r.Board, sw.squareSize, highlight)
}

// FENWriter writes the report's board as a single FEN line.
type FENWriter struct {
	w io.Writer
}

// WriteReport writes the FEN of the board.
func (fw *FENWriter) WriteReport(r *Report) error {
	_, err := fmt.Fprintln(fw.w, engine.BoardToFEN(r.Board))
	return err
}

// NewReportWriter returns the writer for the configured output format,
// writing to w.
func NewReportWriter(w io.Writer, cfg *config.OutputConfig) ReportWriter {
	switch cfg.Format {
	case config.JSON:
		return &JSONWriter{w: w}
	case config.SVG:
		return &SVGWriter{w: w, squareSize: cfg.SquareSize}
	case config.FEN:
		return &FENWriter{w: w}
	default:
		return &TextWriter{w: w}
	}
}
