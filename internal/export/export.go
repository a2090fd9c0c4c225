// Package export renders analysis results as Arrow record batches and
// writes them to CSV or Arrow IPC files. One row per meeting point on
// the anti-diagonal, carrying the observed count and probabilities.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/csv"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/nvandessel/gridmeet/internal/analysis"
	"github.com/nvandessel/gridmeet/internal/grid"
)

// Schema describes the per-point distribution table.
var Schema = arrow.NewSchema([]arrow.Field{
	{Name: "label", Type: arrow.BinaryTypes.String},
	{Name: "x", Type: arrow.PrimitiveTypes.Int64},
	{Name: "y", Type: arrow.PrimitiveTypes.Int64},
	{Name: "count", Type: arrow.PrimitiveTypes.Int64},
	{Name: "empirical_probability", Type: arrow.PrimitiveTypes.Float64},
	{Name: "theoretical_probability", Type: arrow.PrimitiveTypes.Float64},
}, nil)

// NewRecord builds an Arrow record with one row per meeting point.
// The caller must Release the returned record.
func NewRecord(result *analysis.AggregateResult) arrow.Record {
	builder := array.NewRecordBuilder(memory.DefaultAllocator, Schema)
	defer builder.Release()

	labels := builder.Field(0).(*array.StringBuilder)
	xs := builder.Field(1).(*array.Int64Builder)
	ys := builder.Field(2).(*array.Int64Builder)
	counts := builder.Field(3).(*array.Int64Builder)
	empirical := builder.Field(4).(*array.Float64Builder)
	theoretical := builder.Field(5).(*array.Float64Builder)

	for i, p := range grid.MeetingPoints(result.N) {
		labels.Append(grid.PointLabel(i))
		xs.Append(int64(p.X))
		ys.Append(int64(p.Y))
		counts.Append(int64(result.PerPointCounts[i]))
		empirical.Append(result.PointProbability(i))
		theoretical.Append(analysis.TheoreticalPointProbability(result.N, i))
	}

	return builder.NewRecord()
}

// WriteCSV writes the distribution table to w as CSV with a header row.
func WriteCSV(w io.Writer, result *analysis.AggregateResult) error {
	record := NewRecord(result)
	defer record.Release()

	writer := csv.NewWriter(w, Schema, csv.WithHeader(true))
	if err := writer.Write(record); err != nil {
		return fmt.Errorf("write csv record: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}

// seekBuffer adapts an in-memory byte slice to io.WriteSeeker so the
// Arrow IPC file writer can back-patch its footer before the bytes are
// flushed to a plain io.Writer.
type seekBuffer struct {
	buf []byte
	pos int64
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if need := b.pos + int64(len(p)); need > int64(len(b.buf)) {
		grown := make([]byte, need)
		copy(grown, b.buf)
		b.buf = grown
	}
	copy(b.buf[b.pos:], p)
	b.pos += int64(len(p))
	return len(p), nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.pos + offset
	case io.SeekEnd:
		abs = int64(len(b.buf)) + offset
	default:
		return 0, fmt.Errorf("seek: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("seek: negative position %d", abs)
	}
	b.pos = abs
	return abs, nil
}

// WriteIPC writes the distribution table to w in the Arrow IPC file format.
func WriteIPC(w io.Writer, result *analysis.AggregateResult) error {
	record := NewRecord(result)
	defer record.Release()

	ws, ok := w.(io.WriteSeeker)
	var buf *seekBuffer
	if !ok {
		buf = &seekBuffer{}
		ws = buf
	}

	writer, err := ipc.NewFileWriter(ws, ipc.WithSchema(Schema))
	if err != nil {
		return fmt.Errorf("create ipc writer: %w", err)
	}

	if err := writer.Write(record); err != nil {
		writer.Close()
		return fmt.Errorf("write ipc record: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("close ipc writer: %w", err)
	}

	if buf != nil {
		if _, err := w.Write(buf.buf); err != nil {
			return fmt.Errorf("write ipc data: %w", err)
		}
	}

	return nil
}

// WriteFile writes the distribution table to path, choosing the format
// by extension: .csv for CSV, .arrow for Arrow IPC.
func WriteFile(path string, result *analysis.AggregateResult) error {
	var write func(io.Writer, *analysis.AggregateResult) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = WriteCSV
	case ".arrow":
		write = WriteIPC
	default:
		return fmt.Errorf("unsupported export format %q (use .csv or .arrow)", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := write(f, result); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	return nil
}
