package charts

import (
	"strings"

	"github.com/de-tools/report-deck/pkg/frame"
)

// Preprocess returns a copy of the frame with blank cells filled with
// "0" so that numeric aggregations treat missing values as zero. The
// original frame is left untouched for display purposes.
func Preprocess(f *frame.Frame) *frame.Frame {
	out := f.Copy()
	cols := out.Columns()
	for i := 0; i < out.NumRows(); i++ {
		for _, col := range cols {
			if strings.TrimSpace(out.Value(i, col)) == "" {
				out.SetValue(i, col, "0")
			}
		}
	}
	return out
}
