package session

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/domain"
)

// Store manages per-session report files under uploads/{user}/. Each
// session holds at most one live report; saving a new one supersedes
// the old.
type Store interface {
	// SaveReport writes the downloaded workbook for the given type
	// code, converts it to CSV and returns the CSV path. The workbook
	// file is removed after conversion.
	SaveReport(ctx context.Context, s domain.Session, code string, r io.Reader) (string, error)

	// ReportPath returns the session's current report file.
	ReportPath(s domain.Session) (string, error)

	// Frame parses the session's report, caching the result until the
	// report is superseded.
	Frame(ctx context.Context, s domain.Session) (*frame.Frame, error)

	// Cleanup removes stale files from the session directory, keeping
	// only the newest.
	Cleanup(ctx context.Context, s domain.Session)
}

type store struct {
	root string

	mu     sync.Mutex
	frames map[string]cachedFrame
}

type cachedFrame struct {
	path  string
	frame *frame.Frame
}

func NewStore(root string) Store {
	return &store{
		root:   root,
		frames: make(map[string]cachedFrame),
	}
}

func (st *store) dir(s domain.Session) string {
	return filepath.Join(st.root, s.ID)
}

func (st *store) SaveReport(ctx context.Context, s domain.Session, code string, r io.Reader) (string, error) {
	dir := st.dir(s)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}

	t := domain.ReportTypeFromCode(code)
	base := strings.TrimSuffix(t.FileName(), ".csv")
	workbookPath := filepath.Join(dir, base+".xlsx")

	out, err := os.Create(workbookPath)
	if err != nil {
		return "", fmt.Errorf("create workbook file: %w", err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		removeQuiet(ctx, workbookPath)
		return "", fmt.Errorf("write workbook file: %w", err)
	}
	if err := out.Close(); err != nil {
		removeQuiet(ctx, workbookPath)
		return "", fmt.Errorf("close workbook file: %w", err)
	}

	// A failed save must not leave debris behind: a stray workbook
	// would shadow the session's previous CSV in ReportPath.
	csvPath, err := convertWorkbook(workbookPath)
	if err != nil {
		removeQuiet(ctx, workbookPath)
		return "", err
	}

	st.mu.Lock()
	delete(st.frames, s.ID)
	st.mu.Unlock()

	zerolog.Ctx(ctx).Info().
		Str("session", s.ID).
		Str("report", filepath.Base(csvPath)).
		Msg("report saved")
	return csvPath, nil
}

func (st *store) ReportPath(s domain.Session) (string, error) {
	entries, err := os.ReadDir(st.dir(s))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrReportNotFound, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		return filepath.Join(st.dir(s), entry.Name()), nil
	}
	return "", domain.ErrReportNotFound
}

func (st *store) Frame(ctx context.Context, s domain.Session) (*frame.Frame, error) {
	path, err := st.ReportPath(s)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	cached, ok := st.frames[s.ID]
	st.mu.Unlock()
	if ok && cached.path == path {
		return cached.frame, nil
	}

	f, err := frame.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse report %s: %w", filepath.Base(path), err)
	}

	st.mu.Lock()
	st.frames[s.ID] = cachedFrame{path: path, frame: f}
	st.mu.Unlock()
	return f, nil
}

// Cleanup keeps only the newest file in the session directory.
// Failures are logged and swallowed; removing an already-absent file
// is a no-op.
func (st *store) Cleanup(ctx context.Context, s domain.Session) {
	logger := zerolog.Ctx(ctx)
	dir := st.dir(s)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	type candidate struct {
		path string
		mod  int64
	}
	var files []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, candidate{
			path: filepath.Join(dir, entry.Name()),
			mod:  info.ModTime().UnixNano(),
		})
	}
	if len(files) <= 1 {
		return
	}

	newest := 0
	for i, f := range files {
		if f.mod > files[newest].mod {
			newest = i
		}
	}
	for i, f := range files {
		if i == newest {
			continue
		}
		if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("file", f.path).Msg("cleanup failed")
		}
	}
}

func removeQuiet(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		zerolog.Ctx(ctx).Warn().Err(err).Str("file", path).Msg("failed to remove stale file")
	}
}

// convertWorkbook turns the first sheet of an xlsx workbook into a
// CSV next to it and removes the workbook. Conversion problems wrap
// ErrUnsupportedFormat so callers can show the generic retry notice.
func convertWorkbook(path string) (string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: open workbook: %v", domain.ErrUnsupportedFormat, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", domain.ErrUnsupportedFormat)
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("%w: read sheet %s: %v", domain.ErrUnsupportedFormat, sheets[0], err)
	}

	csvPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".csv"
	out, err := os.Create(csvPath)
	if err != nil {
		return "", fmt.Errorf("create csv: %w", err)
	}

	// Rows can be ragged; pad to the header width.
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	w := csv.NewWriter(out)
	for _, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		if err := w.Write(row); err != nil {
			out.Close()
			os.Remove(csvPath)
			return "", fmt.Errorf("write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		out.Close()
		os.Remove(csvPath)
		return "", fmt.Errorf("flush csv: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(csvPath)
		return "", fmt.Errorf("close csv: %w", err)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("remove workbook: %w", err)
	}
	return csvPath, nil
}
