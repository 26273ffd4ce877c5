package domain

import "errors"

// Sentinel errors for the failure classes the report pipeline can hit.
// Handlers translate them into HTTP statuses, everything else surfaces
// as a 500.
var (
	// ErrReportNotFound means the session has no report loaded yet.
	ErrReportNotFound = errors.New("report not found")

	// ErrNoFileInfo means the upstream metadata service returned no
	// download information for the session.
	ErrNoFileInfo = errors.New("no file info for session")

	// ErrDownloadFailed wraps upstream spreadsheet download failures.
	ErrDownloadFailed = errors.New("report download failed")

	// ErrUnsupportedFormat means the downloaded file is neither CSV nor
	// a convertible spreadsheet.
	ErrUnsupportedFormat = errors.New("unsupported report format")

	// ErrEmptyReport means the report parsed but contains no data rows.
	ErrEmptyReport = errors.New("report is empty")

	// ErrUnknownReportType means identification failed and the caller
	// asked for a type specific operation.
	ErrUnknownReportType = errors.New("unknown report type")

	// ErrPanelNotFound means a chart panel id does not exist for the
	// report's type.
	ErrPanelNotFound = errors.New("panel not found")

	// ErrAssistantUnavailable wraps model gateway failures during chat
	// or chart generation.
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
