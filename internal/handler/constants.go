package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

const (
	// maxMultipartMemory is the part of an upload kept in memory while parsing
	// the multipart form; the rest spills to temporary files.
	maxMultipartMemory = 8 << 20

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	formFile           = "file"
	formBatchSize      = "batch_size"
	formSkipDuplicates = "skip_duplicates"
	formUpdateExisting = "update_existing"
)
