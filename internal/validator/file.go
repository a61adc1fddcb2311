package validator

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

const (
	// MaxFileSize is the largest accepted upload (10 MiB).
	MaxFileSize = 10 << 20

	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
)

// zipSignature prefixes every OOXML workbook.
var zipSignature = []byte("PK\x03\x04")

// extensionMediaTypes lists the media types accepted for each extension.
var extensionMediaTypes = map[string][]string{
	ExtCSV: {
		"text/csv",
		"application/csv",
		"text/plain",
		"application/vnd.ms-excel",
	},
	ExtXLSX: {
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/octet-stream",
	},
}

// kindExtensions lists the file extensions each import instance accepts.
var kindExtensions = map[domain.ImportKind][]string{
	domain.ImportKindStudents: {ExtCSV, ExtXLSX},
	domain.ImportKindScores:   {ExtXLSX},
}

// FileCheck is the outcome of a file validation.
type FileCheck struct {
	OK        bool
	Extension string
	Reasons   []string
}

// FileValidator rejects uploads by size, type and extension before parsing.
type FileValidator struct {
	maxSize int64
}

// NewFileValidator creates a FileValidator with the given size limit.
// A non-positive limit falls back to MaxFileSize.
func NewFileValidator(maxSize int64) *FileValidator {
	if maxSize <= 0 {
		maxSize = MaxFileSize
	}
	return &FileValidator{maxSize: maxSize}
}

// Validate checks an upload for an import instance. It never performs I/O
// and collects every reason instead of stopping at the first.
func (v *FileValidator) Validate(kind domain.ImportKind, data []byte, declaredSize int64, mediaType, fileName string) FileCheck {
	check := FileCheck{Extension: strings.ToLower(filepath.Ext(fileName))}

	if declaredSize > v.maxSize || int64(len(data)) > v.maxSize {
		check.Reasons = append(check.Reasons, fmt.Sprintf("file exceeds maximum size of %d bytes", v.maxSize))
	}
	if len(data) == 0 {
		check.Reasons = append(check.Reasons, "file is empty")
	}

	allowedExt := kindExtensions[kind]
	if !contains(allowedExt, check.Extension) {
		check.Reasons = append(check.Reasons, fmt.Sprintf("extension %q not allowed, expected one of: %s",
			check.Extension, strings.Join(allowedExt, ", ")))
	} else {
		mt := normalizeMediaType(mediaType)
		if !contains(extensionMediaTypes[check.Extension], mt) {
			check.Reasons = append(check.Reasons, fmt.Sprintf("media type %q does not match extension %q", mediaType, check.Extension))
		}
		if check.Extension == ExtXLSX && len(data) > 0 && !bytes.HasPrefix(data, zipSignature) {
			check.Reasons = append(check.Reasons, "file content is not a spreadsheet workbook")
		}
	}

	check.OK = len(check.Reasons) == 0
	return check
}

// normalizeMediaType strips parameters such as charset.
func normalizeMediaType(mt string) string {
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
