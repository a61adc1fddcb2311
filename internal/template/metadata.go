// Package template generates import templates and embeds the machine context
// a score sheet needs to be interpreted on upload.
//
// The context travels as a small versioned envelope written into plain cells
// of hidden columns far to the right of the visible grid. The same payload is
// stored at several locations so it survives rows being inserted or deleted.
// It is inconspicuous, not secret.
package template

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

const (
	// EnvelopePrefix marks a metadata payload and carries the envelope version.
	EnvelopePrefix = "SMSMETA1:"
	// MaxEnvelopeSize bounds an encoded payload.
	MaxEnvelopeSize = 8 << 10

	// VisibleColumns is the width of the user-facing grid (A..Z).
	VisibleColumns = 26
	// scanRowLimit bounds the last-resort column scan.
	scanRowLimit = 10000
)

// relativeSlots are written at a fixed distance below the last visible data row.
var relativeSlots = []struct {
	column string
	offset int
}{
	{"AN", 20},
	{"BH", 40},
	{"CB", 60},
}

// fixedSlots are absolute fallbacks used when the data extent moved.
var fixedSlots = []string{"AN5000", "CB9000"}

var (
	errNoEnvelope  = errors.New("no metadata envelope")
	errEnvelopeBig = fmt.Errorf("metadata envelope exceeds %d bytes", MaxEnvelopeSize)
)

// Encode serializes metadata into an envelope string.
func Encode(meta domain.TemplateMetadata) (string, error) {
	if meta.Version == 0 {
		meta.Version = domain.TemplateMetadataVersion
	}
	payload, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}
	env := EnvelopePrefix + base64.RawURLEncoding.EncodeToString(payload)
	if len(env) > MaxEnvelopeSize {
		return "", errEnvelopeBig
	}
	return env, nil
}

// Decode parses an envelope string. Anything that is not a complete,
// supported payload is rejected.
func Decode(s string) (domain.TemplateMetadata, error) {
	var meta domain.TemplateMetadata

	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, EnvelopePrefix) {
		return meta, errNoEnvelope
	}
	if len(s) > MaxEnvelopeSize {
		return meta, errEnvelopeBig
	}
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(s, EnvelopePrefix))
	if err != nil {
		return meta, fmt.Errorf("decode envelope: %w", err)
	}
	if err := json.Unmarshal(payload, &meta); err != nil {
		return meta, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if meta.Version != domain.TemplateMetadataVersion {
		return meta, fmt.Errorf("unsupported envelope version %d", meta.Version)
	}
	if meta.TenantID == "" || len(meta.Assessments) == 0 {
		return meta, errors.New("envelope is missing required context")
	}
	return meta, nil
}

// Embed writes the envelope into every slot of a sheet and hides the
// metadata columns. Slots are computed from the sheet's current data extent,
// so call it after the visible rows are written.
func Embed(f *excelize.File, sheet string, meta domain.TemplateMetadata) error {
	env, err := Encode(meta)
	if err != nil {
		return err
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return fmt.Errorf("read sheet: %w", err)
	}
	last := LastVisibleRow(rows)

	cells := make([]string, 0, len(relativeSlots)+len(fixedSlots))
	for _, slot := range relativeSlots {
		cells = append(cells, fmt.Sprintf("%s%d", slot.column, last+slot.offset))
	}
	cells = append(cells, fixedSlots...)

	for _, cell := range cells {
		if err := f.SetCellStr(sheet, cell, env); err != nil {
			return fmt.Errorf("write metadata to %s: %w", cell, err)
		}
	}
	for _, slot := range relativeSlots {
		if err := f.SetColVisible(sheet, slot.column, false); err != nil {
			return fmt.Errorf("hide column %s: %w", slot.column, err)
		}
	}
	return nil
}

// Extract recovers the envelope from raw sheet rows. Locations are tried in
// order: relative to the current data extent, the fixed fallbacks, then a
// bounded scan of the metadata columns. The first payload that decodes wins.
func Extract(rows [][]string) (domain.TemplateMetadata, error) {
	last := LastVisibleRow(rows)

	try := func(col, row int) (domain.TemplateMetadata, bool) {
		meta, err := Decode(cellAt(rows, col, row))
		return meta, err == nil
	}

	for _, slot := range relativeSlots {
		if meta, ok := try(columnNumber(slot.column), last+slot.offset); ok {
			return meta, nil
		}
	}
	for _, cell := range fixedSlots {
		col, row, err := excelize.CellNameToCoordinates(cell)
		if err != nil {
			continue
		}
		if meta, ok := try(col, row); ok {
			return meta, nil
		}
	}

	limit := len(rows)
	if limit > scanRowLimit {
		limit = scanRowLimit
	}
	for row := 1; row <= limit; row++ {
		for _, slot := range relativeSlots {
			if meta, ok := try(columnNumber(slot.column), row); ok {
				return meta, nil
			}
		}
	}

	return domain.TemplateMetadata{}, domain.ErrTemplateNotRecognized
}

// LastVisibleRow returns the 1-based number of the last row holding a value
// in the visible grid, or 1 when only the header (or nothing) is present.
func LastVisibleRow(rows [][]string) int {
	for i := len(rows) - 1; i >= 0; i-- {
		for j, v := range rows[i] {
			if j >= VisibleColumns {
				break
			}
			if strings.TrimSpace(v) != "" {
				return i + 1
			}
		}
	}
	return 1
}

// VisibleRows truncates raw rows to the visible grid so metadata cells never
// reach record mapping.
func VisibleRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		if len(r) > VisibleColumns {
			r = r[:VisibleColumns]
		}
		out[i] = r
	}
	return out
}

// cellAt reads a 1-based coordinate from raw rows.
func cellAt(rows [][]string, col, row int) string {
	if row < 1 || row > len(rows) {
		return ""
	}
	r := rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

func columnNumber(name string) int {
	n, err := excelize.ColumnNameToNumber(name)
	if err != nil {
		return 0
	}
	return n
}
