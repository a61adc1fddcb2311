package template

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/parser"
)

const (
	ScoreSheetName   = "Scores"
	StudentSheetName = "Students"
)

// ScoreSheet is an uploaded score template with its recovered context.
type ScoreSheet struct {
	Meta  domain.TemplateMetadata
	Table *parser.Table
}

// ReadScoreSheet opens an uploaded score template, recovers its metadata and
// checks that it was generated for tenantID.
func ReadScoreSheet(data []byte, tenantID string) (*ScoreSheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileUnreadable, err)
	}
	defer f.Close()

	rows, err := parser.FirstSheetRows(f)
	if err != nil {
		return nil, err
	}

	meta, err := Extract(rows)
	if err != nil {
		return nil, err
	}
	if meta.TenantID != tenantID {
		return nil, fmt.Errorf("%w: template belongs to another school", domain.ErrTemplateNotRecognized)
	}

	return &ScoreSheet{Meta: meta, Table: parser.NewTable(VisibleRows(rows))}, nil
}

// GenerateScoreTemplate builds a score template listing the students of the
// class with one empty column per assessment.
func GenerateScoreTemplate(meta domain.TemplateMetadata, students []domain.Student) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ScoreSheetName); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	header := parser.ScoreHeader(meta)
	if err := setRow(f, ScoreSheetName, 1, header); err != nil {
		return nil, err
	}
	for i, s := range students {
		row := []string{s.ID, s.AdmissionNumber, s.FullName()}
		if err := setRow(f, ScoreSheetName, i+2, row); err != nil {
			return nil, err
		}
	}

	if len(students) > 0 {
		for i, a := range meta.Assessments {
			if err := addScoreRange(f, i, len(students)+1, a); err != nil {
				return nil, err
			}
		}
	}

	if err := Embed(f, ScoreSheetName, meta); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

// GenerateStudentTemplate builds an empty roster workbook in the column
// order positional workbook mapping expects.
func GenerateStudentTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), StudentSheetName); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}
	if err := setRow(f, StudentSheetName, 1, parser.StudentColumns()); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

// addScoreRange restricts an assessment column to [0, max score].
func addScoreRange(f *excelize.File, idx, lastRow int, a domain.AssessmentSpec) error {
	col, err := excelize.ColumnNumberToName(parser.ScoreColFirstAssessment + idx + 1)
	if err != nil {
		return err
	}
	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("%s2:%s%d", col, col, lastRow)
	if err := dv.SetRange(0, a.MaxScore, excelize.DataValidationTypeDecimal, excelize.DataValidationOperatorBetween); err != nil {
		return fmt.Errorf("score range for %s: %w", a.Name, err)
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, "Invalid score", fmt.Sprintf("%s must be between 0 and %g", a.Name, a.MaxScore))
	if err := f.AddDataValidation(ScoreSheetName, dv); err != nil {
		return fmt.Errorf("score range for %s: %w", a.Name, err)
	}
	return nil
}
