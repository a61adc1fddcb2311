package parser

import (
	"fmt"
	"strconv"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

// Score sheet layout. Assessment columns start after the identity columns and
// follow the order of the embedded schema.
const (
	ScoreColStudentID = iota
	ScoreColAdmissionNumber
	ScoreColStudentName
	ScoreColFirstAssessment
)

// ScoreIdentityColumns is the header of the identity columns of a score sheet.
var ScoreIdentityColumns = []string{"Student ID", "Admission Number", "Student Name"}

// ParseScores maps a score sheet onto one record per filled score cell. The
// schema comes from the template metadata, never from the visible header.
func ParseScores(t *Table, meta domain.TemplateMetadata) Result[domain.ScoreRecord] {
	var res Result[domain.ScoreRecord]

	for _, row := range t.Rows {
		studentID := row.Cell(ScoreColStudentID)
		var recs []domain.ScoreRecord
		var rowIssues []domain.Issue

		for i, a := range meta.Assessments {
			raw := row.Cell(ScoreColFirstAssessment + i)
			if raw == "" {
				continue
			}
			score, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				rowIssues = append(rowIssues, domain.Issue{
					Row:     row.Number,
					Field:   a.Name,
					Message: fmt.Sprintf("score for %s must be a number, got %q", a.Name, raw),
				})
				continue
			}
			recs = append(recs, domain.ScoreRecord{
				Row:             row.Number,
				StudentID:       studentID,
				AdmissionNumber: row.Cell(ScoreColAdmissionNumber),
				StudentName:     row.Cell(ScoreColStudentName),
				Assessment:      a.Name,
				Score:           score,
			})
		}

		if len(recs) == 0 && len(rowIssues) == 0 {
			continue
		}
		if studentID == "" {
			rowIssues = append(rowIssues, domain.Issue{
				Row:     row.Number,
				Field:   "student_id",
				Message: "student_id is required",
			})
		}
		if len(rowIssues) > 0 {
			snap := rowSnapshot(t.Header, row)
			for i := range rowIssues {
				rowIssues[i].Snapshot = snap
			}
			res.Issues = append(res.Issues, rowIssues...)
			continue
		}
		res.Records = append(res.Records, recs...)
	}
	return res
}

// ScoreHeader returns the visible header row for a schema.
func ScoreHeader(meta domain.TemplateMetadata) []string {
	header := append([]string(nil), ScoreIdentityColumns...)
	for _, a := range meta.Assessments {
		header = append(header, fmt.Sprintf("%s (%g)", a.Name, a.MaxScore))
	}
	return header
}
