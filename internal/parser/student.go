package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

// Result is the output of mapping a table onto candidate records.
type Result[T domain.Record] struct {
	Records []T
	Issues  []domain.Issue
}

// Err converts collected issues into a submission rejection, or nil.
func (r Result[T]) Err() error {
	if len(r.Issues) == 0 {
		return nil
	}
	return &domain.SubmissionError{Code: domain.CodeParseErrors, Issues: r.Issues}
}

type studentField struct {
	name     string
	title    string
	required bool
	aliases  []string
	set      func(r *domain.StudentRecord, v string)
}

// studentFields is in roster template column order; XLSX mapping is positional.
var studentFields = []studentField{
	{"first_name", "First Name", true, []string{"firstname", "first", "givenname", "forename"},
		func(r *domain.StudentRecord, v string) { r.FirstName = v }},
	{"middle_name", "Middle Name", false, []string{"middlename", "othername", "othernames"},
		func(r *domain.StudentRecord, v string) { r.MiddleName = v }},
	{"last_name", "Last Name", true, []string{"lastname", "last", "surname", "familyname"},
		func(r *domain.StudentRecord, v string) { r.LastName = v }},
	{"email", "Email", false, []string{"email", "emailaddress", "studentemail"},
		func(r *domain.StudentRecord, v string) { r.Email = strings.ToLower(v) }},
	{"gender", "Gender", true, []string{"gender", "sex"},
		func(r *domain.StudentRecord, v string) { r.Gender = domain.NormalizeGender(v) }},
	{"date_of_birth", "Date of Birth", true, []string{"dateofbirth", "dob", "birthdate", "birthday"},
		func(r *domain.StudentRecord, v string) { r.DateOfBirth = normalizeDate(v) }},
	{"admission_number", "Admission Number", false, []string{"admissionnumber", "admissionno", "admno", "studentnumber", "regno"},
		func(r *domain.StudentRecord, v string) { r.AdmissionNumber = v }},
	{"class_name", "Class", true, []string{"class", "classname", "classarm", "level"},
		func(r *domain.StudentRecord, v string) { r.ClassName = v }},
	{"phone", "Phone", false, []string{"phone", "phonenumber", "mobile", "telephone"},
		func(r *domain.StudentRecord, v string) { r.Phone = v }},
	{"guardian_name", "Guardian Name", false, []string{"guardianname", "parentname", "guardian", "parent"},
		func(r *domain.StudentRecord, v string) { r.GuardianName = v }},
	{"guardian_phone", "Guardian Phone", false, []string{"guardianphone", "parentphone", "guardianmobile"},
		func(r *domain.StudentRecord, v string) { r.GuardianPhone = v }},
	{"guardian_email", "Guardian Email", false, []string{"guardianemail", "parentemail"},
		func(r *domain.StudentRecord, v string) { r.GuardianEmail = strings.ToLower(v) }},
	{"address", "Address", false, []string{"address", "homeaddress", "residentialaddress"},
		func(r *domain.StudentRecord, v string) { r.Address = v }},
}

// StudentColumns returns the roster template header row.
func StudentColumns() []string {
	cols := make([]string, len(studentFields))
	for i, f := range studentFields {
		cols[i] = f.title
	}
	return cols
}

// ParseStudents maps a roster table onto student records. Positional mapping
// is used for workbooks; delimited text is mapped by header name.
func ParseStudents(t *Table, positional bool) Result[domain.StudentRecord] {
	var res Result[domain.StudentRecord]

	columns := make([]int, len(studentFields))
	if positional {
		for i := range studentFields {
			columns[i] = i
		}
	} else {
		columns = mapStudentHeader(t.Header)
		for i, f := range studentFields {
			if f.required && columns[i] < 0 {
				res.Issues = append(res.Issues, domain.Issue{
					Field:   f.name,
					Message: fmt.Sprintf("required column %q is missing from the header", f.title),
				})
			}
		}
		if len(res.Issues) > 0 {
			return res
		}
	}

	for _, row := range t.Rows {
		rec := domain.StudentRecord{Row: row.Number}
		var rowIssues []domain.Issue
		for i, f := range studentFields {
			v := row.Cell(columns[i])
			if f.required && v == "" {
				rowIssues = append(rowIssues, domain.Issue{
					Row:     row.Number,
					Field:   f.name,
					Message: fmt.Sprintf("%s is required", f.name),
				})
				continue
			}
			f.set(&rec, v)
		}
		if len(rowIssues) > 0 {
			snap := rowSnapshot(t.Header, row)
			for i := range rowIssues {
				rowIssues[i].Snapshot = snap
			}
			res.Issues = append(res.Issues, rowIssues...)
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res
}

// mapStudentHeader returns the column index per student field, -1 when absent.
func mapStudentHeader(header []string) []int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := index[key]; !dup && key != "" {
			index[key] = i
		}
	}

	columns := make([]int, len(studentFields))
	for i, f := range studentFields {
		columns[i] = -1
		candidates := append([]string{normalizeHeader(f.name)}, f.aliases...)
		for _, alias := range candidates {
			if idx, ok := index[alias]; ok {
				columns[i] = idx
				break
			}
		}
	}
	return columns
}

// normalizeDate converts spreadsheet serial dates to ISO form and leaves any
// other text untouched for the validator.
func normalizeDate(v string) string {
	if v == "" || strings.ContainsAny(v, "/-: ") {
		return v
	}
	serial, err := strconv.ParseFloat(v, 64)
	if err != nil || serial <= 0 {
		return v
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return v
	}
	return t.Format("2006-01-02")
}

func rowSnapshot(header []string, row Row) map[string]string {
	snap := make(map[string]string, len(row.Cells))
	for i, v := range row.Cells {
		if v == "" {
			continue
		}
		key := fmt.Sprintf("col_%d", i+1)
		if i < len(header) && header[i] != "" {
			key = header[i]
		}
		snap[key] = v
	}
	return snap
}
