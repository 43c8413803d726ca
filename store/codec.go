package store

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"payroll_system/models"
	"payroll_system/types"

	"github.com/gocarina/gocsv"
)

const fieldCount = 8

// employeeRow is the on-disk column order. Columns are read as text so
// numeric failures can be reported per field.
type employeeRow struct {
	ID            string `csv:"id"`
	Name          string `csv:"name"`
	Designation   string `csv:"designation"`
	Department    string `csv:"department"`
	BasicSalary   string `csv:"basic_salary"`
	OvertimeHours string `csv:"overtime_hours"`
	OvertimeRate  string `csv:"overtime_rate"`
	Bonus         string `csv:"bonus"`
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func toRow(e models.Employee) employeeRow {
	return employeeRow{
		ID:            strconv.Itoa(e.ID),
		Name:          e.Name,
		Designation:   e.Designation,
		Department:    e.Department,
		BasicSalary:   formatFloat(e.BasicSalary),
		OvertimeHours: formatFloat(e.OvertimeHours),
		OvertimeRate:  formatFloat(e.OvertimeRate),
		Bonus:         formatFloat(e.Bonus),
	}
}

func encode(w io.Writer, employees []models.Employee) error {
	if len(employees) == 0 {
		return nil
	}
	rows := make([]employeeRow, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, toRow(e))
	}
	return gocsv.MarshalWithoutHeaders(&rows, w)
}

// countingReader feeds gocsv one record at a time so a framing error can
// be reported with the number of the record that caused it.
type countingReader struct {
	*csv.Reader
	records int
}

func (r *countingReader) ReadAll() ([][]string, error) {
	var out [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		r.records++
		out = append(out, record)
	}
}

func decode(path string, r io.Reader) ([]models.Employee, error) {
	cr := &countingReader{Reader: csv.NewReader(r)}
	cr.FieldsPerRecord = fieldCount
	cr.LazyQuotes = true

	var rows []employeeRow
	if err := gocsv.UnmarshalCSVWithoutHeaders(cr, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, &types.ParseError{Path: path, Record: cr.records + 1, Err: err}
	}

	employees := make([]models.Employee, 0, len(rows))
	for i, row := range rows {
		e, err := fromRow(row)
		if err != nil {
			err.Path = path
			err.Record = i + 1
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func fromRow(row employeeRow) (models.Employee, *types.ParseError) {
	e := models.Employee{
		Name:        row.Name,
		Designation: row.Designation,
		Department:  row.Department,
	}

	id, err := strconv.Atoi(strings.TrimSpace(row.ID))
	if err != nil {
		return e, &types.ParseError{Field: "id", Value: row.ID, Err: err}
	}
	e.ID = id

	numeric := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"basicSalary", row.BasicSalary, &e.BasicSalary},
		{"overtimeHours", row.OvertimeHours, &e.OvertimeHours},
		{"overtimeRate", row.OvertimeRate, &e.OvertimeRate},
		{"bonus", row.Bonus, &e.Bonus},
	}
	for _, f := range numeric {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.raw), 64)
		if err != nil {
			return e, &types.ParseError{Field: f.name, Value: f.raw, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return e, &types.ParseError{Field: f.name, Value: f.raw, Err: types.ErrInvalidAmount}
		}
		*f.dst = v
	}
	return e, nil
}
