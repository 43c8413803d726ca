// Package store keeps the employee roster in memory and mirrors it to a
// flat comma-delimited file. Every mutation rewrites the whole file.
package store

import (
	"bytes"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"payroll_system/models"
	"payroll_system/salary"
	"payroll_system/types"
	"payroll_system/utils"

	"go.uber.org/zap"
)

// Store is not safe for concurrent use.
type Store struct {
	path      string
	employees []models.Employee
}

func New(path string) *Store {
	return &Store{path: path}
}

// Open creates a store for path and loads it.
func Open(path string) (*Store, error) {
	s := New(path)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// Load replaces the collection with the contents of the backing file. A
// missing file yields an empty collection. On a ParseError the current
// collection is kept.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.employees = nil
		return nil
	}
	if err != nil {
		return &types.IOError{Op: "read", Path: s.path, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.employees = nil
		return nil
	}

	employees, err := decode(s.path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	s.employees = employees

	utils.Logger.Debug("Loaded employee file",
		zap.String("path", s.path),
		zap.Int("count", len(employees)))
	return nil
}

// Save rewrites the backing file with the full collection in iteration order.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*.tmp")
	if err != nil {
		return &types.IOError{Op: "open", Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if err := encode(tmp, s.employees); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &types.IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &types.IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &types.IOError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// Add appends e and persists. Ids are not checked for uniqueness. If the
// save fails the record stays in memory and the IOError is returned.
// Non-finite amounts are rejected before anything changes.
func (s *Store) Add(e models.Employee) (models.Employee, error) {
	if err := e.Fields().CheckAmounts(); err != nil {
		return models.Employee{}, err
	}
	s.employees = append(s.employees, e)
	return e, s.Save()
}

func (s *Store) index(id int) int {
	for i := range s.employees {
		if s.employees[i].ID == id {
			return i
		}
	}
	return -1
}

// FindByID returns the first record with the given id.
func (s *Store) FindByID(id int) (models.Employee, error) {
	i := s.index(id)
	if i < 0 {
		return models.Employee{}, types.ErrNotFound
	}
	return s.employees[i], nil
}

func (s *Store) Exists(id int) bool {
	return s.index(id) >= 0
}

// Update overwrites every mutable field of the first record with the
// given id and persists.
func (s *Store) Update(id int, f models.EmployeeFields) (models.Employee, error) {
	i := s.index(id)
	if i < 0 {
		return models.Employee{}, types.ErrNotFound
	}
	if err := f.CheckAmounts(); err != nil {
		return s.employees[i], err
	}
	s.employees[i].Apply(f)
	return s.employees[i], s.Save()
}

// Delete removes the first record with the given id and persists.
func (s *Store) Delete(id int) (models.Employee, error) {
	i := s.index(id)
	if i < 0 {
		return models.Employee{}, types.ErrNotFound
	}
	removed := s.employees[i]
	s.employees = append(s.employees[:i:i], s.employees[i+1:]...)
	return removed, s.Save()
}

// ListAll yields records in insertion order. The sequence reads the
// collection when iterated, so it can be ranged over more than once.
func (s *Store) ListAll() iter.Seq[models.Employee] {
	return func(yield func(models.Employee) bool) {
		for _, e := range s.employees {
			if !yield(e) {
				return
			}
		}
	}
}

func (s *Store) Len() int {
	return len(s.employees)
}

// SummarizeByDepartment totals net salary and head count per department
// in a single pass. Departments appear in order of first occurrence.
func (s *Store) SummarizeByDepartment() []models.DepartmentSummary {
	var summaries []models.DepartmentSummary
	pos := make(map[string]int)
	for _, e := range s.employees {
		i, ok := pos[e.Department]
		if !ok {
			i = len(summaries)
			pos[e.Department] = i
			summaries = append(summaries, models.DepartmentSummary{Department: e.Department})
		}
		summaries[i].TotalNetSalary += salary.NetSalary(e)
		summaries[i].EmployeeCount++
	}
	return summaries
}
