package cmd

import (
	"testing"

	"payroll_system/models"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFieldsKeepsUnsetFlags(t *testing.T) {
	var set models.EmployeeFields
	flags := pflag.NewFlagSet("update", pflag.ContinueOnError)
	flags.StringVar(&set.Name, "name", "", "")
	flags.StringVar(&set.Department, "department", "", "")
	flags.Float64Var(&set.BasicSalary, "basic", 0, "")
	flags.Float64Var(&set.Bonus, "bonus", 0, "")
	require.NoError(t, flags.Parse([]string{"--department", "Finance", "--bonus", "0"}))

	current := models.EmployeeFields{Name: "John", Department: "IT", BasicSalary: 1000, Bonus: 100}
	got := mergeFields(flags, current, set)

	assert.Equal(t, models.EmployeeFields{Name: "John", Department: "Finance", BasicSalary: 1000, Bonus: 0}, got)
}

func TestParseIDArg(t *testing.T) {
	id, err := parseIDArg("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = parseIDArg("4x")
	assert.Error(t, err)
}
