package job

import (
	"testing"
	"time"

	"github.com/Abraxas-365/vatalique/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJob() *Job {
	return &Job{
		Title:        "Agent Engineer",
		Department:   "Engineering",
		Location:     "Remote",
		Type:         TypeFullTime,
		Description:  "Build production agents",
		Requirements: "Go\nSQL",
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validJob().Validate())

	missing := validJob()
	missing.Title = "  "
	missing.Requirements = ""
	err := missing.Validate()
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, CodeMissingFields))
	e, _ := errx.As(err)
	assert.Equal(t, []string{"title", "requirements"}, e.Details["fields"])

	badType := validJob()
	badType.Type = "freelance"
	assert.True(t, errx.IsCode(badType.Validate(), CodeInvalidType))
}

func TestTypeIsValid(t *testing.T) {
	for _, typ := range Types() {
		assert.True(t, typ.IsValid(), typ)
	}
	assert.False(t, Type("Full-Time").IsValid())
	assert.False(t, Type("").IsValid())
}

func TestTouchStrictlyAdvances(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	j := validJob()
	j.PostedDate = base
	j.UpdatedDate = base

	// A clock that did not move still produces a later value
	j.Touch(base)
	assert.True(t, j.UpdatedDate.After(base))

	// A clock that went backwards does too
	prev := j.UpdatedDate
	j.Touch(base.Add(-time.Hour))
	assert.True(t, j.UpdatedDate.After(prev))

	later := base.Add(time.Minute)
	j.Touch(later)
	assert.Equal(t, later, j.UpdatedDate)
	assert.False(t, j.PostedDate.After(j.UpdatedDate))
}

func TestNextUpdatedDateDoesNotMutate(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	j := validJob()
	j.UpdatedDate = base

	next := j.NextUpdatedDate(base)
	assert.Equal(t, base, j.UpdatedDate)
	assert.Equal(t, base.Add(time.Microsecond), next)
}

func TestApplyFields(t *testing.T) {
	active := false
	blank := "   "
	salary := "$100k"
	j := validJob()
	j.IsActive = true

	j.ApplyFields(Fields{
		Title:            " Data Engineer ",
		Department:       "Data",
		Location:         "Berlin",
		Type:             TypeContract,
		Description:      "Pipelines",
		Requirements:     "Python",
		Responsibilities: &blank,
		SalaryRange:      &salary,
	})
	assert.Equal(t, "Data Engineer", string(j.Title))
	assert.Nil(t, j.Responsibilities)
	require.NotNil(t, j.SalaryRange)
	assert.Equal(t, "$100k", *j.SalaryRange)
	assert.True(t, j.IsActive, "omitted is_active keeps the stored value")

	j.ApplyFields(Fields{IsActive: &active})
	assert.False(t, j.IsActive)
}
