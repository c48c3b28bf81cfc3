package batch_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/batch"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/forms"
)

const identityYAML = `form: identity
values:
  fullName: Ravi Kumar
  fatherName: Suresh Kumar
  motherName: Lakshmi Devi
  dateOfBirth: 1990-05-20
  gender: male
  mobile: 9876543210
  email: ravi@example.com
  address: 12 MG Road, Shivaji Nagar
  city: Bangalore
  state: Karnataka
  pincode: 560001
  aadhaarNumber: 000000000002
`

func clock() time.Time {
	return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("keeps scalar source text", func(t *testing.T) {
		t.Parallel()
		rec, err := batch.Decode(strings.NewReader(identityYAML))
		require.NoError(t, err)
		assert.Equal(t, "identity", rec.Form)
		assert.Equal(t, "000000000002", rec.Values.Text("aadhaarNumber"))
		assert.Equal(t, "1990-05-20", rec.Values.Text("dateOfBirth"))
		assert.Equal(t, forms.KindText, rec.Values["pincode"].Kind())
	})

	t.Run("json input", func(t *testing.T) {
		t.Parallel()
		rec, err := batch.Decode(strings.NewReader(`{"form": "tax", "optional": ["middleName"], "values": {"declaration": true, "pan": "ABCDE1234F", "note": null}}`))
		require.NoError(t, err)
		assert.Equal(t, "tax", rec.Form)
		assert.Equal(t, []string{"middleName"}, rec.Optional)
		assert.Equal(t, forms.Flag(true), rec.Values["declaration"])
		_, has := rec.Values["note"]
		assert.False(t, has, "null values are absent")
	})

	t.Run("rejects nested values", func(t *testing.T) {
		t.Parallel()
		_, err := batch.Decode(strings.NewReader("values:\n  address:\n    line1: x\n"))
		assert.ErrorIs(t, err, batch.ErrNonScalarValue)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()
		_, err := batch.Decode(strings.NewReader("values: [unclosed"))
		assert.ErrorIs(t, err, batch.ErrDecode)
	})
}

func TestValidateFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	valid := writeFile(t, dir, "valid.yaml", identityYAML)
	invalid := writeFile(t, dir, "invalid.yaml", strings.Replace(identityYAML, "000000000002", "000000000003", 1))
	broken := writeFile(t, dir, "broken.yaml", "values: [unclosed")
	unknown := writeFile(t, dir, "unknown.yaml", "form: passport\nvalues: {}\n")
	missing := filepath.Join(dir, "missing.yaml")

	v := batch.New(batch.WithClock(clock), batch.WithWorkers(2))
	report, err := v.ValidateFiles(context.Background(), []string{valid, invalid, broken, unknown, missing})
	require.NoError(t, err)

	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 1, report.Valid)
	assert.Equal(t, 1, report.Invalid)
	assert.Equal(t, 3, report.Failed)
	assert.False(t, report.OK())

	require.Len(t, report.Results, 5)
	assert.Equal(t, valid, report.Results[0].Source)
	assert.True(t, report.Results[0].Valid)
	assert.Equal(t, forms.Errors{"aadhaarNumber": "Invalid Aadhaar number"}, report.Results[1].Errors)
	assert.Contains(t, report.Results[3].Failure, "unknown form")
	assert.NotEmpty(t, report.Results[4].Failure)
}

func TestValidateFiles_FormOverrideAndStdin(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("values:\n  pincode: 1100\n")
	v := batch.New(batch.WithForm("address"), batch.WithStdin(in))

	report, err := v.ValidateFiles(context.Background(), []string{batch.Stdin})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)

	res := report.Results[0]
	assert.Equal(t, "address", res.Form)
	assert.Equal(t, "PIN code must be 6 digits", res.Errors.Get("pincode"))
	assert.Equal(t, "Street name is required", res.Errors.Get("streetName"))
	assert.False(t, res.Errors.Has("landmark"))
}

func TestValidateFiles_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := batch.New().ValidateFiles(ctx, []string{"a.yaml", "b.yaml"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReportWrite(t *testing.T) {
	t.Parallel()

	report := batch.Report{
		Total:   1,
		Invalid: 1,
		Results: []batch.Result{{
			Source: "x.yaml",
			Form:   "address",
			Errors: forms.Errors{"pincode": "PIN code must be 6 digits"},
		}},
	}
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))

	var back batch.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, report, back)
	assert.Contains(t, buf.String(), "pincode: PIN code must be 6 digits")
}
