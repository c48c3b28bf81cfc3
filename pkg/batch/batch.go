// Package batch validates stored form records. A record file is YAML (or
// JSON, which the decoder also accepts):
//
//	form: identity
//	optional: [landmark]
//	values:
//	  fullName: Ravi Kumar
//	  aadhaarNumber: "234567890121"
//
// Scalars keep their source text, so unquoted numbers such as PIN codes and
// Aadhaar numbers with leading zeros survive decoding. Booleans become flags.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/forms"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/logger"
)

// Stdin is the path that reads a record from standard input.
const Stdin = "-"

var (
	ErrDecode         = errors.New("batch: cannot decode record")
	ErrNonScalarValue = errors.New("batch: field value must be a scalar")
)

// Record is one decoded record file.
type Record struct {
	Form     string
	Optional []string
	Values   forms.Values
}

type rawRecord struct {
	Form     string               `yaml:"form"`
	Optional []string             `yaml:"optional"`
	Values   map[string]yaml.Node `yaml:"values"`
}

// Decode reads a single record.
func Decode(r io.Reader) (Record, error) {
	var raw rawRecord
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	values := make(forms.Values, len(raw.Values))
	for name, node := range raw.Values {
		v, ok, err := nodeValue(node)
		if err != nil {
			return Record{}, fmt.Errorf("%w: %s", err, name)
		}
		if ok {
			values[name] = v
		}
	}
	return Record{Form: raw.Form, Optional: raw.Optional, Values: values}, nil
}

func nodeValue(n yaml.Node) (forms.Value, bool, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = *n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return forms.Value{}, false, ErrNonScalarValue
	}
	switch n.ShortTag() {
	case "!!null":
		return forms.Value{}, false, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return forms.Value{}, false, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return forms.Flag(b), true, nil
	default:
		return forms.Text(n.Value), true, nil
	}
}

// Result is the outcome for one record source.
type Result struct {
	Source  string       `yaml:"source" json:"source"`
	Form    string       `yaml:"form,omitempty" json:"form,omitempty"`
	Valid   bool         `yaml:"valid" json:"valid"`
	Errors  forms.Errors `yaml:"errors,omitempty" json:"errors,omitempty"`
	Failure string       `yaml:"failure,omitempty" json:"failure,omitempty"`
}

// Report aggregates a batch run. Results keep the order of the inputs.
type Report struct {
	Total   int      `yaml:"total" json:"total"`
	Valid   int      `yaml:"valid" json:"valid"`
	Invalid int      `yaml:"invalid" json:"invalid"`
	Failed  int      `yaml:"failed" json:"failed"`
	Results []Result `yaml:"results" json:"results"`
}

// OK reports whether every record was readable and valid.
func (r Report) OK() bool {
	return r.Invalid == 0 && r.Failed == 0
}

// Validator checks record files against the registered forms.
type Validator struct {
	form    string
	workers int
	now     func() time.Time
	log     *slog.Logger
	stdin   io.Reader
}

// Option configures a Validator.
type Option func(*Validator)

// WithForm forces every record to be checked against form, ignoring the
// form key in the files.
func WithForm(form string) Option {
	return func(v *Validator) {
		v.form = form
	}
}

// WithWorkers bounds how many files are read in parallel.
func WithWorkers(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.workers = n
		}
	}
}

// WithClock pins the reference time of date rules.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}

// WithStdin replaces os.Stdin as the source for the "-" path.
func WithStdin(r io.Reader) Option {
	return func(v *Validator) {
		if r != nil {
			v.stdin = r
		}
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{
		workers: 4,
		log:     logger.Discard(),
		stdin:   os.Stdin,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.log = v.log.With(logger.Component("batch"))
	return v
}

// ValidateFiles checks every path. Unreadable or undecodable files are
// reported as failed results; only cancellation aborts the run.
func (v *Validator) ValidateFiles(ctx context.Context, paths []string) (Report, error) {
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = v.validateFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Total: len(results), Results: results}
	for _, r := range results {
		switch {
		case r.Failure != "":
			report.Failed++
		case r.Valid:
			report.Valid++
		default:
			report.Invalid++
		}
	}
	v.log.InfoContext(ctx, "batch validated",
		slog.Int("total", report.Total),
		slog.Int("invalid", report.Invalid),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

func (v *Validator) validateFile(path string) Result {
	var (
		r   io.Reader
		err error
	)
	if path == Stdin {
		r = v.stdin
	} else {
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return Result{Source: path, Failure: err.Error()}
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	rec, err := Decode(r)
	if err != nil {
		v.log.Debug("record not decoded", slog.String("source", path), logger.Error(err))
		return Result{Source: path, Failure: err.Error()}
	}
	return v.ValidateRecord(path, rec)
}

// ValidateRecord checks one decoded record.
func (v *Validator) ValidateRecord(source string, rec Record) Result {
	id := rec.Form
	if v.form != "" {
		id = v.form
	}

	f, err := forms.Lookup(id)
	if err != nil {
		return Result{Source: source, Form: id, Failure: err.Error()}
	}
	if v.now != nil {
		f = f.WithClock(v.now)
	}

	errs := f.ValidateAll(rec.Values, rec.Optional...)
	res := Result{Source: source, Form: f.ID, Valid: errs.IsEmpty()}
	if !res.Valid {
		res.Errors = errs
		v.log.Debug("record invalid", slog.String("source", source), logger.Form(f.ID), logger.FieldErrors(errs))
	}
	return res
}

// Write encodes the report as YAML.
func (r Report) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
