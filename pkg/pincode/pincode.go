package pincode

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrNotFound    = errors.New("pincode not found")
	ErrInvalidCode = errors.New("pincode must be 6 digits")
)

var codeRegex = regexp.MustCompile(`^\d{6}$`)

// Location is the postal region a PIN code belongs to.
type Location struct {
	City     string `yaml:"city" json:"city"`
	District string `yaml:"district" json:"district"`
	State    string `yaml:"state" json:"state"`
}

// Resolver looks up PIN codes.
type Resolver interface {
	Resolve(ctx context.Context, code string) (Location, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, code string) (Location, error)

func (f ResolverFunc) Resolve(ctx context.Context, code string) (Location, error) {
	return f(ctx, code)
}

var table = map[string]Location{
	"110001": {City: "New Delhi", District: "Central Delhi", State: "Delhi"},
	"400001": {City: "Mumbai", District: "Mumbai City", State: "Maharashtra"},
	"560001": {City: "Bangalore", District: "Bangalore Urban", State: "Karnataka"},
	"600001": {City: "Chennai", District: "Chennai", State: "Tamil Nadu"},
	"700001": {City: "Kolkata", District: "Kolkata", State: "West Bengal"},
	"500001": {City: "Hyderabad", District: "Hyderabad", State: "Telangana"},
	"411001": {City: "Pune", District: "Pune", State: "Maharashtra"},
	"380001": {City: "Ahmedabad", District: "Ahmedabad", State: "Gujarat"},
}

// Valid reports whether code has the six-digit PIN shape.
func Valid(code string) bool {
	return codeRegex.MatchString(code)
}

// Codes returns the PIN codes known to the built-in table.
func Codes() []string {
	codes := make([]string, 0, len(table))
	for c := range table {
		codes = append(codes, c)
	}
	return codes
}

type static struct{}

// Static returns a resolver backed by the built-in table.
func Static() Resolver {
	return static{}
}

func (static) Resolve(ctx context.Context, code string) (Location, error) {
	if err := ctx.Err(); err != nil {
		return Location{}, err
	}
	if !Valid(code) {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	loc, ok := table[code]
	if !ok {
		return Location{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	return loc, nil
}
