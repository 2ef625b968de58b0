package validate

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Fields returns the names of the failing fields in report order.
func (e Errs) Fields() []string {
	out := make([]string, len(e))
	for i, ef := range e {
		out[i] = ef.Field
	}
	return out
}

// Collect flattens ozzo field errors into Errs, ordered by order.
// Fields missing from order follow in name order. ok is false when err is
// not a set of field errors (nil or an internal rule failure).
func Collect(err error, order ...string) (Errs, bool) {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return nil, false
	}

	rank := make(map[string]int, len(order))
	for i, f := range order {
		rank[f] = i
	}
	out := make(Errs, 0, len(fieldErrs))
	for field, ferr := range fieldErrs {
		out = append(out, ErrField{Field: field, Msg: ferr.Error()})
	}
	sort.Slice(out, func(i, j int) bool {
		ri, iok := rank[out[i].Field]
		rj, jok := rank[out[j].Field]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return out[i].Field < out[j].Field
		}
	})
	return out, true
}
