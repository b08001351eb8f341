// Package query folds optional filter predicates into a single gorm scope.
package query

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/yungbote/exocatalog/internal/pkg/errors"
)

type Op string

const (
	Eq  Op = "eq"
	Lt  Op = "lt"
	Lte Op = "lte"
	Gt  Op = "gt"
	Gte Op = "gte"
)

var sqlOps = map[Op]string{
	Eq:  "=",
	Lt:  "<",
	Lte: "<=",
	Gt:  ">",
	Gte: ">=",
}

var fieldPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)?$`)

type Predicate struct {
	Field string
	Op    Op
	Value any
}

type Builder struct {
	joins  []string
	preds  []Predicate
	having []Predicate
	group  string
	sel    string
	errs   []error
}

func New() *Builder { return &Builder{} }

// Select restricts the projection, typically to "table.*" when joining.
func (b *Builder) Select(columns string) *Builder {
	b.sel = columns
	return b
}

func (b *Builder) Join(clause string) *Builder {
	b.joins = append(b.joins, clause)
	return b
}

// Where adds field <op> value unless value is nil or a nil pointer.
func (b *Builder) Where(field string, op Op, value any) *Builder {
	v, ok := resolve(value)
	if !ok {
		return b
	}
	b.preds = append(b.preds, Predicate{Field: field, Op: op, Value: v})
	return b
}

// Numeric is Where for a raw string bound that must parse as a number.
func (b *Builder) Numeric(field string, op Op, raw *string) *Builder {
	if raw == nil {
		return b
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %s must be numeric, got %q", apperrors.ErrInvalidFilter, field, *raw))
		return b
	}
	return b.Where(field, op, n)
}

// Integer is Where for a raw string that must parse as a base-10 integer.
func (b *Builder) Integer(field string, op Op, raw *string) *Builder {
	if raw == nil {
		return b
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %s must be an integer, got %q", apperrors.ErrInvalidFilter, field, *raw))
		return b
	}
	return b.Where(field, op, n)
}

// GroupHaving groups by column and keeps groups whose aggregate satisfies op value.
func (b *Builder) GroupHaving(column, aggregate string, op Op, value any) *Builder {
	v, ok := resolve(value)
	if !ok {
		return b
	}
	b.group = column
	b.having = append(b.having, Predicate{Field: aggregate, Op: op, Value: v})
	return b
}

func (b *Builder) Predicates() []Predicate {
	out := make([]Predicate, len(b.preds))
	copy(out, b.preds)
	return out
}

// Build validates every predicate and returns the combined scope.
func (b *Builder) Build() (func(*gorm.DB) *gorm.DB, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	for _, p := range b.preds {
		if err := validate(p); err != nil {
			return nil, err
		}
	}
	for _, p := range b.having {
		if _, ok := sqlOps[p.Op]; !ok {
			return nil, fmt.Errorf("%w: unknown operator %q", apperrors.ErrInvalidFilter, p.Op)
		}
	}

	joins := append([]string(nil), b.joins...)
	preds := b.Predicates()
	having := append([]Predicate(nil), b.having...)
	group, sel := b.group, b.sel

	return func(q *gorm.DB) *gorm.DB {
		if sel != "" {
			q = q.Select(sel)
		}
		for _, j := range joins {
			q = q.Joins(j)
		}
		for _, p := range preds {
			q = q.Where(fmt.Sprintf("%s %s ?", p.Field, sqlOps[p.Op]), p.Value)
		}
		if group != "" {
			q = q.Group(group)
			for _, h := range having {
				q = q.Having(fmt.Sprintf("%s %s ?", h.Field, sqlOps[h.Op]), h.Value)
			}
		}
		return q
	}, nil
}

func validate(p Predicate) error {
	if _, ok := sqlOps[p.Op]; !ok {
		return fmt.Errorf("%w: unknown operator %q", apperrors.ErrInvalidFilter, p.Op)
	}
	if !fieldPattern.MatchString(p.Field) {
		return fmt.Errorf("%w: bad field %q", apperrors.ErrInvalidFilter, p.Field)
	}
	return nil
}

func resolve(value any) (any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		return rv.Elem().Interface(), true
	}
	return value, true
}
