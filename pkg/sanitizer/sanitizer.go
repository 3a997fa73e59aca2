package sanitizer

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"reflect"
	"slices"

	"github.com/dmitrymomot/structsan/pkg/fieldaccess"
	"github.com/dmitrymomot/structsan/pkg/logger"
)

// Accessor enumerates, reads and writes the named fields of records of type T.
// fieldaccess.StructAccessor and fieldaccess.Registry implement it.
type Accessor[T any] interface {
	Fields(record T) []fieldaccess.Field
	Get(record T, name string) (any, error)
	Set(record T, name string, value any) error
}

// Sanitizer applies a constraint set to records of type T in place.
// It is immutable after New and safe for concurrent use on different records.
type Sanitizer[T any] struct {
	constraints Set
	severity    Severity
	accessor    Accessor[T]
	log         *slog.Logger
}

// Option configures a Sanitizer.
type Option func(*options)

type options struct {
	severity Severity
	logger   *slog.Logger
	accessor any
}

// WithSeverity sets the validation severity. The default is Relaxed.
func WithSeverity(s Severity) Option {
	return func(o *options) { o.severity = s }
}

// WithLogger sets the logger for repairs and field errors. Records get the
// record type and severity attached; the component name is up to the logger
// (see logger.WithComponent). Nil loggers are ignored; by default nothing is
// logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAccessor replaces the default reflection-based accessor.
// It is required when T is not a pointer to a struct.
func WithAccessor[T any](a Accessor[T]) Option {
	return func(o *options) {
		if a != nil {
			o.accessor = a
		}
	}
}

// New creates a sanitizer for records of type T.
//
// constraints is copied. Without WithAccessor, T must be a pointer to a
// struct; fields are then matched by Go field name or `sanitize` tag.
func New[T any](constraints Set, opts ...Option) (*Sanitizer[T], error) {
	o := options{severity: Relaxed}
	for _, opt := range opts {
		opt(&o)
	}

	var acc Accessor[T]
	switch a := o.accessor.(type) {
	case nil:
		sa, err := fieldaccess.Struct[T]()
		if err != nil {
			return nil, err
		}
		acc = sa
	case Accessor[T]:
		acc = a
	default:
		return nil, fmt.Errorf("%w: %T is not an accessor for %s", ErrAccessorType, o.accessor, reflect.TypeFor[T]())
	}

	log := o.logger
	if log == nil {
		log = logger.Discard()
	}

	return &Sanitizer[T]{
		constraints: constraints.Clone(),
		severity:    o.severity,
		accessor:    acc,
		log: log.With(
			logger.RecordType(reflect.TypeFor[T]().String()),
			logger.Severity(o.severity),
		),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](constraints Set, opts ...Option) *Sanitizer[T] {
	s, err := New[T](constraints, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Severity returns the configured validation severity.
func (s *Sanitizer[T]) Severity() Severity {
	return s.severity
}

// Sanitize applies the constraints to record in place.
//
// A nil record is a no-op. Every constrained field is attempted even when
// others fail; the failures are returned together as Errors.
func (s *Sanitizer[T]) Sanitize(record T) error {
	if isAbsent(record) {
		return nil
	}
	return s.sanitize(record)
}

// SanitizeAll sanitizes records in order. Every record is attempted; the
// first failure is returned, annotated with the record's index.
func (s *Sanitizer[T]) SanitizeAll(records []T) error {
	return s.SanitizeSeq(slices.Values(records))
}

// SanitizeSeq is SanitizeAll for an iterator.
func (s *Sanitizer[T]) SanitizeSeq(records iter.Seq[T]) error {
	var first error
	i := 0
	for record := range records {
		if err := s.Sanitize(record); err != nil {
			attr := logger.Error(err)
			var errs Errors
			if errors.As(err, &errs) {
				attr = logger.Errors(errs...)
			}
			s.log.Warn("record sanitized with errors", logger.Record(i), attr)
			if first == nil {
				first = fmt.Errorf("record %d: %w", i, err)
			}
		}
		i++
	}
	return first
}
