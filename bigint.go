// Package bigint is a backend-agnostic arbitrary-precision signed integer
// abstraction, used as the numeric substrate for public-key cryptographic
// operations (modular exponentiation, modular inversion).
//
// Values are constructed through a Registry, which holds the single active
// backend. Two backends exist: the native one over the platform's own
// unbounded-integer primitive, and a fallback over a general-purpose limb
// engine. Both produce bit-identical results for every operation of the
// contract; callers only ever see the Value interface.
//
// The operations themselves provide no constant-time or side-channel
// guarantees, and no memory holding sensitive values is wiped on release.
package bigint

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/openpgpjs/bigint/internal/fallback"
	"github.com/openpgpjs/bigint/internal/native"
	"github.com/openpgpjs/bigint/internal/values"
)

type (
	// Value is the abstract integer contract; see the internal values
	// package for the full operation set.
	Value = values.Value

	// Implementation is a backend: a factory for Values of one concrete
	// type.
	Implementation = values.Implementation

	// Endian selects the byte order of Value.Encode.
	Endian = values.Endian
)

const (
	BigEndian    = values.BigEndian
	LittleEndian = values.LittleEndian
)

var (
	ErrInvalidInput             = values.ErrInvalidInput
	ErrDivisionByZero           = values.ErrDivisionByZero
	ErrInverseDoesNotExist      = values.ErrInverseDoesNotExist
	ErrImplementationAlreadySet = values.ErrImplementationAlreadySet
	ErrPrecisionLoss            = values.ErrPrecisionLoss
)

// Native returns the backend backed by the platform's unbounded-integer
// primitive. It is the default implementation of the package-level registry.
func Native() Implementation { return native.Implementation }

// Fallback returns the backend backed by the portable limb engine. It exists
// for platforms without a native primitive and for parity testing; installing
// it via SetImplementation(Fallback(), true) is the sanctioned override.
func Fallback() Implementation { return fallback.Implementation }

// Registry holds the single active backend servicing value construction.
// Installation is write-once-then-read-many: installing is guarded, and
// swapping backends while values built under the previous one are still in
// use is the caller's responsibility to avoid.
//
// Composition roots that prefer explicit wiring over process-wide state can
// construct their own Registry and pass it down.
type Registry struct {
	mu   sync.RWMutex
	impl Implementation
}

// NewRegistry returns a registry with the given backend pre-installed.
func NewRegistry(impl Implementation) *Registry {
	return &Registry{impl: impl}
}

// SetImplementation installs impl as the registry's active backend. If a
// backend is already installed and replace is false, it fails with
// ErrImplementationAlreadySet; passing replace=true is the explicit
// test-time override.
func (r *Registry) SetImplementation(impl Implementation, replace bool) error {
	if impl == nil {
		return fmt.Errorf("%w: nil implementation", ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.impl != nil && !replace {
		return fmt.Errorf("%w: %s is active", ErrImplementationAlreadySet, r.impl.Name())
	}
	r.impl = impl
	logrus.WithField("backend", impl.Name()).Debug("big integer implementation installed")
	return nil
}

// Implementation returns the registry's active backend.
func (r *Registry) Implementation() Implementation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.impl
}

// New constructs a value via the active backend. Accepted inputs: a decimal
// or 0x-prefixed hex string, any Go integer kind, a big-endian unsigned
// byte slice, or another Value (which is cloned). Anything else, including
// nil, fails with ErrInvalidInput.
func (r *Registry) New(v any) (Value, error) {
	impl := r.Implementation()
	if impl == nil {
		return nil, fmt.Errorf("%w: no implementation installed", ErrInvalidInput)
	}

	switch t := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: cannot construct a value from nil", ErrInvalidInput)
	case string:
		return impl.FromString(t)
	case int:
		return impl.FromInt64(int64(t)), nil
	case int8:
		return impl.FromInt64(int64(t)), nil
	case int16:
		return impl.FromInt64(int64(t)), nil
	case int32:
		return impl.FromInt64(int64(t)), nil
	case int64:
		return impl.FromInt64(t), nil
	case uint8:
		return impl.FromInt64(int64(t)), nil
	case uint16:
		return impl.FromInt64(int64(t)), nil
	case uint32:
		return impl.FromInt64(int64(t)), nil
	case uint:
		return fromUint64(impl, uint64(t)), nil
	case uint64:
		return fromUint64(impl, t), nil
	case []byte:
		return impl.FromBytes(t), nil
	case Value:
		return t.Clone(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, v)
	}
}

func fromUint64(impl Implementation, v uint64) Value {
	if v <= 1<<63-1 {
		return impl.FromInt64(int64(v))
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return impl.FromBytes(b[:])
}

// MustNew is New, panicking on failure. For tests and static initializers.
func (r *Registry) MustNew(v any) Value {
	w, err := r.New(v)
	if err != nil {
		panic(err)
	}
	return w
}

func (r *Registry) FromString(s string) (Value, error) {
	impl := r.Implementation()
	if impl == nil {
		return nil, fmt.Errorf("%w: no implementation installed", ErrInvalidInput)
	}
	return impl.FromString(s)
}

func (r *Registry) FromInt64(v int64) Value {
	return r.Implementation().FromInt64(v)
}

func (r *Registry) FromBytes(b []byte) Value {
	return r.Implementation().FromBytes(b)
}

// The package-level registry, initialized once with the native backend. In
// concurrent hosts any override must happen-before concurrent construction.
var defaultRegistry = NewRegistry(native.Implementation)

// Default returns the package-level registry.
func Default() *Registry { return defaultRegistry }

// New constructs a value via the package-level registry; see Registry.New.
func New(v any) (Value, error) { return defaultRegistry.New(v) }

// MustNew is New, panicking on failure.
func MustNew(v any) Value { return defaultRegistry.MustNew(v) }

func FromString(s string) (Value, error) { return defaultRegistry.FromString(s) }
func FromInt64(v int64) Value            { return defaultRegistry.FromInt64(v) }
func FromBytes(b []byte) Value           { return defaultRegistry.FromBytes(b) }

// SetImplementation overrides the package-level registry's backend; see
// Registry.SetImplementation.
func SetImplementation(impl Implementation, replace bool) error {
	return defaultRegistry.SetImplementation(impl, replace)
}
