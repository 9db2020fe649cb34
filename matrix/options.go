// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the checked constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options only affect matrices built through NewDense and FromRows. The
//     unchecked constructors (New, FromGrid, Empty) always use the defaults.
//   - The numeric policy is a per-instance flag: every matrix derived from a
//     source (Clone, arithmetic results, Transpose, ...) inherits it.
package matrix

// DefaultValidateNaNInf toggles finite-only validation in Set, Apply and the
// checked facades. Off by default: scalar division by zero is expected to
// produce ±Inf/NaN, exactly as IEEE-754 prescribes.
const DefaultValidateNaNInf = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// ValidateNaNInf reports whether the finite-only policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithValidateNaNInf enables strict finite-value validation.
//
// Behavior highlights:
//   - FromRows rejects grids holding NaN/±Inf.
//   - Set and Apply reject non-finite values on the resulting matrix.
//   - Checked facades reject results that turned non-finite (e.g. DivScalar by 0).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves option setters against documented defaults.
// Last writer wins.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions starts from the defaults and applies setters in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
