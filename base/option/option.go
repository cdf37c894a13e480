// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package option provides optional (nullable) types.
package option

// Option represents an optional (nullable) type. If Valid is true, Option
// represents Value. Otherwise, it represents a null/unset/invalid value.
type Option[T any] struct {
	Value T `label:"{Valid}"`
	Valid bool
}

// Of returns an [Option] value set to the given value.
func Of[T any](v T) Option[T] {
	return Option[T]{Value: v, Valid: true}
}

// IsValid returns whether the value is valid.
func (o Option[T]) IsValid() bool {
	return o.Valid
}

// Or returns the value of the option if it is valid,
// and the given alternative otherwise.
func (o Option[T]) Or(or T) T {
	if !o.Valid {
		return or
	}
	return o.Value
}
