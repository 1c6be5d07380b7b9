// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import (
	"reflect"
)

// ModelType is a typed key for a model exposed by a ProjectConnection.
// The name selects the model; T is the Go type its value must have.
type ModelType[T any] struct {
	name string
}

// NewModelType returns the key for the model called name with value type T.
func NewModelType[T any](name string) ModelType[T] {
	return ModelType[T]{name: name}
}

// Name returns the model name sent to the connection.
func (t ModelType[T]) Name() string {
	return t.name
}

func (t ModelType[T]) String() string {
	return t.name + "(" + reflect.TypeFor[T]().String() + ")"
}

// convert asserts v to T. A nil v yields the zero T.
func (t ModelType[T]) convert(v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}
	m, ok := v.(T)
	if !ok {
		return zero, &ModelTypeError{Name: t.name, Want: reflect.TypeFor[T]().String(), Got: v}
	}
	return m, nil
}

// typedBuilder narrows an untyped connection builder to T.
type typedBuilder[T any] struct {
	inner ModelBuilder[any]
	t     ModelType[T]
}

func (b typedBuilder[T]) Get(handler ResultHandler[T]) error {
	return b.inner.Get(typedHandler[T]{next: handler, t: b.t})
}

// typedHandler converts each untyped result before forwarding it.
// Failures pass through unchanged.
type typedHandler[T any] struct {
	next ResultHandler[T]
	t    ModelType[T]
}

func (h typedHandler[T]) OnComplete(result any) {
	m, err := h.t.convert(result)
	if err != nil {
		h.next.OnFailure(err)
		return
	}
	h.next.OnComplete(m)
}

func (h typedHandler[T]) OnFailure(err error) {
	h.next.OnFailure(err)
}
