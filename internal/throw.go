package internal

import (
	"runtime"

	"github.com/pkg/errors"
)

// The geometry is written as plain value-in, value-out functions. The few
// inputs it cannot handle (non-finite coordinates) panic instead of growing an
// error return on every helper, and the public API recovers to convert to an
// error.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError(errors.Errorf(format, args...)))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
