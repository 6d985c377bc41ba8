package panicutil

import (
	"github.com/sourcegraph/conc/panics"
)

// Invoke runs the function, recovering from panics and returning them as
// errors. A recovered panic is returned as *panics.ErrRecovered, with the
// original panic value and stack attached. If the function returns normally,
// Invoke returns its error value unchanged.
func Invoke(f func() error) error {
	var err error
	if r := panics.Try(func() { err = f() }); r != nil {
		return r.AsError()
	}
	return err
}
