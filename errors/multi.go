package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no non-nil error is given, nil is returned. If exactly one non-nil error
// is given it is returned as it is. In any other case an error is returned
// that represents all given errors.
func Append(errs ...error) error {
	var res []error
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		// Flatten to simplify unpacking and comparison.
		if m, ok := e.(*multiErr); ok {
			res = append(res, m.errs...)
		} else {
			res = append(res, e)
		}
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return &multiErr{errs: res}
	}
}

type multiErr struct {
	errs []error
}

func (m *multiErr) Error() string {
	msgs := make([]string, len(m.errs))
	for i, e := range m.errs {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d errors occurred:\n\t* %s", len(m.errs), strings.Join(msgs, "\n\t* "))
}

// Unpack returns all errors that this instance represents.
func (m *multiErr) Unpack() []error {
	return m.errs
}

// Code returns the code of the first error, consistent with a fail-fast
// approach.
func (m *multiErr) Code() uint32 {
	return Code(m.errs[0])
}

type unpacker interface {
	Unpack() []error
}
