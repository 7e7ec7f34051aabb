package record

import (
	"fmt"

	"github.com/arloliu/flowrec/errs"
)

// EncodeError reports that a record could not be converted to its wire form.
//
// Encoding is deterministic: the same record fails the same way every time, so
// callers should fix the offending value or drop the record rather than retry.
type EncodeError struct {
	// TemplateID is the template of the record that failed.
	TemplateID uint16
	// Field is the element name of the failing field, empty when the failure
	// is not tied to one field.
	Field string
	// Err is the underlying cause.
	Err error
}

func (e *EncodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("error while generating the bytes of template %d: %v", e.TemplateID, e.Err)
	}

	return fmt.Sprintf("error while generating the bytes of template %d, field %s: %v", e.TemplateID, e.Field, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// Is makes every EncodeError match errs.ErrEncodeFailure.
func (e *EncodeError) Is(target error) bool {
	return target == errs.ErrEncodeFailure
}
