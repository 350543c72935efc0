package dfe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMissingAttribute is returned (wrapped in an AttrError) when a required
// attribute is absent or empty.
var ErrMissingAttribute = errors.New("missing attribute")

// AttrError reports an attribute that could not be used.
type AttrError struct {
	Elem  string // element kind, e.g. "spr"
	Name  string // value of the element's name attribute, if any
	Attr  string
	Value string
	Err   error
}

func (e *AttrError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("<%s name=%q> attribute %s=%q: %v", e.Elem, e.Name, e.Attr, e.Value, e.Err)
	}
	return fmt.Sprintf("<%s> attribute %s=%q: %v", e.Elem, e.Attr, e.Value, e.Err)
}

func (e *AttrError) Unwrap() error { return e.Err }

// atoi converts a numeric attribute. Surrounding whitespace is tolerated.
func atoi(elem, name, attr, value string) (int, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, &AttrError{Elem: elem, Name: name, Attr: attr, Value: value, Err: ErrMissingAttribute}
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &AttrError{Elem: elem, Name: name, Attr: attr, Value: value, Err: err}
	}
	return n, nil
}
