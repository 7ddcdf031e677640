package kivo

import kivoerrors "github.com/arvindh-k/kivo/pkg/errors"

// emptyArgument is the error Set/Get/Remove return when called with an
// empty key or value.
func emptyArgument(field string) error {
	return kivoerrors.NewEmptyArgumentError(field)
}
