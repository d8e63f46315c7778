package imms

import (
	"errors"
	"fmt"

	"github.com/npillmayer/imms/internal/ftree"
)

var (
	// ErrEmpty signals an end-access operation on a sequence with no elements.
	ErrEmpty = errors.New("imms: sequence is empty")
	// ErrOutOfRange signals an index outside the operation's documented
	// inclusive or exclusive range, after negative-index normalization.
	ErrOutOfRange = errors.New("imms: index out of range")
	// ErrNullArgument signals a required callback or input iterable was
	// absent.
	ErrNullArgument = errors.New("imms: argument must not be nil")
	// ErrBuilderSealed signals a fragment was appended or prepended to a
	// Builder after its Seq method was already called.
	ErrBuilderSealed = errors.New("imms: builder is sealed")
)

func mapTreeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ftree.ErrEmpty):
		return ErrEmpty
	case errors.Is(err, ftree.ErrOutOfRange):
		return ErrOutOfRange
	default:
		return fmt.Errorf("imms: %w", err)
	}
}
