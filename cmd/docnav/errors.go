package main

import (
	stderrors "errors"

	"github.com/vango-dev/docnav/internal/errors"
	"github.com/vango-dev/docnav/pkg/manifest"
	"github.com/vango-dev/docnav/pkg/nav"
)

// codedError maps manifest and validation failures to their registered
// error codes at the command boundary, so they print with detail, hint,
// and doc URL. Already-coded and unclassified errors pass through.
func codedError(err error) error {
	if err == nil {
		return nil
	}
	var de *errors.Error
	if stderrors.As(err, &de) {
		return err
	}

	var ve *nav.ValidationError
	if stderrors.As(err, &ve) {
		coded := errors.FromError(err, validationCode(ve)).WithDetail(ve.Error())
		if ve.Path != "" {
			coded = coded.WithPath(ve.Path)
		}
		return coded
	}

	switch {
	case stderrors.Is(err, manifest.ErrDecode):
		return errors.FromError(err, "N021").WithDetail(err.Error())
	case stderrors.Is(err, manifest.ErrRead):
		return errors.FromError(err, "N020").WithDetail(err.Error())
	}
	return err
}

// validationCode picks the registered code for a build-time violation.
func validationCode(ve *nav.ValidationError) string {
	switch {
	case stderrors.Is(ve, nav.ErrDuplicatePath):
		return "N001"
	case stderrors.Is(ve, nav.ErrSectionHeaderShape):
		return "N002"
	case stderrors.Is(ve, nav.ErrMissingField):
		return "N003"
	default:
		return "N004"
	}
}
