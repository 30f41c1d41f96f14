package model

import "errors"

var (
	// InvalidParameterErr signals a parameter outside the range the computation accepts e.g. k.
	InvalidParameterErr = errors.New("invalid parameter")
	// ShapeMismatchErr signals inputs whose lengths do not line up.
	ShapeMismatchErr = errors.New("shape mismatch")
	// DegenerateColumnErr signals a feature column with zero variance.
	DegenerateColumnErr = errors.New("degenerate column")
)
