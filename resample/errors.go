// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports mismatched, empty or too-short inputs
	// and out-of-range parameters.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateInput reports inputs for which a statistic is
	// undefined, such as zero variance or a perfect correlation.
	ErrDegenerateInput = errors.New("degenerate input")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func degeneratef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDegenerateInput, fmt.Sprintf(format, args...))
}
