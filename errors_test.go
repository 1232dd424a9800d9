package katsuyou

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err     error
		code    Code
		request bool
	}{
		{nil, "", false},
		{ErrNoKanaOrKanji, CodeNoKanaOrKanji, true},
		{fmt.Errorf("%w: ending %q", ErrNotAVerb, "べ"), CodeNotAVerb, true},
		{fmt.Errorf("wrapped: %w", ErrNoPoliteForm), CodeNoPoliteForm, true},
		{ErrUnknownVerb, CodeUnknownVerb, true},
		{ErrInvalidIndex, CodeInvalidIndex, false},
		{errors.New("disk on fire"), CodeInternal, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, ErrorCode(tt.err), "%v", tt.err)
		assert.Equal(t, tt.request, IsRequestError(tt.err), "%v", tt.err)
	}
}
