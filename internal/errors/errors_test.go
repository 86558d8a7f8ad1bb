package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct{ code int }

func (e *codeError) Error() string { return "code error" }

func TestIsAny(t *testing.T) {
	first := New("first")
	second := New("second")

	assert.True(t, IsAny(Wrap(second, "context"), first, second))
	assert.False(t, IsAny(io.EOF, first, second))
	assert.False(t, IsAny(nil, first))
}

func TestAsType(t *testing.T) {
	err := Wrap(&codeError{code: 7}, "wrapped")

	target, ok := AsType[*codeError](err)
	assert.True(t, ok)
	assert.Equal(t, 7, target.code)

	_, ok = AsType[*codeError](io.EOF)
	assert.False(t, ok)
}

func TestCauseUnwrapsStack(t *testing.T) {
	base := New("base")

	assert.Equal(t, base, Cause(Wrapf(WithStack(base), "listing %d", 1)))
}
