package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	cases := []struct {
		err  error
		want Code
	}{
		{nil, SC200},
		{New(ErrValidation, "bad"), SC400},
		{New(ErrDecode, "bad image"), SC400},
		{New(ErrAuth, "nope"), SC401},
		{New(ErrNotFound, "missing"), SC404},
		{New(ErrConflict, "dup"), SC409},
		{Wrap(ErrStorage, "db", errors.New("boom")), SC500},
		{Wrap(ErrInference, "model", errors.New("boom")), SC500},
		{errors.New("plain"), SC500},
		{fmt.Errorf("register: %w", New(ErrConflict, "dup")), SC409},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CodeOf(tc.err), "err=%v", tc.err)
	}
}

func TestErrorWrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrStorage, "Registration failed", cause)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrAuth)
	assert.Equal(t, "Registration failed: disk full", err.Error())
}

func TestDescOf(t *testing.T) {
	assert.Equal(t, "Passwords do not match", DescOf(New(ErrValidation, "Passwords do not match"), "x"))
	assert.Equal(t, "fallback", DescOf(errors.New("raw"), "fallback"))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, SC200.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, SC400.HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, SC401.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, SC404.HTTPStatus())
	assert.Equal(t, http.StatusConflict, SC409.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Code("SC999").HTTPStatus())
}
