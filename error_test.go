package somnolent_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/somnolent"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := somnolent.Errorf(somnolent.EUNKNOWNENTITY, "unknown entity %q", "zzzz")

	assert.Equal(t, somnolent.EUNKNOWNENTITY, somnolent.ErrorCode(err))
	assert.Equal(t, "unknown entity \"zzzz\"", somnolent.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, somnolent.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, somnolent.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("locate: %w", somnolent.Errorf(somnolent.ENOSTORY, "no story link"))

	assert.Equal(t, somnolent.ENOSTORY, somnolent.ErrorCode(err))
	assert.Equal(t, "no story link", somnolent.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, somnolent.EINTERNAL, somnolent.ErrorCode(err))
	assert.Equal(t, "Internal error.", somnolent.ErrorMessage(err))
}
