package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("post %s not found", "abc")))
	assert.Equal(t, KindConflict, KindOf(Conflict("follow request already exists")))
	assert.Equal(t, KindInvalidState, KindOf(InvalidState("request already decided")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("not your notification")))
	assert.Equal(t, KindInvalidArgument, KindOf(InvalidArgument("bad filter")))

	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("failed to decide follow: %w", NotFound("follow edge not found"))

	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindConflict))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: post abc not found", NotFound("post %s not found", "abc").Error())

	wrapped := &Error{Kind: KindConflict, Message: "username taken", Err: errors.New("dup key")}
	assert.Equal(t, "CONFLICT: username taken: dup key", wrapped.Error())
	assert.EqualError(t, errors.Unwrap(wrapped), "dup key")
}
