package maybe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/adt/pkg/adt/either"
	"github.com/ib-77/adt/pkg/adt/response"
)

func TestToEither(t *testing.T) {
	t.Parallel()

	assert.Equal(t, either.Preferred[int](4), ToEither(Present(4), -1))
	assert.Equal(t, either.Alternative[int, int](-1), ToEither(Absent[int](), -1))
}

func TestFromEither(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Present(4), FromEither(either.Preferred[string](4)))
	assert.Equal(t, Absent[int](), FromEither(either.Alternative[string, int]("nope")))
}

func TestFromResponse(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	assert.Equal(t, Present(4), FromResponse(response.Resolved[error](4)))
	assert.Equal(t, Absent[int](), FromResponse(response.Pending[error, int]()))
	assert.Equal(t, Absent[int](), FromResponse(response.Failed[error, int](boom)))
}

func TestToResponse(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	assert.Equal(t, response.Resolved[error](4), ToResponseAsPending[error](Present(4)))
	assert.Equal(t, response.Pending[error, int](), ToResponseAsPending[error](Absent[int]()))

	assert.Equal(t, response.Resolved[error](4), ToResponseAsFailed(Present(4), boom))
	assert.Equal(t, response.Failed[error, int](boom), ToResponseAsFailed(Absent[int](), boom))
}
