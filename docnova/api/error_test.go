package api

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Statuses(t *testing.T) {
	cases := map[int]Category{
		400: CategoryInvalidInput,
		401: CategorySessionExpired,
		403: CategoryForbidden,
		404: CategoryNotFound,
		500: CategoryServerError,
		502: CategoryUnavailable,
		503: CategoryUnavailable,
		504: CategoryUnavailable,
	}

	for status, want := range cases {
		assert.Equal(t, want, Classify(status, KindStatus), "status %d", status)
	}
}

func TestClassify_UnknownStatusIsGeneric(t *testing.T) {
	assert.Equal(t, CategoryGeneric, Classify(418, KindStatus))
	assert.Equal(t, CategoryGeneric, Classify(409, KindStatus))
}

func TestClassify_NetworkKindsIgnoreStatus(t *testing.T) {
	assert.Equal(t, CategoryTimeout, Classify(0, KindTimeout))
	assert.Equal(t, CategoryTimeout, Classify(500, KindTimeout))
	assert.Equal(t, CategoryConnection, Classify(0, KindUnreachable))
}

func TestErrSessionExpired(t *testing.T) {
	expired := &AuthError{RequestError: RequestError{StatusCode: 401, Category: CategorySessionExpired}}
	assert.True(t, errors.Is(expired, ErrSessionExpired))

	other := &SearchError{RequestError: RequestError{StatusCode: 500, Category: CategoryServerError}}
	assert.False(t, errors.Is(other, ErrSessionExpired))
}

func TestServerMessage(t *testing.T) {
	assert.Equal(t, "boom", serverMessage([]byte(`{"message":"boom","code":42}`)))
	assert.Equal(t, "", serverMessage([]byte(`{"code":42}`)))
	assert.Equal(t, "", serverMessage(nil))
	assert.Equal(t, "", serverMessage([]byte(`not json`)))
}
