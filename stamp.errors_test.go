package stamp

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireCustomError(t *testing.T, err error) *cuserr.CustomError {
	t.Helper()
	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr), "expected *cuserr.CustomError, got %T", err)
	return customErr
}

func assertMetadata(t *testing.T, err *cuserr.CustomError, key, want string) {
	t.Helper()
	got, ok := err.GetMetadata(key)
	assert.True(t, ok, "metadata %q missing", key)
	assert.Equal(t, want, got)
}

func TestNewInvalidBoundaryError(t *testing.T) {
	cause := errors.New("empty token")
	err := NewInvalidBoundaryError("start", cause)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidBoundary)
	assert.True(t, errors.Is(err, ErrInvalidBoundary))
	assert.True(t, errors.Is(err, cause))

	customErr := requireCustomError(t, err)
	assertMetadata(t, customErr, MetaKeyBoundary, "start")
}

func TestNewRequiredFieldMissingError(t *testing.T) {
	err := NewRequiredFieldMissingError("greet", "who")

	assert.True(t, errors.Is(err, ErrRequiredFieldMissing))
	customErr := requireCustomError(t, err)
	assertMetadata(t, customErr, MetaKeyElement, "greet")
	assertMetadata(t, customErr, MetaKeyField, "who")
}

func TestNewAttributeConversionError(t *testing.T) {
	cause := errors.New("strconv failure")
	err := NewAttributeConversionError(ElementCounter, AttrValue, "abc", cause)

	assert.True(t, errors.Is(err, ErrAttributeConversion))
	assert.True(t, errors.Is(err, cause))
	customErr := requireCustomError(t, err)
	assertMetadata(t, customErr, MetaKeyElement, ElementCounter)
	assertMetadata(t, customErr, MetaKeyField, AttrValue)
	assertMetadata(t, customErr, MetaKeyValue, "abc")
}

func TestRegistryErrors(t *testing.T) {
	t.Run("duplicate element", func(t *testing.T) {
		err := NewDuplicateElementError(ElementGUID)
		assert.True(t, errors.Is(err, ErrDuplicateElement))
		assertMetadata(t, requireCustomError(t, err), MetaKeyElement, ElementGUID)
	})

	t.Run("invalid descriptor", func(t *testing.T) {
		err := NewInvalidDescriptorError("x", ReasonMissingStatic)
		assert.True(t, errors.Is(err, ErrInvalidDescriptor))
		customErr := requireCustomError(t, err)
		assertMetadata(t, customErr, MetaKeyElement, "x")
		assertMetadata(t, customErr, MetaKeyReason, ReasonMissingStatic)
	})
}

func TestBuildAndRenderErrors(t *testing.T) {
	cause := errors.New("boom")

	buildErr := NewBuildError("x", cause)
	assert.True(t, errors.Is(buildErr, ErrBuildFailed))
	assert.True(t, errors.Is(buildErr, cause))
	assertMetadata(t, requireCustomError(t, buildErr), MetaKeyElement, "x")

	renderErr := NewRenderError(ElementCounter, cause)
	assert.True(t, errors.Is(renderErr, ErrRenderFailed))
	assert.True(t, errors.Is(renderErr, cause))
	assertMetadata(t, requireCustomError(t, renderErr), MetaKeyElement, ElementCounter)
}

func TestCounterStoreErrors(t *testing.T) {
	t.Run("operation failure", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewCounterStoreError(CounterOpNext, cause)
		assert.True(t, errors.Is(err, ErrCounterStore))
		assert.True(t, errors.Is(err, cause))
		assertMetadata(t, requireCustomError(t, err), MetaKeyOperation, CounterOpNext)
	})

	t.Run("closed", func(t *testing.T) {
		err := NewCounterStoreClosedError(CounterOpReset)
		assert.True(t, errors.Is(err, ErrCounterStoreClosed))
		assertMetadata(t, requireCustomError(t, err), MetaKeyOperation, CounterOpReset)
	})

	t.Run("driver not found", func(t *testing.T) {
		err := NewCounterDriverNotFoundError("etcd")
		assert.True(t, errors.Is(err, ErrCounterDriverNotFound))
		assertMetadata(t, requireCustomError(t, err), MetaKeyDriver, "etcd")
	})
}

func TestNewConfigError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("yaml: line 1")
		err := NewConfigError(ErrMsgConfigParse, cause)
		assert.Contains(t, err.Error(), ErrMsgConfigParse)
		assert.True(t, errors.Is(err, ErrConfig))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("without cause", func(t *testing.T) {
		err := NewConfigError(ErrMsgConfigCacheSize, nil)
		assert.True(t, errors.Is(err, ErrConfig))
		requireCustomError(t, err)
	})
}
