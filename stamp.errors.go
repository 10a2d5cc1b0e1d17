package stamp

import (
	"errors"
	"fmt"

	"github.com/itsatony/go-cuserr"
)

// Error message constants
const (
	ErrMsgInvalidBoundary      = "invalid boundary configuration"
	ErrMsgRequiredFieldMissing = "required attribute missing"
	ErrMsgAttributeConversion  = "attribute conversion failed"
	ErrMsgDuplicateElement     = "element already registered"
	ErrMsgInvalidDescriptor    = "invalid element descriptor"
	ErrMsgBuildFailed          = "element construction failed"
	ErrMsgRenderFailed         = "element render failed"
	ErrMsgCounterStore         = "counter store operation failed"
	ErrMsgCounterStoreClosed   = "counter store is closed"
	ErrMsgCounterDriverMissing = "counter store driver not found"
	ErrMsgConfig               = "invalid configuration"
	ErrMsgNilCounterDriver     = "counter store driver is nil"
	ErrMsgDriverRegistered     = "counter store driver already registered"
)

// Descriptor validation reasons
const (
	ReasonEmptyName      = "element name cannot be empty"
	ReasonUnknownKind    = "unknown element kind"
	ReasonMissingStatic  = "static element requires a Static builder"
	ReasonMissingDynamic = "dynamic element requires a Dynamic builder"
	ReasonEmptyFieldName = "field name cannot be empty"
	ReasonDuplicateField = "field declared twice"
	ReasonNilRenderFunc  = "dynamic builder returned a nil render function"
)

// Error code constants for categorization
const (
	ErrCodeConfig   = "STAMP_CONFIG"
	ErrCodeBinding  = "STAMP_BINDING"
	ErrCodeRegistry = "STAMP_REGISTRY"
	ErrCodeRender   = "STAMP_RENDER"
	ErrCodeCounter  = "STAMP_COUNTER"
)

// Metadata key constants
const (
	MetaKeyBoundary  = "boundary"
	MetaKeyElement   = "element"
	MetaKeyField     = "field"
	MetaKeyValue     = "value"
	MetaKeyReason    = "reason"
	MetaKeyOperation = "operation"
	MetaKeyDriver    = "driver"
)

// Sentinel errors; every constructor below wraps one so callers can use errors.Is.
var (
	ErrInvalidBoundary       = errors.New(ErrMsgInvalidBoundary)
	ErrRequiredFieldMissing  = errors.New(ErrMsgRequiredFieldMissing)
	ErrAttributeConversion   = errors.New(ErrMsgAttributeConversion)
	ErrDuplicateElement      = errors.New(ErrMsgDuplicateElement)
	ErrInvalidDescriptor     = errors.New(ErrMsgInvalidDescriptor)
	ErrBuildFailed           = errors.New(ErrMsgBuildFailed)
	ErrRenderFailed          = errors.New(ErrMsgRenderFailed)
	ErrCounterStore          = errors.New(ErrMsgCounterStore)
	ErrCounterStoreClosed    = errors.New(ErrMsgCounterStoreClosed)
	ErrCounterDriverNotFound = errors.New(ErrMsgCounterDriverMissing)
	ErrConfig                = errors.New(ErrMsgConfig)
)

// joinCause wraps sentinel and cause so both satisfy errors.Is.
func joinCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}

// NewInvalidBoundaryError reports an empty or clashing boundary token.
func NewInvalidBoundaryError(role string, cause error) error {
	return cuserr.WrapStdError(joinCause(ErrInvalidBoundary, cause), ErrCodeConfig, ErrMsgInvalidBoundary).
		WithMetadata(MetaKeyBoundary, role)
}

// NewRequiredFieldMissingError reports a required field with no attribute.
func NewRequiredFieldMissingError(elementName, fieldName string) error {
	return cuserr.WrapStdError(ErrRequiredFieldMissing, ErrCodeBinding, ErrMsgRequiredFieldMissing).
		WithMetadata(MetaKeyElement, elementName).
		WithMetadata(MetaKeyField, fieldName)
}

// NewAttributeConversionError reports a raw attribute value that could not be
// converted to the field's type.
func NewAttributeConversionError(elementName, fieldName, rawValue string, cause error) error {
	return cuserr.WrapStdError(joinCause(ErrAttributeConversion, cause), ErrCodeBinding, ErrMsgAttributeConversion).
		WithMetadata(MetaKeyElement, elementName).
		WithMetadata(MetaKeyField, fieldName).
		WithMetadata(MetaKeyValue, rawValue)
}

// NewDuplicateElementError reports a registration collision.
func NewDuplicateElementError(name string) error {
	return cuserr.WrapStdError(ErrDuplicateElement, ErrCodeRegistry, ErrMsgDuplicateElement).
		WithMetadata(MetaKeyElement, name)
}

// NewInvalidDescriptorError reports a descriptor that cannot be registered.
func NewInvalidDescriptorError(name, reason string) error {
	return cuserr.WrapStdError(ErrInvalidDescriptor, ErrCodeRegistry, ErrMsgInvalidDescriptor).
		WithMetadata(MetaKeyElement, name).
		WithMetadata(MetaKeyReason, reason)
}

// NewBuildError wraps a failure returned by an element builder.
func NewBuildError(elementName string, cause error) error {
	return cuserr.WrapStdError(joinCause(ErrBuildFailed, cause), ErrCodeBinding, ErrMsgBuildFailed).
		WithMetadata(MetaKeyElement, elementName)
}

// NewRenderError wraps a failure returned by a dynamic element.
func NewRenderError(elementName string, cause error) error {
	return cuserr.WrapStdError(joinCause(ErrRenderFailed, cause), ErrCodeRender, ErrMsgRenderFailed).
		WithMetadata(MetaKeyElement, elementName)
}

// NewCounterStoreError wraps a failing counter store operation.
func NewCounterStoreError(operation string, cause error) error {
	return cuserr.WrapStdError(joinCause(ErrCounterStore, cause), ErrCodeCounter, ErrMsgCounterStore).
		WithMetadata(MetaKeyOperation, operation)
}

// NewCounterStoreClosedError reports use of a closed counter store.
func NewCounterStoreClosedError(operation string) error {
	return cuserr.WrapStdError(ErrCounterStoreClosed, ErrCodeCounter, ErrMsgCounterStoreClosed).
		WithMetadata(MetaKeyOperation, operation)
}

// NewCounterDriverNotFoundError reports an unknown counter store driver.
func NewCounterDriverNotFoundError(driver string) error {
	return cuserr.WrapStdError(ErrCounterDriverNotFound, ErrCodeConfig, ErrMsgCounterDriverMissing).
		WithMetadata(MetaKeyDriver, driver)
}

// NewConfigError wraps a configuration loading failure.
func NewConfigError(msg string, cause error) error {
	return cuserr.WrapStdError(joinCause(ErrConfig, cause), ErrCodeConfig, msg)
}
