package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := ErrEquipmentNotFound

	assert.Equal(t, "equipment not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsAlreadyExists(err))

	// wrapped errors still match
	wrapped := fmt.Errorf("failed to get equipment: %w", err)
	assert.True(t, IsNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, ErrEquipmentNotFound))

	// different entities do not compare equal
	assert.False(t, errors.Is(ErrEquipmentNotFound, ErrBaseNotFound))
}

func TestAlreadyExistsError(t *testing.T) {
	err := ErrSparePartExists

	assert.Equal(t, "spare part already exists with this material code", err.Error())
	assert.True(t, IsAlreadyExists(err))
	assert.False(t, IsNotFound(err))

	wrapped := fmt.Errorf("create failed: %w", err)
	assert.True(t, IsAlreadyExists(wrapped))
	assert.True(t, errors.Is(wrapped, ErrSparePartExists))

	noContext := &AlreadyExistsError{Entity: "workshop"}
	assert.Equal(t, "workshop already exists", noContext.Error())
}

func TestValidationError(t *testing.T) {
	withField := NewValidationError("busyLevel", "must be between 1 and 4")
	assert.Equal(t, "validation error: busyLevel - must be between 1 and 4", withField.Error())
	assert.True(t, IsValidation(withField))

	withoutField := NewValidationError("", "request body is malformed")
	assert.Equal(t, "validation error: request body is malformed", withoutField.Error())

	wrapped := fmt.Errorf("create workshop: %w", withField)
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsValidation(errors.New("plain error")))
}

func TestAuthenticationError(t *testing.T) {
	assert.Equal(t, "invalid username or password", ErrInvalidCredentials.Error())
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.False(t, IsAuthentication(ErrBaseNotFound))
}

func TestNewConstructors(t *testing.T) {
	nf := NewNotFoundError("supplier")
	assert.Equal(t, "supplier not found", nf.Error())
	assert.True(t, IsNotFound(nf))

	ae := NewAlreadyExistsError("association", "for this triple")
	assert.Equal(t, "association already exists for this triple", ae.Error())
	assert.True(t, IsAlreadyExists(ae))
}
