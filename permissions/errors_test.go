package permissions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geoknoesis/rdf-permissions/rdf"
)

func TestAccessErrorMatching(t *testing.T) {
	denial := &AccessError{Action: ActionCreate, Graph: graphIRI, Triple: &triple1, Principal: Principal("alice")}

	assert.True(t, errors.Is(denial, ErrAccessDenied))
	assert.True(t, errors.Is(denial, ErrAddDenied))
	assert.False(t, errors.Is(denial, ErrDeleteDenied))
	assert.Contains(t, denial.Error(), "Create denied")
	assert.Contains(t, denial.Error(), triple1.String())

	graphLevel := &AccessError{Action: ActionRead, Graph: graphIRI}
	assert.True(t, errors.Is(graphLevel, ErrReadDenied))
	assert.NotContains(t, graphLevel.Error(), "triple")
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, ErrorCode(""), Code(nil))
	assert.Equal(t, ErrCodeAuthenticationRequired, Code(ErrAuthenticationRequired))
	assert.Equal(t, ErrCodeReadDenied, Code(&AccessError{Action: ActionRead, Graph: graphIRI}))
	assert.Equal(t, ErrCodeUpdateDenied, Code(&AccessError{Action: ActionUpdate, Graph: graphIRI}))
	assert.Equal(t, ErrCodeAddDenied, Code(&AccessError{Action: ActionCreate, Graph: graphIRI}))
	assert.Equal(t, ErrCodeDeleteDenied, Code(&AccessError{Action: ActionDelete, Graph: graphIRI}))
	assert.Equal(t, ErrorCode(""), Code(rdf.ErrPropertyNotFound))
}

func TestActionStrings(t *testing.T) {
	assert.Equal(t, "Read", ActionRead.String())
	assert.Equal(t, "Update", ActionUpdate.String())
	assert.Equal(t, "Create", ActionCreate.String())
	assert.Equal(t, "Delete", ActionDelete.String())
}
