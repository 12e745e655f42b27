package permissions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdf-permissions/rdf"
)

func TestCreateReifiedStatement(t *testing.T) {
	m, base := newSecuredModel(newMockEvaluator())

	r, err := m.CreateReifiedStatement(nil, stmt1)
	require.NoError(t, err)
	assert.True(t, base.IsReified(stmt1))
	assert.Len(t, base.ReificationStatements(r), 4)

	named := rdf.IRI{Value: "http://example.org/r1"}
	r2, err := m.CreateReifiedStatement(named, stmt2)
	require.NoError(t, err)
	assert.Equal(t, rdf.Term(named), r2)
}

func TestCreateReifiedStatementDenied(t *testing.T) {
	// Denying Create of any rdf:object triple blocks reification.
	e := newMockEvaluator().denyTriple(ActionCreate, rdf.Triple{S: rdf.Any, P: rdf.RDFObject, O: rdf.Any})
	m, base := newSecuredModel(e)

	_, err := m.CreateReifiedStatement(rdf.IRI{Value: "http://example.org/r1"}, stmt1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAddDenied))
	assert.True(t, base.IsEmpty(), "a denial leaves the base unchanged")
}

// Scenario: all four reification triples exist but Read of the
// rdf:object triple is denied. The reification is not observable.
func TestIsReifiedRequiresAllConstituentsReadable(t *testing.T) {
	base := rdf.NewMemModel(graphIRI)
	r := rdf.IRI{Value: "http://example.org/r1"}
	_, err := base.CreateReifiedStatement(r, stmt1)
	require.NoError(t, err)

	e := newMockEvaluator().denyTriple(ActionRead, rdf.Triple{S: r, P: rdf.RDFObject, O: obj1})
	m := NewSecuredModel(base, e)

	ok, err := m.IsReified(stmt1)
	require.NoError(t, err)
	assert.False(t, ok)

	rs, err := m.ListReifiedStatements(stmt1)
	require.NoError(t, err)
	assert.Empty(t, rs)

	// With no denial the reification is observable.
	m2 := NewSecuredModel(base, newMockEvaluator())
	ok, err = m2.IsReified(stmt1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAnyReifiedStatementReturnsReadableExisting(t *testing.T) {
	base := rdf.NewMemModel(graphIRI)
	r := rdf.IRI{Value: "http://example.org/r1"}
	_, err := base.CreateReifiedStatement(r, stmt1)
	require.NoError(t, err)

	m := NewSecuredModel(base, newMockEvaluator())
	got, err := m.AnyReifiedStatement(stmt1)
	require.NoError(t, err)
	assert.Equal(t, rdf.Term(r), got)

	// No existing reification: a fresh one is created under
	// Update+Create.
	got2, err := m.AnyReifiedStatement(stmt2)
	require.NoError(t, err)
	assert.NotNil(t, got2)
	assert.True(t, base.IsReified(stmt2))
}

func TestRemoveReificationPreChecks(t *testing.T) {
	base := rdf.NewMemModel(graphIRI)
	r := rdf.IRI{Value: "http://example.org/r1"}
	_, err := base.CreateReifiedStatement(r, stmt1)
	require.NoError(t, err)

	e := newMockEvaluator().denyTriple(ActionDelete, rdf.Triple{S: r, P: rdf.RDFObject, O: obj1})
	m := NewSecuredModel(base, e)

	err = m.RemoveReification(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDeleteDenied))
	assert.Len(t, base.ReificationStatements(r), 4, "a denial leaves the base unchanged")

	m2 := NewSecuredModel(base, newMockEvaluator())
	require.NoError(t, m2.RemoveReification(r))
	assert.False(t, base.IsReified(stmt1))
}

func TestRemoveAllReifications(t *testing.T) {
	base := rdf.NewMemModel(graphIRI)
	_, err := base.CreateReifiedStatement(rdf.IRI{Value: "http://example.org/r1"}, stmt1)
	require.NoError(t, err)
	_, err = base.CreateReifiedStatement(rdf.IRI{Value: "http://example.org/r2"}, stmt1)
	require.NoError(t, err)

	m := NewSecuredModel(base, newMockEvaluator())
	require.NoError(t, m.RemoveAllReifications(stmt1))
	assert.False(t, base.IsReified(stmt1))
	assert.True(t, base.IsEmpty())
}
