package permissions

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdf-permissions/rdf"
)

var (
	stmt1 = rdf.StatementFromTriple(triple1)
	stmt2 = rdf.StatementFromTriple(triple2)
	stmt3 = rdf.StatementFromTriple(triple3)
)

// Scenario: bulk add where Create is denied for one element. The base
// must stay empty and the denial must carry the offending triple.
func TestModelBulkAddRollsBackOnDenial(t *testing.T) {
	e := newMockEvaluator().denyTriple(ActionCreate, triple2)
	m, base := newSecuredModel(e)

	err := m.AddAll([]rdf.Statement{stmt1, stmt2, stmt3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAddDenied))

	var denial *AccessError
	require.True(t, errors.As(err, &denial))
	require.NotNil(t, denial.Triple)
	assert.Equal(t, triple2, *denial.Triple)
	assert.True(t, base.IsEmpty())
}

func TestModelBulkRemoveRollsBackOnDenial(t *testing.T) {
	e := newMockEvaluator().denyTriple(ActionDelete, triple2)
	m, base := newSecuredModel(e, stmt1, stmt2)

	err := m.RemoveAll([]rdf.Statement{stmt1, stmt2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDeleteDenied))
	assert.Equal(t, 2, base.Size())
}

func TestModelAddModelAndIterator(t *testing.T) {
	m, base := newSecuredModel(newMockEvaluator())

	other := rdf.NewMemModel(graphIRI)
	require.NoError(t, other.AddAll([]rdf.Statement{stmt1, stmt2}))

	require.NoError(t, m.AddModel(other))
	assert.Equal(t, 2, base.Size())

	require.NoError(t, m.RemoveModel(other))
	assert.True(t, base.IsEmpty())

	require.NoError(t, m.AddIterator(other.ListStatements(rdf.Any, rdf.Any, rdf.Any)))
	assert.Equal(t, 2, base.Size())
}

func TestModelContainsAllRequiresReadableStatements(t *testing.T) {
	e := newMockEvaluator().denyTriple(ActionRead, triple2)
	m, _ := newSecuredModel(e, stmt1, stmt2)

	arg := rdf.NewMemModel(graphIRI)
	require.NoError(t, arg.Add(stmt1))
	ok, err := m.ContainsAll(arg)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, arg.Add(stmt2))
	ok, err = m.ContainsAll(arg)
	require.NoError(t, err)
	assert.False(t, ok, "an unreadable statement must not satisfy containsAll")
}

func TestModelContainsAnyNoReadableIsFalse(t *testing.T) {
	e := newMockEvaluator().denyTriple(ActionRead, triple2)
	m, _ := newSecuredModel(e, stmt2)

	arg := rdf.NewMemModel(graphIRI)
	require.NoError(t, arg.AddAll([]rdf.Statement{stmt2, stmt3}))

	ok, err := m.ContainsAny(arg)
	require.NoError(t, err)
	assert.False(t, ok)

	m2, _ := newSecuredModel(e, stmt1, stmt2)
	ok, err = m2.ContainsAny(arg)
	require.NoError(t, err)
	assert.False(t, ok, "only the unreadable statement is shared")

	require.NoError(t, arg.Add(stmt1))
	ok, err = m2.ContainsAny(arg)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestModelDifferenceUsesReadableProjection(t *testing.T) {
	e := newMockEvaluator().denyTriple(ActionRead, triple2)
	m, _ := newSecuredModel(e, stmt1, stmt2, stmt3)

	other := rdf.NewMemModel(graphIRI)
	require.NoError(t, other.Add(stmt3))

	diff, err := m.Difference(other)
	require.NoError(t, err)
	assert.Equal(t, 1, diff.Size())
	assert.True(t, diff.Contains(stmt1))
	assert.False(t, diff.Contains(stmt2), "unreadable statements must not appear in the difference")
}

func TestModelUnionAndIntersection(t *testing.T) {
	e := newMockEvaluator().denyTriple(ActionRead, triple2)
	m, _ := newSecuredModel(e, stmt1, stmt2)

	other := rdf.NewMemModel(graphIRI)
	require.NoError(t, other.AddAll([]rdf.Statement{stmt2, stmt3}))

	union, err := m.Union(other)
	require.NoError(t, err)
	assert.Equal(t, 3, union.Size())
	assert.True(t, union.Contains(stmt2), "the other model contributes its full content")

	intersection, err := m.Intersection(other)
	require.NoError(t, err)
	assert.Equal(t, 0, intersection.Size(), "only the unreadable statement is shared")
}

func TestModelGetPropertyFiltersUnreadable(t *testing.T) {
	e := newMockEvaluator().denyTriple(ActionRead, triple1)
	m, _ := newSecuredModel(e, stmt1, stmt2)

	got, ok, err := m.GetProperty(subj, pred)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, stmt2, got, "the first readable statement wins")
}

func TestModelGetPropertyLang(t *testing.T) {
	english := rdf.NewStatement(subj, pred, rdf.Literal{Lexical: "hello", Lang: "en"})
	plain := rdf.NewStatement(subj, pred, rdf.Literal{Lexical: "plain"})
	m, _ := newSecuredModel(newMockEvaluator(), plain, english)

	got, ok, err := m.GetPropertyLang(subj, pred, "en")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, english, got)

	got, ok, err = m.GetPropertyLang(subj, pred, "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, plain, got)
}

// Scenario: a missing property whose pattern the principal may not
// read raises ReadDenied, not PropertyNotFound.
func TestModelGetRequiredPropertyPrivacy(t *testing.T) {
	e := newMockEvaluator().denyTriple(ActionRead, rdf.Triple{S: subj, P: pred, O: rdf.Any})
	m, _ := newSecuredModel(e)

	_, err := m.GetRequiredProperty(subj, pred)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReadDenied))
	assert.False(t, IsPropertyNotFound(err))

	// With a readable pattern the base condition is preserved.
	m2, _ := newSecuredModel(newMockEvaluator())
	_, err = m2.GetRequiredProperty(subj, pred)
	assert.True(t, IsPropertyNotFound(err))
}

func TestModelCreateResourceChecksFutureTriple(t *testing.T) {
	m, _ := newSecuredModel(newMockEvaluator())
	r, err := m.CreateResource()
	require.NoError(t, err)
	assert.Equal(t, rdf.TermBlankNode, r.Kind())

	e := newMockEvaluator().denyTriple(ActionCreate, rdf.Triple{S: subj, P: pred, O: obj1})
	m2, _ := newSecuredModel(e)
	// Any Create denial makes the wildcard future-triple check fail.
	_, err = m2.CreateResource()
	assert.True(t, errors.Is(err, ErrAddDenied))
}

func TestModelCreateLiteralStatement(t *testing.T) {
	m, base := newSecuredModel(newMockEvaluator())
	stmt, err := m.CreateLiteralStatement(subj, pred, 7)
	require.NoError(t, err)
	lit, ok := stmt.Object.(rdf.Literal)
	require.True(t, ok)
	assert.Equal(t, "7", lit.Lexical)
	assert.Equal(t, rdf.XSDInteger, lit.Datatype)
	// Creation does not add the statement.
	assert.True(t, base.IsEmpty())
}

func TestModelReadFromPreChecks(t *testing.T) {
	input := `<http://example.org/s> <http://example.org/p> "one" .
<http://example.org/s> <http://example.org/p> "two" .
`
	e := newMockEvaluator().denyTriple(ActionCreate, triple2)
	m, base := newSecuredModel(e)

	err := m.ReadFrom(strings.NewReader(input), rdf.FormatNTriples)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAddDenied))
	assert.True(t, base.IsEmpty())

	m2, base2 := newSecuredModel(newMockEvaluator())
	require.NoError(t, m2.ReadFrom(strings.NewReader(input), rdf.FormatNTriples))
	assert.Equal(t, 2, base2.Size())
}

func TestModelWriteToFiltersForbiddenTriples(t *testing.T) {
	e := newMockEvaluator().denyTriple(ActionRead, triple2)
	m, _ := newSecuredModel(e, stmt1, stmt2)

	var buf bytes.Buffer
	require.NoError(t, m.WriteTo(&buf, rdf.FormatNTriples))
	out := buf.String()
	assert.Contains(t, out, `"one"`)
	assert.NotContains(t, out, `"two"`, "forbidden triples must not be serialized")
}

func TestModelQueryAndStatements(t *testing.T) {
	e := newMockEvaluator().denyTriple(ActionRead, triple2)
	m, _ := newSecuredModel(e, stmt1, stmt2, stmt3)

	stmts, err := m.Statements()
	require.NoError(t, err)
	assert.Len(t, stmts, 2)

	matches, err := m.Query(func(s rdf.Statement) bool { return s.Object == rdf.Term(obj1) })
	require.NoError(t, err)
	assert.Equal(t, []rdf.Statement{stmt1}, matches)
}

func TestModelIsIsomorphicWith(t *testing.T) {
	e := newMockEvaluator().denyTriple(ActionRead, triple2)
	m, _ := newSecuredModel(e, stmt1, stmt2)

	other := rdf.NewMemModel(graphIRI)
	require.NoError(t, other.Add(stmt1))

	ok, err := m.IsIsomorphicWith(other)
	require.NoError(t, err)
	assert.True(t, ok)
}
