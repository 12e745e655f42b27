package rdf

import "github.com/google/uuid"

// NewBlankNode allocates a blank node with a fresh identifier. The
// identifiers are unique across models so merged graphs never collide.
func NewBlankNode() BlankNode {
	return BlankNode{ID: "b" + uuid.NewString()}
}
