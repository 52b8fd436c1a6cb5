package mgraph

import "errors"

// Sentinel errors for multigraph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside 0..NumVertices()-1.
	ErrVertexOutOfRange = errors.New("mgraph: vertex index out of range")

	// ErrNoSuchEdge indicates RemoveEdge was called on a pair with zero
	// multiplicity (RemoveAllEdges treats that case as a no-op).
	ErrNoSuchEdge = errors.New("mgraph: no edge between the given vertices")

	// ErrSelfContract indicates ContractEdge/SimpleContractEdge was asked to
	// contract a vertex into itself.
	ErrSelfContract = errors.New("mgraph: cannot contract a vertex into itself")

	// ErrDeadVertex indicates an operation referenced a vertex already
	// absorbed by a prior contraction.
	ErrDeadVertex = errors.New("mgraph: vertex is dead (already contracted away)")
)
