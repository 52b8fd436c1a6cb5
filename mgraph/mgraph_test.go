package mgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamnemecek/TuttePolynomial/mgraph"
)

// TestAddRemoveEdge_Multiplicity covers the basic multiplicity bookkeeping
// AddEdge/RemoveEdge/RemoveAllEdges are responsible for, including loops.
func TestAddRemoveEdge_Multiplicity(t *testing.T) {
	g := mgraph.NewMultigraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 1)) // self-loop

	assert.Equal(t, 2, g.Multiplicity(0, 1))
	assert.Equal(t, 1, g.Multiplicity(1, 1))
	assert.Equal(t, 3, g.NumEdges())

	require.NoError(t, g.RemoveEdge(0, 1))
	assert.Equal(t, 1, g.Multiplicity(0, 1))

	require.ErrorIs(t, g.RemoveEdge(2, 0), mgraph.ErrNoSuchEdge)

	require.NoError(t, g.RemoveAllEdges(0, 1))
	assert.Equal(t, 0, g.Multiplicity(0, 1))
}

// TestContractEdge_RetainsLoop checks the Tutte/Flow contraction rule: the
// u-v edges beyond the first collapse into self-loops on the surviving
// vertex, while v's other incident edges are re-homed onto u.
func TestContractEdge_RetainsLoop(t *testing.T) {
	g := mgraph.NewMultigraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	require.NoError(t, g.ContractEdge(0, 1))

	assert.False(t, g.IsAlive(1))
	assert.Equal(t, 2, g.Multiplicity(0, 0)) // 3 parallel edges -> 2 loops
	assert.Equal(t, 1, g.Multiplicity(0, 2)) // re-homed from v
	assert.Equal(t, 2, g.NumVertices())
}

// TestSimpleContractEdge_DropsBundle checks the chromatic contraction rule:
// the u-v bundle vanishes entirely rather than becoming loops.
func TestSimpleContractEdge_DropsBundle(t *testing.T) {
	g := mgraph.NewMultigraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	require.NoError(t, g.SimpleContractEdge(0, 1))

	assert.Equal(t, 0, g.Multiplicity(0, 0))
	assert.Equal(t, 1, g.Multiplicity(0, 2))
}

// TestContractEdge_CoalescesSharedNeighbour ensures that when both u and v
// already connect to the same third vertex, contraction sums the
// multiplicities rather than overwriting.
func TestContractEdge_CoalescesSharedNeighbour(t *testing.T) {
	g := mgraph.NewMultigraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 2))

	require.NoError(t, g.ContractEdge(0, 1))
	assert.Equal(t, 2, g.Multiplicity(0, 2))
}

// TestPredicates_LoopTreeCycle exercises IsLoop/IsMultitree/IsTree/
// IsMulticycle across the small shapes the evaluator dispatches on.
func TestPredicates_LoopTreeCycle(t *testing.T) {
	t.Run("single vertex is a loop case", func(t *testing.T) {
		g := mgraph.NewMultigraph(1)
		assert.True(t, g.IsLoop())
	})

	t.Run("path of three vertices is a tree", func(t *testing.T) {
		g := mgraph.NewMultigraph(3)
		require.NoError(t, g.AddEdge(0, 1))
		require.NoError(t, g.AddEdge(1, 2))
		assert.True(t, g.IsTree())
		assert.True(t, g.IsMultitree())
		assert.False(t, g.IsMulticycle())
	})

	t.Run("doubled edge on a path is a multitree but not a tree", func(t *testing.T) {
		g := mgraph.NewMultigraph(3)
		require.NoError(t, g.AddEdge(0, 1))
		require.NoError(t, g.AddEdge(0, 1))
		require.NoError(t, g.AddEdge(1, 2))
		assert.True(t, g.IsMultitree())
		assert.False(t, g.IsTree())
	})

	t.Run("4-cycle", func(t *testing.T) {
		g := mgraph.NewMultigraph(4)
		require.NoError(t, g.AddEdge(0, 1))
		require.NoError(t, g.AddEdge(1, 2))
		require.NoError(t, g.AddEdge(2, 3))
		require.NoError(t, g.AddEdge(3, 0))
		assert.True(t, g.IsMulticycle())
		assert.False(t, g.IsMultitree())
	})
}

// TestIsBiconnected_ArticulationPoint checks that a bridge between two
// triangles is correctly flagged as not biconnected.
func TestIsBiconnected_ArticulationPoint(t *testing.T) {
	g := mgraph.NewMultigraph(6)
	// triangle 0-1-2
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))
	// triangle 3-4-5
	require.NoError(t, g.AddEdge(3, 4))
	require.NoError(t, g.AddEdge(4, 5))
	require.NoError(t, g.AddEdge(5, 3))
	// bridge
	require.NoError(t, g.AddEdge(2, 3))

	assert.False(t, g.IsBiconnected())

	blocks := g.ExtractBiconnectedComponents()
	assert.Len(t, blocks, 3)
}

// TestExtractBiconnectedComponents_SharesCutVertex verifies extracted
// blocks keep the original vertex indices so cut vertices line up across
// blocks.
func TestExtractBiconnectedComponents_SharesCutVertex(t *testing.T) {
	g := mgraph.NewMultigraph(5)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 4))

	blocks := g.ExtractBiconnectedComponents()
	require.Len(t, blocks, 3)

	sawCutVertex := false
	for _, b := range blocks {
		if b.IsAlive(2) {
			sawCutVertex = true
		}
	}
	assert.True(t, sawCutVertex)
}

// TestReduceLoops_StripsAndCounts confirms ReduceLoops removes every
// self-loop and reports the total multiplicity removed.
func TestReduceLoops_StripsAndCounts(t *testing.T) {
	g := mgraph.NewMultigraph(2)
	require.NoError(t, g.AddEdge(0, 0))
	require.NoError(t, g.AddEdge(0, 0))
	require.NoError(t, g.AddEdge(0, 1))

	n := g.ReduceLoops()
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, g.Multiplicity(0, 0))
	assert.Equal(t, 1, g.Multiplicity(0, 1))
}

// TestCompact_DropsDeadVertices checks that contracting a vertex away and
// compacting yields a dense, order-preserving relabelling.
func TestCompact_DropsDeadVertices(t *testing.T) {
	g := mgraph.NewMultigraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.ContractEdge(0, 1))

	out, mapping := g.Compact()
	assert.Equal(t, 3, out.NumVertices())
	assert.Equal(t, 0, mapping[0])
	assert.Equal(t, 1, mapping[2])
	assert.Equal(t, 2, mapping[3])
	assert.Equal(t, 1, out.Multiplicity(mapping[2], mapping[3]))
}

// TestPermute_PreservesStructure checks that Permute produces an
// isomorphic graph under the given relabelling.
func TestPermute_PreservesStructure(t *testing.T) {
	g := mgraph.NewMultigraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 2))

	out := g.Permute([]int{2, 0, 1}) // old id 2 -> new 0, old 0 -> new 1, old 1 -> new 2
	assert.Equal(t, 3, out.NumVertices())
	assert.Equal(t, 1, out.Multiplicity(1, 2))
	assert.Equal(t, 2, out.Multiplicity(0, 2))
}

// TestClone_IsIndependent verifies mutating a clone never affects the
// original, which the delete/contract recursion branches depend on.
func TestClone_IsIndependent(t *testing.T) {
	g := mgraph.NewMultigraph(2)
	require.NoError(t, g.AddEdge(0, 1))

	clone := g.Clone()
	require.NoError(t, clone.AddEdge(0, 1))

	assert.Equal(t, 1, g.Multiplicity(0, 1))
	assert.Equal(t, 2, clone.Multiplicity(0, 1))
}
