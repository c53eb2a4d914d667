// SPDX-License-Identifier: MIT
package coloring_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	gcoloring "gonum.org/v1/gonum/graph/coloring"

	"github.com/katalvlaran/mcgs/builder"
	"github.com/katalvlaran/mcgs/coloring"
	"github.com/katalvlaran/mcgs/depgraph"
)

var allStrategies = []coloring.Strategy{
	coloring.StrategyRandomizedSequential,
	coloring.StrategyConflictRecolor,
	coloring.StrategyLibrary,
}

func graphOf(t *testing.T, bopts []builder.BuilderOption, ctor builder.Constructor) *depgraph.Graph {
	t.Helper()
	a, err := builder.Build(bopts, ctor)
	require.NoError(t, err)
	g, err := depgraph.FromMatrix(a)
	require.NoError(t, err)
	return g
}

func complete(t *testing.T, n int) *depgraph.Graph {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g, err := depgraph.FromAdjacency(n, edges)
	require.NoError(t, err)
	return g
}

// TestColor_ValidAcrossStrategiesAndSeeds checks that every strategy yields
// a proper coloring covering every node, for several seeds and topologies.
func TestColor_ValidAcrossStrategiesAndSeeds(t *testing.T) {
	t.Parallel()

	graphs := map[string]*depgraph.Graph{
		"grid16x16": graphOf(t, nil, builder.Laplacian2D(16, 16)),
		"path100":   graphOf(t, nil, builder.Laplacian1D(100)),
		"random300": graphOf(t, []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(300, 0.03)),
		"bounded":   graphOf(t, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomBoundedDegree(1000, 6)),
		"K7":        complete(t, 7),
	}

	for name, g := range graphs {
		for _, s := range allStrategies {
			for _, seed := range []int64{1, 2, 99} {
				g, s, seed := g, s, seed
				t.Run(fmt.Sprintf("%s/%s/seed=%d", name, s, seed), func(t *testing.T) {
					t.Parallel()
					p, err := coloring.Color(context.Background(), g,
						coloring.WithStrategy(s), coloring.WithSeed(seed), coloring.WithMinChunk(16))
					require.NoError(t, err)
					require.Equal(t, g.N(), p.Len())
					require.NoError(t, coloring.Validate(g, p))

					total := 0
					for c := 0; c < p.ColorCount(); c++ {
						members := p.NodesOfColor(c)
						require.NotEmpty(t, members)
						for _, v := range members {
							require.Equal(t, c, p.ColorOf(v))
						}
						total += len(members)
					}
					require.Equal(t, g.N(), total)
				})
			}
		}
	}
}

// TestColor_GreedyBound checks colorCount <= maxDegree+1 for the first-fit
// strategies on random bounded-degree graphs.
func TestColor_GreedyBound(t *testing.T) {
	t.Parallel()

	for _, d := range []int{1, 3, 8} {
		for seed := int64(1); seed <= 5; seed++ {
			g := graphOf(t, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomBoundedDegree(500, d))
			require.LessOrEqual(t, g.MaxDegree(), d)
			for _, s := range []coloring.Strategy{coloring.StrategyRandomizedSequential, coloring.StrategyConflictRecolor} {
				p, err := coloring.Color(context.Background(), g, coloring.WithStrategy(s), coloring.WithSeed(seed))
				require.NoError(t, err)
				require.LessOrEqual(t, p.ColorCount(), g.MaxDegree()+1, "d=%d seed=%d %s", d, seed, s)
			}
		}
	}
}

// TestColor_Disconnected: two independent pairs need exactly two colors.
func TestColor_Disconnected(t *testing.T) {
	t.Parallel()
	g, err := depgraph.FromAdjacency(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	for _, s := range allStrategies {
		p, err := coloring.Color(context.Background(), g, coloring.WithStrategy(s))
		require.NoError(t, err, s.String())
		require.Equal(t, 2, p.ColorCount(), s.String())
		require.NotEqual(t, p.ColorOf(0), p.ColorOf(1))
		require.NotEqual(t, p.ColorOf(2), p.ColorOf(3))
	}
}

func TestColor_Complete(t *testing.T) {
	t.Parallel()
	g := complete(t, 5)
	for _, s := range allStrategies {
		p, err := coloring.Color(context.Background(), g, coloring.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, 5, p.ColorCount())
		require.Equal(t, []int{1, 1, 1, 1, 1}, p.Sizes())
	}
}

func TestColor_Isolated(t *testing.T) {
	t.Parallel()
	g, err := depgraph.FromAdjacency(6, nil)
	require.NoError(t, err)
	for _, s := range allStrategies {
		p, err := coloring.Color(context.Background(), g, coloring.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, 1, p.ColorCount())
		require.Equal(t, []int{0, 1, 2, 3, 4, 5}, p.NodesOfColor(0))
	}
}

// TestConflictRecolor_RoundLimit: with one node per block, one round on K4
// commits only the top ranked node, so a single allowed round must fail.
func TestConflictRecolor_RoundLimit(t *testing.T) {
	t.Parallel()
	g := complete(t, 4)

	_, err := coloring.ConflictRecolor(context.Background(), g,
		coloring.WithMaxRounds(1), coloring.WithMinChunk(1))
	require.ErrorIs(t, err, coloring.ErrColoringDidNotConverge)

	p, err := coloring.ConflictRecolor(context.Background(), g,
		coloring.WithMaxRounds(4), coloring.WithMinChunk(1))
	require.NoError(t, err)
	require.Equal(t, 4, p.ColorCount())

	// A block holding the whole clique colors it in one round.
	p, err = coloring.ConflictRecolor(context.Background(), g, coloring.WithMaxRounds(1))
	require.NoError(t, err)
	require.Equal(t, 4, p.ColorCount())
}

// TestConflictRecolor_DenseGraphs: cliques larger than the round bound
// must still color, whatever the block size and worker count.
func TestConflictRecolor_DenseGraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		opts []coloring.Option
	}{
		{"K300 defaults", 300, nil},
		{"K400 defaults", 400, nil},
		{"K300 blocks of 64", 300, []coloring.Option{coloring.WithMinChunk(64), coloring.WithWorkers(4)}},
		{"K600 blocks of 100", 600, []coloring.Option{coloring.WithMinChunk(100), coloring.WithWorkers(3)}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := graphOf(t, nil, builder.Complete(tc.n))
			p, err := coloring.Color(context.Background(), g,
				append([]coloring.Option{coloring.WithStrategy(coloring.StrategyConflictRecolor)}, tc.opts...)...)
			require.NoError(t, err)
			require.Equal(t, tc.n, p.ColorCount())
			require.NoError(t, coloring.Validate(g, p))
		})
	}
}

// TestConflictRecolor_WorkerIndependent: for a fixed seed and block size
// the result does not depend on how many goroutines color the blocks.
func TestConflictRecolor_WorkerIndependent(t *testing.T) {
	t.Parallel()
	g := graphOf(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(400, 0.02))

	ref, err := coloring.ConflictRecolor(context.Background(), g,
		coloring.WithSeed(8), coloring.WithWorkers(1), coloring.WithMinChunk(16))
	require.NoError(t, err)
	for _, w := range []int{2, 3, 8} {
		p, err := coloring.ConflictRecolor(context.Background(), g,
			coloring.WithSeed(8), coloring.WithWorkers(w), coloring.WithMinChunk(16))
		require.NoError(t, err)
		if diff := cmp.Diff(ref.Colors(), p.Colors()); diff != "" {
			t.Fatalf("workers=%d mismatch (-want +got):\n%s", w, diff)
		}
	}
}

func TestRandomizedSequential_Deterministic(t *testing.T) {
	t.Parallel()
	g := graphOf(t, []builder.BuilderOption{builder.WithSeed(4)}, builder.RandomSparse(200, 0.05))
	a, err := coloring.RandomizedSequential(g, 17)
	require.NoError(t, err)
	b, err := coloring.RandomizedSequential(g, 17)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(a.Colors(), b.Colors()))
}

func TestConflictRecolor_Cancelled(t *testing.T) {
	t.Parallel()
	g := graphOf(t, nil, builder.Laplacian2D(8, 8))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := coloring.ConflictRecolor(ctx, g)
	require.ErrorIs(t, err, context.Canceled)
}

func TestColor_NilGraph(t *testing.T) {
	t.Parallel()
	_, err := coloring.Color(context.Background(), nil)
	require.ErrorIs(t, err, coloring.ErrNilGraph)
	_, err = coloring.RandomizedSequential(nil, 1)
	require.ErrorIs(t, err, coloring.ErrNilGraph)
	_, err = coloring.Oracle(nil)
	require.ErrorIs(t, err, coloring.ErrNilGraph)
}

// TestOracle_MatchesLibrary: the oracle returns the library's coloring,
// compacted, for every node.
func TestOracle_MatchesLibrary(t *testing.T) {
	t.Parallel()
	g := graphOf(t, []builder.BuilderOption{builder.WithSeed(21)}, builder.RandomBoundedDegree(200, 5))

	k, colors, err := gcoloring.WelshPowell(g.ToGonum(), nil)
	require.NoError(t, err)

	p, err := coloring.Oracle(g)
	require.NoError(t, err)
	require.Equal(t, g.N(), p.Len())
	require.Equal(t, k, p.ColorCount())
	require.LessOrEqual(t, p.ColorCount(), g.MaxDegree()+1)
	for id, c := range colors {
		for u := range colors {
			if colors[u] == c {
				require.Equal(t, p.ColorOf(int(id)), p.ColorOf(int(u)))
			}
		}
	}
}
