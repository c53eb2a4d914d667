package coloring_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/mcgs/builder"
	"github.com/katalvlaran/mcgs/coloring"
	"github.com/katalvlaran/mcgs/depgraph"
)

func benchGraph(b *testing.B) *depgraph.Graph {
	b.Helper()
	a, err := builder.Build([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomBoundedDegree(20000, 8))
	if err != nil {
		b.Fatal(err)
	}
	g, err := depgraph.FromMatrix(a)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkColor(b *testing.B) {
	g := benchGraph(b)
	for _, s := range []coloring.Strategy{
		coloring.StrategyRandomizedSequential,
		coloring.StrategyConflictRecolor,
		coloring.StrategyLibrary,
	} {
		b.Run(s.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := coloring.Color(context.Background(), g, coloring.WithStrategy(s)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
