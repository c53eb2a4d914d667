package sweep_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/mcgs/builder"
	"github.com/katalvlaran/mcgs/coloring"
	"github.com/katalvlaran/mcgs/depgraph"
	"github.com/katalvlaran/mcgs/sweep"
)

func BenchmarkSweep_Grid256(b *testing.B) {
	a, err := builder.Build(nil, builder.Laplacian2D(256, 256))
	if err != nil {
		b.Fatal(err)
	}
	g, err := depgraph.FromMatrix(a)
	if err != nil {
		b.Fatal(err)
	}
	p, err := coloring.Color(context.Background(), g)
	if err != nil {
		b.Fatal(err)
	}
	rhs := builder.Ones(a.N())
	ex, err := sweep.NewExecutor(a, rhs, p)
	if err != nil {
		b.Fatal(err)
	}
	x := make([]float64, a.N())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ex.Sweep(x, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSequentialSweep_Grid256(b *testing.B) {
	a, err := builder.Build(nil, builder.Laplacian2D(256, 256))
	if err != nil {
		b.Fatal(err)
	}
	rhs := builder.Ones(a.N())
	x := make([]float64, a.N())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := sweep.SequentialSweep(a, rhs, x, 1, nil); err != nil {
			b.Fatal(err)
		}
	}
}
