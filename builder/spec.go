// SPDX-License-Identifier: MIT
// Package: builder
//
// spec.go - textual generator specs used by the command-line tool.
//
// Grammar (kind is case-insensitive):
//   path:N           Laplacian1D(N)
//   grid:RxC         Laplacian2D(R, C)
//   random:N:P       RandomSparse(N, P)
//   bounded:N:D      RandomBoundedDegree(N, D)
//   complete:N       Complete(N)

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns a generator spec into a Constructor. Parameter validation is
// deferred to the constructor itself.
func Parse(spec string) (Constructor, error) {
	parts := strings.Split(strings.TrimSpace(spec), ":")
	kind := strings.ToLower(parts[0])
	args := parts[1:]

	switch kind {
	case "path":
		n, err := specInts(spec, args, 1)
		if err != nil {
			return nil, err
		}
		return Laplacian1D(n[0]), nil
	case "grid":
		if len(args) != 1 {
			return nil, fmt.Errorf("Parse: %q: want grid:RxC: %w", spec, ErrBadSpec)
		}
		dims := strings.SplitN(strings.ToLower(args[0]), "x", 2)
		if len(dims) != 2 {
			return nil, fmt.Errorf("Parse: %q: want grid:RxC: %w", spec, ErrBadSpec)
		}
		rc, err := specInts(spec, dims, 2)
		if err != nil {
			return nil, err
		}
		return Laplacian2D(rc[0], rc[1]), nil
	case "random":
		if len(args) != 2 {
			return nil, fmt.Errorf("Parse: %q: want random:N:P: %w", spec, ErrBadSpec)
		}
		n, err := specInts(spec, args[:1], 1)
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("Parse: %q: %w: %w", spec, ErrBadSpec, err)
		}
		return RandomSparse(n[0], p), nil
	case "bounded":
		nd, err := specInts(spec, args, 2)
		if err != nil {
			return nil, err
		}
		return RandomBoundedDegree(nd[0], nd[1]), nil
	case "complete":
		n, err := specInts(spec, args, 1)
		if err != nil {
			return nil, err
		}
		return Complete(n[0]), nil
	}

	return nil, fmt.Errorf("Parse: %q: unknown kind %q: %w", spec, kind, ErrBadSpec)
}

func specInts(spec string, args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, fmt.Errorf("Parse: %q: want %d integer argument(s): %w", spec, want, ErrBadSpec)
	}
	out := make([]int, want)
	for i, s := range args {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("Parse: %q: %w: %w", spec, ErrBadSpec, err)
		}
		out[i] = v
	}

	return out, nil
}
