package types

import "testing"

func TestWrapEdges(t *testing.T) {
	g := Grid{Width: 35, Height: 35}

	cases := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{X: 10, Y: 20}, Point{X: 10, Y: 20}},
		{"right edge", Point{X: 35, Y: 17}, Point{X: 0, Y: 17}},
		{"left edge", Point{X: -1, Y: 17}, Point{X: 34, Y: 17}},
		{"bottom edge", Point{X: 17, Y: 35}, Point{X: 17, Y: 0}},
		{"top edge", Point{X: 17, Y: -1}, Point{X: 17, Y: 34}},
		{"corner", Point{X: -1, Y: 35}, Point{X: 34, Y: 0}},
	}

	for _, c := range cases {
		if got := g.Wrap(c.in); got != c.want {
			t.Errorf("%s: Wrap(%v) = %v, want %v", c.name, c.in, got, c.want)
		}
	}
}

func TestDeltaAcrossSeam(t *testing.T) {
	g := Grid{Width: 35, Height: 35}

	cases := []struct {
		a, b, want Point
	}{
		{Point{X: 5, Y: 5}, Point{X: 4, Y: 5}, DirRight},
		{Point{X: 0, Y: 17}, Point{X: 34, Y: 17}, DirRight},
		{Point{X: 34, Y: 17}, Point{X: 0, Y: 17}, DirLeft},
		{Point{X: 17, Y: 0}, Point{X: 17, Y: 34}, DirDown},
		{Point{X: 17, Y: 34}, Point{X: 17, Y: 0}, DirUp},
	}

	for _, c := range cases {
		if got := g.Delta(c.a, c.b); got != c.want {
			t.Errorf("Delta(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
