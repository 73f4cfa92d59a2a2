package a

import "code.hybscloud.com/clos"

var global = 3

const k = 2

type pair struct{ x, y int }

func helper(x int) int { return x }

func capturefree() {
	_ = clos.New(10, func(s int, i int) int { return i + s + global + k + helper(i) })
	_ = clos.NewMut(0, func(s *int, _ clos.Unit) int {
		local := *s
		local++
		*s = local
		return local
	})
	_ = clos.New(pair{1, 2}, func(s pair, _ clos.Unit) pair { return pair{x: s.y, y: s.x} })
}

func captures(p int) {
	base := 10
	_ = clos.New(0, func(s int, i int) int { return i + base }) // want `operation passed to clos.New captures base; pass it through the closure state`
	_ = clos.NewMut(0, func(s *int, i int) int {
		*s += base + base // want `operation passed to clos.NewMut captures base`
		return *s
	})
	_ = clos.NewOnce(0, func(s int, i int) int { return p }) // want `operation passed to clos.NewOnce captures p`

	ref := 0
	_ = clos.NewRef(&ref, func(s int, i int) int { return s })
	_ = clos.NewRefMut(&ref, func(s *int, i int) int { return ref }) // want `operation passed to clos.NewRefMut captures ref`
	_ = clos.View[int, int, int](func(s int, i int) int { return base }) // want `operation passed to clos.View captures base`
	_ = clos.New[int, int, int](0, (func(s int, i int) int { return base })) // want `operation passed to clos.New captures base`

	f := func(s int, i int) int { return base }
	_ = clos.New(0, f)
}
