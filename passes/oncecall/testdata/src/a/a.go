package a

import "code.hybscloud.com/clos"

func double(s int, i int) int { return s * i }

func twice() {
	c := clos.NewOnce(2, double)
	_ = c.CallOnce(1)
	_ = c.CallOnce(2) // want `CallOnce called on once closure c already consumed at .*a.go:9`
}

func sameStatement() {
	c := clos.NewOnce(2, double)
	_ = c.CallOnce(1) + c.CallOnce(2) // want `CallOnce called on once closure c already consumed`
}

func afterDiscard() {
	c := clos.NewOnce(2, double)
	c.Discard()
	_ = c.CallOnce(1) // want `CallOnce called on once closure c already consumed`
}

func tryIsTolerated() {
	c := clos.NewOnce(2, double)
	_ = c.CallOnce(1)
	if _, ok := c.TryCallOnce(2); ok {
		panic("unreachable")
	}
}

func helper() {
	c := clos.NewOnce(2, func(s int, _ clos.Unit) int { return s })
	_ = clos.CallOnce0[int](c)
	_ = clos.CallOnce0[int](c) // want `CallOnce0 called on once closure c already consumed`
}

func reassigned() {
	c := clos.NewOnce(2, double)
	_ = c.CallOnce(1)
	c = clos.NewOnce(3, double)
	_ = c.CallOnce(1)
}

func branches(cond bool) {
	c := clos.NewOnce(2, double)
	if cond {
		_ = c.CallOnce(1)
	} else {
		_ = c.CallOnce(2)
	}
}

func distinct() {
	a := clos.NewOnce(2, double)
	b := clos.NewOnce(3, double)
	_ = a.CallOnce(1)
	_ = b.CallOnce(1)
}

func inCase(n int) {
	c := clos.NewOnce(2, double)
	switch n {
	case 0:
		_ = c.CallOnce(1)
		_ = c.CallOnce(1) // want `CallOnce called on once closure c already consumed`
	}
}

func inForLoop() {
	c := clos.NewOnce(2, double)
	for i := 0; i < 2; i++ {
		_ = c.CallOnce(i) // want `CallOnce called on once closure c in a loop that does not reassign it`
	}
}

func inRangeLoop(xs []int) {
	c := clos.NewOnce(2, double)
	for _, x := range xs {
		_ = c.CallOnce(x) // want `CallOnce called on once closure c in a loop`
	}
}

func afterEnclosingCall(cond bool) {
	c := clos.NewOnce(2, double)
	_ = c.CallOnce(1)
	if cond {
		_ = c.CallOnce(2) // want `CallOnce called on once closure c already consumed at .*a.go`
	}
}

func nestedBlocks(n int) {
	c := clos.NewOnce(2, double)
	c.Discard()
	switch n {
	case 1:
		{
			_ = c.CallOnce(1) // want `CallOnce called on once closure c already consumed`
		}
	}
}

func loopReassigns() {
	var c *clos.ClosureOnce[int, int, int]
	for i := range 3 {
		c = clos.NewOnce(i, double)
		_ = c.CallOnce(i)
	}
}

func declaredInLoop() {
	for i := range 3 {
		c := clos.NewOnce(i, double)
		_ = c.CallOnce(i)
	}
}

func loopExitsAfterCall(xs []int) int {
	c := clos.NewOnce(2, double)
	for _, x := range xs {
		if x > 0 {
			return c.CallOnce(x)
		}
	}
	for _, x := range xs {
		if x < 0 {
			_ = c.CallOnce(x)
			break
		}
	}
	return 0
}

func branchDoesNotLeak(cond bool) {
	c := clos.NewOnce(2, double)
	if cond {
		_ = c.CallOnce(1)
		return
	}
	_ = c.CallOnce(2)
}

func tryInLoop() {
	c := clos.NewOnce(2, double)
	for i := range 3 {
		if _, ok := c.TryCallOnce(i); ok {
			continue
		}
	}
}
