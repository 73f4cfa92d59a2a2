package b

import "code.hybscloud.com/clos"

func params(p int) {
	_ = clos.New(0, func(s int, i int) int { return p + i })

	local := 1
	_ = clos.New(0, func(s int, i int) int { return local }) // want `operation passed to clos.New captures local`
}

type counter struct{ n int }

func (c *counter) op() {
	_ = clos.NewMut(0, func(s *int, _ clos.Unit) int { return c.n })
}
