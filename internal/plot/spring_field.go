package plot

import "github.com/charmbracelet/harmonica"

type springField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newSpringField(fps int, frequency, damping float64) springField {
	return springField{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// resize keeps the current positions when the column count is unchanged.
// A new size starts every column from target so a resize does not animate.
func (s *springField) resize(n int, target func(i int) float64) {
	if len(s.pos) == n {
		return
	}
	s.pos = make([]float64, n)
	s.vel = make([]float64, n)
	for i := 0; i < n; i++ {
		s.pos[i] = target(i)
	}
}

func (s *springField) step(i int, target float64) float64 {
	p, v := s.spring.Update(s.pos[i], s.vel[i], target)
	s.pos[i] = p
	s.vel[i] = v
	return p
}
