package font

import "fmt"

// Spec identifies a font in a foreground colour. Specs are comparable and
// may be used as map keys.
type Spec[F, C comparable] struct {
	ID     F
	Colour C
}

// SpecOf is shorthand for constructing a spec.
func SpecOf[F, C comparable](id F, colour C) Spec[F, C] {
	return Spec[F, C]{ID: id, Colour: colour}
}

func (s Spec[F, C]) String() string {
	return fmt.Sprintf("%v/%v", s.ID, s.Colour)
}
