package chipmunk

import (
	"github.com/jakecoffman/cp"
	"github.com/jakecoffman/grapple"
)

type Joint struct {
	constraint *cp.Constraint
	a, b       *Body
	space      *cp.Space
}

var _ grapple.Joint = (*Joint)(nil)

func (j *Joint) Raw() *cp.Constraint {
	return j.constraint
}

func (j *Joint) Valid() bool {
	return j != nil && j.constraint != nil && j.space.ContainsConstraint(j.constraint)
}

func (j *Joint) Bodies() (grapple.Body, grapple.Body) {
	return j.a, j.b
}

func (j *Joint) Destroy() {
	if !j.Valid() {
		return
	}
	j.space.RemoveConstraint(j.constraint)
}
