package grapple

import "github.com/jakecoffman/cp"

// DampedSpring pulls an anchor on A toward an anchor on B. Unlike Chipmunk's
// solver spring it is integrated outside the space: each Step computes the
// force once and hands it to the bodies as an external force.
type DampedSpring struct {
	A, B Body

	// Anchors in the local frame of each body.
	AnchorA, AnchorB cp.Vector

	RestLength, Stiffness, Damping float64
}

func NewDampedSpring(a, b Body, anchorA, anchorB cp.Vector, restLength, stiffness, damping float64) *DampedSpring {
	return &DampedSpring{
		A:          a,
		B:          b,
		AnchorA:    anchorA,
		AnchorB:    anchorB,
		RestLength: restLength,
		Stiffness:  stiffness,
		Damping:    damping,
	}
}

// Valid is false once either body is gone; the spring should then be dropped.
func (spring *DampedSpring) Valid() bool {
	return spring != nil && valid(spring.A) && valid(spring.B)
}

func (spring *DampedSpring) Step(dt float64) {
	if !spring.Valid() {
		return
	}
	a, b := spring.A, spring.B

	posA := a.LocalToWorld(spring.AnchorA)
	posB := b.LocalToWorld(spring.AnchorB)

	force := SpringForce(
		posA, PointVelocityGlobal(a, posA),
		posB, PointVelocityGlobal(b, posB),
		spring.RestLength, spring.Stiffness, spring.Damping,
	).Mult(dt)

	if a.Kind() == Dynamic {
		a.ApplyForceAtWorldPoint(force, posA)
	}
	if b.Kind() == Dynamic {
		b.ApplyForceAtWorldPoint(force.Neg(), posB)
	}
}
