package grapple

import "github.com/jakecoffman/cp"

// Epsilon is the distance below which two spring anchors count as coincident.
const Epsilon = 5e-7

// PointVelocity returns the velocity of body at offset, a point relative to
// its center of mass in body-local coordinates.
func PointVelocity(body Body, offset cp.Vector) cp.Vector {
	if !valid(body) || !body.Kind().Moving() {
		return cp.Vector{}
	}
	r := offset.Rotate(cp.ForAngle(body.Angle()))
	return body.Velocity().Add(r.Perp().Mult(body.AngularVelocity()))
}

// PointVelocityGlobal is PointVelocity for a point given in world space.
func PointVelocityGlobal(body Body, point cp.Vector) cp.Vector {
	if !valid(body) {
		return cp.Vector{}
	}
	return PointVelocity(body, body.WorldToLocal(point))
}

// SpringForce returns the force a damped spring between a and b exerts on a.
// The force on b is its negation.
func SpringForce(posA, velA, posB, velB cp.Vector, restLength, stiffness, damping float64) cp.Vector {
	delta := posA.Sub(posB)
	dist := delta.Length()
	if dist <= Epsilon {
		return cp.Vector{}
	}
	dir := delta.Mult(1.0 / dist)

	stretch := restLength - dist
	closing := velA.Sub(velB).Dot(dir)
	return dir.Mult(stretch*stiffness - closing*damping)
}
