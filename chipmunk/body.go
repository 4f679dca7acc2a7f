package chipmunk

import (
	"github.com/jakecoffman/cp"
	"github.com/jakecoffman/grapple"
)

// Body adapts a *cp.Body to grapple.Body. Get one from Container.Wrap or
// Container.SpawnLink so that every cp body has a single wrapper.
type Body struct {
	body      *cp.Body
	container *Container

	contactLimit int
}

var _ grapple.Body = (*Body)(nil)

// Raw returns the underlying Chipmunk body.
func (b *Body) Raw() *cp.Body {
	return b.body
}

func (b *Body) Valid() bool {
	return b != nil && b.body != nil && b.container.Space.ContainsBody(b.body)
}

func (b *Body) Kind() grapple.BodyKind {
	if !b.Valid() {
		return grapple.Static
	}
	switch b.body.GetType() {
	case cp.BODY_DYNAMIC:
		return grapple.Dynamic
	case cp.BODY_KINEMATIC:
		return grapple.Kinematic
	}
	return grapple.Static
}

func (b *Body) Position() cp.Vector {
	if !b.Valid() {
		return cp.Vector{}
	}
	return b.body.Position()
}

func (b *Body) Angle() float64 {
	if !b.Valid() {
		return 0
	}
	return b.body.Angle()
}

func (b *Body) Velocity() cp.Vector {
	if !b.Valid() {
		return cp.Vector{}
	}
	return b.body.Velocity()
}

func (b *Body) AngularVelocity() float64 {
	if !b.Valid() {
		return 0
	}
	return b.body.AngularVelocity()
}

func (b *Body) Mass() float64 {
	if !b.Valid() {
		return 0
	}
	return b.body.Mass()
}

func (b *Body) LocalToWorld(point cp.Vector) cp.Vector {
	if !b.Valid() {
		return cp.Vector{}
	}
	return b.body.LocalToWorld(point)
}

func (b *Body) WorldToLocal(point cp.Vector) cp.Vector {
	if !b.Valid() {
		return cp.Vector{}
	}
	return b.body.WorldToLocal(point)
}

func (b *Body) ApplyForceAtWorldPoint(force, point cp.Vector) {
	if b.Kind() != grapple.Dynamic {
		return
	}
	b.body.ApplyForceAtWorldPoint(force, point)
}

func (b *Body) ApplyImpulseAtWorldPoint(impulse, point cp.Vector) {
	if b.Kind() != grapple.Dynamic {
		return
	}
	b.body.ApplyImpulseAtWorldPoint(impulse, point)
}

func (b *Body) SetContactMonitor(limit int) {
	if limit < 0 {
		limit = 0
	}
	b.contactLimit = limit
}

// Contacts lists the bodies this body has arbiters with, as left by the last
// space step. The list is capped by the contact monitor limit.
func (b *Body) Contacts() []grapple.Body {
	if b.contactLimit == 0 || !b.Valid() {
		return nil
	}
	var contacts []grapple.Body
	b.body.EachArbiter(func(arb *cp.Arbiter) {
		if len(contacts) >= b.contactLimit || arb.Count() == 0 {
			return
		}
		_, other := arb.Bodies()
		contacts = append(contacts, b.container.Wrap(other))
	})
	return contacts
}

// Destroy removes the body, its shapes and every constraint touching it from
// the space. The space's static body is never removed.
func (b *Body) Destroy() {
	if !b.Valid() || b.body == b.container.Space.StaticBody {
		return
	}
	space := b.container.Space

	var constraints []*cp.Constraint
	b.body.EachConstraint(func(c *cp.Constraint) {
		constraints = append(constraints, c)
	})
	for _, c := range constraints {
		space.RemoveConstraint(c)
	}

	var shapes []*cp.Shape
	b.body.EachShape(func(s *cp.Shape) {
		shapes = append(shapes, s)
	})
	for _, s := range shapes {
		space.RemoveShape(s)
	}

	space.RemoveBody(b.body)
	delete(b.container.bodies, b.body)
}
