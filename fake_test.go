package grapple

import "github.com/jakecoffman/cp"

type fakeForce struct {
	force, point cp.Vector
}

// fakeBody is a scripted body: nothing moves unless a test moves it, but
// impulses change velocity so that velocity hand-offs can be checked.
type fakeBody struct {
	kind  BodyKind
	pos   cp.Vector
	vel   cp.Vector
	angle float64
	w     float64
	mass  float64

	forces   []fakeForce
	impulses []cp.Vector

	contactLimit int
	contacts     []Body

	destroyed bool
}

func newFakeBody(kind BodyKind, pos cp.Vector) *fakeBody {
	return &fakeBody{kind: kind, pos: pos, mass: 1}
}

func (b *fakeBody) Valid() bool { return !b.destroyed }
func (b *fakeBody) Kind() BodyKind { return b.kind }
func (b *fakeBody) Position() cp.Vector { return b.pos }
func (b *fakeBody) Angle() float64 { return b.angle }
func (b *fakeBody) Velocity() cp.Vector { return b.vel }
func (b *fakeBody) AngularVelocity() float64 { return b.w }
func (b *fakeBody) Mass() float64 { return b.mass }

func (b *fakeBody) LocalToWorld(point cp.Vector) cp.Vector {
	return b.pos.Add(point.Rotate(cp.ForAngle(b.angle)))
}

func (b *fakeBody) WorldToLocal(point cp.Vector) cp.Vector {
	return point.Sub(b.pos).Unrotate(cp.ForAngle(b.angle))
}

func (b *fakeBody) ApplyForceAtWorldPoint(force, point cp.Vector) {
	b.forces = append(b.forces, fakeForce{force, point})
}

func (b *fakeBody) ApplyImpulseAtWorldPoint(impulse, point cp.Vector) {
	b.impulses = append(b.impulses, impulse)
	if b.kind == Dynamic {
		b.vel = b.vel.Add(impulse.Mult(1 / b.mass))
	}
}

func (b *fakeBody) SetContactMonitor(limit int) {
	b.contactLimit = limit
}

func (b *fakeBody) Contacts() []Body {
	if b.contactLimit == 0 {
		return nil
	}
	if len(b.contacts) > b.contactLimit {
		return b.contacts[:b.contactLimit]
	}
	return b.contacts
}

func (b *fakeBody) Destroy() {
	b.destroyed = true
}

type fakeJoint struct {
	a, b      Body
	anchor    cp.Vector
	destroyed bool
}

func (j *fakeJoint) Valid() bool { return !j.destroyed }
func (j *fakeJoint) Bodies() (Body, Body) { return j.a, j.b }
func (j *fakeJoint) Destroy() { j.destroyed = true }

type fakeContainer struct {
	spawned []*fakeBody
	defs    []LinkDef
	joints  []*fakeJoint
}

func (c *fakeContainer) SpawnLink(def LinkDef) Body {
	b := newFakeBody(Dynamic, def.Position)
	b.angle = def.Angle
	b.mass = def.Mass
	c.spawned = append(c.spawned, b)
	c.defs = append(c.defs, def)
	return b
}

func (c *fakeContainer) Pivot(a, b Body, anchor cp.Vector) Joint {
	j := &fakeJoint{a: a, b: b, anchor: anchor}
	c.joints = append(c.joints, j)
	return j
}

func (c *fakeContainer) live() int {
	n := 0
	for _, b := range c.spawned {
		if !b.destroyed {
			n++
		}
	}
	return n
}

func near(a, b cp.Vector) bool {
	return a.Near(b, 1e-9)
}
