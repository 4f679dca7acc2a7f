package grapple

import "github.com/jakecoffman/cp"

// BodyKind tells the rope what a body can do without type-testing it.
type BodyKind int

// body kinds
const (
	Dynamic BodyKind = iota
	Kinematic
	Static
)

func (k BodyKind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case Kinematic:
		return "kinematic"
	case Static:
		return "static"
	}
	return "unknown"
}

// Moving reports whether bodies of this kind carry a velocity.
func (k BodyKind) Moving() bool {
	return k == Dynamic || k == Kinematic
}

// Body is a rigid body owned by the physics backend.
//
// The backend may remove a body between ticks. Once that happens Valid returns
// false, queries return zero values and mutators do nothing.
type Body interface {
	Valid() bool
	Kind() BodyKind

	Position() cp.Vector
	Angle() float64
	Velocity() cp.Vector
	AngularVelocity() float64
	Mass() float64

	LocalToWorld(point cp.Vector) cp.Vector
	WorldToLocal(point cp.Vector) cp.Vector

	ApplyForceAtWorldPoint(force, point cp.Vector)
	ApplyImpulseAtWorldPoint(impulse, point cp.Vector)

	// SetContactMonitor enables contact reporting for up to limit bodies per
	// tick. A limit of 0 turns reporting off.
	SetContactMonitor(limit int)
	// Contacts returns the bodies touching this one during the last step.
	Contacts() []Body

	Destroy()
}

// Joint is a rigid point constraint between two bodies.
type Joint interface {
	Valid() bool
	Bodies() (Body, Body)
	Destroy()
}

// LinkDef describes a new link body in world space.
type LinkDef struct {
	Position cp.Vector
	Angle    float64

	// Capsule height along the local X axis and its radius.
	Length, Radius float64
	Mass           float64

	Layer, Mask uint
}

// Container is the spatial parent new link bodies are created under.
type Container interface {
	// SpawnLink creates a dynamic capsule body. The definition is in world
	// space; the container converts it to its own space.
	SpawnLink(def LinkDef) Body
	// Pivot creates a rigid joint between a and b anchored at a world point.
	Pivot(a, b Body, anchor cp.Vector) Joint
}

func valid(b Body) bool {
	return b != nil && b.Valid()
}
