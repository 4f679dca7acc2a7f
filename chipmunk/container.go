// Package chipmunk runs grapple ropes on a Chipmunk2D space.
package chipmunk

import (
	"github.com/jakecoffman/cp"
	"github.com/jakecoffman/grapple"
)

// Container creates link bodies and joints in a cp.Space. Space coordinates
// are world coordinates.
type Container struct {
	Space *cp.Space

	// Group is given to every link shape so that links never collide with each
	// other. Put the head body's shapes in it too to keep the rope off the head.
	Group uint

	// Friction of new link shapes.
	Friction float64

	bodies map[*cp.Body]*Body
}

var _ grapple.Container = (*Container)(nil)

func NewContainer(space *cp.Space, group uint) *Container {
	return &Container{
		Space:    space,
		Group:    group,
		Friction: 0.7,
		bodies:   map[*cp.Body]*Body{},
	}
}

// Wrap returns the wrapper of body, creating it on first use.
func (c *Container) Wrap(body *cp.Body) *Body {
	if body == nil {
		return nil
	}
	if b, ok := c.bodies[body]; ok {
		return b
	}
	b := &Body{body: body, container: c}
	c.bodies[body] = b
	return b
}

func (c *Container) SpawnLink(def grapple.LinkDef) grapple.Body {
	half := def.Length / 2
	a, b := cp.Vector{X: -half}, cp.Vector{X: half}

	body := cp.NewBody(def.Mass, cp.MomentForSegment(def.Mass, a, b, def.Radius))
	body.SetPosition(def.Position)
	body.SetAngle(def.Angle)
	c.Space.AddBody(body)

	shape := c.Space.AddShape(cp.NewSegment(body, a, b, def.Radius))
	shape.SetFilter(cp.NewShapeFilter(c.Group, def.Layer, def.Mask))
	shape.SetFriction(c.Friction)

	return c.Wrap(body)
}

// Pivot joins two bodies owned by this container at a world point. It returns
// nil if either body is foreign or gone.
func (c *Container) Pivot(a, b grapple.Body, anchor cp.Vector) grapple.Joint {
	ba, ok := a.(*Body)
	if !ok || !ba.Valid() {
		return nil
	}
	bb, ok := b.(*Body)
	if !ok || !bb.Valid() {
		return nil
	}

	constraint := cp.NewPivotJoint(ba.body, bb.body, anchor)
	constraint.SetCollideBodies(false)
	c.Space.AddConstraint(constraint)

	return &Joint{constraint: constraint, a: ba, b: bb, space: c.Space}
}
