package grapple

import "github.com/jakecoffman/cp"

const (
	// LinkRadius is the capsule radius of every link body.
	LinkRadius = 1.0
	// MaxContacts bounds the bodies a link reports per tick.
	MaxContacts = 4
)

type linkID int32

const noLink linkID = -1

// link is one physical segment of the rope. next points toward the leading
// end, away from the head body.
type link struct {
	body Body

	// neighbor joins this link to the link created in front of it, closer to
	// the head. world is set on the leading link once it has grappled.
	neighbor Joint
	world    Joint
	spring   *DampedSpring

	next linkID
	live bool
}

// chain is an arena of links. Ids of destroyed links are recycled.
type chain struct {
	links []link
	free  []linkID
}

func (c *chain) get(id linkID) *link {
	if id < 0 || int(id) >= len(c.links) || !c.links[id].live {
		return nil
	}
	return &c.links[id]
}

func (c *chain) body(id linkID) Body {
	if l := c.get(id); l != nil {
		return l.body
	}
	return nil
}

func (c *chain) next(id linkID) linkID {
	if l := c.get(id); l != nil {
		return l.next
	}
	return noLink
}

func (c *chain) create(container Container, def LinkDef) linkID {
	l := link{
		body: container.SpawnLink(def),
		next: noLink,
		live: true,
	}
	if n := len(c.free); n > 0 {
		id := c.free[n-1]
		c.free = c.free[:n-1]
		c.links[id] = l
		return id
	}
	c.links = append(c.links, l)
	return linkID(len(c.links) - 1)
}

func (c *chain) attachToPrevious(container Container, id, other linkID) {
	l, o := c.get(id), c.get(other)
	if l == nil || o == nil || !valid(l.body) || !valid(o.body) {
		return
	}
	if l.neighbor != nil {
		l.neighbor.Destroy()
	}
	mid := l.body.Position().Add(o.body.Position()).Mult(0.5)
	l.neighbor = container.Pivot(l.body, o.body, mid)
}

func (c *chain) attachToWorld(container Container, id linkID, world Body) Joint {
	l := c.get(id)
	if l == nil || !valid(l.body) || !valid(world) {
		return nil
	}
	if l.world != nil {
		l.world.Destroy()
	}
	l.world = container.Pivot(l.body, world, l.body.Position())
	return l.world
}

func (c *chain) springAttachToHead(id linkID, head Body, stiffness, damping float64) {
	l := c.get(id)
	if l == nil {
		return
	}
	l.spring = NewDampedSpring(l.body, head, cp.Vector{}, cp.Vector{}, 0, stiffness, damping)
}

func (c *chain) springAttachNextToHead(id linkID, head Body, stiffness, damping float64) {
	if next := c.next(id); next != noLink {
		c.springAttachToHead(next, head, stiffness, damping)
	}
}

func (c *chain) detach(id linkID) {
	l := c.get(id)
	if l == nil || l.neighbor == nil {
		return
	}
	l.neighbor.Destroy()
	l.neighbor = nil
}

func (c *chain) enableContactMonitor(id linkID) {
	if b := c.body(id); valid(b) {
		b.SetContactMonitor(MaxContacts)
	}
}

// destroy releases the link's joints and body. Links pointing at it are left
// alone; keeping the chain consistent is up to the caller.
func (c *chain) destroy(id linkID) {
	l := c.get(id)
	if l == nil {
		return
	}
	if l.neighbor != nil {
		l.neighbor.Destroy()
	}
	if l.world != nil {
		l.world.Destroy()
	}
	if l.body != nil {
		l.body.Destroy()
	}
	c.links[id] = link{next: noLink}
	c.free = append(c.free, id)
}

func (c *chain) leading(id linkID) linkID {
	if c.get(id) == nil {
		return noLink
	}
	for next := c.next(id); next != noLink; next = c.next(id) {
		id = next
	}
	return id
}

func (c *chain) length(id linkID) int {
	n := 0
	for ; c.get(id) != nil; id = c.next(id) {
		n++
	}
	return n
}

// contains reports whether body belongs to a link reachable from id.
func (c *chain) contains(id linkID, body Body) bool {
	for ; c.get(id) != nil; id = c.next(id) {
		if c.links[id].body == body {
			return true
		}
	}
	return false
}

// step ticks the head springs of id and every link after it.
func (c *chain) step(id linkID, dt float64) {
	for ; c.get(id) != nil; id = c.next(id) {
		l := &c.links[id]
		if l.spring == nil {
			continue
		}
		if !l.spring.Valid() {
			l.spring = nil
			continue
		}
		l.spring.Step(dt)
	}
}

func (c *chain) reset() {
	c.links = c.links[:0]
	c.free = c.free[:0]
}
