package grapple

import (
	"log"

	"github.com/jakecoffman/cp"
)

type State int

const (
	Unspawned State = iota
	Extending
	Retracting
)

func (s State) String() string {
	switch s {
	case Unspawned:
		return "unspawned"
	case Extending:
		return "extending"
	case Retracting:
		return "retracting"
	}
	return "unknown"
}

type (
	AttachFunc     func(body Body, joint Joint)
	SpoolStartFunc func()
	SpoolEndFunc   func()
)

// Rope is a chain of rigid links between a head body and whatever the
// leading link grapples. It grows from the head end while the head moves away
// and is reeled in link by link once it attaches.
//
// Step must be called once per physics step, outside of the space step.
type Rope struct {
	Config Config

	// Called inline from Step and StartSpooling. Nil hooks are skipped.
	AttachFunc     AttachFunc
	SpoolStartFunc SpoolStartFunc
	SpoolEndFunc   SpoolEndFunc

	// Logger receives lifecycle messages when set.
	Logger *log.Logger

	head      Body
	container Container

	links chain
	entry linkID

	attachedToHead  bool
	attachedToWorld bool
}

func NewRope(head Body, container Container, config Config) *Rope {
	assert(head != nil, "rope needs a head body")
	assert(container != nil, "rope needs a container")
	err := config.Validate()
	assert(err == nil, err)

	return &Rope{
		Config:    config,
		head:      head,
		container: container,
		entry:     noLink,
	}
}

func (rope *Rope) logf(format string, args ...interface{}) {
	if rope.Logger != nil {
		rope.Logger.Printf("[grapple] "+format, args...)
	}
}

func (rope *Rope) Head() Body {
	return rope.head
}

func (rope *Rope) IsSpawned() bool {
	return rope.entry != noLink
}

func (rope *Rope) AttachedToHead() bool {
	return rope.attachedToHead
}

func (rope *Rope) AttachedToWorld() bool {
	return rope.attachedToWorld
}

func (rope *Rope) State() State {
	switch {
	case !rope.IsSpawned():
		return Unspawned
	case rope.attachedToHead || rope.attachedToWorld:
		return Retracting
	default:
		return Extending
	}
}

// TailPosition is the position of the link nearest the head, or zero.
func (rope *Rope) TailPosition() cp.Vector {
	if b := rope.links.body(rope.entry); valid(b) {
		return b.Position()
	}
	return cp.Vector{}
}

func (rope *Rope) LinkCount() int {
	return rope.links.length(rope.entry)
}

// ChainPoints appends the head position followed by every link position from
// the head end to the leading end.
func (rope *Rope) ChainPoints(dst []cp.Vector) []cp.Vector {
	dst = append(dst, rope.head.Position())
	for id := rope.entry; id != noLink; id = rope.links.next(id) {
		if b := rope.links.body(id); valid(b) {
			dst = append(dst, b.Position())
		}
	}
	return dst
}

// Launch throws a new rope from the head with the given velocity, destroying
// any rope already out. A zero velocity does nothing.
func (rope *Rope) Launch(velocity cp.Vector) {
	if velocity.Length() <= Epsilon {
		return
	}
	rope.Destroy()

	pos := rope.head.Position()
	rope.entry = rope.spawnLink(pos, velocity.ToAngle())

	body := rope.links.body(rope.entry)
	impulse := rope.head.Velocity().Mult(body.Mass()).Add(velocity)
	body.ApplyImpulseAtWorldPoint(impulse, body.Position())
	rope.links.enableContactMonitor(rope.entry)

	rope.logf("launched from %v with velocity %v", pos, velocity)
}

// Destroy removes every link. It is safe to call in any state.
func (rope *Rope) Destroy() {
	for id := rope.entry; id != noLink; {
		next := rope.links.next(id)
		rope.links.destroy(id)
		id = next
	}
	rope.links.reset()
	rope.entry = noLink
	rope.attachedToHead = false
	rope.attachedToWorld = false
}

// StartSpooling begins reeling the rope in toward the head.
func (rope *Rope) StartSpooling() {
	if !rope.IsSpawned() || rope.attachedToHead {
		return
	}
	cfg := rope.Config

	rope.links.springAttachToHead(rope.entry, rope.head, cfg.SpringStiffness, cfg.SpringDamping)
	rope.attachedToHead = true

	if cfg.NegateRelativeVelocity {
		rope.negateRelativeVelocity()
	}

	rope.logf("spooling %d links", rope.LinkCount())
	if rope.SpoolStartFunc != nil {
		rope.SpoolStartFunc()
	}
}

func (rope *Rope) negateRelativeVelocity() {
	headVel := rope.head.Velocity()
	for id := rope.entry; id != noLink; id = rope.links.next(id) {
		b := rope.links.body(id)
		if !valid(b) || b.Kind() != Dynamic {
			continue
		}
		rel := b.Velocity().Sub(headVel)
		b.ApplyImpulseAtWorldPoint(rel.Mult(-b.Mass()), b.Position())
	}
}

func (rope *Rope) Step(dt float64) {
	if rope.IsSpawned() && !valid(rope.links.body(rope.entry)) {
		rope.logf("entry link removed externally, dropping rope")
		rope.Destroy()
		return
	}

	if rope.attachedToWorld || rope.attachedToHead {
		rope.retract()
	} else {
		rope.extend()
	}

	rope.detectWorldAttachment()

	if rope.IsSpawned() {
		rope.links.step(rope.entry, dt)
	}
}

func (rope *Rope) spawnLink(pos cp.Vector, angle float64) linkID {
	cfg := rope.Config
	return rope.links.create(rope.container, LinkDef{
		Position: pos,
		Angle:    angle,
		Length:   cfg.LinkLength,
		Radius:   LinkRadius,
		Mass:     cfg.LinkMass,
		Layer:    cfg.Layer,
		Mask:     cfg.Mask,
	})
}

func (rope *Rope) extend() {
	if !rope.IsSpawned() {
		return
	}
	half := rope.Config.LinkLength / 2

	for {
		entry := rope.links.body(rope.entry)
		headPos := rope.head.Position()
		entryPos := entry.Position()
		dist := entryPos.Distance(headPos)
		if dist <= half {
			return
		}
		if rope.LinkCount() >= rope.Config.MaxLinks {
			rope.logf("max length of %d links reached", rope.Config.MaxLinks)
			rope.StartSpooling()
			return
		}

		dir := headPos.Sub(entryPos).Mult(1.0 / dist)
		pos := entryPos.Add(dir.Mult(half))
		id := rope.spawnLink(pos, dir.Neg().ToAngle())
		rope.links.get(id).next = rope.entry

		body := rope.links.body(id)
		body.ApplyImpulseAtWorldPoint(entry.Velocity().Mult(body.Mass()), body.Position())

		rope.links.attachToPrevious(rope.container, rope.entry, id)
		rope.entry = id
	}
}

func (rope *Rope) retract() {
	if !rope.IsSpawned() {
		return
	}
	cfg := rope.Config
	links := &rope.links

	links.springAttachToHead(rope.entry, rope.head, cfg.SpringStiffness, cfg.SpringDamping)
	links.springAttachNextToHead(rope.entry, rope.head, cfg.SpringStiffness, cfg.SpringDamping)

	dist := links.body(rope.entry).Position().Distance(rope.head.Position())
	threshold := cfg.LinkLength
	if rope.LinkCount() <= 3 {
		// the head's own shape keeps the last few links from getting close
		threshold *= 2
	}
	if dist > threshold {
		return
	}

	next := links.next(rope.entry)
	if next == noLink {
		rope.Destroy()
		rope.logf("spool ended")
		if rope.SpoolEndFunc != nil {
			rope.SpoolEndFunc()
		}
		return
	}

	links.detach(next)
	links.springAttachToHead(next, rope.head, cfg.SpringStiffness, cfg.SpringDamping)
	links.springAttachNextToHead(next, rope.head, cfg.SpringStiffness, cfg.SpringDamping)
	links.destroy(rope.entry)
	rope.entry = next
}

func (rope *Rope) detectWorldAttachment() {
	if !rope.IsSpawned() || rope.attachedToWorld {
		return
	}
	leading := rope.links.leading(rope.entry)
	body := rope.links.body(leading)
	if !valid(body) {
		return
	}

	for _, other := range body.Contacts() {
		if !valid(other) || other == rope.head || rope.links.contains(rope.entry, other) {
			continue
		}
		joint := rope.links.attachToWorld(rope.container, leading, other)
		if joint == nil {
			continue
		}
		rope.attachedToWorld = true
		rope.logf("attached to %v body at %v", other.Kind(), body.Position())
		rope.StartSpooling()
		if rope.AttachFunc != nil {
			rope.AttachFunc(other, joint)
		}
		return
	}
}
