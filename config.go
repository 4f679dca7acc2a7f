package grapple

import "fmt"

// Config holds the tunables of a rope. Changes made while a rope is spawned
// only affect links created afterwards.
type Config struct {
	LinkLength float64
	LinkMass   float64
	MaxLinks   int

	// Collision category bits of link shapes and the categories they collide with.
	Layer, Mask uint

	SpringStiffness float64
	SpringDamping   float64

	// NegateRelativeVelocity cancels each link's velocity relative to the
	// head when spooling starts so the chain doesn't snap into the head.
	NegateRelativeVelocity bool
}

func DefaultConfig() Config {
	return Config{
		LinkLength:             8,
		LinkMass:               0.1,
		MaxLinks:               64,
		Layer:                  1,
		Mask:                   1,
		SpringStiffness:        400,
		SpringDamping:          20,
		NegateRelativeVelocity: true,
	}
}

func (c Config) Validate() error {
	if c.LinkLength <= 0 {
		return fmt.Errorf("link length must be positive, got %v", c.LinkLength)
	}
	if c.LinkMass <= 0 {
		return fmt.Errorf("link mass must be positive, got %v", c.LinkMass)
	}
	if c.MaxLinks < 1 {
		return fmt.Errorf("max links must be at least 1, got %d", c.MaxLinks)
	}
	if c.SpringStiffness < 0 || c.SpringDamping < 0 {
		return fmt.Errorf("spring stiffness and damping must not be negative, got %v and %v", c.SpringStiffness, c.SpringDamping)
	}
	return nil
}
