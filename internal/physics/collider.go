package physics

import "ballmachine/internal/vecmath"

// Colliders is the ordered set of static boxes balls bounce off.
// Boxes are immutable once added.
type Colliders struct {
	boxes []vecmath.AABB
}

// Add registers a box. Registration order is the collision order.
func (c *Colliders) Add(box vecmath.AABB) {
	c.boxes = append(c.boxes, box)
}

// Clear drops every box.
func (c *Colliders) Clear() {
	c.boxes = c.boxes[:0]
}

// Len returns the number of registered boxes.
func (c *Colliders) Len() int {
	return len(c.boxes)
}

// All returns the registered boxes. The slice must not be modified.
func (c *Colliders) All() []vecmath.AABB {
	return c.boxes
}

// collideSphere resolves a sphere of radius r against every box in order, pushing
// it out and reflecting the approaching normal velocity.
func (c *Colliders) collideSphere(pos, vel *vecmath.Vec3, r, e, friction, eps float32) {
	for _, box := range c.boxes {
		closest := box.ClosestPoint(*pos)
		delta := pos.Sub(closest)
		d := delta.Len()
		if d >= r {
			continue
		}
		n, _ := vecmath.Normalize(delta, vecmath.Up)
		*pos = pos.Add(n.Mul(r - d + eps))

		// A sliding contact with no normal speed still takes the tangential damping.
		if vel.Dot(n) <= 0 {
			*vel = vecmath.Reflect(*vel, n, e, friction)
		}
	}
}
