package math

// NewPoint2 creates a point at (x, y).
func NewPoint2(x, y float32) Point2 {
	return Point2{X: x, Y: y}
}

// Point2FromVec returns the point reached by displacing the origin by v.
func Point2FromVec(v Vec2) Point2 {
	return Point2{X: v.X, Y: v.Y}
}

// ToVec returns the displacement from the origin to p.
func (p Point2) ToVec() Vec2 {
	return Vec2FromPoint(p)
}

// NewPoint3 creates a point at (x, y, z).
func NewPoint3(x, y, z float32) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Point3FromVec returns the point reached by displacing the origin by v.
func Point3FromVec(v Vec3) Point3 {
	return Point3{X: v.X, Y: v.Y, Z: v.Z}
}

func (p Point3) ToVec() Vec3 {
	return Vec3FromPoint(p)
}
