package math

/**
 * @brief The operations shared by every vector size: dot product, distance
 * and the angle between two vectors.
 */
type InnerSpace[T any] interface {
	Dot(other T) float32
	Dist(other T) float32
	Angle(other T) float32
}

// Dot returns the dot product of v1 and v2.
func Dot[T InnerSpace[T]](v1, v2 T) float32 {
	return v1.Dot(v2)
}

// Dist returns the length of v2 - v1.
func Dist[T InnerSpace[T]](v1, v2 T) float32 {
	return v1.Dist(v2)
}

// VAngle returns the angle between v1 and v2 in radians. It is NaN when
// either vector has zero length.
func VAngle[T InnerSpace[T]](v1, v2 T) float32 {
	return v1.Angle(v2)
}

// Cross returns the right-handed cross product v1 x v2.
func Cross(v1, v2 Vec3) Vec3 {
	return v1.Cross(v2)
}

var (
	_ InnerSpace[Vec2] = Vec2{}
	_ InnerSpace[Vec3] = Vec3{}
	_ InnerSpace[Vec4] = Vec4{}
)

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

// Vec2FromPoint returns the displacement from the origin to p.
func Vec2FromPoint(p Point2) Vec2 {
	return Vec2{p.X, p.Y}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 *  Multiplies v by other componentwise and returns a copy of the result.
 */
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

/**
 * Multiplies every component of v by scalar.
 */
func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

/**
 * Divides v by other componentwise and returns a copy of the result.
 */
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @return The length.
 */
func (v Vec2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit vector pointing the same way as v. The zero vector
 * has no direction and yields NaN components.
 */
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	return Vec2{v.X / length, v.Y / length}
}

/**
 * @brief Returns the dot product between v and other.
 */
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec2) Dist(other Vec2) float32 {
	return other.Sub(v).Length()
}

/**
 * @brief Returns the angle in radians between v and other.
 */
func (v Vec2) Angle(other Vec2) float32 {
	return Acos(v.Dot(other) / (v.Length() * other.Length()))
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}
	if Abs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

// Vec3FromPoint returns the displacement from the origin to p.
func Vec3FromPoint(p Point3) Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{vector.X, vector.Y, vector.Z}
}

/**
 * @brief Returns a new vec4 using v as the x, y and z components and w for w.
 */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies v by other componentwise and returns a copy of the result.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/**
 * @brief Divides v by other componentwise and returns a copy of the result.
 */
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit vector pointing the same way as v. The zero vector
 * yields NaN components.
 */
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	return Vec3{
		v.X / length,
		v.Y / length,
		v.Z / length}
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 */
func (v Vec3) Dot(other Vec3) float32 {
	p := float32(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3) Dist(other Vec3) float32 {
	return other.Sub(v).Length()
}

/**
 * @brief Returns the angle in radians between v and other.
 */
func (v Vec3) Angle(other Vec3) float32 {
	return Acos(v.Dot(other) / (v.Length() * other.Length()))
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}
	if Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if Abs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.0f.
 */
func NewVec4Zero() Vec4 {
	return Vec4{0.0, 0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.0f.
 */
func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of v,
 * dropping w.
 */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z,
		v.W + other.W}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z,
		v.W - other.W}
}

func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z,
		v.W * other.W}
}

func (v Vec4) MulScalar(scalar float32) Vec4 {
	return Vec4{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar,
		v.W * scalar}
}

func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z,
		v.W / other.W}
}

func (v Vec4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vec4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length. The zero vector yields NaN components.
func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	return Vec4{
		v.X / length,
		v.Y / length,
		v.Z / length,
		v.W / length}
}

func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4) Dist(other Vec4) float32 {
	return other.Sub(v).Length()
}

func (v Vec4) Angle(other Vec4) float32 {
	return Acos(v.Dot(other) / (v.Length() * other.Length()))
}

func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}
	if Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if Abs(v.Z-other.Z) > tolerance {
		return false
	}
	if Abs(v.W-other.W) > tolerance {
		return false
	}
	return true
}
