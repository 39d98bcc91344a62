package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X float32 `json:"x" toml:"x" yaml:"x"`
	Y float32 `json:"y" toml:"y" yaml:"y"`
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X float32 `json:"x" toml:"x" yaml:"x"`
	Y float32 `json:"y" toml:"y" yaml:"y"`
	Z float32 `json:"z" toml:"z" yaml:"z"`
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X float32 `json:"x" toml:"x" yaml:"x"`
	Y float32 `json:"y" toml:"y" yaml:"y"`
	Z float32 `json:"z" toml:"z" yaml:"z"`
	W float32 `json:"w" toml:"w" yaml:"w"`
}

// Point2 is a position in the plane. Unlike Vec2 it is not a displacement and
// has no arithmetic of its own.
type Point2 struct {
	X float32 `json:"x" toml:"x" yaml:"x"`
	Y float32 `json:"y" toml:"y" yaml:"y"`
}

// Point3 is a position in space.
type Point3 struct {
	X float32 `json:"x" toml:"x" yaml:"x"`
	Y float32 `json:"y" toml:"y" yaml:"y"`
	Z float32 `json:"z" toml:"z" yaml:"z"`
}

/**
 * @brief A 2x2 matrix. Fields are named XRC (row R, column C) and declared
 * in row-major order.
 */
type Mat2 struct {
	X00 float32 `json:"x00" toml:"x00" yaml:"x00"`
	X01 float32 `json:"x01" toml:"x01" yaml:"x01"`
	X10 float32 `json:"x10" toml:"x10" yaml:"x10"`
	X11 float32 `json:"x11" toml:"x11" yaml:"x11"`
}

/** @brief A 3x3 matrix, row-major. */
type Mat3 struct {
	X00 float32 `json:"x00" toml:"x00" yaml:"x00"`
	X01 float32 `json:"x01" toml:"x01" yaml:"x01"`
	X02 float32 `json:"x02" toml:"x02" yaml:"x02"`
	X10 float32 `json:"x10" toml:"x10" yaml:"x10"`
	X11 float32 `json:"x11" toml:"x11" yaml:"x11"`
	X12 float32 `json:"x12" toml:"x12" yaml:"x12"`
	X20 float32 `json:"x20" toml:"x20" yaml:"x20"`
	X21 float32 `json:"x21" toml:"x21" yaml:"x21"`
	X22 float32 `json:"x22" toml:"x22" yaml:"x22"`
}

/** @brief A 4x4 matrix, row-major. */
type Mat4 struct {
	X00 float32 `json:"x00" toml:"x00" yaml:"x00"`
	X01 float32 `json:"x01" toml:"x01" yaml:"x01"`
	X02 float32 `json:"x02" toml:"x02" yaml:"x02"`
	X03 float32 `json:"x03" toml:"x03" yaml:"x03"`
	X10 float32 `json:"x10" toml:"x10" yaml:"x10"`
	X11 float32 `json:"x11" toml:"x11" yaml:"x11"`
	X12 float32 `json:"x12" toml:"x12" yaml:"x12"`
	X13 float32 `json:"x13" toml:"x13" yaml:"x13"`
	X20 float32 `json:"x20" toml:"x20" yaml:"x20"`
	X21 float32 `json:"x21" toml:"x21" yaml:"x21"`
	X22 float32 `json:"x22" toml:"x22" yaml:"x22"`
	X23 float32 `json:"x23" toml:"x23" yaml:"x23"`
	X30 float32 `json:"x30" toml:"x30" yaml:"x30"`
	X31 float32 `json:"x31" toml:"x31" yaml:"x31"`
	X32 float32 `json:"x32" toml:"x32" yaml:"x32"`
	X33 float32 `json:"x33" toml:"x33" yaml:"x33"`
}

/**
 * @brief A quaternion in scalar/vector form. It only holds data: there is no
 * rotation, composition or normalization defined on it.
 */
type Quat struct {
	/** @brief The scalar part. */
	S float32 `json:"s" toml:"s" yaml:"s"`
	/** @brief The vector part. */
	V Vec3 `json:"v" toml:"v" yaml:"v"`
}

/**
 * @brief A Bézier curve of arbitrary degree in R².
 * Degree mirrors len(Points).
 */
type BezierCurve2 struct {
	Points []Point2 `json:"points" toml:"points" yaml:"points"`
	Degree int      `json:"degree" toml:"degree" yaml:"degree"`
}

/**
 * @brief A Bézier curve of arbitrary degree in R³.
 * Degree mirrors len(Points).
 */
type BezierCurve3 struct {
	Points []Point3 `json:"points" toml:"points" yaml:"points"`
	Degree int      `json:"degree" toml:"degree" yaml:"degree"`
}
