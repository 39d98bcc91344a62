package math

// ------------------------------------------
// Quaternion
// ------------------------------------------

/**
 * @brief Creates a quaternion with a zero scalar and a zero vector part.
 */
func NewQuatZero() Quat {
	return Quat{S: 0.0, V: NewVec3Zero()}
}

/**
 * @brief Creates a quaternion from its scalar and vector parts.
 *
 * @param s The scalar part.
 * @param v The vector part.
 * @return A new quaternion.
 */
func NewQuat(s float32, v Vec3) Quat {
	return Quat{S: s, V: v}
}
