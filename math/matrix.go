package math

import (
	"fmt"

	"github.com/spaghettifunk/lina/core"
)

/**
 * @brief Anything with a determinant. Implemented by Mat2, Mat3 and Mat4.
 */
type LinearTransformation interface {
	Det() float32
}

// Det returns the determinant of any matrix size.
func Det(m LinearTransformation) float32 {
	return m.Det()
}

var (
	_ LinearTransformation = Mat2{}
	_ LinearTransformation = Mat3{}
	_ LinearTransformation = Mat4{}
)

func inBounds(size int, indices ...int) bool {
	for _, i := range indices {
		if i < 0 || i >= size {
			return false
		}
	}
	return true
}

func swapRowsOutOfRange(name string, size, r1, r2 int) error {
	return fmt.Errorf("%s.SwapRows(%d, %d): rows must be in [0, %d): %w", name, r1, r2, size, core.ErrIndexOutOfRange)
}

// ------------------------------------------
// Matrix 2x2
// ------------------------------------------

/**
 * @brief Creates a 2x2 matrix from its elements given in row-major order.
 */
func NewMat2(x00, x01, x10, x11 float32) Mat2 {
	return Mat2{x00, x01, x10, x11}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0},
 *   {0, 1}
 * }
 */
func NewMat2Identity() Mat2 {
	return Mat2{X00: 1.0, X11: 1.0}
}

func (mt *Mat2) cells() [4]*float32 {
	return [4]*float32{&mt.X00, &mt.X01, &mt.X10, &mt.X11}
}

// Data returns the elements in row-major order.
func (mt Mat2) Data() [4]float32 {
	return [4]float32{mt.X00, mt.X01, mt.X10, mt.X11}
}

// Get returns the element at row, col. ok is false when either index is out of range.
func (mt Mat2) Get(row, col int) (float32, bool) {
	if !inBounds(2, row, col) {
		return 0, false
	}
	return mt.Data()[row*2+col], true
}

// Set writes the element at row, col. Out of range indices leave the matrix untouched.
func (mt *Mat2) Set(row, col int, value float32) {
	if !inBounds(2, row, col) {
		core.LogWarn("Mat2.Set: (%d, %d) is out of range, nothing was done", row, col)
		return
	}
	*mt.cells()[row*2+col] = value
}

// GetRow returns the given row as a vector. ok is false when row is out of range.
func (mt Mat2) GetRow(row int) (Vec2, bool) {
	if !inBounds(2, row) {
		return Vec2{}, false
	}
	d := mt.Data()
	return Vec2{d[row*2], d[row*2+1]}, true
}

// SetRow overwrites the given row with v. An out of range row leaves the matrix untouched.
func (mt *Mat2) SetRow(row int, v Vec2) {
	if !inBounds(2, row) {
		core.LogWarn("Mat2.SetRow: row %d is out of range, nothing was done", row)
		return
	}
	c := mt.cells()
	*c[row*2], *c[row*2+1] = v.X, v.Y
}

/**
 * @brief Exchanges rows r1 and r2 in place.
 *
 * Both rows must exist. An invalid row is a programming error and panics.
 */
func (mt *Mat2) SwapRows(r1, r2 int) {
	if !inBounds(2, r1, r2) {
		panic(swapRowsOutOfRange("Mat2", 2, r1, r2))
	}
	a, _ := mt.GetRow(r1)
	b, _ := mt.GetRow(r2)
	mt.SetRow(r1, b)
	mt.SetRow(r2, a)
}

func (mt Mat2) Det() float32 {
	return mt.X00*mt.X11 - mt.X01*mt.X10
}

/**
 * @brief Returns a transposed copy of the matrix (rows->columns).
 */
func (mt Mat2) Transpose() Mat2 {
	return Mat2{
		mt.X00, mt.X10,
		mt.X01, mt.X11,
	}
}

func (mt Mat2) Add(other Mat2) Mat2 {
	return Mat2{
		mt.X00 + other.X00, mt.X01 + other.X01,
		mt.X10 + other.X10, mt.X11 + other.X11,
	}
}

func (mt Mat2) Sub(other Mat2) Mat2 {
	return Mat2{
		mt.X00 - other.X00, mt.X01 - other.X01,
		mt.X10 - other.X10, mt.X11 - other.X11,
	}
}

func (mt Mat2) MulScalar(scalar float32) Mat2 {
	return Mat2{
		mt.X00 * scalar, mt.X01 * scalar,
		mt.X10 * scalar, mt.X11 * scalar,
	}
}

func (mt Mat2) DivScalar(scalar float32) Mat2 {
	return Mat2{
		mt.X00 / scalar, mt.X01 / scalar,
		mt.X10 / scalar, mt.X11 / scalar,
	}
}

// ------------------------------------------
// Matrix 3x3
// ------------------------------------------

/**
 * @brief Creates a 3x3 matrix from its elements given in row-major order.
 */
func NewMat3(x00, x01, x02, x10, x11, x12, x20, x21, x22 float32) Mat3 {
	return Mat3{x00, x01, x02, x10, x11, x12, x20, x21, x22}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0},
 *   {0, 1, 0},
 *   {0, 0, 1}
 * }
 */
func NewMat3Identity() Mat3 {
	return Mat3{X00: 1.0, X11: 1.0, X22: 1.0}
}

func (mt *Mat3) cells() [9]*float32 {
	return [9]*float32{
		&mt.X00, &mt.X01, &mt.X02,
		&mt.X10, &mt.X11, &mt.X12,
		&mt.X20, &mt.X21, &mt.X22,
	}
}

// Data returns the elements in row-major order.
func (mt Mat3) Data() [9]float32 {
	return [9]float32{
		mt.X00, mt.X01, mt.X02,
		mt.X10, mt.X11, mt.X12,
		mt.X20, mt.X21, mt.X22,
	}
}

func (mt Mat3) Get(row, col int) (float32, bool) {
	if !inBounds(3, row, col) {
		return 0, false
	}
	return mt.Data()[row*3+col], true
}

func (mt *Mat3) Set(row, col int, value float32) {
	if !inBounds(3, row, col) {
		core.LogWarn("Mat3.Set: (%d, %d) is out of range, nothing was done", row, col)
		return
	}
	*mt.cells()[row*3+col] = value
}

func (mt Mat3) GetRow(row int) (Vec3, bool) {
	if !inBounds(3, row) {
		return Vec3{}, false
	}
	d := mt.Data()
	return Vec3{d[row*3], d[row*3+1], d[row*3+2]}, true
}

func (mt *Mat3) SetRow(row int, v Vec3) {
	if !inBounds(3, row) {
		core.LogWarn("Mat3.SetRow: row %d is out of range, nothing was done", row)
		return
	}
	c := mt.cells()
	*c[row*3], *c[row*3+1], *c[row*3+2] = v.X, v.Y, v.Z
}

// SwapRows exchanges rows r1 and r2 in place. It panics if either row does not exist.
func (mt *Mat3) SwapRows(r1, r2 int) {
	if !inBounds(3, r1, r2) {
		panic(swapRowsOutOfRange("Mat3", 3, r1, r2))
	}
	a, _ := mt.GetRow(r1)
	b, _ := mt.GetRow(r2)
	mt.SetRow(r1, b)
	mt.SetRow(r2, a)
}

/**
 * @brief Returns the determinant, expanded along the first row.
 */
func (mt Mat3) Det() float32 {
	return mt.X00*(mt.X11*mt.X22-mt.X12*mt.X21) -
		mt.X01*(mt.X10*mt.X22-mt.X12*mt.X20) +
		mt.X02*(mt.X10*mt.X21-mt.X11*mt.X20)
}

func (mt Mat3) Transpose() Mat3 {
	return Mat3{
		mt.X00, mt.X10, mt.X20,
		mt.X01, mt.X11, mt.X21,
		mt.X02, mt.X12, mt.X22,
	}
}

func (mt Mat3) Add(other Mat3) Mat3 {
	a, b := mt.Data(), other.Data()
	var out [9]float32
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return NewMat3FromData(out)
}

func (mt Mat3) Sub(other Mat3) Mat3 {
	a, b := mt.Data(), other.Data()
	var out [9]float32
	for i := range out {
		out[i] = a[i] - b[i]
	}
	return NewMat3FromData(out)
}

func (mt Mat3) MulScalar(scalar float32) Mat3 {
	out := mt.Data()
	for i := range out {
		out[i] *= scalar
	}
	return NewMat3FromData(out)
}

func (mt Mat3) DivScalar(scalar float32) Mat3 {
	out := mt.Data()
	for i := range out {
		out[i] /= scalar
	}
	return NewMat3FromData(out)
}

// NewMat3FromData builds a matrix from row-major elements.
func NewMat3FromData(d [9]float32) Mat3 {
	return Mat3{d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], d[8]}
}

// ------------------------------------------
// Matrix 4x4
// ------------------------------------------

/**
 * @brief Creates a 4x4 matrix from its elements given in row-major order.
 */
func NewMat4(
	x00, x01, x02, x03,
	x10, x11, x12, x13,
	x20, x21, x22, x23,
	x30, x31, x32, x33 float32,
) Mat4 {
	return Mat4{
		x00, x01, x02, x03,
		x10, x11, x12, x13,
		x20, x21, x22, x23,
		x30, x31, x32, x33,
	}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	return Mat4{X00: 1.0, X11: 1.0, X22: 1.0, X33: 1.0}
}

// NewMat4FromData builds a matrix from row-major elements.
func NewMat4FromData(d [16]float32) Mat4 {
	return Mat4{
		d[0], d[1], d[2], d[3],
		d[4], d[5], d[6], d[7],
		d[8], d[9], d[10], d[11],
		d[12], d[13], d[14], d[15],
	}
}

func (mt *Mat4) cells() [16]*float32 {
	return [16]*float32{
		&mt.X00, &mt.X01, &mt.X02, &mt.X03,
		&mt.X10, &mt.X11, &mt.X12, &mt.X13,
		&mt.X20, &mt.X21, &mt.X22, &mt.X23,
		&mt.X30, &mt.X31, &mt.X32, &mt.X33,
	}
}

// Data returns the elements in row-major order.
func (mt Mat4) Data() [16]float32 {
	return [16]float32{
		mt.X00, mt.X01, mt.X02, mt.X03,
		mt.X10, mt.X11, mt.X12, mt.X13,
		mt.X20, mt.X21, mt.X22, mt.X23,
		mt.X30, mt.X31, mt.X32, mt.X33,
	}
}

func (mt Mat4) Get(row, col int) (float32, bool) {
	if !inBounds(4, row, col) {
		return 0, false
	}
	return mt.Data()[row*4+col], true
}

func (mt *Mat4) Set(row, col int, value float32) {
	if !inBounds(4, row, col) {
		core.LogWarn("Mat4.Set: (%d, %d) is out of range, nothing was done", row, col)
		return
	}
	*mt.cells()[row*4+col] = value
}

func (mt Mat4) GetRow(row int) (Vec4, bool) {
	if !inBounds(4, row) {
		return Vec4{}, false
	}
	d := mt.Data()
	return Vec4{d[row*4], d[row*4+1], d[row*4+2], d[row*4+3]}, true
}

func (mt *Mat4) SetRow(row int, v Vec4) {
	if !inBounds(4, row) {
		core.LogWarn("Mat4.SetRow: row %d is out of range, nothing was done", row)
		return
	}
	c := mt.cells()
	*c[row*4], *c[row*4+1], *c[row*4+2], *c[row*4+3] = v.X, v.Y, v.Z, v.W
}

// SwapRows exchanges rows r1 and r2 in place. It panics if either row does not exist.
func (mt *Mat4) SwapRows(r1, r2 int) {
	if !inBounds(4, r1, r2) {
		panic(swapRowsOutOfRange("Mat4", 4, r1, r2))
	}
	a, _ := mt.GetRow(r1)
	b, _ := mt.GetRow(r2)
	mt.SetRow(r1, b)
	mt.SetRow(r2, a)
}

/**
 * @brief Returns the determinant using cofactor expansion along the first column.
 */
func (mt Mat4) Det() float32 {
	m0 := NewMat3(
		mt.X11, mt.X12, mt.X13,
		mt.X21, mt.X22, mt.X23,
		mt.X31, mt.X32, mt.X33)
	m1 := NewMat3(
		mt.X01, mt.X02, mt.X03,
		mt.X21, mt.X22, mt.X23,
		mt.X31, mt.X32, mt.X33)
	m2 := NewMat3(
		mt.X01, mt.X02, mt.X03,
		mt.X11, mt.X12, mt.X13,
		mt.X31, mt.X32, mt.X33)
	m3 := NewMat3(
		mt.X01, mt.X02, mt.X03,
		mt.X11, mt.X12, mt.X13,
		mt.X21, mt.X22, mt.X23)

	return mt.X00*m0.Det() - mt.X10*m1.Det() + mt.X20*m2.Det() - mt.X30*m3.Det()
}

/**
 * @brief Returns a transposed copy of the matrix (rows->colums)
 */
func (mt Mat4) Transpose() Mat4 {
	return Mat4{
		mt.X00, mt.X10, mt.X20, mt.X30,
		mt.X01, mt.X11, mt.X21, mt.X31,
		mt.X02, mt.X12, mt.X22, mt.X32,
		mt.X03, mt.X13, mt.X23, mt.X33,
	}
}

func (mt Mat4) Add(other Mat4) Mat4 {
	a, b := mt.Data(), other.Data()
	var out [16]float32
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return NewMat4FromData(out)
}

func (mt Mat4) Sub(other Mat4) Mat4 {
	a, b := mt.Data(), other.Data()
	var out [16]float32
	for i := range out {
		out[i] = a[i] - b[i]
	}
	return NewMat4FromData(out)
}

func (mt Mat4) MulScalar(scalar float32) Mat4 {
	out := mt.Data()
	for i := range out {
		out[i] *= scalar
	}
	return NewMat4FromData(out)
}

func (mt Mat4) DivScalar(scalar float32) Mat4 {
	out := mt.Data()
	for i := range out {
		out[i] /= scalar
	}
	return NewMat4FromData(out)
}
