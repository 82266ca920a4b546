// SPDX-License-Identifier: MIT

// Package transform - Transform, the value owning one homogeneous matrix.
//
// Purpose:
//   - Composition, inversion, element access, equality and copies over Mat4.
//   - Derived readings (rotation, translation, raw diagonal scale) computed
//     from the current matrix on every call; nothing is memoized.
//
// Receivers:
//   - Pure operations use value receivers and return new Transforms.
//   - In-place operations (Set, Concatenate, Transpose, Invert) use pointer
//     receivers and only ever touch the receiver's own array.

package transform

import (
	"fmt"
	"iter"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind tags the constrained family a Transform was built or validated as.
type Kind uint8

const (
	// KindGeneral is an unconstrained transform.
	KindGeneral Kind = iota
	KindScale
	KindShear
	KindRotation
	KindTranslation
	KindProjection
)

var kindNames = [...]string{
	KindGeneral:     "general",
	KindScale:       "scale",
	KindShear:       "shear",
	KindRotation:    "rotation",
	KindTranslation: "translation",
	KindProjection:  "projection",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// Transform owns one Mat4. The zero value is NOT the identity; use New.
// Copying a Transform copies its matrix array.
type Transform struct {
	m    Mat4
	kind Kind
}

// New returns the identity transform.
func New() Transform {
	return Transform{m: Identity4()}
}

// FromMatrix wraps m as a general transform.
func FromMatrix(m Mat4) Transform {
	return Transform{m: m}
}

// FromList builds a transform from 16 row-major numbers (translation at
// indices 3, 7 and 11).
// Errors: ErrDimensionMismatch when len(nums) != 16.
func FromList(nums []float64) (Transform, error) {
	m, err := Mat4FromList(nums)
	if err != nil {
		return Transform{}, err
	}

	return Transform{m: m}, nil
}

// FromRows builds a transform from 4 rows of 4 numbers.
// Errors: ErrDimensionMismatch.
func FromRows(rows [][]float64) (Transform, error) {
	m, err := Mat4FromRows(rows)
	if err != nil {
		return Transform{}, err
	}

	return Transform{m: m}, nil
}

// Matrix returns a copy of the underlying matrix.
func (t Transform) Matrix() Mat4 { return t.m }

// Kind reports the family tag. Composition and in-place mutation reset it
// to KindGeneral.
func (t Transform) Kind() Kind { return t.kind }

// Copy returns an independent transform. Mat4 is an array, so plain
// assignment already copies; Copy exists for callers holding a *Transform.
func (t *Transform) Copy() Transform {
	return *t
}

// At returns element (row, col).
// Errors: ErrOutOfRange outside [0,3]×[0,3].
func (t Transform) At(row, col int) (float64, error) {
	if err := checkIndex(row, col); err != nil {
		return 0, transformErrorf(opAt, err)
	}

	return t.m[row][col], nil
}

// Set assigns element (row, col) and drops the family tag.
// Errors: ErrOutOfRange outside [0,3]×[0,3].
func (t *Transform) Set(row, col int, v float64) error {
	if err := checkIndex(row, col); err != nil {
		return transformErrorf(opSet, err)
	}
	t.m[row][col] = v
	t.kind = KindGeneral

	return nil
}

func checkIndex(row, col int) error {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return nil
}

// Rows iterates the matrix row by row; each row is a copy.
func (t Transform) Rows() iter.Seq2[int, [4]float64] {
	return func(yield func(int, [4]float64) bool) {
		for i := 0; i < Size; i++ {
			if !yield(i, t.m[i]) {
				return
			}
		}
	}
}

// List flattens the matrix into 16 row-major numbers.
func (t Transform) List() []float64 { return t.m.Flatten() }

// Equal reports elementwise equality within Tolerance. It is total: NaN
// entries simply compare unequal. The family tag is not compared.
func (t Transform) Equal(other Transform) bool {
	return t.m.ApproxEqual(other.m, Tolerance)
}

// Concatenated returns t ∘ other: other is applied first, t second. The
// result is KindGeneral since composition does not preserve family membership.
func (t Transform) Concatenated(other Transform) Transform {
	return Transform{m: t.m.Mul(other.m)}
}

// Concatenate replaces t with t ∘ other.
func (t *Transform) Concatenate(other Transform) {
	t.m = t.m.Mul(other.m)
	t.kind = KindGeneral
}

// Concat folds ts left to right: Concat(a, b, c) = a ∘ b ∘ c, so c acts first.
// An empty call returns the identity.
func Concat(ts ...Transform) Transform {
	out := New()
	for _, t := range ts {
		out.m = out.m.Mul(t.m)
	}

	return out
}

// Transposed returns a transform with the transposed matrix.
func (t Transform) Transposed() Transform {
	return Transform{m: t.m.Transpose()}
}

// Transpose transposes t in place.
func (t *Transform) Transpose() {
	t.m = t.m.Transpose()
	t.kind = KindGeneral
}

// Inverted returns t⁻¹. The inverse keeps t's family when it passes that
// family's validation.
// Errors: ErrSingular.
func (t Transform) Inverted() (Transform, error) {
	inv, err := t.m.Inverse()
	if err != nil {
		return Transform{}, err
	}

	return Transform{m: inv, kind: tagFor(t.kind, inv)}, nil
}

// Invert inverts t in place. On error t is left unchanged.
// Errors: ErrSingular.
func (t *Transform) Invert() error {
	inv, err := t.m.Inverse()
	if err != nil {
		return err
	}
	t.m = inv

	return nil
}

// Determinant returns det of the full 4×4 matrix.
func (t Transform) Determinant() float64 { return t.m.Determinant() }

// Translation reads column 3 directly (no decomposition).
func (t Transform) Translation() [3]float64 {
	return [3]float64{t.m[0][3], t.m[1][3], t.m[2][3]}
}

// Scale reads the raw diagonal M[0][0], M[1][1], M[2][2]. This differs from
// the decomposed scale whenever rotation or shear is present.
func (t Transform) Scale() [3]float64 {
	return [3]float64{t.m[0][0], t.m[1][1], t.m[2][2]}
}

// Rotation returns the static XYZ Euler angles of the decomposed rotation.
// Errors: as Decompose.
func (t Transform) Rotation() ([3]float64, error) {
	c, err := Decompose(t.m)
	if err != nil {
		return [3]float64{}, err
	}

	return c.Angles, nil
}

// Basis returns the x and y basis vectors of the rotation component.
// Errors: as Decompose.
func (t Transform) Basis() (mgl64.Vec3, mgl64.Vec3, error) {
	angles, err := t.Rotation()
	if err != nil {
		return mgl64.Vec3{}, mgl64.Vec3{}, err
	}
	r := RotationMatrix(angles)

	return mgl64.Vec3{r[0][0], r[1][0], r[2][0]}, mgl64.Vec3{r[0][1], r[1][1], r[2][1]}, nil
}

// Decompose factors the current matrix. See the package-level Decompose.
func (t Transform) Decompose() (Components, error) {
	return Decompose(t.m)
}

// Decomposed returns the five family transforms scale, shear, rotation,
// translation and projection; their composition P∘T∘R∘Sh∘S reproduces t.
// Errors: as Decompose.
func (t Transform) Decomposed() (scale, shear, rotation, translation, projection Transform, err error) {
	c, err := Decompose(t.m)
	if err != nil {
		return
	}
	scale = Transform{m: ScaleMatrix(c.Scale), kind: KindScale}
	shear = Transform{m: ShearMatrix(c.Shear), kind: KindShear}
	rotation = Transform{m: RotationMatrix(c.Angles), kind: KindRotation}
	translation = Transform{m: TranslationMatrix(c.Translation), kind: KindTranslation}
	projection = Transform{m: ProjectionMatrix(c.Perspective), kind: KindProjection}

	return
}

// String implements fmt.Stringer.
func (t Transform) String() string {
	return fmt.Sprintf("Transform(%s)\n%s", t.kind, t.m)
}
