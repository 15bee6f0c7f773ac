package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"ballmachine/internal/vecmath"
)

// Matrix converts a simulation transform to raylib's layout. Both number their
// elements column by column, so M12..M14 carry the translation in each.
func Matrix(m vecmath.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// Vector3 converts a simulation vector.
func Vector3(v vecmath.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}
