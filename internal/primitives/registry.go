package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape selects one of the unit meshes the registry can draw.
type Shape int

const (
	// Sphere has diameter 1.
	Sphere Shape = iota
	// Box is a unit cube centred on the origin.
	Box
	// Cylinder has diameter 1 and height 1, centred on the origin, axis along Y.
	Cylinder
	// Disc is a unit-diameter cylinder lying in the XY plane, axis along Z, depth 1.
	Disc
)

// cached holds mesh and material for a shape. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	// base is applied in model space before the caller's transform.
	base rl.Matrix
}

// Registry maps shapes to mesh+material. Meshes are created on first use so that GPU
// resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[Shape]cached
	shader   rl.Shader
	loaded   bool
	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns a registry with no meshes yet.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[Shape]cached),
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing so the floodlit court gets correct shading.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 20
)

func (r *Registry) ensure(shape Shape) (cached, bool) {
	if c, ok := r.cache[shape]; ok {
		return c, true
	}
	if !r.loaded {
		r.shader = rl.LoadShaderFromMemory(litVS, litFS)
		r.loaded = true
	}

	var c cached
	c.base = rl.MatrixIdentity()
	switch shape {
	case Sphere:
		c.mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case Box:
		c.mesh = rl.GenMeshCube(1, 1, 1)
	case Cylinder:
		// Raylib cylinder: base Y=0, top Y=height. Offset -height/2 so the centre is at the origin.
		c.mesh = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
		c.base = rl.MatrixTranslate(0, -0.5, 0)
	case Disc:
		c.mesh = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
		c.base = rl.MatrixMultiply(rl.MatrixTranslate(0, -0.5, 0), rl.MatrixRotateX(rl.Pi/2))
	default:
		return cached{}, false
	}
	c.mtl = rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		c.mtl.Shader = r.shader
	}
	r.cache[shape] = c
	return c, true
}

// Draw draws shape scaled by scale, then placed by world. Must be called between
// BeginMode3D and EndMode3D.
func (r *Registry) Draw(shape Shape, world rl.Matrix, scale [3]float32, color rl.Color) {
	c, ok := r.ensure(shape)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	r.setLitShaderUniforms(c.mtl.Shader)
	model := rl.MatrixMultiply(c.base, rl.MatrixScale(nonZero(scale[0]), nonZero(scale[1]), nonZero(scale[2])))
	rl.DrawMesh(c.mesh, c.mtl, rl.MatrixMultiply(model, world))
}

// DrawAt is Draw with a plain translation.
func (r *Registry) DrawAt(shape Shape, pos, scale [3]float32, color rl.Color) {
	r.Draw(shape, rl.MatrixTranslate(pos[0], pos[1], pos[2]), scale, color)
}

// Unload releases the GPU resources.
func (r *Registry) Unload() {
	for shape, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, shape)
	}
	if r.loaded && rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.loaded = false
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

// setLitShaderUniforms sets viewPos, lightDir, ambient, light color/intensity, and specular on the given shader (cgo-safe: local arrays).
func (r *Registry) setLitShaderUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := [4]float32{ambient[0], ambient[1], ambient[2], ambient[3]}
	lightColor := [3]float32{floodlight[0], floodlight[1], floodlight[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{lightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularStrength}, rl.ShaderUniformFloat)
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// ambient keeps the unlit side of the court readable at night.
var ambient = [4]float32{0.25, 0.26, 0.3, 1.0}

// floodlight is the cold white of the pole lamps.
var floodlight = [3]float32{0.95, 0.97, 1.0}

const (
	lightIntensity   = float32(0.8)
	specularPower    = float32(32.0)
	specularStrength = float32(0.3)
)
