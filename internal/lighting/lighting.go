// Package lighting holds the gallery's lighting preset: one warm directional
// light plus a dim ambient term, shared by every lit surface (walls, floor,
// cabinets). Screens are deliberately unlit so they read as emissive.
package lighting

import rl "github.com/gen2brain/raylib-go/raylib"

// Ambient is the ambient term. Dim and slightly warm so the room reads as a
// lamp-lit interior rather than pitch black between screens.
var Ambient = [4]float32{0.26, 0.24, 0.21, 1.0}

// lightColor is a warm tungsten white.
var lightColor = [3]float32{1.0, 0.93, 0.82}

// lightIntensity scales the directional diffuse term.
const lightIntensity = float32(0.7)

// LoadShader compiles the lit shader. Valid only after the window and GL
// context exist.
func LoadShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

// SetUniforms pushes the per-frame uniforms (camera position, light direction)
// and the preset constants to a lit shader.
func SetUniforms(shader rl.Shader, viewPos, lightDir [3]float32) {
	if !rl.IsShaderValid(shader) {
		return
	}
	vp := []float32{viewPos[0], viewPos[1], viewPos[2]}
	ld := []float32{lightDir[0], lightDir[1], lightDir[2]}
	lc := []float32{lightColor[0], lightColor[1], lightColor[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, vp, rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, ld, rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, Ambient[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lc, rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{lightIntensity}, rl.ShaderUniformFloat)
	}
}

// Lit shader: directional diffuse + ambient. Same vertex attributes as raylib
// meshes: vertexPosition, vertexTexCoord, vertexNormal.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
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
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * colDiffuse.rgb;
  finalColor = vec4(amb + diffuse, colDiffuse.a);
}
`
)
