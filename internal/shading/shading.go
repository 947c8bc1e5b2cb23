// Package shading owns the character's material: one flat unlit color, or the same color
// lit by the scene's ambient and directional lights.
package shading

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Lights is the per-frame lighting input for the lit shader.
// LightDir points from the surface toward the light.
type Lights struct {
	Ambient   [4]float32
	Color     [3]float32
	LightDir  [3]float32
	Intensity float32
}

// Set holds both character shaders. Shaders are loaded lazily so GPU resources are only
// allocated once the window/OpenGL context exists.
type Set struct {
	flat   rl.Shader
	lit    rl.Shader
	loaded bool
}

// ensure compiles both shaders on first use.
func (s *Set) ensure() {
	if s.loaded {
		return
	}
	s.flat = rl.LoadShaderFromMemory(vertexSrc, flatFS)
	s.lit = rl.LoadShaderFromMemory(vertexSrc, litFS)
	s.loaded = true
}

// Flat returns the unlit single-color shader.
func (s *Set) Flat() rl.Shader {
	s.ensure()
	return s.flat
}

// Lit returns the ambient + directional shader.
func (s *Set) Lit() rl.Shader {
	s.ensure()
	return s.lit
}

// Unload frees both shaders.
func (s *Set) Unload() {
	if !s.loaded {
		return
	}
	rl.UnloadShader(s.flat)
	rl.UnloadShader(s.lit)
	s.loaded = false
}

// Apply replaces every material of model with shader and a single albedo color,
// dropping the asset's own textures from the look.
func Apply(model rl.Model, shader rl.Shader, color rl.Color) {
	if !rl.IsShaderValid(shader) {
		return
	}
	mats := model.GetMaterials()
	for i := range mats {
		mats[i].Shader = shader
		if albedo := mats[i].GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = color
		}
	}
}

// SetLights uploads the light uniforms to a lit shader. Local arrays keep the values cgo-safe.
func SetLights(shader rl.Shader, l Lights) {
	if !rl.IsShaderValid(shader) {
		return
	}
	amb := [4]float32{l.Ambient[0], l.Ambient[1], l.Ambient[2], l.Ambient[3]}
	col := [3]float32{l.Color[0], l.Color[1], l.Color[2]}
	dir := [3]float32{l.LightDir[0], l.LightDir[1], l.LightDir[2]}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, col[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, dir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{l.Intensity}, rl.ShaderUniformFloat)
	}
}

const (
	vertexSrc = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec3 fragNormal;
void main() {
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	// flatFS ignores lighting; colDiffuse carries the material color times the draw tint,
	// so tint alpha fades the whole model.
	flatFS = `#version 330
in vec3 fragNormal;
uniform vec4 colDiffuse;
out vec4 finalColor;
void main() {
  finalColor = colDiffuse;
}
`
	litFS = `#version 330
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform vec3 lightDir;
uniform float lightIntensity;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  float NdotL = max(dot(N, normalize(lightDir)), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * colDiffuse.rgb;
  finalColor = vec4(min(amb + diffuse, vec3(1.0)), colDiffuse.a);
}
`
)
