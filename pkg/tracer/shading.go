package tracer

import "math"

// Lighting constants shared by every surface
const (
	AmbientIntensity = 0.3

	attenuationLinear    = 0.09
	attenuationQuadratic = 0.032
)

// Shader computes local (non-reflected) color at a hit from a single point light
type Shader struct {
	Texture       Texture
	LightPosition Vector3
}

// Attenuation is the light falloff at distance d; 1 at d = 0, decreasing with d
func Attenuation(d float64) float64 {
	return 1.0 / (1.0 + attenuationLinear*d + attenuationQuadratic*d*d)
}

// Shade applies ambient + diffuse + specular lighting to the surface base color
func (s Shader) Shade(ray Ray, hit Hit) Color {
	base := hit.Object.SurfaceColorAt(hit, s.Texture)
	shininess := hit.Object.ShininessOf(hit)

	lightDir := s.LightPosition.Sub(hit.Point).Normalize()
	viewDir := ray.Origin.Sub(hit.Point).Normalize()

	nDotL := hit.Normal.Dot(lightDir)
	diffuse := math.Max(0, nDotL)

	reflectDir := hit.Normal.Mul(2 * nDotL).Sub(lightDir)
	specular := math.Pow(math.Max(0, viewDir.Dot(reflectDir)), shininess)

	intensity := math.Min(1.0, AmbientIntensity+diffuse+specular)

	distance := s.LightPosition.Sub(hit.Point).Length()
	intensity *= Attenuation(distance)

	return base.Mul(intensity)
}
