package server

import (
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/geometry"
	"github.com/df07/go-raycasting/pkg/integrator"
	"github.com/df07/go-raycasting/pkg/lights"
	"github.com/df07/go-raycasting/pkg/renderer"
	"github.com/df07/go-raycasting/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Ray          RayInfo                `json:"ray"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	FacingNormal [3]float64             `json:"facingNormal"`
	Albedo       [3]float64             `json:"albedo"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
	Lights       []LightInfo            `json:"lights,omitempty"`
	Radiance     map[string][3]float64  `json:"radiance"`
}

// RayInfo describes the primary ray through the inspected pixel
type RayInfo struct {
	Origin    [3]float64 `json:"origin"`
	Direction [3]float64 `json:"direction"`
	U         float64    `json:"u"`
	V         float64    `json:"v"`
}

// LightInfo is the sample of one light at the inspected point
type LightInfo struct {
	Type      lights.LightType `json:"type"`
	Radiance  [3]float64       `json:"radiance"`
	Direction [3]float64       `json:"direction"`
	Distance  float64          `json:"distance"` // -1 for lights at infinity
	CosTheta  float64          `json:"cosTheta"`
	Occluded  bool             `json:"occluded"`
}

// InspectResult contains the hit found by an inspection ray
type InspectResult struct {
	Ray   core.Ray
	UV    core.Vec2
	Hit   core.Intersection
	Shape geometry.Shape // The shape that was hit, nil on a miss
}

func vec3Array(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// inspectPixel casts the primary ray through the centre of pixel (pixelX, pixelY)
// and finds the nearest shape along it
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) InspectResult {
	uv := renderer.ScreenCoordinate(pixelX, pixelY, width, height)
	ray := camera(sceneObj).GenerateRay(uv)
	result := InspectResult{Ray: ray, UV: uv}

	result.Hit = sceneObj.Intersect(ray, 0, math.Inf(1))
	if !result.Hit.Valid() {
		return result
	}

	// The scene does not say which shape produced the hit, so find the one at that distance
	for _, shape := range sceneObj.Shapes {
		if shapeHit := shape.Intersect(ray, 0, math.Inf(1)); shapeHit.Valid() && shapeHit.Distance == result.Hit.Distance {
			result.Shape = shape
			break
		}
	}
	return result
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vec3Array(geom.Center)
		properties["radius"] = geom.Radius
		properties["albedo"] = vec3Array(geom.Albedo)
		return "sphere", properties
	default:
		return "unknown", properties
	}
}

// inspectLights samples every light at the hit point, including the shadow test
func inspectLights(sceneObj *scene.Scene, result InspectResult, epsilon float64) []LightInfo {
	n := result.Hit.FacingNormal(result.Ray.Direction)
	shadowOrigin := result.Hit.Position.Add(n.Multiply(epsilon))

	infos := make([]LightInfo, 0, len(sceneObj.Lights()))
	for _, light := range sceneObj.Lights() {
		sample := light.SampleRadiance(result.Hit.Position)
		distance := sample.Distance
		if math.IsInf(distance, 1) {
			distance = -1
		}
		infos = append(infos, LightInfo{
			Type:      light.Type(),
			Radiance:  vec3Array(sample.Radiance),
			Direction: vec3Array(sample.Direction),
			Distance:  distance,
			CosTheta:  n.Dot(sample.Direction),
			Occluded:  sceneObj.IntersectAny(core.NewRay(shadowOrigin, sample.Direction), 0, sample.Distance),
		})
	}
	return infos
}

// radianceByIntegrator evaluates every integrator along the same ray
func radianceByIntegrator(sceneObj *scene.Scene, ray core.Ray, opts integrator.Options) map[string][3]float64 {
	radiance := make(map[string][3]float64)
	for _, integratorType := range integrator.Types() {
		integ, err := integrator.New(integratorType, opts)
		if err != nil {
			continue
		}
		radiance[string(integratorType)] = vec3Array(integ.Radiance(sceneObj, ray))
	}
	return radiance
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeJSONError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := inspectPixel(sceneObj, inspectReq.Width, inspectReq.Height, pixelX, pixelY)
	opts := inspectReq.Config().IntegratorOptions()

	response := InspectResponse{
		Hit: result.Hit.Valid(),
		Ray: RayInfo{
			Origin:    vec3Array(result.Ray.Origin),
			Direction: vec3Array(result.Ray.Direction),
			U:         result.UV.X,
			V:         result.UV.Y,
		},
		Radiance: radianceByIntegrator(sceneObj, result.Ray, opts),
	}

	if response.Hit {
		facing := result.Hit.FacingNormal(result.Ray.Direction)
		response.Point = vec3Array(result.Hit.Position)
		response.Normal = vec3Array(result.Hit.Normal)
		response.FacingNormal = vec3Array(facing)
		response.Albedo = vec3Array(result.Hit.Color)
		response.Distance = result.Hit.Distance
		response.FrontFace = facing == result.Hit.Normal
		response.GeometryType, response.Properties = extractGeometryInfo(result.Shape)
		response.Lights = inspectLights(sceneObj, result, opts.Epsilon)
	}

	writeJSON(w, http.StatusOK, response)
}
