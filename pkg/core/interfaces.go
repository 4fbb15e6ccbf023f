package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Camera maps normalized screen coordinates to primary rays.
// u spans [-aspect, aspect] left to right, v spans [1, -1] top to bottom.
type Camera interface {
	GenerateRay(uv Vec2) Ray
}
