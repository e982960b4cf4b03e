package scene

import "Phong3D/internal/loader"

// DefaultBunnyPath is where the built-in scene expects the bunny model.
const DefaultBunnyPath = "assets/models/bunny.obj"

const (
	floorLength = 10
	floorHeight = 0.5
	shininess   = 50
)

func rgb(r, g, b float32) []float32 {
	return []float32{r / 255, g / 255, b / 255}
}

func uniform(v float32) []float32 {
	return []float32{v, v, v}
}

// Default is the built-in scene: a floor slab with a bunny, a cube, a pyramid
// and a torus on it, lit by one white spotlight pointing down -Z.
func Default() *Description {
	cutoff := float32(-1)
	return &Description{
		Name: "default",
		Camera: CameraDesc{
			Eye:  []float32{0, 5, 10},
			At:   []float32{0, 0, 0},
			Up:   []float32{0, 1, 0},
			Fovy: 45,
			Near: 0.1,
			Far:  40,
		},
		Animation: AnimationDesc{Speed: DefaultSpeed},
		Meshes:    map[string]string{"bunny": DefaultBunnyPath},
		Materials: map[string]MaterialDesc{
			"floor":   {Color: rgb(168, 113, 71), Ks: uniform(1), Shininess: shininess},
			"bunny":   {Color: rgb(230, 108, 21), Ks: uniform(1), Shininess: shininess},
			"cube":    {Color: rgb(47, 241, 245), Ks: uniform(1), Shininess: shininess},
			"pyramid": {Color: rgb(27, 71, 227), Ks: uniform(1), Shininess: shininess},
			"torus":   {Color: rgb(189, 43, 196), Ks: uniform(1), Shininess: shininess},
		},
		Lights: []LightDesc{{
			Kind:     "spot",
			Ambient:  uniform(50),
			Diffuse:  uniform(60),
			Specular: uniform(200),
			Position: []float32{0, 0, 10, 1},
			Axis:     []float32{0, 0, -1},
			Aperture: 10,
			Cutoff:   &cutoff,
		}},
		Objects: []ObjectDesc{
			{
				Name:        "floor",
				Mesh:        loader.MeshCube,
				Material:    "floor",
				Translation: []float32{0, -floorHeight / 2, 0},
				Scale:       []float32{floorLength, floorHeight, floorLength},
			},
			{Name: "bunny", Mesh: "bunny", Material: "bunny", Translation: []float32{2, 0, 2}, Scale: uniform(10)},
			{Name: "cube", Mesh: loader.MeshCube, Material: "cube", Translation: []float32{2, 1, -2}, Scale: uniform(2)},
			{Name: "pyramid", Mesh: loader.MeshPyramid, Material: "pyramid", Translation: []float32{-2, 1, -2}, Scale: uniform(2)},
			{Name: "torus", Mesh: loader.MeshTorus, Material: "torus", Translation: []float32{-2, 0.4, 2}, Scale: uniform(2)},
		},
	}
}
