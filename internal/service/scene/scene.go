package scene

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMeshCount is the number of floating shapes in the hero scene.
const DefaultMeshCount = 8

var ErrNoMeshes = errors.New("scene needs at least one mesh")

var (
	shapes  = []string{"icosahedron", "torus", "box", "octahedron"}
	palette = []string{"#7c5cff", "#3ec7ff", "#ff6fa8", "#ffd166"}
)

const hoverColor = "#ffffff"

// Mesh is one decorative shape placed in the scene.
type Mesh struct {
	ID         string     `json:"id"`
	Shape      string     `json:"shape"`
	Position   [3]float64 `json:"position"`
	Rotation   [3]float64 `json:"rotation"`
	Scale      float64    `json:"scale"`
	Color      string     `json:"color"`
	HoverColor string     `json:"hoverColor"`
}

// Scene is the descriptor the front-end renders.
type Scene struct {
	Camera [3]float64 `json:"camera"`
	Meshes []Mesh     `json:"meshes"`
}

// Compose lays count meshes out on a tilted ring. The layout is deterministic.
func Compose(count int) (Scene, error) {
	if count <= 0 {
		return Scene{}, ErrNoMeshes
	}

	const radius = 4.0
	meshes := make([]Mesh, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		meshes = append(meshes, Mesh{
			ID:    fmt.Sprintf("mesh-%d", i),
			Shape: shapes[i%len(shapes)],
			Position: [3]float64{
				round(radius * math.Cos(angle)),
				round(math.Sin(angle*2) * 0.75),
				round(radius * math.Sin(angle)),
			},
			Rotation:   [3]float64{round(angle / 2), round(angle), 0},
			Scale:      round(0.6 + 0.1*float64(i%3)),
			Color:      palette[i%len(palette)],
			HoverColor: hoverColor,
		})
	}

	return Scene{Camera: [3]float64{0, 1.5, 9}, Meshes: meshes}, nil
}

func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}
