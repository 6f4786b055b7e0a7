package loader

import (
	"io"

	"github.com/nstehr/battlesim/model"
)

// LoadMap parses a map file: a "W;H" header followed by H lines of '.'
// (empty) or 'O' (a rock obstacle of radius 1) characters.
func LoadMap(r io.Reader) (*model.Map, error) {
	width, height, lines, err := readGrid(r)
	if err != nil {
		return nil, err
	}

	m := &model.Map{Width: width, Height: height}
	for y, line := range lines {
		for x := 0; x < width && x < len(line); x++ {
			if line[x] == 'O' {
				m.Obstacles = append(m.Obstacles, model.Obstacle{
					Position: model.Vec2{X: float64(x), Y: float64(y)},
					Radius:   1,
				})
			}
		}
	}
	return m, nil
}
