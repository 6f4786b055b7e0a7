// Package loader parses the ASCII army and map file formats into the core
// domain types, raising InvalidScenarioError for any malformed input.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nstehr/battlesim/army"
	"github.com/nstehr/battlesim/battle"
	"github.com/nstehr/battlesim/general"
	"github.com/nstehr/battlesim/model"
)

// LoadMirroredArmies parses an army file: a "W;H" header followed by H
// lines of unit-kind letters. Each letter at column x, row y becomes a
// side-A unit at (x, y); the mirrored side-B unit of the same kind spawns
// at (W-1-x, y). Unknown letters (other than '.') or out-of-bounds
// dimensions return InvalidScenarioError.
func LoadMirroredArmies(r io.Reader, strategyA, strategyB general.StrategicModule) (*army.Army, *army.Army, error) {
	width, height, lines, err := readGrid(r)
	if err != nil {
		return nil, nil, err
	}

	a := army.New(0, strategyA)
	b := army.New(1, strategyB)
	nextID := 1

	for y, line := range lines {
		for x := 0; x < width; x++ {
			if x >= len(line) {
				continue
			}
			letter := line[x]
			if letter == '.' {
				continue
			}
			kind, ok := model.KindFromLetter(letter)
			if !ok {
				return nil, nil, &battle.InvalidScenarioError{
					Reason: fmt.Sprintf("unknown unit letter %q at (%d,%d)", letter, x, y),
				}
			}

			posA := model.Vec2{X: float64(x), Y: float64(y)}
			posB := model.Vec2{X: float64(width - 1 - x), Y: float64(y)}

			a.Add(model.NewUnit(nextID, kind, a.ID, posA))
			nextID++
			b.Add(model.NewUnit(nextID, kind, b.ID, posB))
			nextID++
		}
	}

	if len(a.Units) == 0 && len(b.Units) == 0 {
		return nil, nil, &battle.InvalidScenarioError{Reason: "army file produced no units"}
	}
	_ = height
	return a, b, nil
}

// readGrid parses the shared "W;H" header format used by both the army and
// map file loaders and returns the declared dimensions plus the raw lines.
func readGrid(r io.Reader) (width, height int, lines []string, err error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return 0, 0, nil, &battle.InvalidScenarioError{Reason: "missing W;H header line"}
	}
	header := strings.TrimSpace(scanner.Text())
	parts := strings.SplitN(header, ";", 2)
	if len(parts) != 2 {
		return 0, 0, nil, &battle.InvalidScenarioError{Reason: fmt.Sprintf("malformed header %q, want W;H", header)}
	}
	width, werr := strconv.Atoi(strings.TrimSpace(parts[0]))
	height, herr := strconv.Atoi(strings.TrimSpace(parts[1]))
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		return 0, 0, nil, &battle.InvalidScenarioError{Reason: fmt.Sprintf("invalid dimensions in header %q", header)}
	}

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, nil, fmt.Errorf("reading grid: %w", err)
	}
	if len(lines) != height {
		return 0, 0, nil, &battle.InvalidScenarioError{
			Reason: fmt.Sprintf("header declares %d rows, found %d", height, len(lines)),
		}
	}
	return width, height, lines, nil
}
