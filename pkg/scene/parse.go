package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/emildiskin/raytracer/pkg/core"
	"github.com/emildiskin/raytracer/pkg/geometry"
)

// Parse reads a text scene description. The format is line oriented, with
// one record per line and `#` starting a comment:
//
//	cam px py pz  lx ly lz  ux uy uz  screenDist screenWidth
//	set br bg bb  shadowRays maxRecursion
//	mtl dr dg db  sr sg sb  rr rg rb  shininess transparency
//	sph cx cy cz  radius    materialIndex
//	pln nx ny nz  offset    materialIndex
//	box cx cy cz  edge      materialIndex
//	lgt px py pz  cr cg cb  specIntensity shadowIntensity radius
//
// Material indices are 1-based in file order. Unknown record types and
// wrong value counts are reported with their line number. Parse performs no
// semantic validation; see (*Scene).Validate.
func Parse(reader io.Reader) (*Scene, error) {
	s := &Scene{}

	scanner := bufio.NewScanner(reader)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		params, err := parseFloats(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNum, err)
		}

		if err := s.addRecord(fields[0], params); err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading scene: %v", err)
	}

	return s, nil
}

// Load reads and validates a scene description file
func Load(filename string) (*Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %v", err)
	}
	defer file.Close()

	s, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", filename, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %v", filename, err)
	}

	return s, nil
}

// addRecord appends one parsed record to the scene
func (s *Scene) addRecord(recordType string, params []float64) error {
	switch recordType {
	case "cam":
		if len(params) != 11 {
			return fmt.Errorf("cam record needs 11 values, got %d", len(params))
		}
		s.Camera = CameraConfig{
			Position:       core.NewVec3(params[0], params[1], params[2]),
			LookAt:         core.NewVec3(params[3], params[4], params[5]),
			Up:             core.NewVec3(params[6], params[7], params[8]),
			ScreenDistance: params[9],
			ScreenWidth:    params[10],
		}

	case "set":
		if len(params) != 5 {
			return fmt.Errorf("set record needs 5 values, got %d", len(params))
		}
		s.Settings = Settings{
			Background:   core.NewVec3(params[0], params[1], params[2]),
			ShadowRays:   int(params[3]),
			MaxRecursion: int(params[4]),
		}

	case "mtl":
		if len(params) != 11 {
			return fmt.Errorf("mtl record needs 11 values, got %d", len(params))
		}
		s.Materials = append(s.Materials, Material{
			Diffuse:      core.NewVec3(params[0], params[1], params[2]),
			Specular:     core.NewVec3(params[3], params[4], params[5]),
			Reflection:   core.NewVec3(params[6], params[7], params[8]),
			Shininess:    params[9],
			Transparency: params[10],
		})

	case "sph":
		if len(params) != 5 {
			return fmt.Errorf("sph record needs 5 values, got %d", len(params))
		}
		center := core.NewVec3(params[0], params[1], params[2])
		s.Surfaces = append(s.Surfaces, geometry.NewSphere(center, params[3], int(params[4])))

	case "pln":
		if len(params) != 5 {
			return fmt.Errorf("pln record needs 5 values, got %d", len(params))
		}
		normal := core.NewVec3(params[0], params[1], params[2])
		s.Surfaces = append(s.Surfaces, geometry.NewInfinitePlane(normal, params[3], int(params[4])))

	case "box":
		if len(params) != 5 {
			return fmt.Errorf("box record needs 5 values, got %d", len(params))
		}
		center := core.NewVec3(params[0], params[1], params[2])
		s.Surfaces = append(s.Surfaces, geometry.NewBox(center, params[3], int(params[4])))

	case "lgt":
		if len(params) != 9 {
			return fmt.Errorf("lgt record needs 9 values, got %d", len(params))
		}
		s.Lights = append(s.Lights, Light{
			Position:          core.NewVec3(params[0], params[1], params[2]),
			Color:             core.NewVec3(params[3], params[4], params[5]),
			SpecularIntensity: params[6],
			ShadowIntensity:   params[7],
			Radius:            params[8],
		})

	default:
		return fmt.Errorf("unknown record type %q", recordType)
	}

	return nil
}

// parseFloats converts record fields to numbers
func parseFloats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", field)
		}
		values[i] = v
	}
	return values, nil
}
