package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chinhan1991/openvdb-dev/pkg/core"
	"github.com/chinhan1991/openvdb-dev/pkg/film"
)

// Options collects every render setting. Vector-valued fields are kept
// as strings ("x,y,z", "WxH") so command-line flags and YAML config
// files share the same parsing.
type Options struct {
	Camera      string  `yaml:"camera"`
	Shader      string  `yaml:"shader"`
	Aperture    float64 `yaml:"aperture"`
	Focal       float64 `yaml:"focal"`
	FOV         float64 `yaml:"fov"`
	Frame       float64 `yaml:"frame"`
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
	Rotate      string  `yaml:"rotate"`
	Translate   string  `yaml:"translate"`
	Res         string  `yaml:"res"`
	Samples     int     `yaml:"samples"`
	Compression string  `yaml:"compression"`
	CPUs        int     `yaml:"cpus"`
	Radius      float64 `yaml:"radius"`
	Voxel       float64 `yaml:"voxel"`
	HalfWidth   float64 `yaml:"halfwidth"`
	Background  string  `yaml:"background"`
	Verbose     bool    `yaml:"verbose"`
}

// defaultOptions mirrors the defaults of the reference render tool:
// a 2048x1024 perspective diffuse render with one sample per pixel.
func defaultOptions() Options {
	return Options{
		Camera:      "perspective",
		Shader:      "diffuse",
		Aperture:    41.2136,
		Focal:       50.0,
		FOV:         0,
		Frame:       1.0,
		Near:        1e-3,
		Far:         math.MaxFloat64,
		Rotate:      "0,0,0",
		Translate:   "0,0,5",
		Res:         "2048x1024",
		Samples:     1,
		Compression: "zip",
		CPUs:        0,
		Radius:      1.0,
		Voxel:       0.025,
		HalfWidth:   3.0,
		Background:  "checker",
	}
}

// loadOptions overlays settings from a YAML file onto opts
func loadOptions(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return fmt.Errorf("parse config %q: %w", path, err)
	}
	return nil
}

func (o *Options) validate() error {
	switch o.Shader {
	case "diffuse", "matte", "normal":
	default:
		return fmt.Errorf("expected diffuse, matte or normal shader, got %q", o.Shader)
	}
	if !strings.HasPrefix(o.Camera, "persp") && !strings.HasPrefix(o.Camera, "ortho") {
		return fmt.Errorf("expected perspective or orthographic camera, got %q", o.Camera)
	}
	if _, err := film.ParseCompression(o.Compression); err != nil {
		return fmt.Errorf("expected none, rle or zip compression, got %q", o.Compression)
	}
	w, h, err := parseRes(o.Res)
	if err != nil {
		return err
	}
	if w < 1 || h < 1 {
		return fmt.Errorf("expected width > 0 and height > 0, got %dx%d", w, h)
	}
	if o.Samples < 1 {
		return fmt.Errorf("expected samples > 0, got %d", o.Samples)
	}
	if _, err := parseVec3(o.Rotate); err != nil {
		return fmt.Errorf("rotate: %w", err)
	}
	if _, err := parseVec3(o.Translate); err != nil {
		return fmt.Errorf("translate: %w", err)
	}
	return nil
}

// parseVec3 parses "x,y,z"; missing trailing components default to 0
func parseVec3(s string) (core.Vec3, error) {
	var v core.Vec3
	parts := strings.Split(s, ",")
	if len(parts) > 3 {
		return v, fmt.Errorf("expected at most 3 components in %q", s)
	}
	out := [3]float64{}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return v, fmt.Errorf("bad component %q in %q", p, s)
		}
		out[i] = f
	}
	return core.NewVec3(out[0], out[1], out[2]), nil
}

// parseRes parses "WxH" (or "W,H")
func parseRes(s string) (width, height int, err error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == 'x' || r == ',' })
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected WxH resolution, got %q", s)
	}
	width, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad width in %q", s)
	}
	height, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad height in %q", s)
	}
	return width, height, nil
}

// parseBackground maps the -bg option to a film fill: "checker" for
// the default checkerboard, otherwise an "r,g,b" color.
func parseBackground(s string, f *film.Film) error {
	if s == "checker" {
		f.Checkerboard(film.Gray(0.3), film.Gray(0.6), 32)
		return nil
	}
	v, err := parseVec3(s)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	f.Fill(film.NewRGBA(float32(v.X), float32(v.Y), float32(v.Z), 1))
	return nil
}
