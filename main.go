// Command vdbrender ray-traces a narrow-band level-set volume to a PPM
// or EXR image. The scene is a procedural level-set sphere; reading
// grid files is out of scope for the reference renderer.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/chinhan1991/openvdb-dev/pkg/camera"
	"github.com/chinhan1991/openvdb-dev/pkg/core"
	"github.com/chinhan1991/openvdb-dev/pkg/film"
	"github.com/chinhan1991/openvdb-dev/pkg/levelset"
	"github.com/chinhan1991/openvdb-dev/pkg/render"
	"github.com/chinhan1991/openvdb-dev/pkg/shader"
)

func usage() {
	opts := defaultOptions()
	fov := camera.FocalLengthToFieldOfView(opts.Focal, opts.Aperture)
	fmt.Fprintf(os.Stderr, `Usage: vdbrender out.{exr,ppm} [options]
Which: ray-traces a procedural level-set sphere
Options:
  -aperture F       aperture of perspective camera (default: %g)
  -camera S         camera type; either "persp[ective]" or "ortho[graphic]"
                    (default: %s)
  -compression S    EXR compression scheme; either "none", "rle" or "zip"
                    (default: %s)
  -config FILE      load options from a YAML file (explicit flags win)
  -cpus N           number of rendering threads, or 1 to disable threading,
                    or 0 to use all available CPUs (default: %d)
  -far F            far plane depth of camera (default: 3.4e38)
  -focal F          focal length of perspective camera (default: %g)
  -fov F            field of view of perspective camera (default: %g)
  -frame F          frame width in world units of orthographic camera
                    (default: %g)
  -near F           near plane depth of camera (default: %g)
  -res WxH          image width and height (default: %s)
  -r X,Y,Z
  -rotate X,Y,Z     camera rotation in degrees
  -shader S         shader name; either "diffuse", "matte" or "normal"
                    (default: %s)
  -samples N        number of samples (rays) per pixel (default: %d)
  -t X,Y,Z
  -translate X,Y,Z  camera translation (default: %s)
  -radius F         sphere radius in world units (default: %g)
  -voxel F          grid voxel size in world units (default: %g)
  -bg S             background; "checker" or an R,G,B color (default: %s)
  -v                verbose (print timing and diagnostics)
This is not (and is not intended to be) a production-quality renderer,
and it is limited to rendering level set volumes.
`, opts.Aperture, opts.Camera, opts.Compression, opts.CPUs, opts.Focal, fov,
		opts.Frame, opts.Near, opts.Res, opts.Shader, opts.Samples,
		opts.Translate, opts.Radius, opts.Voxel, opts.Background)
}

// applyExplicit copies the flag values the user actually set on the
// command line into dst, so explicit flags override a -config file.
func applyExplicit(dst *Options, src Options, set map[string]bool) {
	for name := range set {
		switch name {
		case "aperture":
			dst.Aperture = src.Aperture
		case "camera":
			dst.Camera = src.Camera
		case "compression":
			dst.Compression = src.Compression
		case "cpus":
			dst.CPUs = src.CPUs
		case "far":
			dst.Far = src.Far
		case "focal":
			dst.Focal = src.Focal
		case "fov":
			dst.FOV = src.FOV
		case "frame":
			dst.Frame = src.Frame
		case "near":
			dst.Near = src.Near
		case "r", "rotate":
			dst.Rotate = src.Rotate
		case "res":
			dst.Res = src.Res
		case "shader":
			dst.Shader = src.Shader
		case "samples":
			dst.Samples = src.Samples
		case "t", "translate":
			dst.Translate = src.Translate
		case "radius":
			dst.Radius = src.Radius
		case "voxel":
			dst.Voxel = src.Voxel
		case "bg":
			dst.Background = src.Background
		case "v":
			dst.Verbose = src.Verbose
		}
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "vdbrender: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	opts := defaultOptions()
	var configPath string

	flag.Usage = usage
	flag.StringVar(&opts.Camera, "camera", opts.Camera, "camera type")
	flag.StringVar(&opts.Shader, "shader", opts.Shader, "shader name")
	flag.Float64Var(&opts.Aperture, "aperture", opts.Aperture, "aperture in mm")
	flag.Float64Var(&opts.Focal, "focal", opts.Focal, "focal length in mm")
	flag.Float64Var(&opts.FOV, "fov", opts.FOV, "horizontal field of view in degrees")
	flag.Float64Var(&opts.Frame, "frame", opts.Frame, "orthographic frame width")
	flag.Float64Var(&opts.Near, "near", opts.Near, "near plane depth")
	flag.Float64Var(&opts.Far, "far", opts.Far, "far plane depth")
	flag.StringVar(&opts.Rotate, "rotate", opts.Rotate, "camera rotation in degrees")
	flag.StringVar(&opts.Rotate, "r", opts.Rotate, "camera rotation in degrees (shorthand)")
	flag.StringVar(&opts.Translate, "translate", opts.Translate, "camera translation")
	flag.StringVar(&opts.Translate, "t", opts.Translate, "camera translation (shorthand)")
	flag.StringVar(&opts.Res, "res", opts.Res, "image resolution WxH")
	flag.IntVar(&opts.Samples, "samples", opts.Samples, "samples per pixel")
	flag.StringVar(&opts.Compression, "compression", opts.Compression, "EXR compression")
	flag.IntVar(&opts.CPUs, "cpus", opts.CPUs, "rendering threads (1 disables threading)")
	flag.Float64Var(&opts.Radius, "radius", opts.Radius, "sphere radius")
	flag.Float64Var(&opts.Voxel, "voxel", opts.Voxel, "voxel size")
	flag.StringVar(&opts.Background, "bg", opts.Background, "background fill")
	flag.BoolVar(&opts.Verbose, "v", opts.Verbose, "verbose output")
	flag.StringVar(&configPath, "config", "", "YAML options file")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if configPath != "" {
		fileOpts := defaultOptions()
		if err := loadOptions(configPath, &fileOpts); err != nil {
			fatal("%v", err)
		}
		applyExplicit(&fileOpts, opts, set)
		opts = fileOpts
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	outPath := flag.Arg(0)

	if set["fov"] {
		if set["focal"] {
			fatal("specify -focal or -fov, but not both")
		}
		opts.Focal = camera.FieldOfViewToFocalLength(opts.FOV, opts.Aperture)
	} else if opts.FOV != 0 {
		opts.Focal = camera.FieldOfViewToFocalLength(opts.FOV, opts.Aperture)
	}

	if err := opts.validate(); err != nil {
		fatal("%v", err)
	}

	if opts.CPUs > 0 {
		runtime.GOMAXPROCS(opts.CPUs)
	}

	logger := core.NewNullLogger()
	if opts.Verbose {
		logger = core.NewStdoutLogger()
	}

	width, height, _ := parseRes(opts.Res)
	rotation, _ := parseVec3(opts.Rotate)
	translation, _ := parseVec3(opts.Translate)

	logger.Printf("vdbrender: building level-set sphere (radius %g, voxel %g)...\n",
		opts.Radius, opts.Voxel)
	start := time.Now()
	grid, err := levelset.NewLevelSetSphere(opts.Radius, core.Vec3{}, opts.Voxel, opts.HalfWidth)
	if err != nil {
		fatal("%v", err)
	}
	logger.Printf("completed in %v\n", time.Since(start))

	selected, err := levelset.SelectGrid([]*levelset.Grid{grid}, "", logger)
	if err != nil {
		fatal("%v", err)
	}
	inter, err := levelset.NewIntersector(selected)
	if err != nil {
		fatal("%v", err)
	}

	f, err := film.New(width, height)
	if err != nil {
		fatal("%v", err)
	}
	if err := parseBackground(opts.Background, f); err != nil {
		fatal("%v", err)
	}

	cfg := camera.Config{
		Rotation:    rotation,
		Translation: translation,
		FocalLength: opts.Focal,
		Aperture:    opts.Aperture,
		FrameWidth:  opts.Frame,
		NearPlane:   opts.Near,
		FarPlane:    opts.Far,
	}
	var cam render.Camera
	if strings.HasPrefix(opts.Camera, "persp") {
		cam, err = camera.NewPerspective(f, cfg)
	} else {
		cam, err = camera.NewOrthographic(f, cfg)
	}
	if err != nil {
		fatal("%v", err)
	}

	var sh shader.Shader
	switch opts.Shader {
	case "matte":
		sh = shader.NewMatte(film.Gray(1))
	case "normal":
		sh = shader.NewNormal(film.Gray(1))
	default:
		sh = shader.NewDiffuse(film.Gray(1))
	}

	logger.Printf("vdbrender: ray-tracing at %dx%d with %d sample(s) per pixel...\n",
		width, height, opts.Samples)
	stats, err := render.RayTrace(inter, sh, cam, opts.Samples, 0, opts.CPUs != 1)
	if err != nil {
		fatal("%v", err)
	}
	logger.Printf("completed in %v (%d rays, %d hits)\n", stats.Duration, stats.Rays, stats.Hits)

	logger.Printf("vdbrender: writing %q...\n", outPath)
	start = time.Now()
	switch {
	case strings.HasSuffix(outPath, ".ppm"):
		err = f.SavePPM(outPath)
	case strings.HasSuffix(outPath, ".exr"):
		compression, _ := film.ParseCompression(opts.Compression)
		err = f.SaveEXR(outPath, compression)
	default:
		err = fmt.Errorf("unsupported image file format (%s)", outPath)
	}
	if err != nil {
		fatal("%v", err)
	}
	logger.Printf("completed in %v\n", time.Since(start))
}
