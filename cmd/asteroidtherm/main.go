// Command asteroidtherm wires the shape, visibility, and thermal packages
// into an example end-to-end driver: it loads a triangulated mesh, builds
// its visibility lists, and steps every facet's subsurface temperature
// column through a user-chosen number of rotations under a synthetic or
// measured insolation curve.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/asteroid-thermal/interpolate"
	"github.com/phil-mansfield/asteroid-thermal/mesh"
	"github.com/phil-mansfield/asteroid-thermal/shape"
	"github.com/phil-mansfield/asteroid-thermal/thermal"
	"github.com/phil-mansfield/asteroid-thermal/vec3"
	"github.com/phil-mansfield/asteroid-thermal/visibility"
)

// peakFlux is the solar constant at 1 AU, W/m^2, used as the amplitude of
// the synthetic insolation curve when no measured table is supplied.
const peakFlux = 1361.0

// phaseSamples is the number of points used to tabulate one rotation of
// the synthetic sub-solar flux curve before handing it to the cubic
// spline.
const phaseSamples = 360

func main() {
	var (
		logPath, pprofPath     string
		nodesPath, facesPath   string
		configPath             string
		rotations              int
		startTemp              float64
		workers                int
	)

	flag.StringVar(&logPath, "Log", "",
		"Location to write log statements to. Default is stderr.")
	flag.StringVar(&pprofPath, "PProf", "",
		"Location to write a CPU profile to. Default is no profiling.")

	flag.StringVar(&nodesPath, "Nodes", "",
		"Whitespace-delimited text file of x y z node coordinates.")
	flag.StringVar(&facesPath, "Faces", "",
		"Whitespace-delimited text file of i j k node-index triples.")
	flag.StringVar(&configPath, "Config", "",
		"INI file with a [Thermal] section. Defaults are used if omitted.")

	var insolationPath string
	flag.StringVar(&insolationPath, "InsolationTable", "",
		"Whitespace-delimited text file of phase flux pairs (phase in "+
			"[0,1), flux in W/m^2). A synthetic sinusoidal curve is used "+
			"if omitted.")

	flag.IntVar(&rotations, "Rotations", 20,
		"Number of full rotation periods to step through.")
	flag.Float64Var(&startTemp, "StartTemp", 250,
		"Uniform initial temperature of every facet's column, K.")
	flag.IntVar(&workers, "Workers", runtime.NumCPU(),
		"Number of goroutines stepping facets concurrently.")

	flag.Parse()

	if logPath != "" {
		lf, err := os.Create(logPath)
		if err != nil {
			log.Fatalln(err.Error())
		}
		defer lf.Close()
		log.SetOutput(lf)
	}

	if pprofPath != "" {
		f, err := os.Create(pprofPath)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	checkRequired(nodesPath, "Nodes")
	checkRequired(facesPath, "Faces")

	s, err := loadShape(nodesPath, facesPath)
	if err != nil {
		log.Fatalf("asteroidtherm: %s", err.Error())
	}
	log.Printf("loaded shape: %d facets, area %.4g m^2, volume %.4g m^3",
		len(s.Facets), s.Area, s.Volume)

	var cfg thermal.Config
	if configPath != "" {
		cfg, err = thermal.ReadConfig(configPath)
	} else {
		cfg = thermal.DefaultConfig()
		cfg.AB, cfg.ATH = 0.05, 0
		cfg.K, cfg.Rho, cfg.Cp = 0.01, 1500, 600
		cfg.Eps = 0.9
		cfg.P = 36000
	}
	if err != nil {
		log.Fatalf("asteroidtherm: %s", err.Error())
	}

	params, err := thermal.NewParams(cfg)
	if err != nil {
		log.Fatalf("asteroidtherm: %s", err.Error())
	}
	log.Printf("thermal params: l=%.4g m, Gamma=%.4g, lambda=%.4g, Nt=%d, Nz=%d",
		params.L, params.Gamma, params.Lambda, params.Nt, params.Nz)

	for _, f := range s.Facets {
		f.Tz = make([]float64, params.Nz)
		for i := range f.Tz {
			f.Tz[i] = startTemp
		}
	}

	curve, err := loadInsolationCurve(insolationPath, peakFlux)
	if err != nil {
		log.Fatalf("asteroidtherm: %s", err.Error())
	}

	sunDir := vec3.Vec3{1, 0, 0}
	var trackPhase0 []float64
	for rot := 0; rot < rotations; rot++ {
		for step := 0; step < params.Nt; step++ {
			phase := float64(step) / float64(params.Nt)
			applyInsolation(s.Facets, sunDir, curve, phase)
			thermal.StepAll(s.Facets, params, workers)
		}
		trackPhase0 = append(trackPhase0, s.Facets[0].Tz[0])
		log.Printf("rotation %d: facet 0 surface temperature %.3f K", rot, s.Facets[0].Tz[0])
	}

	if n := len(trackPhase0); n >= 2 {
		drift := math.Abs(trackPhase0[n-1] - trackPhase0[n-2])
		fmt.Printf("facet 0 surface drift between last two rotations: %.4f K\n", drift)
	}
}

func checkRequired(val, name string) {
	if val == "" {
		log.Fatalf("asteroidtherm requires a -%s argument.", name)
	}
}

// loadShape reads node coordinates and face index triples from plain-text
// tables and builds the polyhedral shape model and its visibility lists.
func loadShape(nodesPath, facesPath string) (*shape.Shape, error) {
	nodeCols, err := table.ReadTable(nodesPath, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, fmt.Errorf("reading nodes: %w", err)
	}
	xs, ys, zs := nodeCols[0], nodeCols[1], nodeCols[2]
	nodes := make([]vec3.Vec3, len(xs))
	for i := range nodes {
		nodes[i] = vec3.Vec3{xs[i], ys[i], zs[i]}
	}

	faceCols, err := table.ReadTable(facesPath, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, fmt.Errorf("reading faces: %w", err)
	}
	is, js, ks := faceCols[0], faceCols[1], faceCols[2]
	faces := make([]shape.Face, len(is))
	for i := range faces {
		faces[i] = shape.Face{int(is[i]), int(js[i]), int(ks[i])}
	}

	return shape.BuildShape(nodes, faces, shape.BuildOptions{FindVisibleFaces: true})
}

// loadInsolationCurve builds the phase-vs-flux lookup applyInsolation reads
// each step. A measured table, if given, is read with table.ReadTable (the
// same columnar reader the driver uses for node and face tables) and
// interpolated linearly between its samples, since a hand-measured curve
// carries its own noise that a cubic fit would over-smooth. Absent a
// table, a synthetic sinusoidal curve is built instead and interpolated
// with a cubic spline, since it is smooth by construction and a spline
// fits it with far fewer knots than a linear table would need for
// comparable accuracy.
func loadInsolationCurve(path string, amplitude float64) (interpolate.Interpolator, error) {
	if path == "" {
		return synthesizeInsolationCurve(amplitude), nil
	}

	cols, err := table.ReadTable(path, []int{0, 1}, nil)
	if err != nil {
		return nil, fmt.Errorf("reading insolation table: %w", err)
	}
	return interpolate.NewLinear(cols[0], cols[1]), nil
}

// synthesizeInsolationCurve builds a period-normalized lookup of sub-solar
// flux vs. rotation phase, peaking at amplitude when the sub-solar point
// directly faces the Sun and clamped to zero on the night side.
// cmd/asteroidtherm uses this in place of a measured flux table; production
// callers would instead populate one from ephemeris data.
func synthesizeInsolationCurve(amplitude float64) *interpolate.Spline {
	xs := make([]float64, phaseSamples+1)
	vals := make([]float64, phaseSamples+1)
	for i := range vals {
		phase := float64(i) / float64(phaseSamples)
		cosz := math.Cos(2 * math.Pi * phase)
		if cosz < 0 {
			cosz = 0
		}
		xs[i] = phase
		vals[i] = amplitude * cosz
	}
	return interpolate.NewSpline(xs, vals)
}

// applyInsolation sets each facet's sun flux for the given rotation phase:
// the curve gives the flux a directly-facing facet would receive, scaled
// per-facet by its own obliquity to sunDir, and zeroed for facets that are
// not illuminated (facing away, or occluded by another visible facet).
func applyInsolation(facets []*mesh.Facet, sunDir vec3.Vec3, curve interpolate.Interpolator, phase float64) {
	base := curve.Eval(phase)
	for _, f := range facets {
		if !visibility.IsIlluminated(f, sunDir, facets) {
			f.Flux.Sun = 0
			continue
		}
		f.Flux.Sun = base * f.Normal.Dot(sunDir)
	}
}
