package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gocollide/collide"
	"github.com/phil-mansfield/gocollide/experiment"
	"github.com/phil-mansfield/gocollide/io"
)

const (
	program = "gocollide 0.1"
	// Number of bins in the momentum spectrum plot.
	spectrumBins = 40
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var boxStr, exampleConfig string
	vars := map[string]*string{
		"Box":           &boxStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&boxStr, "Box", "",
		"Configuration file for [Box] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. The only accepted argument is 'Box'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Box":
		con, err := io.ReadBoxConfig(boxStr)
		if err != nil {
			log.Fatal(err.Error())
		}
		boxMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Box":
			fmt.Println(io.ExampleBoxFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Box'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gocollide "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func boxMain(con *io.BoxConfig) {
	fg := setupIO(con)
	defer fg.Close()

	var (
		ow   *io.OscarWriter
		sink collide.EventSink
	)
	if con.ValidOutput() {
		f, err := os.Create(con.Output)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer f.Close()

		ow, err = io.NewOscarWriter(f, program)
		if err != nil {
			log.Fatal(err.Error())
		}
		sink = ow
	}

	e, err := experiment.New(con, sink)
	if err != nil {
		log.Fatal(err.Error())
	}

	if ow != nil {
		if err := ow.WriteInitial(e.Particles); err != nil {
			log.Fatal(err.Error())
		}
	}

	ms, runErr := e.Run()

	if ow != nil {
		if err := ow.WriteFinal(e.Particles); err != nil {
			log.Fatal(err.Error())
		} else if err := ow.Flush(); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote %d collisions to %s", ow.Collisions(), con.Output)
	}

	if con.ValidFinalFile() {
		writeFinal(con.FinalFile, e)
	}

	if con.ValidPlotFile() {
		plotMeasurables(con.PlotFile, ms)
		plotSpectrum(suffixName(con.PlotFile, "spectrum"), con, e)
		plt.Execute()
	}

	if runErr != nil {
		log.Fatal(runErr.Error())
	}
}

// setupIO sets up the log and profile files requested by con.
func setupIO(con *io.BoxConfig) *FileGroup {
	var err error
	fg := new(FileGroup)

	// Set up log file.
	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	// Set up profile file.
	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}

func writeFinal(fname string, e *experiment.Experiment) {
	log.Printf("Writing final state to %s", fname)
	f, err := os.Create(fname)
	if err != nil {
		log.Fatalf("Could not create %s.", fname)
	}
	defer f.Close()

	if err := io.WriteParticleTable(f, e.Particles); err != nil {
		log.Fatal(err.Error())
	}
}

// suffixName turns path/to/plot.png into path/to/plot_suffix.png.
func suffixName(fname, suffix string) string {
	ext := filepath.Ext(fname)
	return strings.TrimSuffix(fname, ext) + "_" + suffix + ext
}

// plotMeasurables plots energy conservation against time to fname and the
// collision rate against time to a "_rate" file next to it.
func plotMeasurables(fname string, ms []experiment.Measurables) {
	ts := make([]float64, len(ms))
	drifts := make([]float64, len(ms))
	rates := make([]float64, len(ms))
	for i := range ms {
		ts[i], drifts[i], rates[i] = ms[i].Time, ms[i].EnergyDrift, ms[i].Rate
	}

	plt.Figure(plt.FigSize(8, 6))
	plt.Plot(ts, drifts, "k", plt.LW(2))
	plt.XLabel(`$t$ [fm/c]`, plt.FontSize(16))
	plt.YLabel(`$\Delta E / E_0$`, plt.FontSize(16))
	plt.Title("Energy conservation")
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)

	if len(ms) < 2 {
		return
	}

	plt.Figure(plt.FigSize(8, 6))
	plt.Plot(ts[1:], rates[1:], "r", plt.LW(2))
	plt.XLabel(`$t$ [fm/c]`, plt.FontSize(16))
	plt.YLabel(`Collisions per particle [c/fm]`, plt.FontSize(16))
	plt.Title("Collision rate")
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(suffixName(fname, "rate"))
}

// plotSpectrum plots the final momentum spectrum together with the massless
// Boltzmann spectrum at the configured temperature.
func plotSpectrum(fname string, con *io.BoxConfig, e *experiment.Experiment) {
	info := &experiment.HistInfo{
		Min: 0, Max: 10 * con.Temperature, Bins: spectrumBins, Scale: "Linear",
	}
	centers := info.Centers()
	got := experiment.MomentumHist(e.Particles, info)
	expected := experiment.ThermalHist(e.Particles.Len(), con.Temperature, info)

	plt.Figure()
	plt.Plot(centers, got, "ok")
	plt.Plot(centers, expected, "r", plt.LW(2))
	plt.XLabel(`$|p|$ [GeV/c]`, plt.FontSize(16))
	plt.YLabel(`$N$`, plt.FontSize(16))
	plt.Title(fmt.Sprintf("Final spectrum, t = %.3g fm/c", e.Header.Time()))
	plt.YScale("log")
	plt.SaveFig(fname)
}
