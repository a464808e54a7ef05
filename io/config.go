package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleBoxFile = `[Box]

#######################
# Required Parameters #
#######################

# Width of the periodic box [fm].
Length = 10

# Number of particles in the box. Alternatively, set NumberDensity [fm^-3] and
# the particle count will be drawn from a Poisson distribution with mean
# NumberDensity * Length^3.
Particles = 1000
# NumberDensity = 1

#######################
# Optional Parameters #
#######################

# Time stepping. Eps is the width of a time step [fm/c]. Measurables are
# logged every OutputInterval steps.
# Steps = 10000
# OutputInterval = 100
# Eps = 0.001

# Elastic cross section [mb].
# CrossSection = 10

# Seed of the random number generator. Runs with the same seed are identical.
# Seed = 1

# Initial momenta. InitialCondition must be one of
# [ Thermal | Uniform | File ].
# Thermal: massless Boltzmann momenta with the given Temperature [GeV].
# Uniform: momentum components uniform in [-Temperature, Temperature].
# File: particles are read from InitialFile, a text table with the columns
#     t x y z E px py pz
# InitialCondition = Thermal
# Temperature = 0.1
# Mass = 0.138
# InitialFile = path/to/particles.txt

# Boundary conditions. Box is currently the only supported modus.
# Modus = Box

# Collisions are written to Output in the OSCAR1999A format, and the final
# state of every particle is written to FinalFile as a particle table.
# Output = collisions.oscar
# FinalFile = final.txt

# PlotFile writes a diagnostic plot of energy conservation and the collision
# rate.
# PlotFile = diagnostics.png

# The run fails if the total energy drifts by more than EnergyTolerance
# relative to its initial value.
# EnergyTolerance = 1e-6

# Debug checks that every pending collision is mutual after each step and that
# no particle leaves the box. This is slow.
# Debug = false

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`
)

// BoxConfig describes a single run of particles colliding in a periodic box.
type BoxConfig struct {
	// Required
	Length        float64
	Particles     int
	NumberDensity float64

	// Optional
	Steps, OutputInterval int
	Eps, CrossSection     float64
	Seed                  int64

	InitialCondition     string
	Temperature, Mass    float64
	InitialFile          string
	Modus                string
	Output, FinalFile    string
	PlotFile             string
	EnergyTolerance      float64
	Debug                bool
	LogFile, ProfileFile string
}

type BoxWrapper struct {
	Box BoxConfig
}

func DefaultBoxWrapper() *BoxWrapper {
	con := BoxConfig{}
	con.Steps = 10000
	con.OutputInterval = 100
	con.Eps = 0.001
	con.CrossSection = 10
	con.Seed = 1
	con.Length = 10
	con.Temperature = 0.1
	con.Mass = 0.138
	con.InitialCondition = "Thermal"
	con.Modus = "Box"
	con.EnergyTolerance = 1e-6
	return &BoxWrapper{con}
}

func (con *BoxConfig) ValidLength() bool {
	return con.Length > 0
}
func (con *BoxConfig) ValidParticles() bool {
	return con.Particles > 0
}
func (con *BoxConfig) ValidNumberDensity() bool {
	return con.NumberDensity > 0
}
func (con *BoxConfig) ValidSteps() bool {
	return con.Steps >= 0
}
func (con *BoxConfig) ValidOutputInterval() bool {
	return con.OutputInterval > 0
}
func (con *BoxConfig) ValidEps() bool {
	return con.Eps > 0
}
func (con *BoxConfig) ValidCrossSection() bool {
	return con.CrossSection > 0
}
func (con *BoxConfig) ValidSeed() bool {
	return con.Seed >= 0
}
func (con *BoxConfig) ValidInitialCondition() bool {
	return con.InitialCondition != ""
}
func (con *BoxConfig) ValidTemperature() bool {
	return con.Temperature > 0
}
func (con *BoxConfig) ValidMass() bool {
	return con.Mass >= 0
}
func (con *BoxConfig) ValidInitialFile() bool {
	return con.InitialFile != ""
}
func (con *BoxConfig) ValidModus() bool {
	return con.Modus != ""
}
func (con *BoxConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *BoxConfig) ValidFinalFile() bool {
	return con.FinalFile != ""
}
func (con *BoxConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *BoxConfig) ValidEnergyTolerance() bool {
	return con.EnergyTolerance > 0
}
func (con *BoxConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *BoxConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

// IsFileInit returns true if particles are read from InitialFile. Case and
// surrounding whitespace are ignored, as they are everywhere else
// InitialCondition is parsed.
func (con *BoxConfig) IsFileInit() bool {
	return strings.EqualFold(strings.TrimSpace(con.InitialCondition), "File")
}

// CheckInit returns an error describing the first invalid parameter of con,
// if there is one.
func (con *BoxConfig) CheckInit() error {
	if !con.ValidLength() {
		return fmt.Errorf("Invalid/non-existent 'Length' value, %g.", con.Length)
	} else if !con.IsFileInit() &&
		!con.ValidParticles() && !con.ValidNumberDensity() {

		return fmt.Errorf(
			"You must set either a valid 'Particles' or a valid " +
				"'NumberDensity' value.",
		)
	} else if con.Particles < 0 {
		return fmt.Errorf("Negative 'Particles' value, %d.", con.Particles)
	} else if !con.ValidSteps() {
		return fmt.Errorf("Negative 'Steps' value, %d.", con.Steps)
	} else if !con.ValidOutputInterval() {
		return fmt.Errorf(
			"Invalid 'OutputInterval' value, %d.", con.OutputInterval,
		)
	} else if !con.ValidEps() {
		return fmt.Errorf("Invalid 'Eps' value, %g.", con.Eps)
	} else if !con.ValidCrossSection() {
		return fmt.Errorf(
			"Invalid 'CrossSection' value, %g.", con.CrossSection,
		)
	} else if !con.ValidSeed() {
		return fmt.Errorf("Negative 'Seed' value, %d.", con.Seed)
	} else if !con.ValidInitialCondition() {
		return fmt.Errorf("Empty 'InitialCondition' value.")
	} else if !con.ValidMass() {
		return fmt.Errorf("Negative 'Mass' value, %g.", con.Mass)
	} else if !con.ValidModus() {
		return fmt.Errorf("Empty 'Modus' value.")
	} else if !con.ValidEnergyTolerance() {
		return fmt.Errorf(
			"Invalid 'EnergyTolerance' value, %g.", con.EnergyTolerance,
		)
	}

	if con.IsFileInit() {
		if !con.ValidInitialFile() {
			return fmt.Errorf(
				"'InitialCondition' is File, but 'InitialFile' is not set.",
			)
		}
	} else if !con.ValidTemperature() {
		return fmt.Errorf("Invalid 'Temperature' value, %g.", con.Temperature)
	}

	return nil
}

// ReadBoxConfig reads a [Box] config file, filling in defaults for any
// optional parameters which were not set.
func ReadBoxConfig(fname string) (*BoxConfig, error) {
	wrap := DefaultBoxWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return checkedBox(wrap)
}

// ParseBoxConfig is identical to ReadBoxConfig, except that the config is
// read from a string.
func ParseBoxConfig(text string) (*BoxConfig, error) {
	wrap := DefaultBoxWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	return checkedBox(wrap)
}

func checkedBox(wrap *BoxWrapper) (*BoxConfig, error) {
	if err := wrap.Box.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Box, nil
}
