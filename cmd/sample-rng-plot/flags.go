// Copyright 2025 the sample-rng-plot authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/spf13/cobra"
)

var (
	notBlocking  bool
	noDisplay    bool
	distribution string
	mean         float64
	variance     float64
	bound        float64
	minValue     float64
	maxValue     float64
	increment    float64
	mu           float64
	sigma        float64
	scale        float64
	shape        float64
	zipfN        uint64
	zipfAlpha    float64
	sampleCount  int
	binCount     int
	outputFile   string
	logFile      string
	rngSeed      uint64
	rngRun       uint64
	level        string
	versionFlag  bool
)

//nolint:lll
func setupFlags(cmd *cobra.Command) {
	cmd.Flags().
		BoolVarP(&notBlocking, "not-blocking", "", false, "Return from the display step immediately instead of waiting for the viewer to exit")
	cmd.Flags().
		BoolVarP(&noDisplay, "no-display", "", false, "Render the histogram without opening a viewer")
	cmd.Flags().
		StringVarP(&distribution, "distribution", "", "normal", "Distribution to sample, one of constant|sequential|uniform|exponential|pareto|weibull|normal|lognormal|zipf")
	cmd.Flags().
		Float64VarP(&mean, "mean", "", 100.0, "Mean of the normal/exponential distribution, value of the constant distribution")
	cmd.Flags().
		Float64VarP(&variance, "variance", "", 225.0, "Variance of the normal distribution")
	cmd.Flags().
		Float64VarP(&bound, "bound", "", 0, "Cap on draws for the bounded distributions, 0 means unbounded")
	cmd.Flags().
		Float64VarP(&minValue, "min", "", 0, "Lower limit of the uniform/sequential distribution")
	cmd.Flags().
		Float64VarP(&maxValue, "max", "", 200, "Upper limit of the uniform/sequential distribution")
	cmd.Flags().
		Float64VarP(&increment, "increment", "", 1, "Step of the sequential distribution")
	cmd.Flags().
		Float64VarP(&mu, "mu", "", 0, "Mu of the underlying normal for the lognormal distribution")
	cmd.Flags().
		Float64VarP(&sigma, "sigma", "", 1, "Sigma of the underlying normal for the lognormal distribution")
	cmd.Flags().
		Float64VarP(&scale, "scale", "", 1, "Scale of the pareto/weibull distribution")
	cmd.Flags().
		Float64VarP(&shape, "shape", "", 2, "Shape of the pareto/weibull distribution")
	cmd.Flags().
		Uint64VarP(&zipfN, "zipf-n", "", 100, "Number of ranks of the zipf distribution")
	cmd.Flags().
		Float64VarP(&zipfAlpha, "zipf-alpha", "", 1.5, "Rank-frequency exponent of the zipf distribution, must be greater than 1")
	cmd.Flags().
		IntVarP(&sampleCount, "samples", "n", 10000, "Number of samples to draw")
	cmd.Flags().
		IntVarP(&binCount, "bins", "", 50, "Number of histogram bins")
	cmd.Flags().
		StringVarP(&outputFile, "output", "o", "sample-hist.png", "Path of the rendered histogram PNG")
	cmd.Flags().
		StringVarP(&logFile, "log-file", "", "", "Write logs to this file instead of stderr")
	cmd.Flags().
		Uint64VarP(&rngSeed, "rng-seed", "", 1, "Seed of the random-variable streams")
	cmd.Flags().
		Uint64VarP(&rngRun, "rng-run", "", 1, "Run number selecting an independent replication for the same seed")
	cmd.Flags().
		StringVarP(&level, "level", "", "info", "Specify the logging level, debug|info|warn|error|dpanic|panic|fatal")
	cmd.Flags().
		BoolVarP(&versionFlag, "version", "", false, "Print version information")
}
