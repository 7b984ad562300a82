// Package config holds the per-strategy option structs and their
// defaults.
package config

import (
	"time"

	"github.com/rhartert/yasat/sat"
)

// NaiveOptions configures a run of NaiveStrategy.
type NaiveOptions struct {
	Timeout time.Duration
}

// MOMSOptions configures a run of MOMSStrategy.
type MOMSOptions struct {
	Timeout time.Duration
}

// CDCLOptions configures a run of CDCLStrategy: the timeout plus every
// tunable knob of the conflict-driven search.
type CDCLOptions struct {
	Timeout      time.Duration
	VarDecay     float64
	MaxDecisions int64
	RestartBase  int
	DecayStride  int
}

// SolverOptions strips the timeout and returns the sat.CDCLOptions
// CDCLStrategy itself consumes.
func (o CDCLOptions) SolverOptions() sat.CDCLOptions {
	return sat.CDCLOptions{
		VarDecay:     o.VarDecay,
		MaxDecisions: o.MaxDecisions,
		RestartBase:  o.RestartBase,
		DecayStride:  o.DecayStride,
	}
}

// DefaultNaiveOptions, DefaultMOMSOptions, and DefaultCDCLOptions are the
// options a driver should fall back to absent any flags or overrides.
var (
	DefaultNaiveOptions = NaiveOptions{Timeout: 30 * time.Second}
	DefaultMOMSOptions  = MOMSOptions{Timeout: 30 * time.Second}
	DefaultCDCLOptions  = CDCLOptions{
		Timeout:      30 * time.Minute,
		VarDecay:     sat.DefaultCDCLOptions.VarDecay,
		MaxDecisions: sat.DefaultCDCLOptions.MaxDecisions,
		RestartBase:  sat.DefaultCDCLOptions.RestartBase,
		DecayStride:  sat.DefaultCDCLOptions.DecayStride,
	}
)
