// SPDX-License-Identifier: MIT

package frozen

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// DefaultECPOnly is the default ECP accounting: rule-based frozen electrons
// are reduced by the electrons an ECP already removed.
const DefaultECPOnly = false

// Option configures a Selection.
type Option func(*options)

type options struct {
	ecpOnly bool
	energy  mat.Matrix
	log     *zap.Logger
}

func gatherOptions(opts ...Option) options {
	o := options{ecpOnly: DefaultECPOnly, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithECPOnly makes atoms carrying an effective core potential contribute no
// rule-based frozen electrons. Explicit Counts specs are unaffected.
func WithECPOnly(v bool) Option {
	return func(o *options) { o.ecpOnly = v }
}

// WithEnergy supplies orbital energies, shaped like the occupation array.
// Required for EnergyWindow and ActiveEnergies.
func WithEnergy(e mat.Matrix) Option {
	return func(o *options) { o.energy = e }
}

// WithLogger attaches a logger for debug traces; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.log = l
	}
}
