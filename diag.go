// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Diagnostics wraps arithmetic operations with a sticky-error sink: Warn
// reports a non-fatal anomaly (e.g. a discarded fractional exponent) and
// keeps going, Error reports a fatal domain failure and latches it for Err.
package bcnum

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Diagnostics is the warn/error sink every arithmetic kernel reports
// through. Embedders may replace Diag with their own sink, e.g. to route
// messages through a front end's own error reporter.
type Diagnostics interface {
	// Warn reports a non-fatal anomaly; execution continues.
	Warn(msg string)
	// Error reports a fatal domain failure. Operations that call Error do
	// not modify their output.
	Error(msg string)
}

// Diag is the package-wide diagnostic sink, defaulting to a
// *LogrusDiagnostics writing through logrus's standard logger.
var Diag Diagnostics = NewLogrusDiagnostics(logrus.StandardLogger())

// LogrusDiagnostics is a Diagnostics sink backed by logrus. It also latches
// the last error reported through Error until Err is called.
type LogrusDiagnostics struct {
	log *logrus.Logger
	err error
}

// NewLogrusDiagnostics returns a LogrusDiagnostics that logs through log.
func NewLogrusDiagnostics(log *logrus.Logger) *LogrusDiagnostics {
	return &LogrusDiagnostics{log: log}
}

// Warn implements Diagnostics.
func (d *LogrusDiagnostics) Warn(msg string) {
	d.log.WithField("component", "bcnum").Warn(msg)
}

// Error implements Diagnostics.
func (d *LogrusDiagnostics) Error(msg string) {
	d.err = errors.New(msg)
	d.log.WithField("component", "bcnum").Error(msg)
}

// Err returns the last error reported through Error, if any, and clears the
// latch.
func (d *LogrusDiagnostics) Err() error {
	err := d.err
	d.err = nil
	return err
}
