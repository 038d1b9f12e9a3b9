/*
Copyright © 2024 the soilwat authors.
This file is part of soilwat.

soilwat is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

soilwat is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with soilwat.  If not, see <http://www.gnu.org/licenses/>.
*/

package soilwat

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrorKind classifies the failure modes a core entry point can report.
type ErrorKind int

// Recognized error kinds. These intentionally mirror the spec's vocabulary
// rather than any host-language exception taxonomy.
const (
	InvalidInput ErrorKind = iota
	MalformedInput
	OutOfDomain
	Nonconvergence
	BadCovariance
	Underdetermined
	Incompatibility
	IOFailure
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case MalformedInput:
		return "MalformedInput"
	case OutOfDomain:
		return "OutOfDomain"
	case Nonconvergence:
		return "Nonconvergence"
	case BadCovariance:
		return "BadCovariance"
	case Underdetermined:
		return "Underdetermined"
	case Incompatibility:
		return "Incompatibility"
	case IOFailure:
		return "IOFailure"
	default:
		return "Unknown"
	}
}

// SoilwatError is the error type returned by every core entry point.
// File and Line are populated only when the failure was localized to a
// specific input file (MalformedInput).
type SoilwatError struct {
	Kind    ErrorKind
	Message string
	File    string
	Line    int
	Wrapped error
}

func (e *SoilwatError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s (%s:%d)", e.Kind, e.Message, e.File, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped error, if any, so callers can use errors.Is/As.
func (e *SoilwatError) Unwrap() error { return e.Wrapped }

// Errorf builds a SoilwatError of the given kind, formatting like fmt.Errorf.
// A trailing %w verb is honored via errors.Unwrap through Wrapped.
func Errorf(kind ErrorKind, format string, args ...interface{}) *SoilwatError {
	err := fmt.Errorf(format, args...)
	return &SoilwatError{Kind: kind, Message: err.Error(), Wrapped: errors.Unwrap(err)}
}

// ErrorfAt is Errorf with file/line localization, for MalformedInput.
func ErrorfAt(kind ErrorKind, file string, line int, format string, args ...interface{}) *SoilwatError {
	return &SoilwatError{Kind: kind, Message: fmt.Sprintf(format, args...), File: file, Line: line}
}

// MaxMsgs bounds the number of warnings retained per run; additional
// warnings are dropped but counted.
const MaxMsgs = 200

// AuditCheck names the ten water-balance audit counters described in
// spec.md §4.5 and §8, in the order the spec numbers them.
type AuditCheck int

const (
	AuditAETlePET AuditCheck = iota
	AuditAETeqESplusT
	AuditEtotBalance
	AuditInfiltrationBalance
	AuditTranspirationBalance
	AuditSnowpackBalance
	AuditDeepDrainageBalance
	AuditLayerWaterBalance
	AuditSWCBounds
	AuditObservedWeatherOnly
	numAuditChecks
)

// RunContext is threaded through every core entry point. It realizes the
// spec's cooperative-cancellation error surface: on failure an entry point
// sets StopRun and ErrorMessage and returns immediately without further
// mutation; callers must check StopRun before trusting any output.
// Warnings never set StopRun.
type RunContext struct {
	Log logrus.FieldLogger

	StopRun      bool
	ErrorMessage string
	lastErr      error

	warnings     []string
	droppedWarns int

	AuditCounters [numAuditChecks]int
}

// NewRunContext returns a RunContext with a standard logrus logger.
func NewRunContext() *RunContext {
	return &RunContext{Log: logrus.StandardLogger()}
}

// Fail records a fatal error on the context. Any function observing
// ctx.StopRun on entry must return immediately without further mutation.
func (ctx *RunContext) Fail(err error) {
	if ctx.StopRun {
		return
	}
	ctx.StopRun = true
	ctx.ErrorMessage = err.Error()
	ctx.lastErr = err
	if ctx.Log != nil {
		ctx.Log.WithFields(logrus.Fields{"kind": kindOf(err)}).Error(ctx.ErrorMessage)
	}
}

// Err returns the error that caused StopRun, or nil.
func (ctx *RunContext) Err() error { return ctx.lastErr }

func kindOf(err error) string {
	var se *SoilwatError
	if e, ok := err.(*SoilwatError); ok {
		se = e
		return se.Kind.String()
	}
	return "unknown"
}

// Warn appends a warning to the bounded buffer. Overflow silently drops the
// message but increments a counter; warnings never set StopRun.
func (ctx *RunContext) Warn(fields logrus.Fields, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if len(ctx.warnings) >= MaxMsgs {
		ctx.droppedWarns++
	} else {
		ctx.warnings = append(ctx.warnings, msg)
	}
	if ctx.Log != nil {
		ctx.Log.WithFields(fields).Warn(msg)
	}
}

// Warnings returns the accumulated warnings and the count of warnings that
// overflowed the bounded buffer and were dropped.
func (ctx *RunContext) Warnings() ([]string, int) {
	return ctx.warnings, ctx.droppedWarns
}
