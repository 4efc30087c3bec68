package main

import (
	"errors"

	"github.com/chidiwilliams/minilox/parse"
	"github.com/chidiwilliams/minilox/scan"
)

// Stage names the part of the pipeline an error came from
type Stage uint8

const (
	StageScan Stage = iota
	StageParse
	StageRuntime
)

func (s Stage) String() string {
	switch s {
	case StageScan:
		return "scan"
	case StageParse:
		return "parse"
	default:
		return "runtime"
	}
}

// Error wraps the error returned by one stage of the pipeline
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// exitCode returns the process exit code for an error returned by runner.run
func exitCode(err error) int {
	var runErr *Error
	if !errors.As(err, &runErr) {
		return 1
	}
	if runErr.Stage == StageRuntime {
		return 70
	}
	return 65
}

// diagnostics splits a stage error into the messages shown to the user
func diagnostics(err error) []string {
	var scanErrs scan.Errors
	if errors.As(err, &scanErrs) {
		msgs := make([]string, len(scanErrs))
		for i, e := range scanErrs {
			msgs[i] = e.Error()
		}
		return msgs
	}

	var parseErrs parse.Errors
	if errors.As(err, &parseErrs) {
		msgs := make([]string, len(parseErrs))
		for i, e := range parseErrs {
			msgs[i] = e.Error()
		}
		return msgs
	}

	return []string{err.Error()}
}
