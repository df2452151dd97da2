// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lineset

import "fmt"

// Op names one of the supported set operations.
type Op string

const (
	Intersect Op = "intersect"
	Union     Op = "union"
	Diff      Op = "diff"
)

// Ops lists the valid operations in the order they are presented to users.
var Ops = []Op{Intersect, Union, Diff}

// UnknownOperationError is returned by ParseOp for any token that is not one
// of Ops.
type UnknownOperationError struct {
	Op string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("Unknown operation %s (only 'intersect', 'union' and 'diff' allowed)", e.Op)
}

// ParseOp converts a command line token into an Op. Matching is exact.
func ParseOp(token string) (Op, error) {
	for _, op := range Ops {
		if string(op) == token {
			return op, nil
		}
	}
	return "", &UnknownOperationError{Op: token}
}

// Apply mutates s in place according to op. An unrecognized op leaves s
// untouched and returns an UnknownOperationError.
func (op Op) Apply(s, other Set) error {
	switch op {
	case Intersect:
		s.Retain(other)
	case Union:
		s.AddAll(other)
	case Diff:
		s.RemoveAll(other)
	default:
		return &UnknownOperationError{Op: string(op)}
	}
	return nil
}
