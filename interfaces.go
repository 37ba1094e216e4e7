/*
 * interfaces.go, part of gomeph.
 *
 *
 * Copyright 2024 The gomeph Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package meph

import (
	"errors"
	"fmt"
	"strings"
)

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the name of a function in the calling stack (plus, optionally, extra info in the form
	//"FunctionName: Extra info") and returns the decorations so far. An empty string just returns them.
	Decorate(string) []string
}

// Kind classifies the errors produced while processing a run.
type Kind string

const (
	//The file does not have the expected columns or markers.
	FormatError Kind = "format"
	//Sample counts do not match the number of atoms, or file lists do not match each other.
	AlignmentError Kind = "alignment"
	//An element is missing from the recoil energy table. Never fatal.
	LookupError Kind = "lookup"
	//A fit could not be performed.
	NumericError Kind = "numeric"
)

// Sentinels for errors.Is. A *PipelineError matches the sentinel of its kind.
var (
	ErrFormat    = errors.New("format error")
	ErrAlignment = errors.New("alignment error")
	ErrLookup    = errors.New("lookup error")
	ErrNumeric   = errors.New("numeric error")
)

func (k Kind) sentinel() error {
	switch k {
	case FormatError:
		return ErrFormat
	case AlignmentError:
		return ErrAlignment
	case LookupError:
		return ErrLookup
	case NumericError:
		return ErrNumeric
	}
	return nil
}

// PipelineError is the general structure for errors in this package. It fulfills Error.
type PipelineError struct {
	kind     Kind
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	cause    error
}

func newError(kind Kind, filename, message string, caller ...string) *PipelineError {
	return &PipelineError{kind: kind, message: message, filename: filename, deco: caller}
}

// Errorf builds a *PipelineError of the given kind. The last %w verb in format, if any,
// becomes the cause of the error.
func Errorf(kind Kind, filename string, format string, a ...any) *PipelineError {
	wrapped := fmt.Errorf(format, a...)
	err := newError(kind, filename, wrapped.Error())
	err.cause = errors.Unwrap(wrapped)
	return err
}

func (err *PipelineError) Error() string {
	var b strings.Builder
	b.WriteString(string(err.kind))
	b.WriteString(" error")
	if err.filename != "" {
		b.WriteString(" in ")
		b.WriteString(err.filename)
	}
	if len(err.deco) > 0 {
		//innermost function first, as they were added.
		b.WriteString(" (")
		b.WriteString(strings.Join(err.deco, " < "))
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(err.message)
	return b.String()
}

// Decorate adds new information to the error
func (err *PipelineError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Unwrap gives access to both the sentinel of the error kind and the original cause.
func (err *PipelineError) Unwrap() []error {
	ret := []error{err.kind.sentinel()}
	if err.cause != nil {
		ret = append(ret, err.cause)
	}
	return ret
}

// errDecorate decorates err with the caller's name if it implements Error,
// and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	return err
}
