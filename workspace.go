/*
 * workspace.go, part of gomeph.
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
 */

package meph

import (
	"errors"
	"os"
	"path/filepath"
)

// workspace keeps track of the intermediate files written during a run, so they
// can all be removed afterwards.
type workspace struct {
	dir   string
	files []string
}

func newWorkspace(dir string) *workspace {
	if dir == "" {
		dir = "."
	}
	return &workspace{dir: dir}
}

// path returns the full path for the intermediate file name.
func (w *workspace) path(name string) string {
	return filepath.Join(w.dir, name)
}

// write writes the samples to the intermediate file name and tracks it.
func (w *workspace) write(name string, samples []Sample) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", Errorf(FormatError, w.dir, "can't create work directory: %w", err)
	}
	p := w.path(name)
	fout, err := os.Create(p)
	if err != nil {
		return "", Errorf(FormatError, p, "can't create cleaned file: %w", err)
	}
	w.files = append(w.files, p)
	if err := WriteSamples(fout, samples); err != nil {
		fout.Close()
		return p, Errorf(FormatError, p, "writing: %w", err)
	}
	if err := fout.Close(); err != nil {
		return p, Errorf(FormatError, p, "closing: %w", err)
	}
	return p, nil
}

// Files returns a copy of the list of tracked files.
func (w *workspace) Files() []string {
	return append([]string(nil), w.files...)
}

// clean removes every tracked file. The list is copied first and the
// files are then removed from the copy, so the tracking list is never
// modified while it is iterated. Files already gone are not an error.
func (w *workspace) clean() error {
	snapshot := w.Files()
	var errs []error
	for _, p := range snapshot {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	w.files = w.files[:0]
	return errors.Join(errs...)
}
