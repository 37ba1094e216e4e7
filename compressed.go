/*
 * compressed.go, part of gomeph
 *
 * Copyright 2024 The gomeph Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

package meph

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// source reads a file, decompressing it first if needed, and closes
// both the decompressor and the file.
type source struct {
	io.Reader
	closers []io.Closer
}

func (s *source) Close() error {
	var err error
	//decompressor first, then the file.
	for i := len(s.closers) - 1; i >= 0; i-- {
		if e := s.closers[i].Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// zstd's Close returns nothing.
type zstdCloser struct{ *zstd.Decoder }

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//openSource opens fname and returns an object that will read data from the file, either 'as is'
//or decompressing first, depending on the file extension. Supported extensions are
//.zst (zstd) and .gz (gzip). Any other extension is read as plain text, which is what
//the phonon codes write, so openSource only returns an error if the file can't be opened
//or the compressed header is broken.
func openSource(fname string) (io.ReadCloser, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, Errorf(FormatError, fname, "can't open file: %w", err)
	}
	reader := bufio.NewReader(f)
	ret := &source{closers: []io.Closer{f}}
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(reader)
		if err != nil {
			f.Close()
			return nil, Errorf(FormatError, fname, "broken zstd stream: %w", err)
		}
		ret.Reader = dec
		ret.closers = append(ret.closers, zstdCloser{dec})
	case ".gz":
		gz, err := gzip.NewReader(reader)
		if err != nil {
			f.Close()
			return nil, Errorf(FormatError, fname, "broken gzip stream: %w", err)
		}
		ret.Reader = gz
		ret.closers = append(ret.closers, gz)
	default:
		ret.Reader = reader
	}
	return ret, nil
}

// readAll reads the whole (possibly compressed) file.
func readAll(fname string) ([]byte, error) {
	src, err := openSource(fname)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, Errorf(FormatError, fname, "reading: %w", err)
	}
	return b, nil
}

// trimCompression removes a compression extension from a file name, so
// "thermal_displacements.yaml-3.zst" becomes "thermal_displacements.yaml-3".
func trimCompression(fname string) string {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".zst", ".zstd", ".gz":
		return strings.TrimSuffix(fname, filepath.Ext(fname))
	}
	return fname
}
