// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package huffcompile

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bufbuild/huffcompile/source"
)

// Resolver locates the source of a file to be compiled.
type Resolver interface {
	FindFileByPath(string) (SearchResult, error)
}

// SearchResult is what a Resolver found. Only one of the fields must be set;
// if both are, File is used.
type SearchResult struct {
	// Source text, read to the end and closed if it is an io.Closer.
	Source io.Reader
	// An already loaded file.
	File *source.File
}

// ResolverFunc is a Resolver implemented by a function.
type ResolverFunc func(string) (SearchResult, error)

var _ Resolver = ResolverFunc(nil)

// FindFileByPath implements [Resolver].
func (f ResolverFunc) FindFileByPath(path string) (SearchResult, error) {
	return f(path)
}

// CompositeResolver tries each resolver in turn, returning the first result
// found. If none finds the file, the first error is returned.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

// FindFileByPath implements [Resolver].
func (f CompositeResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(f) == 0 {
		return SearchResult{}, fs.ErrNotExist
	}
	var firstErr error
	for _, res := range f {
		r, err := res.FindFileByPath(path)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return SearchResult{}, firstErr
}

// SourceResolver loads source text. Relative paths are tried against each of
// ImportPaths in order; with no ImportPaths, paths are used as given.
type SourceResolver struct {
	ImportPaths []string
	// Opens a file. Defaults to os.Open.
	Accessor func(string) (io.ReadCloser, error)
}

var _ Resolver = (*SourceResolver)(nil)

// FindFileByPath implements [Resolver].
func (r *SourceResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(r.ImportPaths) == 0 || filepath.IsAbs(path) {
		reader, err := r.open(path)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}

	var e error
	for _, importPath := range r.ImportPaths {
		reader, err := r.open(filepath.Join(importPath, path))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				e = err
				continue
			}
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}
	return SearchResult{}, e
}

func (r *SourceResolver) open(path string) (io.ReadCloser, error) {
	if r.Accessor != nil {
		return r.Accessor(path)
	}
	return os.Open(path)
}

// SourceAccessorFromMap returns an accessor for [SourceResolver] that serves
// files from memory.
func SourceAccessorFromMap(srcs map[string]string) func(string) (io.ReadCloser, error) {
	return func(path string) (io.ReadCloser, error) {
		src, ok := srcs[path]
		if !ok {
			return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
		return io.NopCloser(strings.NewReader(src)), nil
	}
}
