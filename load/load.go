// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

// Package load fetches disk-based OBJ/MTL scene data. The original
// asset loader here served many asset kinds (fonts, textures, audio,
// animation); this renderer's domain is scene geometry only, so this
// file keeps just the locator's disk/zip dual-source lookup and drops
// the unrelated format loaders (see DESIGN.md for the full list).

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"strings"
)

// Locator finds scene files (an .obj and the .mtl files it
// references) either directly on disk or, if present, inside a zip
// bundle attached alongside the running binary — the same production
// vs. development dual lookup the original asset loader used.
type Locator struct {
	bundle *zip.ReadCloser
}

// NewLocator opens the resource bundle next to the running binary, if
// one exists, and falls back to plain disk lookups otherwise. Close
// must be called when the locator is no longer needed.
func NewLocator() *Locator {
	programName := os.Args[0]
	bundlePath := path.Join(path.Dir(programName), "../Resources/resources.zip")
	if reader, err := zip.OpenReader(bundlePath); err == nil {
		return &Locator{bundle: reader}
	}
	if reader, err := zip.OpenReader(programName); err == nil {
		return &Locator{bundle: reader}
	}
	return &Locator{}
}

// Close releases the locator's underlying bundle, if any.
func (l *Locator) Close() error {
	if l.bundle != nil {
		return l.bundle.Close()
	}
	return nil
}

// Open returns a reader for name under directory. The caller is
// responsible for closing it.
func (l *Locator) Open(directory, name string) (io.ReadCloser, error) {
	filePath := strings.TrimSpace(path.Join(directory, name))
	if l.bundle != nil {
		for _, resource := range l.bundle.File {
			if filePath == resource.Name {
				return resource.Open()
			}
		}
	}
	return os.Open(filePath)
}
