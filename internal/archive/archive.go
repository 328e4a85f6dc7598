/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package archive packages function source directories into zip artifacts
// suitable for upload to the code bucket.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Packager defines the interface for building deployment artifacts
type Packager interface {
	Package(srcDir, outPath string) error
}

// ZipPackager implements Packager by zipping a directory tree
type ZipPackager struct{}

// NewZipPackager creates a new ZipPackager
func NewZipPackager() *ZipPackager {
	return &ZipPackager{}
}

// Package zips the contents of srcDir into outPath. Entry names are
// slash-separated paths relative to srcDir, which is what the Lambda runtime
// expects regardless of the platform the archive was built on.
func (p *ZipPackager) Package(srcDir, outPath string) error {
	info, err := os.Stat(srcDir)
	if err != nil {
		return fmt.Errorf("failed to read function directory %s: %w", srcDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("function source %s is not a directory", srcDir)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create archive %s: %w", outPath, err)
	}
	defer func() { _ = out.Close() }()

	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return fmt.Errorf("failed to resolve archive path %s: %w", outPath, err)
	}

	zw := zip.NewWriter(out)

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// Don't zip the archive into itself when it lives inside srcDir
		absPath, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if absPath == absOut {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		return p.addFile(zw, path, filepath.ToSlash(rel))
	})
	if err != nil {
		_ = zw.Close()
		return fmt.Errorf("failed to package %s: %w", srcDir, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalise archive %s: %w", outPath, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write archive %s: %w", outPath, err)
	}

	return nil
}

// addFile writes a single file into the archive under the given entry name
func (p *ZipPackager) addFile(zw *zip.Writer, path, name string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	entry, err := zw.Create(name)
	if err != nil {
		return err
	}

	_, err = io.Copy(entry, file)
	return err
}
