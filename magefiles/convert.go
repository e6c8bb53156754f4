//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Forward converts markdown image references in _posts to embedded HTML
// and moves the images into the site asset directory.
func Forward() error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName), "false")
}

// Reverse converts embedded image references back to markdown and moves
// the images into _posts/assets.
func Reverse() error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName), "true")
}

// Preview shows what Forward would change without touching any file.
func Preview() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "false", "--dry-run")
}
