// Package patch copies locally modified source files into the installed
// radis and vaex packages of a Python virtual environment, working around
// upstream bugs until they are fixed. One-shot setup glue: it refuses to
// guess when a destination is missing.
package patch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Target is one destination directory inside an installed package.
type Target struct {
	Package string   // human-readable destination, e.g. "radis/lbl"
	Subdir  []string // path below site-packages
	Files   []string // file names expected in the source directory
}

// Targets is the fixed patch list for radis 0.16.2.
var Targets = []Target{
	{
		Package: "radis/lbl",
		Subdir:  []string{"radis", "lbl"},
		Files:   []string{"base.py", "broadening.py", "loader.py"},
	},
	{
		Package: "radis/api",
		Subdir:  []string{"radis", "api"},
		Files:   []string{"dbmanager.py", "tools.py", "hdf5.py"},
	},
	{
		Package: "vaex/hdf5",
		Subdir:  []string{"vaex", "hdf5"},
		Files:   []string{"utils.py"},
	},
}

// SitePackages resolves the site-packages directory of a virtual
// environment for the current operating system.
func SitePackages(venvDir string) string {
	return sitePackagesFor(venvDir, runtime.GOOS)
}

func sitePackagesFor(venvDir, goos string) string {
	if goos == "windows" {
		return filepath.Join(venvDir, "Lib", "site-packages")
	}
	return filepath.Join(venvDir, "lib", "python3.12", "site-packages")
}

// Apply copies every target file from srcDir into the installed packages
// under sitePackages. A missing destination directory is an error; a
// missing source file is only reported, matching one-shot setup behavior.
func Apply(srcDir, sitePackages string, report func(format string, args ...any)) error {
	if report == nil {
		report = func(string, ...any) {}
	}

	// Verify all destinations before copying anything.
	dests := make([]string, len(Targets))
	for i, target := range Targets {
		dest := filepath.Join(append([]string{sitePackages}, target.Subdir...)...)
		info, err := os.Stat(dest)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("patch: destination directory for %s does not exist: %s (is the virtual environment set up and %s installed?)",
				target.Package, dest, target.Subdir[0])
		}
		dests[i] = dest
	}

	for i, target := range Targets {
		for _, name := range target.Files {
			src := filepath.Join(srcDir, name)
			if _, err := os.Stat(src); err != nil {
				report("file %s does not exist in the source directory, skipping\n", name)
				continue
			}
			if err := copyFile(src, filepath.Join(dests[i], name)); err != nil {
				return fmt.Errorf("patch: copying %s to %s: %w", name, target.Package, err)
			}
			report("copied %s to %s\n", name, dests[i])
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
