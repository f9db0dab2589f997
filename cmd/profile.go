package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"lilac/report"
)

// profileFileName is the name of the optional build profile file looked up
// next to the source file.
const profileFileName = "lilac.toml"

// BuildProfile represents the build profile of a Lilac project.
type BuildProfile struct {
	// The project name.
	Name string

	// The Lilac version the project targets.
	LilacVersion string

	// The default output path, relative to the profile's directory.
	OutputPath string
}

// tomlProfile represents a build profile as it is encoded in TOML.
type tomlProfile struct {
	Name         string `toml:"name"`
	LilacVersion string `toml:"lilac-version"`
	OutputPath   string `toml:"outpath"`
}

// loadBuildProfile loads and validates the build profile in the given
// directory.  If the directory has no profile file, nil is returned: the
// profile is optional.  A malformed profile is a fatal error.
func loadBuildProfile(dir string) *BuildProfile {
	path := filepath.Join(dir, profileFileName)

	buff, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		report.ReportFatal("error reading build profile at `%s`: %s", path, err.Error())
		return nil
	}

	tomlProf := &tomlProfile{}
	if err := toml.Unmarshal(buff, tomlProf); err != nil {
		report.ReportFatal("error parsing build profile at `%s`: %s", path, err.Error())
		return nil
	}

	if tomlProf.Name == "" {
		report.ReportFatal("build profile at `%s` is missing a project name", path)
		return nil
	}

	if tomlProf.LilacVersion != "" && tomlProf.LilacVersion != LilacVersion {
		report.ReportCompileWarning(
			path, nil,
			"project `%s` targets lilac v%s but this compiler is v%s",
			tomlProf.Name, tomlProf.LilacVersion, LilacVersion,
		)
	}

	prof := &BuildProfile{
		Name:         tomlProf.Name,
		LilacVersion: tomlProf.LilacVersion,
		OutputPath:   tomlProf.OutputPath,
	}

	if prof.OutputPath != "" && !filepath.IsAbs(prof.OutputPath) {
		prof.OutputPath = filepath.Join(dir, prof.OutputPath)
	}

	return prof
}
