package workspace

import (
	"encoding/json"
	"fmt"

	"golang.org/x/mod/semver"

	"github.com/toyz/strata/internal/errors"
	"github.com/toyz/strata/internal/utils/fileops"
)

// EngineVersion is the generator version compared against manifest engine
// constraints
const EngineVersion = "v0.4.0"

// Manifest is the decoded form of a module's strata.json boundary marker
type Manifest struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Alias  string `json:"alias,omitempty"`
	Engine string `json:"engine,omitempty"`
}

// LoadManifest reads and validates the manifest at the given path
func LoadManifest(files *fileops.FileOps, path string) (Manifest, error) {
	content, err := files.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}

	var manifest Manifest
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		return Manifest{}, errors.WrapManifestError(path, err)
	}

	if manifest.Name == "" {
		return Manifest{}, errors.WrapManifestError(path,
			fmt.Errorf("manifest is missing the required 'name' field"))
	}

	if manifest.Engine != "" {
		if !semver.IsValid(manifest.Engine) {
			return Manifest{}, errors.WrapManifestError(path,
				fmt.Errorf("engine constraint %q is not a valid semantic version", manifest.Engine))
		}
		if semver.Compare(manifest.Engine, EngineVersion) > 0 {
			return Manifest{}, errors.WrapManifestError(path,
				fmt.Errorf("module requires generator %s or newer, this is %s", manifest.Engine, EngineVersion))
		}
	}

	return manifest, nil
}
