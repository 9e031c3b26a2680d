package persistence

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/northroot-labs/pagesops/internal/domain"
	"github.com/northroot-labs/pagesops/internal/domain/entity"
	"github.com/northroot-labs/pagesops/internal/infrastructure/logger"
)

const DefaultSiteFile = "pagesops.yaml"

// LoadSite reads the optional site file over the built-in defaults. An
// absent file is not an error: the defaults describe the northrootlabs.com
// pages setup in full. The tool never writes the file back.
func LoadSite(path string) (*entity.Site, error) {
	if path == "" {
		path = DefaultSiteFile
	}

	site := entity.DefaultSite()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("site file absent, using defaults", "path", path)
			return site, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigReadFail, path, err)
	}

	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigParseFail, path, err)
	}

	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("site file loaded", "path", path, "domain", site.Domain)
	return site, nil
}
