package workspace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/strata/internal/errors"
	"github.com/toyz/strata/internal/models"
	"github.com/toyz/strata/internal/testutil"
	"github.com/toyz/strata/internal/utils/fileops"
)

// layeredWorkspace builds a three-level module tree:
//
//	root/
//	  base/            base-theme, defines Header and Footer
//	  shop/            shop-theme, defines Header (nearer than base)
//	    child/         child-theme, the target module
//	  vendor-extra/    extra-theme, defines Banner
const layeredWorkspace = `
-- base/strata.json --
{"name": "base-theme", "alias": "@base"}
-- base/src/components/header/header.component.tsx --
export const Header = () => null;
-- base/src/components/header/header.component.scss --
.header {}
-- base/src/components/footer/footer.component.tsx --
export const Footer = () => null;
-- shop/strata.json --
{"name": "shop-theme"}
-- shop/src/components/header/header.component.tsx --
export const Header = () => null;
-- shop/src/components/header/header.types.ts --
export type HeaderProps = {};
-- shop/child/strata.json --
{"name": "child-theme"}
-- base/src/components/hero/hero.component.scss --
.hero {}
-- vendor-extra/strata.json --
{"name": "extra-theme"}
-- vendor-extra/src/components/banner/banner.component.tsx --
export const Banner = () => null;
`

func newLocatorFixture(t *testing.T) (*ResourceLocator, models.Module, string) {
	t.Helper()
	root := t.TempDir()
	testutil.WriteTree(t, root, layeredWorkspace)

	files := fileops.NewFileOps()
	options := models.DefaultOptions()
	resolver := NewModuleResolver(files, options)
	locator := NewResourceLocator(resolver, files, options)

	target, err := resolver.Resolve(filepath.Join(root, "shop", "child"))
	require.NoError(t, err)
	return locator, target, root
}

func TestModuleResolver_Resolve(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, layeredWorkspace)

	resolver := NewModuleResolver(fileops.NewFileOps(), models.DefaultOptions())

	t.Run("WalksUpToNearestManifest", func(t *testing.T) {
		module, err := resolver.Resolve(filepath.Join(root, "shop", "src", "components", "header"))
		require.NoError(t, err)
		assert.Equal(t, "shop-theme", module.Name)
		assert.Equal(t, filepath.Join(root, "shop"), module.Root)
	})

	t.Run("ReadsAlias", func(t *testing.T) {
		module, err := resolver.Resolve(filepath.Join(root, "base"))
		require.NoError(t, err)
		assert.Equal(t, "@base", module.Alias)
	})

	t.Run("NoManifestAnywhere", func(t *testing.T) {
		_, err := resolver.Resolve(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.IsModuleNotFound(err))
	})
}

func TestResourceLocator_Locate(t *testing.T) {
	locator, target, root := newLocatorFixture(t)

	t.Run("NearerModuleWins", func(t *testing.T) {
		source, resource, err := locator.Locate(models.ResourceComponent, "Header", target, "")
		require.NoError(t, err)
		assert.Equal(t, "shop-theme", source.Name)
		assert.Equal(t, filepath.Join(root, "shop", "src", "components", "header"), resource.SourceDir)
	})

	t.Run("FallsBackToFartherLevel", func(t *testing.T) {
		source, _, err := locator.Locate(models.ResourceComponent, "Footer", target, "")
		require.NoError(t, err)
		assert.Equal(t, "base-theme", source.Name)
	})

	t.Run("SiblingModulesAreReachable", func(t *testing.T) {
		source, _, err := locator.Locate(models.ResourceComponent, "Banner", target, "")
		require.NoError(t, err)
		assert.Equal(t, "extra-theme", source.Name)
	})

	t.Run("FileListIsSortedSourceOnly", func(t *testing.T) {
		_, resource, err := locator.Locate(models.ResourceComponent, "Header", target, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"header.component.tsx", "header.types.ts"}, resource.Files)
	})

	t.Run("HintPinsTheSource", func(t *testing.T) {
		source, _, err := locator.Locate(models.ResourceComponent, "Header", target, filepath.Join(root, "base"))
		require.NoError(t, err)
		assert.Equal(t, "base-theme", source.Name)
	})

	t.Run("HintedModuleMissingResource", func(t *testing.T) {
		_, _, err := locator.Locate(models.ResourceComponent, "Banner", target, filepath.Join(root, "base"))
		require.Error(t, err)
		assert.True(t, errors.IsResourceNotFound(err))
	})

	t.Run("UnknownResource", func(t *testing.T) {
		_, _, err := locator.Locate(models.ResourceComponent, "Sidebar", target, "")
		require.Error(t, err)
		assert.True(t, errors.IsResourceNotFound(err))
	})

	t.Run("StylesheetAloneIsNotAResource", func(t *testing.T) {
		// base's hero directory holds only a stylesheet, so it must not
		// count as defining the resource
		_, _, err := locator.Locate(models.ResourceComponent, "Hero", target, "")
		require.Error(t, err)
		assert.True(t, errors.IsResourceNotFound(err))
	})
}

func TestResourceLocator_ListResources(t *testing.T) {
	locator, target, _ := newLocatorFixture(t)

	names := locator.ListResources(models.ResourceComponent, target)
	assert.Equal(t, []string{"banner", "footer", "header"}, names)
}
