package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/strata/internal/models"
)

func TestKebab(t *testing.T) {
	cases := map[string]string{
		"Header":       "header",
		"ProductList":  "product-list",
		"productList":  "product-list",
		"product_list": "product-list",
		"Product List": "product-list",
		"HTTPClient":   "httpclient",
		"already-kebab": "already-kebab",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, Kebab(input), "Kebab(%q)", input)
	}
}

func TestResourceDir(t *testing.T) {
	assert.Equal(t, "src/components/product-list", ResourceDir(models.ResourceComponent, "ProductList"))
	assert.Equal(t, "src/routes/checkout", ResourceDir(models.ResourceRoute, "Checkout"))
	assert.Equal(t, "src/queries/products", ResourceDir(models.ResourceQuery, "Products"))
}

func TestIsPrimaryFile(t *testing.T) {
	assert.True(t, IsPrimaryFile(models.ResourceComponent, "Header", "header.component.tsx"))
	assert.True(t, IsPrimaryFile(models.ResourceComponent, "Header", "header.component.ts"))
	assert.False(t, IsPrimaryFile(models.ResourceComponent, "Header", "header.types.ts"))
	assert.False(t, IsPrimaryFile(models.ResourceComponent, "Header", "headerPropTypes.ts"))
	assert.True(t, IsPrimaryFile(models.ResourceRoute, "Checkout", "checkout.route.ts"))
}

func TestIsTypeOnly(t *testing.T) {
	assert.True(t, IsTypeOnly("header.d.ts"))
	assert.True(t, IsTypeOnly("header.types.ts"))
	assert.False(t, IsTypeOnly("header.component.tsx"))
	assert.False(t, IsTypeOnly("types.ts"))
}

func TestTargetFileName(t *testing.T) {
	t.Run("TypeScriptKeepsNames", func(t *testing.T) {
		assert.Equal(t, "header.component.tsx", TargetFileName("header.component.tsx", models.DialectTypeScript))
	})

	t.Run("JavaScriptMapsExtensions", func(t *testing.T) {
		assert.Equal(t, "header.component.jsx", TargetFileName("header.component.tsx", models.DialectJavaScript))
		assert.Equal(t, "products.query.js", TargetFileName("products.query.ts", models.DialectJavaScript))
		assert.Equal(t, "legacy.js", TargetFileName("legacy.js", models.DialectJavaScript))
	})
}

func TestStyleFileName(t *testing.T) {
	assert.Equal(t, "header.component.scss", StyleFileName("header.component.tsx", "scss"))
	assert.Equal(t, "checkout.route.css", StyleFileName("checkout.route.jsx", "css"))
}

func TestImportSpecifier(t *testing.T) {
	t.Run("AliasMapsToSrcTree", func(t *testing.T) {
		m := models.Module{Name: "base-theme", Alias: "@base"}
		got := ImportSpecifier(m, models.ResourceComponent, "Header", "header.component.tsx")
		assert.Equal(t, "@base/components/header/header.component", got)
	})

	t.Run("NameAddressesModuleRoot", func(t *testing.T) {
		m := models.Module{Name: "base-theme"}
		got := ImportSpecifier(m, models.ResourceQuery, "Products", "products.query.ts")
		assert.Equal(t, "base-theme/src/queries/products/products.query", got)
	})
}
