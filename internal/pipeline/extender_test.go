package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/strata/internal/models"
	"github.com/toyz/strata/internal/prompt"
	"github.com/toyz/strata/internal/testutil"
)

// scriptedUI answers prompts from canned values and records every call
type scriptedUI struct {
	// exportPicks decides the multi-select answer per prompt; nil selects
	// every offered option
	exportPicks func(title string, options []prompt.Option) []string
	styleChoice models.StyleOption
	multiCalls  []string
	selectCalls []string
}

func (u *scriptedUI) MultiSelect(title string, options []prompt.Option) ([]string, error) {
	u.multiCalls = append(u.multiCalls, title)
	if u.exportPicks != nil {
		return u.exportPicks(title, options), nil
	}
	values := make([]string, len(options))
	for i, option := range options {
		values[i] = option.Value
	}
	return values, nil
}

func (u *scriptedUI) Select(title string, options []prompt.Option) (string, error) {
	u.selectCalls = append(u.selectCalls, title)
	if u.styleChoice != "" {
		return string(u.styleChoice), nil
	}
	return string(models.StyleKeep), nil
}

// recordingFixer captures the paths handed to the lint pass
type recordingFixer struct {
	calls [][]string
	err   error
}

func (f *recordingFixer) Fix(paths []string) error {
	f.calls = append(f.calls, paths)
	return f.err
}

// recordingLogger keeps warnings for assertions and swallows the rest
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warn(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{})    {}
func (l *recordingLogger) Verbose(format string, args ...interface{}) {}

const pipelineWorkspace = `
-- base/strata.json --
{"name": "base-theme", "alias": "@base"}
-- base/src/components/header/header.component.tsx --
export const Header = () => null;

export default Header;
-- base/src/components/header/header.component.scss --
.header { color: red; }
-- base/src/components/header/header.types.ts --
export type HeaderProps = {};
-- base/src/queries/products/products.query.ts --
export function useProducts() {
  return [];
}
-- base/child/strata.json --
{"name": "child-theme"}
`

type fixture struct {
	extender *Extender
	ui       *scriptedUI
	fixer    *recordingFixer
	log      *recordingLogger
	childDir string
}

func newFixture(t *testing.T, options models.Options) *fixture {
	t.Helper()
	root := t.TempDir()
	testutil.WriteTree(t, root, pipelineWorkspace)

	ui := &scriptedUI{styleChoice: models.StyleEmpty}
	fixer := &recordingFixer{}
	log := &recordingLogger{}
	return &fixture{
		extender: NewExtender(ui, fixer, log, options),
		ui:       ui,
		fixer:    fixer,
		log:      log,
		childDir: filepath.Join(root, "base", "child"),
	}
}

func (f *fixture) extend(t *testing.T, resourceType models.ResourceType, name string) []string {
	t.Helper()
	created, err := f.extender.Extend(ExtendRequest{
		Type:       resourceType,
		Name:       name,
		TargetPath: f.childDir,
	})
	require.NoError(t, err)
	return created
}

func TestExtender_ComponentHappyPath(t *testing.T) {
	f := newFixture(t, models.DefaultOptions())
	f.ui.exportPicks = func(title string, options []prompt.Option) []string {
		// pick everything in the primary file, nothing in the types file
		if strings.Contains(title, "header.component.tsx") {
			return []string{"Header"}
		}
		return nil
	}

	created := f.extend(t, models.ResourceComponent, "Header")

	t.Run("StylePathPrecedesCodePath", func(t *testing.T) {
		require.Len(t, created, 2)
		assert.Equal(t, filepath.Join(f.childDir, "src", "components", "header", "header.component.scss"), created[0])
		assert.Equal(t, filepath.Join(f.childDir, "src", "components", "header", "header.component.tsx"), created[1])
	})

	t.Run("FilesExistWithExpectedContent", func(t *testing.T) {
		style, err := os.ReadFile(created[0])
		require.NoError(t, err)
		assert.Empty(t, style)

		code, err := os.ReadFile(created[1])
		require.NoError(t, err)
		assert.Contains(t, string(code), "import { Header as BaseHeader } from '@base/components/header/header.component';")
		assert.Contains(t, string(code), "import './header.component.scss';")
		assert.Contains(t, string(code), "export default Header;")
	})

	t.Run("TypesFileSkippedWithoutSelection", func(t *testing.T) {
		assert.Equal(t, 1, f.extender.Summary().SkippedNoSelection)
		assert.NoFileExists(t, filepath.Join(f.childDir, "src", "components", "header", "header.types.ts"))
	})

	t.Run("FixerReceivedCreatedPaths", func(t *testing.T) {
		require.Len(t, f.fixer.calls, 1)
		assert.Equal(t, created, f.fixer.calls[0])
	})

	t.Run("StatePastProcessing", func(t *testing.T) {
		assert.Equal(t, StateDone, f.extender.State())
	})
}

func TestExtender_SecondRunWritesNothing(t *testing.T) {
	f := newFixture(t, models.DefaultOptions())

	first := f.extend(t, models.ResourceComponent, "Header")
	require.NotEmpty(t, first)
	content, err := os.ReadFile(first[len(first)-1])
	require.NoError(t, err)

	second := f.extend(t, models.ResourceComponent, "Header")

	assert.Empty(t, second)
	assert.NotZero(t, f.extender.Summary().SkippedExisting)

	after, err := os.ReadFile(first[len(first)-1])
	require.NoError(t, err)
	assert.Equal(t, content, after, "existing override must not be rewritten")
}

func TestExtender_MissingResourceIsNotAnError(t *testing.T) {
	f := newFixture(t, models.DefaultOptions())

	created := f.extend(t, models.ResourceComponent, "Ghost")

	assert.Empty(t, created)
	assert.NotEmpty(t, f.log.warnings)
	assert.Empty(t, f.ui.multiCalls, "no prompt may fire for a missing resource")
	assert.NoDirExists(t, filepath.Join(f.childDir, "src"))
	assert.Empty(t, f.fixer.calls)
}

func TestExtender_QueryNeverPromptsForStyles(t *testing.T) {
	f := newFixture(t, models.DefaultOptions())

	created := f.extend(t, models.ResourceQuery, "Products")

	require.Len(t, created, 1)
	assert.Equal(t, filepath.Join(f.childDir, "src", "queries", "products", "products.query.ts"), created[0])
	assert.Empty(t, f.ui.selectCalls)
}

func TestExtender_JavaScriptDialect(t *testing.T) {
	options := models.DefaultOptions()
	options.Dialect = models.DialectJavaScript
	f := newFixture(t, options)

	created := f.extend(t, models.ResourceComponent, "Header")

	t.Run("TypeOnlyFileExcluded", func(t *testing.T) {
		assert.Equal(t, 1, f.extender.Summary().SkippedTypeOnly)
	})

	t.Run("ExtensionMapped", func(t *testing.T) {
		require.Len(t, created, 2)
		assert.True(t, strings.HasSuffix(created[1], "header.component.jsx"))
	})

	t.Run("WrapperIsUntyped", func(t *testing.T) {
		code, err := os.ReadFile(created[1])
		require.NoError(t, err)
		assert.NotContains(t, string(code), "Parameters<typeof")
	})
}

func TestExtender_StyleCopy(t *testing.T) {
	f := newFixture(t, models.DefaultOptions())
	f.ui.styleChoice = models.StyleCopy

	created := f.extend(t, models.ResourceComponent, "Header")

	require.NotEmpty(t, created)
	style, err := os.ReadFile(created[0])
	require.NoError(t, err)
	assert.Equal(t, ".header { color: red; }\n", string(style))
}

func TestExtender_FixerFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, models.DefaultOptions())
	f.fixer.err = fmt.Errorf("prettier not installed")

	created := f.extend(t, models.ResourceQuery, "Products")

	assert.NotEmpty(t, created)
	require.NotEmpty(t, f.log.warnings)
	assert.Contains(t, f.log.warnings[len(f.log.warnings)-1], "lint fix failed")
}

func TestExtender_SkipLintFix(t *testing.T) {
	options := models.DefaultOptions()
	options.SkipLintFix = true
	f := newFixture(t, options)

	created := f.extend(t, models.ResourceQuery, "Products")

	assert.NotEmpty(t, created)
	assert.Empty(t, f.fixer.calls)
}

func TestExtender_UnparsableFileDoesNotAbortTheRest(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, `
-- base/strata.json --
{"name": "base-theme"}
-- base/src/queries/products/a.query.ts --
export enum = broken;
-- base/src/queries/products/products.query.ts --
export const useProducts = () => [];
-- base/child/strata.json --
{"name": "child-theme"}
`)

	ui := &scriptedUI{}
	fixer := &recordingFixer{}
	log := &recordingLogger{}
	extender := NewExtender(ui, fixer, log, models.DefaultOptions())

	created, err := extender.Extend(ExtendRequest{
		Type:       models.ResourceQuery,
		Name:       "Products",
		TargetPath: filepath.Join(root, "base", "child"),
	})
	require.NoError(t, err)

	// a.query.ts sorts first; its failure must not stop products.query.ts
	require.Len(t, created, 1)
	assert.True(t, strings.HasSuffix(created[0], "products.query.ts"))
	assert.Equal(t, 1, extender.Summary().SkippedUnparsable)

	require.NotEmpty(t, log.warnings)
	assert.Contains(t, log.warnings[0], "a.query.ts")
}

func TestExtender_ListResources(t *testing.T) {
	f := newFixture(t, models.DefaultOptions())

	names, err := f.extender.ListResources(models.ResourceComponent, f.childDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"header"}, names)
}
