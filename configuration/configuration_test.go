package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glabform/glabform/confmap"
	"github.com/glabform/glabform/testutil"
)

func TestNewFromString(t *testing.T) {
	t.Parallel()

	cfg, err := NewFromString(`
config_version: 2
projects_and_groups:
  "*":
    members:
      enforce: true
`)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"members": map[string]any{"enforce": true},
	}, cfg.CommonConfig())
	assert.Equal(t, ".", cfg.ConfigDir())
}

func TestNewFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.WriteConfig(t, dir, `
config_version: 2
projects_and_groups:
  myteam/myproject:
    project_settings:
      visibility: private
`)

	cfg, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.ConfigDir())
	assert.Equal(t, []string{"myteam/myproject"}, cfg.Projects())
}

func TestNewFromFixtureFile(t *testing.T) {
	t.Parallel()

	cfg, err := NewFromString(testutil.LoadFixtureString(t, "config.yml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"myteam", "myteam/subgroup"}, cfg.Groups())
	assert.Equal(t, []string{"myteam/myproject", "otherteam/service"}, cfg.Projects())
}

func TestNewFileNotFound(t *testing.T) {
	t.Parallel()

	_, err := NewFromFile("/nonexistent/config.yml")
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestNewSourceConflict(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Path: "config.yml", Inline: "config_version: 2"})
	require.ErrorIs(t, err, ErrSourceConflict)
}

func TestNewParseInvalid(t *testing.T) {
	t.Parallel()

	_, err := NewFromString("\t- not: [valid")
	require.ErrorIs(t, err, ErrParseInvalid)

	// Valid YAML that is not a mapping is rejected the same way.
	_, err = NewFromString("just a scalar")
	require.ErrorIs(t, err, ErrParseInvalid)
}

func TestNewExampleConfigDetected(t *testing.T) {
	t.Parallel()

	_, err := NewFromString(`
config_version: 2
example_config: true
projects_and_groups:
  "*": {}
`)
	require.ErrorIs(t, err, ErrExampleConfig)
}

func TestNewUnsupportedVersion(t *testing.T) {
	t.Parallel()

	_, err := NewFromString(`
config_version: 1
projects_and_groups:
  "*": {}
`)
	require.ErrorIs(t, err, ErrUnsupportedVersion)

	// Missing config_version defaults to 1 and is rejected too.
	_, err = NewFromString(`
projects_and_groups:
  "*": {}
`)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestNewAlmostDuplicateKeys(t *testing.T) {
	t.Parallel()

	_, err := NewFromString(`
config_version: 2
projects_and_groups:
  Team/*:
    members: {}
  team/*:
    members: {}
`)
	require.Error(t, err)

	var dupErr *AlmostDuplicatesError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "projects_and_groups", dupErr.Section)
	assert.Equal(t, []string{"Team/*", "team/*"}, dupErr.Keys)
}

func TestNewAlmostDuplicateSkipList(t *testing.T) {
	t.Parallel()

	_, err := NewFromString(`
config_version: 2
projects_and_groups:
  "*": {}
skip_groups:
  - mygroup
  - MyGroup
`)
	var dupErr *AlmostDuplicatesError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "skip_groups", dupErr.Section)
	assert.Equal(t, []string{"mygroup", "MyGroup"}, dupErr.Keys)
}

func TestGetAndGetDefault(t *testing.T) {
	t.Parallel()

	cfg, err := NewFromString(`
config_version: 2
projects_and_groups:
  "*":
    members:
      enforce: true
`)
	require.NoError(t, err)

	v, err := cfg.Get("projects_and_groups|*|members|enforce")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = cfg.Get("projects_and_groups|missing")
	require.ErrorIs(t, err, confmap.ErrKeyNotFound)

	assert.Equal(t, "fallback", cfg.GetDefault("projects_and_groups|missing", "fallback"))
}

func TestGroupAndProjectConfigCaseInsensitive(t *testing.T) {
	t.Parallel()

	cfg, err := NewFromString(`
config_version: 2
projects_and_groups:
  MyTeam/*:
    group_settings:
      foo: bar
  MyTeam/MyProject:
    project_settings:
      key: value
`)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"group_settings": map[string]any{"foo": "bar"},
	}, cfg.GroupConfig("myteam"))

	assert.Equal(t, map[string]any{
		"project_settings": map[string]any{"key": "value"},
	}, cfg.ProjectConfig("myteam/myproject"))

	// Absence is not an error.
	assert.Empty(t, cfg.GroupConfig("unknown"))
	assert.Empty(t, cfg.ProjectConfig("unknown/project"))
}

func TestSkipLists(t *testing.T) {
	t.Parallel()

	cfg, err := NewFromString(`
config_version: 2
projects_and_groups:
  "*": {}
skip_groups:
  - archived
skip_projects:
  - myteam/legacy
  - oldteam/*
`)
	require.NoError(t, err)

	assert.True(t, cfg.IsGroupSkipped("Archived"))
	assert.False(t, cfg.IsGroupSkipped("active"))

	assert.True(t, cfg.IsProjectSkipped("myteam/legacy"))
	assert.True(t, cfg.IsProjectSkipped("oldteam/anything"))
	assert.False(t, cfg.IsProjectSkipped("myteam/current"))
}
