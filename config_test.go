package fsm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lightConfigYAML = `
name: traffic-light
transitions:
  - from: green
    to: yellow
  - from: yellow
    to: red
  - from: red
    to: green
`

func newLightCategorySet(t *testing.T) *CategorySet {
	t.Helper()

	categories, err := NewCategorySet(catGreen, catYellow, catRed)
	require.NoError(t, err)

	return categories
}

func TestLoadConfigFromBytes(t *testing.T) {
	t.Parallel()

	config, err := LoadConfigFromBytes([]byte(lightConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "traffic-light", config.Name)
	assert.Len(t, config.Transitions, 3)
}

func TestConfigDrivenMachine(t *testing.T) {
	t.Parallel()

	config, err := LoadConfigFromBytes([]byte(lightConfigYAML))
	require.NoError(t, err)

	builder, err := NewBuilderFromConfig[*light](config, newLightCategorySet(t))
	require.NoError(t, err)

	machine, err := builder.Build(green())
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, machine.Transition(ctx, yellow()))
	require.ErrorIs(t, machine.Transition(ctx, green()), ErrInvalidTransition)
}

func TestConfigWildcard(t *testing.T) {
	t.Parallel()

	config, err := LoadConfigFromBytes([]byte(`
name: european
transitions:
  - from: any
    to: yellow
  - from: yellow
    to: any
`))
	require.NoError(t, err)

	builder, err := NewBuilderFromConfig[*light](config, newLightCategorySet(t))
	require.NoError(t, err)

	machine, err := builder.Build(red())
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, machine.Transition(ctx, yellow()))
	require.NoError(t, machine.Transition(ctx, green()))
}

func TestConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"missing name", "transitions: [{from: a, to: b}]", ErrConfigNameRequired},
		{"no transitions", "name: empty", ErrConfigTransitionsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfigFromBytes([]byte(tt.yaml))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfigMissingEndpointNames(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigFromBytes([]byte("name: bad\ntransitions: [{to: green}]"))
	require.Error(t, err)

	_, err = LoadConfigFromBytes([]byte("name: bad\ntransitions: [{from: green}]"))
	require.Error(t, err)
}

func TestConfigUnknownCategory(t *testing.T) {
	t.Parallel()

	config, err := LoadConfigFromBytes([]byte(`
name: bad
transitions:
  - from: green
    to: purple
`))
	require.NoError(t, err)

	_, err = NewBuilderFromConfig[*light](config, newLightCategorySet(t))
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategorySetRejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := NewCategorySet(catGreen, NewCategory("green"))
	require.ErrorIs(t, err, ErrDuplicateCategory)
}

func TestCategorySetRejectsReservedName(t *testing.T) {
	t.Parallel()

	_, err := NewCategorySet(NewCategory("any"))
	require.ErrorIs(t, err, ErrDuplicateCategory)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig("testdata/trafficlight.yaml")
	require.NoError(t, err)
	assert.Equal(t, "traffic-light", config.Name)

	_, err = LoadConfig("testdata/does-not-exist.yaml")
	require.Error(t, err)
}
