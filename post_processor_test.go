package remodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostProcessorFunc(t *testing.T) {
	fn := PostProcessorFunc(func(model Model, record Record, index int) Model {
		model["foo"] = true
		return model
	})
	model := fn.PostProcess(Model{}, Record{}, 0)
	require.Equal(t, true, model["foo"])

	g, err := NewGenerator(nil, fn)
	require.NoError(t, err)
	require.NotNil(t, g)
	gt := g.(*generator)
	require.NotNil(t, gt.postProcessor)
}
