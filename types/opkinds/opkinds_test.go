package opkinds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	// Every kind strictly between Invalid and Last has a category.
	for k := Invalid + 1; k < Last; k++ {
		assert.NotEqualf(t, CategoryInvalid, k.Category(), "OpKind %s has no category", k)
		assert.GreaterOrEqualf(t, k.NumInputs(), 0, "OpKind %s", k)
	}
	assert.Equal(t, CategoryInvalid, Invalid.Category())
	assert.Equal(t, -1, Last.NumInputs())

	assert.Equal(t, Leaf, LearnableParameter.Category())
	assert.Equal(t, UnaryMap, Sigmoid.Category())
	assert.Equal(t, BinaryZip, Plus.Category())
	assert.Equal(t, UnaryReduce, MatrixL1Reg.Category())
	assert.Equal(t, BinaryReduce, CrossEntropyWithSoftmax.Category())

	assert.Equal(t, 0, InputValue.NumInputs())
	assert.Equal(t, 1, Tanh.NumInputs())
	assert.Equal(t, 2, ElementTimes.NumInputs())
	assert.Equal(t, 2, SquareError.NumInputs())
}

func TestAllowsMultiples(t *testing.T) {
	assert.True(t, Plus.AllowsMultiples())
	assert.True(t, Minus.AllowsMultiples())
	assert.False(t, ElementTimes.AllowsMultiples())
	assert.False(t, Sigmoid.AllowsMultiples())
}

func TestKindsOf(t *testing.T) {
	assert.Equal(t, []OpKind{InputValue, LearnableParameter, Constant}, KindsOf(Leaf))
	assert.Equal(t, []OpKind{MatrixL1Reg, MatrixL2Reg, SumElements}, KindsOf(UnaryReduce))
	assert.Empty(t, KindsOf(CategoryInvalid))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "CrossEntropyWithSoftmax", CrossEntropyWithSoftmax.String())
	assert.Equal(t, "learnable_parameter", LearnableParameter.SnakeName())
	assert.Equal(t, "OpKind(1000)", OpKind(1000).String())
	assert.Equal(t, "BinaryZip", BinaryZip.String())

	k, err := OpKindString("elementtimes")
	require.NoError(t, err)
	assert.Equal(t, ElementTimes, k)
	_, err = OpKindString("Convolution")
	require.Error(t, err)
}
