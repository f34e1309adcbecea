package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hermes-rf/cstmcp/utils"
)

func Test_ToJSON(t *testing.T) {
	type point struct {
		Theta float64 `json:"theta"`
		Phi   float64 `json:"phi"`
	}

	assert.Equal(t, `{"theta":90,"phi":0}`, utils.ToJSON(point{Theta: 90, Phi: 0}))
	assert.Equal(t, "{\n\t\"theta\": 90,\n\t\"phi\": 0\n}", utils.ToJSONIndent(point{Theta: 90, Phi: 0}))
	assert.Equal(t, "[0.868,2.45]", utils.ToJSON([]float64{0.868, 2.45}))
}
