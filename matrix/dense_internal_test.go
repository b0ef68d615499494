// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseWithPolicy_Disabled verifies that the internal policy override
// lets non-finite values through when validation is off — the escape hatch
// used by controlled experiments.
func TestNewDenseWithPolicy_Disabled(t *testing.T) {
	m, err := newDenseWithPolicy(1, 2, false)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, math.NaN()), "policy off: NaN passes")
	require.NoError(t, m.Set(0, 1, math.Inf(1)), "policy off: +Inf passes")

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

// TestIndexOf_RowMajorLayout pins the flat offset formula i*cols + j.
func TestIndexOf_RowMajorLayout(t *testing.T) {
	m, err := NewDense(3, 4)
	require.NoError(t, err)

	off, err := m.indexOf(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2*4+3, off)

	_, err = m.indexOf(3, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
