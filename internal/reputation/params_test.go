package reputation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParamsAreValid(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())
}

func TestParamsValidate(t *testing.T) {
	t.Run("zero log constant", func(t *testing.T) {
		p := DefaultParams()
		p.KTx = 0
		assert.Error(t, p.Validate())
	})

	t.Run("history shorter than trend windows", func(t *testing.T) {
		p := DefaultParams()
		p.HistoryDays = 10
		assert.Error(t, p.Validate())
	})

	t.Run("unordered base score band", func(t *testing.T) {
		p := DefaultParams()
		p.UnverifiedBaseScore = p.MaxBaseScore + 1
		assert.Error(t, p.Validate())
	})
}
