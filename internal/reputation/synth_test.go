package reputation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func synthInputs() MetricInputs {
	return MetricInputs{
		ProtocolBaseScore: 27,
		TotalTxCount:      450,
		Balance:           12.5,
		AgeMonths:         14,
		SuccessRate:       92,
		SeedBase:          HashString("synth-probe"),
	}
}

func TestSynthesizeMetrics(t *testing.T) {
	p := DefaultParams()

	t.Run("deterministic", func(t *testing.T) {
		in := synthInputs()
		assert.Equal(t, SynthesizeMetrics(in, p), SynthesizeMetrics(in, p))
	})

	t.Run("bounded", func(t *testing.T) {
		for _, seed := range []string{"a", "b", "c", "whale-agent"} {
			in := synthInputs()
			in.SeedBase = HashString(seed)
			m := SynthesizeMetrics(in, p)

			for _, v := range []float64{
				m.TaskSuccessRate, m.Robustness, m.DeliveryRate, m.Efficiency,
				m.Safety, m.Transparency, m.UserFeedback, m.VerifiableExec,
			} {
				require.GreaterOrEqual(t, v, 0.0)
				require.LessOrEqual(t, v, 100.0)
			}
			require.GreaterOrEqual(t, m.Latency, 0.05)
			require.LessOrEqual(t, m.Latency, 0.95)
		}
	})

	t.Run("zero activity produces no NaN", func(t *testing.T) {
		in := synthInputs()
		in.TotalTxCount = 0
		in.Balance = 0
		m := SynthesizeMetrics(in, p)

		assert.False(t, math.IsNaN(m.TaskSuccessRate))
		assert.False(t, math.IsNaN(m.Latency))
		assert.False(t, math.IsNaN(m.VerifiableExec))
	})

	t.Run("verifiable execution forced to zero without a wallet", func(t *testing.T) {
		in := synthInputs()
		in.Walletless = true
		assert.Zero(t, SynthesizeMetrics(in, p).VerifiableExec)
	})

	t.Run("verifiable execution forced to zero for user submissions", func(t *testing.T) {
		in := synthInputs()
		in.UserSubmitted = true
		assert.Zero(t, SynthesizeMetrics(in, p).VerifiableExec)
	})

	t.Run("more activity never raises latency", func(t *testing.T) {
		low := synthInputs()
		low.TotalTxCount = 0
		high := synthInputs()
		high.TotalTxCount = 5000

		// same seed, so the noise terms cancel and only quality moves
		assert.LessOrEqual(t, SynthesizeMetrics(high, p).Latency, SynthesizeMetrics(low, p).Latency)
	})

	t.Run("saturation caps whale influence", func(t *testing.T) {
		big := synthInputs()
		big.TotalTxCount = 1_000_000
		big.Balance = 1_000_000
		huge := synthInputs()
		huge.TotalTxCount = 100_000_000
		huge.Balance = 100_000_000

		// both past the saturation knee: identical quality, identical metrics
		assert.Equal(t, SynthesizeMetrics(big, p), SynthesizeMetrics(huge, p))
	})
}
