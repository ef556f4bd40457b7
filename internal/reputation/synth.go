package reputation

import "math"

// MetricInputs are the quality drivers for the metric synthesizer.
type MetricInputs struct {
	// ProtocolBaseScore is the resolved protocol maturity floor.
	ProtocolBaseScore int
	// TotalTxCount and Balance come from the on-chain signal bundle.
	TotalTxCount uint64
	Balance      float64
	// AgeMonths is the agent age in fractional months.
	AgeMonths float64
	// SuccessRate is the observed transaction success percentage (0–100).
	SuccessRate float64
	// Walletless / UserSubmitted force the verifiable-execution metric
	// to zero: without on-chain presence there is nothing to verify.
	Walletless    bool
	UserSubmitted bool
	// SeedBase decorrelates noise across agents while keeping each
	// agent's metrics reproducible.
	SeedBase int64
}

// metricBand maps the shared quality scalar into a metric-specific range.
type metricBand struct {
	seedOffset int64
	floor      float64
	ceil       float64
}

var (
	bandTaskSuccess    = metricBand{11, 55, 98}
	bandRobustness     = metricBand{12, 50, 95}
	bandDelivery       = metricBand{13, 55, 97}
	bandEfficiency     = metricBand{14, 50, 96}
	bandSafety         = metricBand{15, 60, 99}
	bandTransparency   = metricBand{16, 45, 95}
	bandFeedback       = metricBand{17, 50, 97}
	bandVerifiableExec = metricBand{18, 40, 95}
	seedOffsetLatency  = int64(19)
)

// SynthesizeMetrics derives the nine performance metrics from a single
// composite quality scalar plus independent bounded noise. The metrics
// are placeholders standing in for real telemetry; the contract is
// reproducibility, not measurement.
func SynthesizeMetrics(in MetricInputs, p Params) PerformanceMetrics {
	protocolQuality := float64(in.ProtocolBaseScore) / float64(p.MaxBaseScore)
	// log1p keeps zero activity at exactly zero and saturates whales.
	txFactor := math.Min(1, math.Log1p(float64(in.TotalTxCount))/p.KTx)
	balanceFactor := math.Min(1, math.Log1p(math.Max(0, in.Balance))/p.KBal)
	ageFactor := math.Min(1, in.AgeMonths/p.AgeFactorMonths)

	quality := 0.30*protocolQuality +
		0.25*txFactor +
		0.15*balanceFactor +
		0.20*ageFactor +
		0.10*(in.SuccessRate/100)

	m := PerformanceMetrics{
		TaskSuccessRate: synthMetric(quality, bandTaskSuccess, in.SeedBase, p),
		Robustness:      synthMetric(quality, bandRobustness, in.SeedBase, p),
		DeliveryRate:    synthMetric(quality, bandDelivery, in.SeedBase, p),
		Efficiency:      synthMetric(quality, bandEfficiency, in.SeedBase, p),
		Safety:          synthMetric(quality, bandSafety, in.SeedBase, p),
		Transparency:    synthMetric(quality, bandTransparency, in.SeedBase, p),
		UserFeedback:    synthMetric(quality, bandFeedback, in.SeedBase, p),
		VerifiableExec:  synthMetric(quality, bandVerifiableExec, in.SeedBase, p),
		Latency:         synthLatency(quality, in.SeedBase, p),
	}

	if in.Walletless || in.UserSubmitted {
		m.VerifiableExec = 0
	}
	return m
}

func synthMetric(quality float64, band metricBand, seedBase int64, p Params) float64 {
	v := band.floor + quality*(band.ceil-band.floor) + noise(seedBase+band.seedOffset, p.MetricNoise)
	return math.Max(0, math.Min(100, v))
}

// synthLatency is inverted (lower is better) and expressed as a
// multiplier rather than a percentage.
func synthLatency(quality float64, seedBase int64, p Params) float64 {
	v := 0.95 - quality*0.9 + noise(seedBase+seedOffsetLatency, p.MetricNoise)/100
	return math.Max(0.05, math.Min(0.95, v))
}
