package reputation

import "errors"

// Params collects every tuning constant of the scoring engine. The
// values are calibration choices, not derived quantities; keeping them
// in one struct means re-tuning never touches the formulas.
type Params struct {
	// Logarithmic saturation divisors for on-chain quality factors.
	KTx  float64
	KBal float64
	// Months of age needed for a full age factor.
	AgeFactorMonths float64

	// Protocol base score band.
	MaxBaseScore        int
	DefaultBaseScore    int
	UnverifiedBaseScore int

	// Structural bonuses.
	AgeBonusCap        float64
	AgeBonusPerMonth   float64
	MultiChainBonusCap float64
	MultiChainPerChain float64
	SkillBonusCap      float64
	SkillPerSkill      float64

	// On-chain bonus terms.
	ActivityBonusCap      float64
	ActivityLogScale      float64
	BalanceBonusCap       float64
	BalanceLogScale       float64
	ChainActivityCap      float64
	ChainActivityPerChain float64

	// Weight applied to the on-chain bonus inside the overall score.
	// Unverified (user-submitted) agents are rewarded more for proving
	// activity than catalog agents are.
	OnChainWeightCatalog    float64
	OnChainWeightUnverified float64

	// Noise amplitudes.
	SubScoreNoise float64
	OverallNoise  float64
	MetricNoise   float64

	// Overall score blend weights.
	WeightReliability float64
	WeightAccuracy    float64
	WeightSpeed       float64
	WeightTrust       float64

	// Clamping bands.
	SubScoreMin int
	SubScoreMax int
	OverallMin  int
	OverallMax  int

	// Synthetic history generation.
	HistoryDays       int
	HistorySeedBelow  float64
	HistoryDailyDelta float64
	HistoryDrift      float64
	HistoryReversion  float64
	HistoryFloor      int
	HistoryCeil       int
	TrendWindow       int
	TrendThreshold    float64
}

// DefaultParams returns the shipped calibration.
func DefaultParams() Params {
	return Params{
		KTx:             12,
		KBal:            8,
		AgeFactorMonths: 24,

		MaxBaseScore:        31,
		DefaultBaseScore:    21,
		UnverifiedBaseScore: 19,

		AgeBonusCap:        20,
		AgeBonusPerMonth:   1,
		MultiChainBonusCap: 15,
		MultiChainPerChain: 4,
		SkillBonusCap:      10,
		SkillPerSkill:      2.5,

		ActivityBonusCap:      15,
		ActivityLogScale:      2.2,
		BalanceBonusCap:       10,
		BalanceLogScale:       2,
		ChainActivityCap:      5,
		ChainActivityPerChain: 2,

		OnChainWeightCatalog:    0.3,
		OnChainWeightUnverified: 0.5,

		SubScoreNoise: 3,
		OverallNoise:  4,
		MetricNoise:   10,

		WeightReliability: 0.30,
		WeightAccuracy:    0.25,
		WeightSpeed:       0.20,
		WeightTrust:       0.25,

		SubScoreMin: 25,
		SubScoreMax: 99,
		OverallMin:  20,
		OverallMax:  99,

		HistoryDays:       30,
		HistorySeedBelow:  3,
		HistoryDailyDelta: 2,
		HistoryDrift:      0.1,
		HistoryReversion:  0.15,
		HistoryFloor:      20,
		HistoryCeil:       99,
		TrendWindow:       7,
		TrendThreshold:    1.5,
	}
}

func (p *Params) Validate() error {
	if p.KTx <= 0 || p.KBal <= 0 {
		return errors.New("log saturation constants must be positive")
	}
	if p.AgeFactorMonths <= 0 {
		return errors.New("age factor months must be positive")
	}
	if p.HistoryDays < 2*p.TrendWindow {
		return errors.New("history must cover at least two trend windows")
	}
	if p.UnverifiedBaseScore > p.DefaultBaseScore || p.DefaultBaseScore > p.MaxBaseScore {
		return errors.New("base score band is not ordered")
	}
	return nil
}
