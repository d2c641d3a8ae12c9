package engine

import (
	"math"
	"math/rand"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

// generateDailyDemand produces 30 daily swap-visit counts for one month,
// layering seasonal and weekend adjustments onto the deterministic baseline
// before drawing stochastic noise. Grounded on engine/demand.py.
func generateDailyDemand(demand config.DemandConfig, d models.DerivedParams, fleetSize, month int, rng *rand.Rand) []int {
	baseDailyVisits := d.SwapVisitsPerVehiclePerDay * float64(fleetSize)

	seasonalFactor := 1.0 + demand.SeasonalAmplitude*math.Sin(2.0*math.Pi*float64(month)/12.0)
	adjustedBase := baseDailyVisits * seasonalFactor

	dailyMeans := make([]float64, DaysPerMonth)
	for day := 0; day < DaysPerMonth; day++ {
		mean := adjustedBase
		if day%7 == 5 || day%7 == 6 {
			mean *= demand.WeekendFactor
		}
		dailyMeans[day] = mean
	}

	visits := make([]int, DaysPerMonth)
	switch demand.Distribution {
	case config.DemandDistributionPoisson:
		for i, mean := range dailyMeans {
			visits[i] = poissonSample(rng, math.Max(mean, 0))
		}
	case config.DemandDistributionGamma:
		if demand.Volatility <= 0 {
			for i, mean := range dailyMeans {
				visits[i] = int(math.Round(mean))
			}
		} else {
			cv2 := demand.Volatility * demand.Volatility
			shape := 1.0 / cv2
			for i, mean := range dailyMeans {
				scale := math.Max(mean, 0) * cv2
				if scale <= 0 {
					scale = 1e-10
				}
				visits[i] = int(math.Round(gammaSample(rng, shape, scale)))
			}
		}
	case config.DemandDistributionBimodal:
		meanLow := adjustedBase * (1 - demand.BimodalPeakSeparation/2)
		meanHigh := adjustedBase * (1 + demand.BimodalPeakSeparation/2)
		stdLow := math.Max(meanLow, 0) * demand.BimodalStdRatio
		stdHigh := math.Max(meanHigh, 0) * demand.BimodalStdRatio
		for i, mean := range dailyMeans {
			// Weekend/seasonal factor already baked into `mean` relative to
			// adjustedBase; rescale the bimodal means by the same ratio so
			// weekday/weekend bimodality tracks the baseline shape.
			ratio := 1.0
			if adjustedBase != 0 {
				ratio = mean / adjustedBase
			}
			lo, hi := meanLow*ratio, meanHigh*ratio
			sLo, sHi := stdLow*ratio, stdHigh*ratio
			var sample float64
			if rng.Float64() < demand.BimodalPeakRatio {
				sample = rng.NormFloat64()*sLo + lo
			} else {
				sample = rng.NormFloat64()*sHi + hi
			}
			visits[i] = int(math.Max(math.Round(sample), 0))
		}
	default:
		for i, mean := range dailyMeans {
			visits[i] = int(math.Round(mean))
		}
	}

	for i, v := range visits {
		if v < 0 {
			visits[i] = 0
		}
	}
	return visits
}

// generateMonthlyDemand sums one month's daily visits into a swap-visit
// total and the corresponding pack-cycle total.
func generateMonthlyDemand(demand config.DemandConfig, d models.DerivedParams, fleetSize, month, packsPerVehicle int, rng *rand.Rand) (swapVisits, totalCycles int) {
	daily := generateDailyDemand(demand, d, fleetSize, month, rng)
	for _, v := range daily {
		swapVisits += v
	}
	totalCycles = swapVisits * packsPerVehicle
	return swapVisits, totalCycles
}

// poissonSample draws from Poisson(lambda): Knuth's algorithm for small
// lambda, a normal approximation for large lambda (avoids the product
// underflowing to zero).
func poissonSample(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	if lambda < 30 {
		l := math.Exp(-lambda)
		k := 0
		p := 1.0
		for {
			k++
			p *= rng.Float64()
			if p <= l {
				break
			}
		}
		return k - 1
	}
	v := rng.NormFloat64()*math.Sqrt(lambda) + lambda
	n := int(math.Round(v))
	if n < 0 {
		n = 0
	}
	return n
}

// gammaSample draws from Gamma(shape, scale) via Marsaglia & Tsang's method.
func gammaSample(rng *rand.Rand, shape, scale float64) float64 {
	if shape < 1 {
		u := rng.Float64()
		return gammaSample(rng, shape+1, scale) * math.Pow(u, 1/shape)
	}
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v * scale
		}
	}
}
