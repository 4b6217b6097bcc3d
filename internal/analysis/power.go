package analysis

import (
	"time"

	"github.com/chrissnell/windstats/internal/timeseries"
)

// MonthCF is the mean capacity factor for one calendar month.
type MonthCF struct {
	Month time.Time
	Mean  float64
}

// PowerEstimate holds the nominal-turbine output figures derived from
// one country's capacity-factor series.
type PowerEstimate struct {
	Country            string
	RatedPowerKW       float64
	MeanCapacityFactor float64
	AnnualEnergyMWh    float64
	MonthlyCF          []MonthCF
	GapHours           int
}

// EstimatePower scales each hourly capacity factor by the rated power
// and sums the result into annual energy. Missing hours contribute zero
// energy, which understates true production when gaps exist; GapHours
// records how many were skipped so the presenter can flag the
// approximation.
func EstimatePower(s *timeseries.Series, ratedKW float64) (PowerEstimate, error) {
	if ratedKW <= 0 {
		return PowerEstimate{}, &ConfigError{Msg: "rated power must be positive"}
	}

	valid := s.ValidCount()
	if valid == 0 {
		return PowerEstimate{}, &DataError{Country: s.Country, Msg: "no valid samples for power estimate"}
	}

	var cfSum, energyKWh float64
	for _, v := range s.Values {
		if timeseries.IsMissing(v) {
			continue
		}
		cfSum += v
		energyKWh += v * ratedKW // one sample per hour, so kW numerically equals kWh
	}

	est := PowerEstimate{
		Country:            s.Country,
		RatedPowerKW:       ratedKW,
		MeanCapacityFactor: cfSum / float64(valid),
		AnnualEnergyMWh:    energyKWh / 1000,
		GapHours:           s.Len() - valid,
	}

	for _, b := range timeseries.Resample(s, timeseries.PeriodMonth) {
		est.MonthlyCF = append(est.MonthlyCF, MonthCF{Month: b.Start, Mean: b.Mean})
	}
	return est, nil
}
