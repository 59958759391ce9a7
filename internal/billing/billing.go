package billing

import (
	"fmt"

	"github.com/pkg/errors"
)

// Pricing holds the fixed plan constants. Fees are whole currency units;
// conversion to cents happens only at the payment processor boundary.
type Pricing struct {
	// Setup is the one-time ad spend credit billed only in the first month.
	Setup int64
	// MonthlyBase is the flat recurring fee.
	MonthlyBase int64
	// FreeAppointments is the count of appointments not separately billed.
	FreeAppointments int64
	// PerAppointmentFee is the marginal price beyond the free tier.
	PerAppointmentFee int64
}

func DefaultPricing() Pricing {
	return Pricing{
		Setup:             497,
		MonthlyBase:       97,
		FreeAppointments:  10,
		PerAppointmentFee: 50,
	}
}

// Period is one computed monthly statement. It is derived on demand, never
// stored authoritatively.
type Period struct {
	AppointmentCount int64
	BaseFee          int64
	UsageFee         int64
	TotalFee         int64
	IsFirstMonth     bool
}

type ROI struct {
	Revenue       float64
	Cost          float64
	Profit        float64
	ROIPercentage float64
	ROIRatio      string
}

var ErrNegativeCount = errors.New("appointment count cannot be negative")

// Compute returns the tiered usage charge for one month.
// usageFee = max(0, count - free) * perAppointmentFee
// totalFee = (first month ? setup : 0) + base + usageFee
func (p Pricing) Compute(appointmentCount int64, isFirstMonth bool) (Period, error) {
	if appointmentCount < 0 {
		return Period{}, ErrNegativeCount
	}

	billable := appointmentCount - p.FreeAppointments
	if billable < 0 {
		billable = 0
	}
	usageFee := billable * p.PerAppointmentFee

	totalFee := p.MonthlyBase + usageFee
	if isFirstMonth {
		totalFee += p.Setup
	}

	return Period{
		AppointmentCount: appointmentCount,
		BaseFee:          p.MonthlyBase,
		UsageFee:         usageFee,
		TotalFee:         totalFee,
		IsFirstMonth:     isFirstMonth,
	}, nil
}

// ComputeROI compares patient revenue against the month's fees.
func (p Pricing) ComputeROI(appointmentCount int64, averageAppointmentValue float64, isFirstMonth bool) (ROI, error) {
	period, err := p.Compute(appointmentCount, isFirstMonth)
	if err != nil {
		return ROI{}, err
	}

	revenue := float64(appointmentCount) * averageAppointmentValue
	cost := float64(period.TotalFee)
	profit := revenue - cost

	roi := ROI{
		Revenue: revenue,
		Cost:    cost,
		Profit:  profit,
	}
	if cost == 0 {
		roi.ROIRatio = "∞:1"
		return roi, nil
	}
	roi.ROIPercentage = profit / cost * 100
	roi.ROIRatio = fmt.Sprintf("%.1f:1", revenue/cost)
	return roi, nil
}

// CentsForCheckout converts a whole-unit fee for the payment processor.
func CentsForCheckout(fee int64) int64 {
	return fee * 100
}
