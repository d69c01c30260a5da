package client

import (
	"errors"

	"atelier/internal/pkg/errs"
)

// MaxMeasurement bounds every measurement, in centimetres.
const MaxMeasurement = 300.0

// Measurements is a value object. A zero value means "not yet measured".
type Measurements struct {
	height float64
	chest  float64
	waist  float64
	hips   float64
	inseam float64
}

// NewMeasurements validates every field is within [0, MaxMeasurement].
func NewMeasurements(height, chest, waist, hips, inseam float64) (Measurements, error) {
	err := errors.Join(
		checkMeasurement("height", height),
		checkMeasurement("chest", chest),
		checkMeasurement("waist", waist),
		checkMeasurement("hips", hips),
		checkMeasurement("inseam", inseam),
	)
	if err != nil {
		return Measurements{}, err
	}
	return Measurements{height: height, chest: chest, waist: waist, hips: hips, inseam: inseam}, nil
}

func checkMeasurement(name string, v float64) error {
	// NaN fails both comparisons, hence the negated form.
	if !(v >= 0 && v <= MaxMeasurement) {
		return errs.NewValueIsOutOfRangeError(name, v, 0, MaxMeasurement)
	}
	return nil
}

func (m Measurements) Height() float64 { return m.height }
func (m Measurements) Chest() float64  { return m.chest }
func (m Measurements) Waist() float64  { return m.waist }
func (m Measurements) Hips() float64   { return m.hips }
func (m Measurements) Inseam() float64 { return m.inseam }

// IsEmpty reports whether nothing was measured yet, as for clients who
// registered through the catalog.
func (m Measurements) IsEmpty() bool {
	return m == Measurements{}
}
