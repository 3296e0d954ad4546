/*
DESCRIPTION
  cif7.go implements CIF7, the statistical-attribute multiplier bitmap: when
  present, each enabled attribute bit adds one replica of every other
  enabled CIF field's data, carrying that field's value computed under the
  named statistic.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import "math/bits"

const (
	cif7BitCurrent        = 31
	cif7BitAverage        = 30
	cif7BitMedian         = 29
	cif7BitStdDev         = 28
	cif7BitMax            = 27
	cif7BitMin            = 26
	cif7BitPrecision      = 25
	cif7BitAccuracy       = 24
	cif7BitFirstDeriv     = 23
	cif7BitSecondDeriv    = 22
	cif7BitThirdDeriv     = 21
	cif7BitProbability    = 20
	cif7BitBelief         = 19
)

// Cif7 is the 32-bit statistical-attribute indicator bitmap.
type Cif7 uint32

func (c Cif7) bit(n int) bool { return c>>uint(n)&1 == 1 }

func (c *Cif7) setBit(n int, v bool) {
	if v {
		*c |= 1 << uint(n)
	} else {
		*c &^= 1 << uint(n)
	}
}

// Current reports the "current value" attribute bit.
func (c Cif7) Current() bool { return c.bit(cif7BitCurrent) }

// SetCurrent sets the "current value" attribute bit.
func (c *Cif7) SetCurrent(v bool) { c.setBit(cif7BitCurrent, v) }

// Average reports the average attribute bit.
func (c Cif7) Average() bool { return c.bit(cif7BitAverage) }

// SetAverage sets the average attribute bit.
func (c *Cif7) SetAverage(v bool) { c.setBit(cif7BitAverage, v) }

// Median reports the median attribute bit.
func (c Cif7) Median() bool { return c.bit(cif7BitMedian) }

// SetMedian sets the median attribute bit.
func (c *Cif7) SetMedian(v bool) { c.setBit(cif7BitMedian, v) }

// StdDev reports the standard-deviation attribute bit.
func (c Cif7) StdDev() bool { return c.bit(cif7BitStdDev) }

// SetStdDev sets the standard-deviation attribute bit.
func (c *Cif7) SetStdDev(v bool) { c.setBit(cif7BitStdDev, v) }

// Max reports the maximum attribute bit.
func (c Cif7) Max() bool { return c.bit(cif7BitMax) }

// SetMax sets the maximum attribute bit.
func (c *Cif7) SetMax(v bool) { c.setBit(cif7BitMax, v) }

// Min reports the minimum attribute bit.
func (c Cif7) Min() bool { return c.bit(cif7BitMin) }

// SetMin sets the minimum attribute bit.
func (c *Cif7) SetMin(v bool) { c.setBit(cif7BitMin, v) }

// Precision reports the precision attribute bit.
func (c Cif7) Precision() bool { return c.bit(cif7BitPrecision) }

// SetPrecision sets the precision attribute bit.
func (c *Cif7) SetPrecision(v bool) { c.setBit(cif7BitPrecision, v) }

// Accuracy reports the accuracy attribute bit.
func (c Cif7) Accuracy() bool { return c.bit(cif7BitAccuracy) }

// SetAccuracy sets the accuracy attribute bit.
func (c *Cif7) SetAccuracy(v bool) { c.setBit(cif7BitAccuracy, v) }

// FirstDerivative reports the first-derivative attribute bit.
func (c Cif7) FirstDerivative() bool { return c.bit(cif7BitFirstDeriv) }

// SetFirstDerivative sets the first-derivative attribute bit.
func (c *Cif7) SetFirstDerivative(v bool) { c.setBit(cif7BitFirstDeriv, v) }

// SecondDerivative reports the second-derivative attribute bit.
func (c Cif7) SecondDerivative() bool { return c.bit(cif7BitSecondDeriv) }

// SetSecondDerivative sets the second-derivative attribute bit.
func (c *Cif7) SetSecondDerivative(v bool) { c.setBit(cif7BitSecondDeriv, v) }

// ThirdDerivative reports the third-derivative attribute bit.
func (c Cif7) ThirdDerivative() bool { return c.bit(cif7BitThirdDeriv) }

// SetThirdDerivative sets the third-derivative attribute bit.
func (c *Cif7) SetThirdDerivative(v bool) { c.setBit(cif7BitThirdDeriv, v) }

// Probability reports the probability attribute bit.
func (c Cif7) Probability() bool { return c.bit(cif7BitProbability) }

// SetProbability sets the probability attribute bit.
func (c *Cif7) SetProbability(v bool) { c.setBit(cif7BitProbability, v) }

// Belief reports the belief attribute bit.
func (c Cif7) Belief() bool { return c.bit(cif7BitBelief) }

// SetBelief sets the belief attribute bit.
func (c *Cif7) SetBelief(v bool) { c.setBit(cif7BitBelief, v) }

// cif7Opts is the derived replica policy the container applies uniformly
// to every enabled field of the CIFs this CIF7 governs.
type cif7Opts struct {
	currentPresent bool
	extraReplicas  int
}

// deriveCif7Opts computes cif7Opts per §4.3: absent CIF7 means exactly one
// (primary) value per field; present CIF7 means a primary iff Current is
// set, plus one replica per other enabled attribute bit.
func deriveCif7Opts(cif7 *Cif7) cif7Opts {
	if cif7 == nil {
		return cif7Opts{currentPresent: true, extraReplicas: 0}
	}
	popcount := bits.OnesCount32(uint32(*cif7))
	extra := popcount
	current := cif7.Current()
	if current {
		extra--
	}
	return cif7Opts{currentPresent: current, extraReplicas: extra}
}
