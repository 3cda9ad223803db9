// guilloche - parametric roulette ornaments
// Copyright (C) 2026  The guilloche authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package guilloche

import (
	"context"
	"math"
	"time"
)

// AnimationPeriod is the length of one oscillation of the animated
// displacement.
const AnimationPeriod = 5 * time.Second

// animationAmplitude is the peak amplitude offset added while animating.
const animationAmplitude = 30

// Oscillation returns the displacement offsets at the given time.
// Only elapsed modulo [AnimationPeriod] matters: the phase offset grows
// linearly from 0° to 360° over one period, and the amplitude offset
// follows one period of a sine wave with peak 30.
func Oscillation(elapsed time.Duration) (phaseDeg, amplitude float64) {
	e := elapsed % AnimationPeriod
	if e < 0 {
		e += AnimationPeriod
	}
	frac := float64(e) / float64(AnimationPeriod)
	return frac * 360, animationAmplitude * math.Sin(frac*2*math.Pi)
}

// Animated returns a copy of p with the oscillation offsets for elapsed
// added to the displacement phase and amplitude.
func (p Params) Animated(elapsed time.Duration) Params {
	phase, amp := Oscillation(elapsed)
	q := p.Clone()
	q.Displacement.PhaseDeg += phase
	q.Displacement.Amplitude += amp
	return q
}

// Animate calls frame once per tick of interval with the animated
// parameters, until ctx is done or frame returns an error.
// Ticks never overlap: a tick that arrives while frame is running is
// dropped.
//
// No frame starts once ctx is done.
// The return value is the error from frame, or ctx.Err().
func Animate(ctx context.Context, interval time.Duration, base Params, frame func(elapsed time.Duration, p Params) error) error {
	start := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			elapsed := now.Sub(start)
			if err := frame(elapsed, base.Animated(elapsed)); err != nil {
				return err
			}
		}
	}
}
