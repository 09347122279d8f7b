package physics

import (
	"math"

	"github.com/san-kum/battsim/internal/dynamo"
)

const (
	// KelvinOffset converts degrees Celsius to kelvin.
	KelvinOffset = 273.15

	// StefanBoltzmann is sigma in W/(m^2*K^4).
	StefanBoltzmann = 5.67e-8
)

// BatteryPack is a lumped thermal mass: one uniform temperature for the whole
// pack, heated by constant Joule losses and cooled to ambient by radiation
// and natural convection. State is {T} in degrees Celsius.
type BatteryPack struct {
	HeatGenerated   float64 // W
	Mass            float64 // kg
	Area            float64 // m^2
	SpecificHeat    float64 // J/(kg*C)
	Ambient         float64 // C
	Emissivity      float64
	Sigma           float64 // W/(m^2*K^4)
	ConvectionCoeff float64 // W/(m^2*C)
}

func (b *BatteryPack) StateDim() int { return 1 }

// RadiativeLoss is the Stefan-Boltzmann exchange with the surroundings.
// Negative when the pack is colder than ambient.
func (b *BatteryPack) RadiativeLoss(temp float64) float64 {
	tk := temp + KelvinOffset
	ak := b.Ambient + KelvinOffset
	return b.Emissivity * b.Sigma * b.Area * (math.Pow(tk, 4) - math.Pow(ak, 4))
}

func (b *BatteryPack) ConvectiveLoss(temp float64) float64 {
	return b.ConvectionCoeff * b.Area * (temp - b.Ambient)
}

// NetHeat is the power retained by the pack at temp, in W.
func (b *BatteryPack) NetHeat(temp float64) float64 {
	return b.HeatGenerated - (b.RadiativeLoss(temp) + b.ConvectiveLoss(temp))
}

// Derive returns dT/dt = NetHeat/(m*C). An Euler step therefore computes
// T + dt*(Q_net/(m*C)); this is bit-identical to T + Q_net*dt/(m*C) at
// dt=1 and may differ by one ulp at other step sizes.
func (b *BatteryPack) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{b.NetHeat(x[0]) / (b.Mass * b.SpecificHeat)}
}

// HeatCapacity is m*C in J/C.
func (b *BatteryPack) HeatCapacity() float64 {
	return b.Mass * b.SpecificHeat
}

// SteadyState returns the temperature at which losses balance generation.
// It reports false when no finite equilibrium exists (heat generated with
// no loss path).
func (b *BatteryPack) SteadyState() (float64, bool) {
	lo := b.Ambient
	q := b.NetHeat(lo)
	if q == 0 {
		return lo, true
	}

	// NetHeat is strictly decreasing above absolute zero whenever a loss
	// path exists, so bracket the root on the side it lies.
	span := 1.0
	hi := lo
	found := false
	for i := 0; i < 64; i++ {
		if q > 0 {
			hi = lo + span
		} else {
			hi = math.Max(lo-span, -KelvinOffset)
		}
		if (b.NetHeat(hi) > 0) != (q > 0) {
			found = true
			break
		}
		if hi == -KelvinOffset {
			break
		}
		span *= 2
	}
	if !found {
		return 0, false
	}

	a, c := lo, hi
	for i := 0; i < 200; i++ {
		mid := 0.5 * (a + c)
		if mid == a || mid == c {
			break
		}
		if (b.NetHeat(mid) > 0) == (q > 0) {
			a = mid
		} else {
			c = mid
		}
	}
	return 0.5 * (a + c), true
}
