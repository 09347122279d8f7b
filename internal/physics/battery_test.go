package physics

import (
	"math"
	"testing"

	"github.com/san-kum/battsim/internal/dynamo"
)

func newTestPack() *BatteryPack {
	return &BatteryPack{
		HeatGenerated:   8.96 * 8.96 * 0.025,
		Mass:            0.045,
		Area:            0.01,
		SpecificHeat:    1800,
		Ambient:         38,
		Emissivity:      0.9,
		Sigma:           StefanBoltzmann,
		ConvectionCoeff: 5,
	}
}

func TestBatteryPackLossesVanishAtAmbient(t *testing.T) {
	p := newTestPack()

	if q := p.RadiativeLoss(p.Ambient); q != 0 {
		t.Errorf("radiative loss at ambient should be 0, got %g", q)
	}
	if q := p.ConvectiveLoss(p.Ambient); q != 0 {
		t.Errorf("convective loss at ambient should be 0, got %g", q)
	}
	if q := p.NetHeat(p.Ambient); q != p.HeatGenerated {
		t.Errorf("net heat at ambient should equal generation %g, got %g", p.HeatGenerated, q)
	}
}

func TestBatteryPackLossesAboveAmbient(t *testing.T) {
	p := newTestPack()

	if q := p.ConvectiveLoss(48); math.Abs(q-0.5) > 1e-12 {
		t.Errorf("expected convective loss 0.5 W at +10 C, got %g", q)
	}

	// Celsius must be shifted to kelvin before the fourth power.
	expected := 0.9 * 5.67e-8 * 0.01 * (math.Pow(321.15, 4) - math.Pow(311.15, 4))
	if q := p.RadiativeLoss(48); math.Abs(q-expected) > 1e-12 {
		t.Errorf("expected radiative loss %g, got %g", expected, q)
	}
	if math.Abs(expected-0.645169356456251) > 1e-9 {
		t.Errorf("radiative reference drifted: %g", expected)
	}
}

func TestBatteryPackLossesBelowAmbient(t *testing.T) {
	p := newTestPack()

	if q := p.RadiativeLoss(20); q >= 0 {
		t.Errorf("radiative term below ambient should be negative, got %g", q)
	}
	if q := p.ConvectiveLoss(20); q >= 0 {
		t.Errorf("convective term below ambient should be negative, got %g", q)
	}
}

func TestBatteryPackDerive(t *testing.T) {
	p := newTestPack()

	dx := p.Derive(dynamo.State{38}, 0)
	if len(dx) != p.StateDim() {
		t.Fatalf("expected %d derivatives, got %d", p.StateDim(), len(dx))
	}

	expected := p.HeatGenerated / (0.045 * 1800)
	if math.Abs(dx[0]-expected) > 1e-15 {
		t.Errorf("expected dT/dt %g, got %g", expected, dx[0])
	}
}

func TestBatteryPackSteadyState(t *testing.T) {
	p := newTestPack()

	ss, ok := p.SteadyState()
	if !ok {
		t.Fatal("expected a steady state")
	}
	if math.Abs(ss-55.187436554243966) > 1e-6 {
		t.Errorf("expected steady state ~55.1874, got %.6f", ss)
	}
	if q := p.NetHeat(ss); math.Abs(q) > 1e-9 {
		t.Errorf("net heat at steady state should vanish, got %g", q)
	}
}

func TestBatteryPackSteadyStateNoLoad(t *testing.T) {
	p := newTestPack()
	p.HeatGenerated = 0

	ss, ok := p.SteadyState()
	if !ok || ss != p.Ambient {
		t.Errorf("expected ambient steady state, got %g (ok=%v)", ss, ok)
	}
}

func TestBatteryPackSteadyStateNoLossPath(t *testing.T) {
	p := newTestPack()
	p.Emissivity = 0
	p.ConvectionCoeff = 0

	if _, ok := p.SteadyState(); ok {
		t.Error("expected no steady state without a loss path")
	}
}
