package thermal_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/battsim/internal/dynamo"
	"github.com/san-kum/battsim/internal/integrators"
	"github.com/san-kum/battsim/internal/thermal"
)

func referenceConfig() thermal.Config {
	return thermal.Config{
		NumCells:        1,
		Current:         8.96,
		Resistance:      0.025,
		SpecificHeat:    1800,
		CellMass:        0.045,
		CellArea:        0.01,
		Ambient:         38,
		Emissivity:      0.9,
		StefanBoltzmann: 5.67e-8,
		ConvectionCoeff: 5,
		Dt:              1,
		Duration:        1021,
	}
}

var _ = Describe("Run", func() {
	var cfg thermal.Config

	BeforeEach(func() {
		cfg = referenceConfig()
	})

	Context("with the reference cell", func() {
		var res *thermal.Result

		BeforeEach(func() {
			var err error
			res, err = thermal.Run(cfg)
			Expect(err).NotTo(HaveOccurred())
		})

		It("derives the pack constants once", func() {
			Expect(res.Derived.QGenerated).To(BeNumerically("~", 2.00704, 1e-12))
			Expect(res.Derived.PackMass).To(Equal(0.045))
			Expect(res.Derived.PackArea).To(Equal(0.01))
		})

		It("records floor(duration/dt)+1 samples", func() {
			Expect(res.Series).To(HaveLen(1022))
		})

		It("starts at ambient", func() {
			Expect(res.Series[0].Time).To(Equal(0.0))
			Expect(res.Series[0].Temperature).To(Equal(38.0))
		})

		It("places sample i at i*dt", func() {
			for i, s := range res.Series {
				Expect(s.Time).To(Equal(float64(i) * cfg.Dt))
			}
		})

		It("takes the first step from generation alone", func() {
			Expect(res.Series[1].Temperature).To(BeNumerically("~", 38.02477827160494, 1e-12))
		})

		It("heats monotonically while below equilibrium", func() {
			for i := 1; i < len(res.Series); i++ {
				Expect(res.Series[i].Temperature).To(BeNumerically(">", res.Series[i-1].Temperature))
			}
		})

		It("matches the reference trajectory after 1021 s", func() {
			Expect(res.Final).To(BeNumerically("~", 51.37430362665268, 1e-6))
			Expect(res.Series[len(res.Series)-1].Temperature).To(Equal(res.Final))
		})

		It("stays below the steady-state temperature", func() {
			ss, ok := cfg.Pack().SteadyState()
			Expect(ok).To(BeTrue())
			Expect(res.Series.Peak().Temperature).To(BeNumerically("<", ss))
		})

		It("reports the stepper it used", func() {
			Expect(res.Integrator).To(Equal("euler"))
		})
	})

	It("holds ambient exactly when no heat is generated", func() {
		cfg.Current = 0
		res, err := thermal.Run(cfg)
		Expect(err).NotTo(HaveOccurred())
		for _, s := range res.Series {
			Expect(s.Temperature).To(Equal(cfg.Ambient))
		}
	})

	It("produces bit-identical series on repeated runs", func() {
		a, err := thermal.Run(cfg)
		Expect(err).NotTo(HaveOccurred())
		b, err := thermal.Run(cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(b.Series).To(HaveLen(len(a.Series)))
		for i := range a.Series {
			Expect(math.Float64bits(b.Series[i].Temperature)).To(Equal(math.Float64bits(a.Series[i].Temperature)))
		}
	})

	It("is independent of cell count for identical cells", func() {
		single, err := thermal.Run(cfg)
		Expect(err).NotTo(HaveOccurred())

		cfg.NumCells = 4
		pack, err := thermal.Run(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(pack.Derived.QGenerated).To(BeNumerically("~", 4*single.Derived.QGenerated, 1e-12))
		Expect(pack.Final).To(BeNumerically("~", single.Final, 1e-9))
	})

	It("truncates when dt does not divide the duration", func() {
		cfg.Dt = 2
		cfg.Duration = 10.5
		res, err := thermal.Run(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Series).To(HaveLen(6))
		Expect(res.Series[5].Time).To(Equal(10.0))
		Expect(res.Final).To(BeNumerically("~", 38.246421735645114, 1e-9))
	})

	It("accepts a duration equal to one step", func() {
		cfg.Duration = cfg.Dt
		res, err := thermal.Run(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Series).To(HaveLen(2))
	})

	It("agrees closely with RK4 at dt=1", func() {
		euler, err := thermal.Run(cfg)
		Expect(err).NotTo(HaveOccurred())
		rk4, err := thermal.RunWith(cfg, integrators.NewRK4())
		Expect(err).NotTo(HaveOccurred())

		Expect(rk4.Integrator).To(Equal("rk4"))
		Expect(rk4.Series).To(HaveLen(len(euler.Series)))
		Expect(rk4.Final).To(BeNumerically("~", euler.Final, 0.1))
	})

	DescribeTable("rejects invalid configurations before stepping",
		func(mutate func(*thermal.Config), field string) {
			mutate(&cfg)
			res, err := thermal.Run(cfg)
			Expect(res).To(BeNil())
			Expect(errors.Is(err, dynamo.ErrConfiguration)).To(BeTrue())

			var cerr *thermal.ConfigurationError
			Expect(errors.As(err, &cerr)).To(BeTrue())
			Expect(cerr.Field).To(Equal(field))
		},
		Entry("zero cell mass", func(c *thermal.Config) { c.CellMass = 0 }, "cell_mass"),
		Entry("zero dt", func(c *thermal.Config) { c.Dt = 0 }, "dt"),
		Entry("negative duration", func(c *thermal.Config) { c.Duration = -1 }, "duration"),
		Entry("duration shorter than dt", func(c *thermal.Config) { c.Duration = 0.5 }, "duration"),
		Entry("zero cell area", func(c *thermal.Config) { c.CellArea = 0 }, "cell_area"),
		Entry("zero specific heat", func(c *thermal.Config) { c.SpecificHeat = 0 }, "specific_heat"),
		Entry("no cells", func(c *thermal.Config) { c.NumCells = 0 }, "num_cells"),
		Entry("negative current", func(c *thermal.Config) { c.Current = -1 }, "current"),
		Entry("emissivity above one", func(c *thermal.Config) { c.Emissivity = 1.2 }, "emissivity"),
		Entry("NaN ambient", func(c *thermal.Config) { c.Ambient = math.NaN() }, "ambient"),
		Entry("infinite current", func(c *thermal.Config) { c.Current = math.Inf(1) }, "current"),
		Entry("ambient below absolute zero", func(c *thermal.Config) { c.Ambient = -300 }, "ambient"),
		Entry("overflowing heat generation", func(c *thermal.Config) { c.Current = 1e200 }, "q_generated"),
		Entry("heat capacity underflowing to zero", func(c *thermal.Config) {
			c.CellMass = 1e-200
			c.SpecificHeat = 1e-200
		}, "heat_capacity"),
		Entry("ambient overflowing the fourth power", func(c *thermal.Config) { c.Ambient = 1e80 }, "ambient"),
		Entry("ambient overflowing without radiation", func(c *thermal.Config) {
			c.Ambient = 1e80
			c.Emissivity = 0
		}, "ambient"),
	)
})

var _ = Describe("Series", func() {
	It("splits into parallel slices", func() {
		s := thermal.Series{{Time: 0, Temperature: 38}, {Time: 1, Temperature: 39}}
		Expect(s.Times()).To(Equal([]float64{0, 1}))
		Expect(s.Temperatures()).To(Equal([]float64{38, 39}))
		Expect(s.Peak()).To(Equal(thermal.Sample{Time: 1, Temperature: 39}))
	})
})
