package engine

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/patterns"
)

var _ = Describe("Controller", func() {
	var (
		st   *State
		ctrl *Controller
	)

	BeforeEach(func() {
		st = NewDefaultState()
		ctrl = NewController(st)
	})

	It("starts from the default state", func() {
		Expect(st.Snapshot()).To(Equal(Snapshot{Pattern: 0, Density: 50, Frame: 0, Running: true}))
	})

	Describe("pattern cycling", func() {
		It("wraps from 6 to 0 on next", func() {
			st = NewState(6, 50)
			ctrl = NewController(st)
			Expect(ctrl.Handle(Pressed(Next))).To(BeTrue())
			Expect(st.Snapshot().Pattern).To(Equal(0))
		})

		It("wraps from 0 to 6 on previous", func() {
			Expect(ctrl.Handle(Pressed(Previous))).To(BeTrue())
			Expect(st.Snapshot().Pattern).To(Equal(6))
		})

		DescribeTable("returns to the start after seven steps",
			func(start int, kind Kind) {
				st = NewState(start, 50)
				ctrl = NewController(st)
				for i := 0; i < patterns.Count; i++ {
					ctrl.Handle(Pressed(kind))
				}
				Expect(st.Snapshot().Pattern).To(Equal(start))
			},
			Entry("next from 0", 0, Next),
			Entry("next from 3", 3, Next),
			Entry("next from 6", 6, Next),
			Entry("previous from 0", 0, Previous),
			Entry("previous from 4", 4, Previous),
		)
	})

	Describe("density adjustment", func() {
		It("clamps increases at 100", func() {
			for i := 0; i < 20; i++ {
				ctrl.Handle(Pressed(DensityUp))
				Expect(st.Snapshot().Density).To(BeNumerically("<=", 100))
			}
			Expect(st.Snapshot().Density).To(Equal(100))
		})

		It("snaps to zero once below 10", func() {
			st = NewState(0, 5)
			ctrl = NewController(st)
			Expect(ctrl.Handle(Pressed(DensityDown))).To(BeTrue())
			Expect(st.Snapshot().Density).To(Equal(0))
			ctrl.Handle(Pressed(DensityDown))
			Expect(st.Snapshot().Density).To(Equal(0))
		})

		It("never leaves [0,100] from any starting density", func() {
			for d := 0; d <= 100; d++ {
				for _, kind := range []Kind{DensityUp, DensityDown} {
					s := NewState(0, d)
					c := NewController(s)
					c.Handle(Pressed(kind))
					got := s.Snapshot().Density
					Expect(got).To(BeNumerically(">=", 0))
					Expect(got).To(BeNumerically("<=", 100))
				}
			}
		})

		It("keeps an off-grid value off-grid until the boundary", func() {
			st = NewState(0, 95)
			ctrl = NewController(st)
			ctrl.Handle(Pressed(DensityUp))
			Expect(st.Snapshot().Density).To(Equal(100))
			ctrl.Handle(Pressed(DensityDown))
			Expect(st.Snapshot().Density).To(Equal(90))
		})
	})

	Describe("ignored input", func() {
		DescribeTable("never mutates state or requests a redraw",
			func(ev Event) {
				before := st.Snapshot()
				Expect(ctrl.Handle(ev)).To(BeFalse())
				Expect(st.Snapshot()).To(Equal(before))
				Consistently(ctrl.Redraws()).ShouldNot(Receive())
			},
			Entry("other key", Pressed(Ignored)),
			Entry("unknown kind", Pressed(Kind(99))),
			Entry("repeat", Event{Kind: Next, Action: Repeat}),
			Entry("long press", Event{Kind: DensityUp, Action: Long}),
			Entry("release", Event{Kind: Terminate, Action: Release}),
		)
	})

	Describe("redraw requests", func() {
		It("posts a coalesced request on the channel", func() {
			ctrl.Handle(Pressed(Next))
			ctrl.Handle(Pressed(Next))
			Eventually(ctrl.Redraws()).Should(Receive())
			Consistently(ctrl.Redraws()).ShouldNot(Receive())
		})
	})

	Describe("termination", func() {
		It("clears the running flag without a redraw", func() {
			Expect(ctrl.Handle(Pressed(Terminate))).To(BeFalse())
			Expect(st.Running()).To(BeFalse())
		})

		It("ignores everything afterwards", func() {
			ctrl.Handle(Pressed(Terminate))
			before := st.Snapshot()
			for _, k := range []Kind{Next, Previous, DensityUp, DensityDown, Terminate} {
				Expect(ctrl.Handle(Pressed(k))).To(BeFalse())
			}
			Expect(st.Snapshot()).To(Equal(before))
		})
	})

	It("plays the end-to-end scenario", func() {
		ctrl.Handle(Pressed(Next))
		ctrl.Handle(Pressed(Next))
		Expect(st.Snapshot().Pattern).To(Equal(2))

		for i := 0; i < 3; i++ {
			ctrl.Handle(Pressed(DensityDown))
		}
		Expect(st.Snapshot().Density).To(Equal(20))

		ctrl.Handle(Pressed(Terminate))
		Expect(st.Running()).To(BeFalse())
		Expect(ctrl.Handle(Pressed(Next))).To(BeFalse())
		Expect(st.Snapshot().Frame).To(BeZero())
	})
})
