package vector

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IntVector", func() {
	Describe("NewInt", func() {
		It("starts empty with the requested capacity", func() {
			v, err := NewInt(5)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Size()).To(Equal(0))
			Expect(v.Capacity()).To(Equal(5))
		})

		It("coerces a zero capacity to the default", func() {
			v, err := NewInt(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Capacity()).To(Equal(DefaultCapacity))
			Expect(v.Push(42)).To(Succeed())
		})

		It("rejects a negative capacity", func() {
			_, err := NewInt(-1)
			Expect(err).To(MatchError(ErrInvalidCapacity))
		})

		It("reports allocation failure", func() {
			failAllocations()
			_, err := NewInt(4)
			Expect(err).To(MatchError(ErrAllocation))
		})
	})

	Describe("Push", func() {
		It("grows past the initial capacity", func() {
			v, _ := NewInt(2)
			Expect(v.Push(10)).To(Succeed())
			Expect(v.Push(20)).To(Succeed())
			Expect(v.Push(30)).To(Succeed())

			Expect(v.Size()).To(Equal(3))
			Expect(v.Capacity()).To(BeNumerically(">=", 3))
			Expect(v.Get(2)).To(Equal(int32(30)))
		})

		It("doubles the capacity when full", func() {
			v, _ := NewInt(3)
			for i := int32(0); i < 4; i++ {
				Expect(v.Push(i)).To(Succeed())
			}
			Expect(v.Capacity()).To(Equal(6))
		})

		It("keeps every value in insertion order for any starting capacity", func() {
			for c := 1; c <= 20; c++ {
				v, err := NewInt(c)
				Expect(err).NotTo(HaveOccurred())
				for i := 0; i <= c; i++ {
					Expect(v.Push(int32(i * 7))).To(Succeed())
				}
				Expect(v.Size()).To(Equal(c + 1))
				for i := 0; i <= c; i++ {
					Expect(v.Get(i)).To(Equal(int32(i * 7)))
				}
			}
		})

		It("leaves the vector unchanged when growth fails", func() {
			v, _ := NewInt(2)
			Expect(v.Push(1)).To(Succeed())
			Expect(v.Push(2)).To(Succeed())

			failAllocations()
			Expect(v.Push(3)).To(MatchError(ErrAllocation))
			Expect(v.Size()).To(Equal(2))
			Expect(v.Capacity()).To(Equal(2))
			Expect(v.Values()).To(Equal([]int32{1, 2}))
		})
	})

	Describe("Pop", func() {
		It("returns values last-in first-out and fails when empty", func() {
			v, _ := NewInt(2)
			for _, x := range []int32{10, 20, 30} {
				Expect(v.Push(x)).To(Succeed())
			}
			Expect(v.Pop()).To(Equal(int32(30)))
			Expect(v.Pop()).To(Equal(int32(20)))
			Expect(v.Pop()).To(Equal(int32(10)))
			Expect(v.Size()).To(Equal(0))

			_, err := v.Pop()
			Expect(err).To(MatchError(ErrEmpty))
			Expect(v.Size()).To(Equal(0))
		})

		It("halves the capacity once below a quarter and not again on the next pop", func() {
			v, _ := NewInt(32)
			for i := int32(0); i < 9; i++ {
				Expect(v.Push(i)).To(Succeed())
			}

			_, _ = v.Pop() // size 8 == 32/4
			Expect(v.Capacity()).To(Equal(32))

			_, _ = v.Pop() // size 7 < 8
			Expect(v.Capacity()).To(Equal(16))

			_, _ = v.Pop() // size 6, threshold now 4
			Expect(v.Capacity()).To(Equal(16))
			Expect(v.Values()).To(Equal([]int32{0, 1, 2, 3, 4, 5}))
		})

		It("never shrinks below the default capacity", func() {
			v, _ := NewInt(DefaultCapacity)
			Expect(v.Push(1)).To(Succeed())
			_, _ = v.Pop()
			Expect(v.Capacity()).To(Equal(DefaultCapacity))
		})

		It("still pops when the shrink allocation fails", func() {
			v, _ := NewInt(32)
			for i := int32(0); i < 8; i++ {
				Expect(v.Push(i)).To(Succeed())
			}

			failAllocations()
			Expect(v.Pop()).To(Equal(int32(7)))
			Expect(v.Size()).To(Equal(7))
			Expect(v.Capacity()).To(Equal(32))
		})
	})

	Describe("Get and Set", func() {
		var v *IntVector

		BeforeEach(func() {
			v, _ = NewInt(3)
			for _, x := range []int32{100, 200, 300} {
				Expect(v.Push(x)).To(Succeed())
			}
		})

		It("reads and overwrites in range", func() {
			Expect(v.Get(0)).To(Equal(int32(100)))
			Expect(v.Set(1, 250)).To(Succeed())
			Expect(v.Get(1)).To(Equal(int32(250)))
		})

		It("rejects indices outside the occupied range", func() {
			_, err := v.Get(5)
			Expect(err).To(MatchError(ErrIndexOutOfRange))
			_, err = v.Get(-1)
			Expect(err).To(MatchError(ErrIndexOutOfRange))
			Expect(v.Set(3, 500)).To(MatchError(ErrIndexOutOfRange))
			Expect(v.Values()).To(Equal([]int32{100, 200, 300}))
		})

		It("reports the index and size", func() {
			_, err := v.Get(7)
			var ie *IndexError
			Expect(err).To(BeAssignableToTypeOf(ie))
			Expect(err.Error()).To(Equal("vector: get index 7 out of range [0,3)"))
		})
	})

	Describe("nil vector", func() {
		var v *IntVector

		It("answers queries as empty", func() {
			Expect(v.Size()).To(Equal(0))
			Expect(v.Capacity()).To(Equal(0))
			_, err := v.Get(0)
			Expect(err).To(MatchError(ErrIndexOutOfRange))
		})

		It("fails mutating calls", func() {
			Expect(v.Push(1)).To(MatchError(ErrNilVector))
			Expect(v.Set(0, 1)).To(MatchError(ErrNilVector))
			_, err := v.Pop()
			Expect(err).To(MatchError(ErrNilVector))
		})

		It("tolerates Destroy", func() {
			Expect(v.Destroy).NotTo(Panic())
		})
	})

	It("renders as a bracketed list with size and capacity", func() {
		v, _ := NewInt(4)
		Expect(v.Push(1)).To(Succeed())
		Expect(v.Push(-2)).To(Succeed())
		Expect(v.String()).To(Equal("Vector[2/4]: [1, -2]"))
	})

	It("can be reused after Destroy", func() {
		v, _ := NewInt(4)
		Expect(v.Push(1)).To(Succeed())
		v.Destroy()
		Expect(v.Size()).To(Equal(0))
		Expect(v.Push(9)).To(Succeed())
		Expect(v.Capacity()).To(Equal(DefaultCapacity))
	})
})
