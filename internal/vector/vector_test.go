package vector

import (
	"cmp"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type point struct {
	X, Y int32
}

func comparePoints(a, b point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

var _ = Describe("Vector", func() {
	Describe("Insert and Remove", func() {
		It("inserts in the middle and removes it again", func() {
			v, err := From([]string{"A", "C"})
			Expect(err).NotTo(HaveOccurred())

			Expect(v.Insert(1, "B")).To(Succeed())
			Expect(v.Data()).To(Equal([]string{"A", "B", "C"}))

			Expect(v.Remove(1)).To(Equal("B"))
			Expect(v.Data()).To(Equal([]string{"A", "C"}))
		})

		It("accepts the end position and rejects anything past it", func() {
			v, _ := New[int](1)
			Expect(v.Insert(0, 1)).To(Succeed())
			Expect(v.Insert(1, 2)).To(Succeed())
			Expect(v.Insert(0, 0)).To(Succeed())
			Expect(v.Data()).To(Equal([]int{0, 1, 2}))

			Expect(v.Insert(5, 9)).To(MatchError(ErrIndexOutOfRange))
			Expect(v.Insert(-1, 9)).To(MatchError(ErrIndexOutOfRange))
			_, err := v.Remove(3)
			Expect(err).To(MatchError(ErrIndexOutOfRange))
			Expect(v.Size()).To(Equal(3))
		})

		It("leaves the vector unchanged when growth fails", func() {
			v, _ := From([]int{1, 2})
			failAllocations()
			Expect(v.Insert(1, 5)).To(MatchError(ErrAllocation))
			Expect(v.Data()).To(Equal([]int{1, 2}))
			Expect(v.Capacity()).To(Equal(2))
		})
	})

	Describe("Push and Pop", func() {
		It("copies structs in and out", func() {
			v, _ := New[point](0)
			p := point{1, 2}
			Expect(v.Push(p)).To(Succeed())
			p.X = 99
			Expect(v.Get(0)).To(Equal(point{1, 2}))

			Expect(v.Pop()).To(Equal(point{1, 2}))
			_, err := v.Pop()
			Expect(err).To(MatchError(ErrEmpty))
		})

		It("applies the same shrink hysteresis as IntVector", func() {
			v, _ := New[int](32)
			for i := range 9 {
				Expect(v.Push(i)).To(Succeed())
			}
			_, _ = v.Pop()
			_, _ = v.Pop()
			Expect(v.Capacity()).To(Equal(16))
			_, _ = v.Pop()
			Expect(v.Capacity()).To(Equal(16))
		})
	})

	Describe("Reserve and ShrinkToFit", func() {
		It("grows without changing the size", func() {
			v, _ := From([]int{1, 2, 3})
			Expect(v.Reserve(100)).To(Succeed())
			Expect(v.Capacity()).To(Equal(100))
			Expect(v.Size()).To(Equal(3))

			Expect(v.Reserve(10)).To(Succeed())
			Expect(v.Capacity()).To(Equal(100))
			Expect(v.Reserve(-1)).To(MatchError(ErrInvalidCapacity))
		})

		It("trims to the size, keeping at least one slot", func() {
			v, _ := New[int](64)
			Expect(v.Push(7)).To(Succeed())
			Expect(v.Push(8)).To(Succeed())
			Expect(v.ShrinkToFit()).To(Succeed())
			Expect(v.Capacity()).To(Equal(2))
			Expect(v.Data()).To(Equal([]int{7, 8}))

			v.Clear()
			Expect(v.ShrinkToFit()).To(Succeed())
			Expect(v.Capacity()).To(Equal(1))
			Expect(v.Push(1)).To(Succeed())
			Expect(v.Push(2)).To(Succeed())
			Expect(v.Capacity()).To(Equal(2))
		})
	})

	Describe("Find and Sort", func() {
		It("finds the first match or reports NotFound", func() {
			v, _ := From([]point{{1, 1}, {2, 2}, {1, 1}})
			Expect(v.Find(point{1, 1}, comparePoints)).To(Equal(0))
			Expect(v.Find(point{2, 2}, comparePoints)).To(Equal(1))
			Expect(v.Find(point{3, 3}, comparePoints)).To(Equal(NotFound))
			Expect(v.Find(point{1, 1}, nil)).To(Equal(NotFound))
		})

		It("sorts in place with the comparator", func() {
			v, _ := From([]string{"pear", "apple", "fig", "banana"})
			Expect(v.Sort(strings.Compare)).To(Succeed())
			Expect(v.Data()).To(Equal([]string{"apple", "banana", "fig", "pear"}))
			Expect(v.Sort(nil)).To(MatchError(ErrNilFunc))
		})

		It("only sorts the occupied range", func() {
			v, _ := New[int](16)
			for _, x := range []int{3, 1, 2} {
				Expect(v.Push(x)).To(Succeed())
			}
			Expect(v.Sort(cmp.Compare[int])).To(Succeed())
			Expect(v.Data()).To(Equal([]int{1, 2, 3}))
			Expect(v.Capacity()).To(Equal(16))
		})
	})

	Describe("Foreach", func() {
		It("visits every element in order and allows in-place edits", func() {
			v, _ := From([]int{1, 2, 3})
			var seen []int
			v.Foreach(func(elem *int, userData any) {
				seen = append(seen, *elem)
				*elem *= userData.(int)
			}, 10)
			Expect(seen).To(Equal([]int{1, 2, 3}))
			Expect(v.Data()).To(Equal([]int{10, 20, 30}))
		})
	})

	Describe("Clone", func() {
		It("produces an independent copy", func() {
			v, _ := From([]int{4, 5, 6})
			c, err := v.Clone()
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Size()).To(Equal(v.Size()))
			Expect(c.Data()).To(Equal(v.Data()))

			Expect(c.Set(0, 40)).To(Succeed())
			Expect(c.Push(7)).To(Succeed())
			Expect(v.Data()).To(Equal([]int{4, 5, 6}))
		})

		It("clones an empty vector", func() {
			v, _ := New[int](0)
			c, err := v.Clone()
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Empty()).To(BeTrue())
		})
	})

	Describe("direct access", func() {
		It("returns nil on an empty vector", func() {
			v, _ := New[int](0)
			Expect(v.At(0)).To(BeNil())
			Expect(v.Front()).To(BeNil())
			Expect(v.Back()).To(BeNil())
			Expect(v.Data()).To(BeEmpty())
		})

		It("writes through to the buffer", func() {
			v, _ := From([]int{1, 2, 3})
			*v.Front() = 10
			*v.Back() = 30
			*v.At(1) = 20
			Expect(v.Data()).To(Equal([]int{10, 20, 30}))
		})

		It("keeps Data from aliasing appends", func() {
			v, _ := New[int](8)
			Expect(v.Push(1)).To(Succeed())
			d := append(v.Data(), 2)
			Expect(d).To(Equal([]int{1, 2}))
			Expect(v.Size()).To(Equal(1))
			Expect(v.Push(3)).To(Succeed())
			Expect(d[1]).To(Equal(2))
		})
	})

	It("reports the element width", func() {
		v, _ := New[int64](0)
		Expect(v.ElementSize()).To(Equal(uintptr(8)))
		p, _ := New[point](0)
		Expect(p.ElementSize()).To(Equal(uintptr(8)))
	})

	It("treats nil as empty for queries", func() {
		var v *Vector[int]
		Expect(v.Size()).To(Equal(0))
		Expect(v.Empty()).To(BeTrue())
		Expect(v.At(0)).To(BeNil())
		Expect(v.Find(1, cmp.Compare[int])).To(Equal(NotFound))
		Expect(v.Push(1)).To(MatchError(ErrNilVector))
		_, err := v.Clone()
		Expect(err).To(MatchError(ErrNilVector))
	})
})
