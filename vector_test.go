package vector

import (
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var v Vector[int]
	assert.True(t, v.Empty())
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Nil(t, v.Data())
	assert.True(t, v.Begin().Equal(v.End()))
	assert.True(t, v.RBegin().Equal(v.REnd()))

	v.PushBack(7)
	assert.Equal(t, []int{7}, forward(&v))
}

func TestNewDoesNotAllocate(t *testing.T) {
	v := New[string]()
	assert.Equal(t, 0, v.Cap())
	assert.Equal(t, Stats{}, v.Stats())
}

func TestPushBackPreservesOrder(t *testing.T) {
	v := New[int]()
	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int{1, 2, 3}, forward(v))
	assert.Equal(t, []int{3, 2, 1}, backward(v))
}

func TestPushBackGrowthIsAmortized(t *testing.T) {
	const n = 1000
	v := New[int]()
	for i := 0; i < n; i++ {
		v.PushBack(i)
		require.GreaterOrEqual(t, v.Cap(), v.Len())
	}

	stats := v.Stats()
	assert.Equal(t, 1024, v.Cap())
	assert.Equal(t, 11, stats.Allocations)
	assert.Equal(t, 1023, stats.Relocations)
	assert.Less(t, stats.Relocations, 2*n)
	assert.Equal(t, n, stats.Constructions)
}

func TestNewSizedAndFilled(t *testing.T) {
	sized := NewSized[int](4)
	assert.Equal(t, []int{0, 0, 0, 0}, forward(sized))
	assert.Equal(t, 4, sized.Cap())

	filled := NewFilled(3, "x")
	assert.Equal(t, []string{"x", "x", "x"}, forward(filled))

	empty := NewSized[int](0)
	assert.True(t, empty.Empty())
	assert.Equal(t, 0, empty.Stats().Allocations)
}

func TestOfAndFromSliceCopyInput(t *testing.T) {
	items := []int{1, 2, 3}
	v := FromSlice(items)
	items[0] = 100

	assert.Equal(t, []int{1, 2, 3}, forward(v))
	assert.Equal(t, []int{4, 5}, forward(Of(4, 5)))
	assert.True(t, Of[int]().Empty())
}

func TestCloneIsIndependent(t *testing.T) {
	a := Of(1, 2, 3)
	b := a.Clone()
	b.Set(0, 100)

	assert.Equal(t, []int{1, 2, 3}, forward(a))
	assert.Equal(t, []int{100, 2, 3}, forward(b))
	assert.Equal(t, a.Cap(), b.Cap())
}

func TestCopyFromReplacesContents(t *testing.T) {
	dst := Of(9, 9, 9, 9, 9)
	src := Of(1, 2)

	dst.CopyFrom(src)
	assert.Equal(t, []int{1, 2}, forward(dst))
	src.Set(0, 50)
	assert.Equal(t, 1, dst.Front())

	dst.CopyFrom(dst)
	assert.Equal(t, []int{1, 2}, forward(dst))
}

func TestMoveLeavesSourceEmpty(t *testing.T) {
	src := Of("a", "b", "c")
	data := src.Data()

	dst := Move(src)
	assert.Equal(t, []string{"a", "b", "c"}, forward(dst))
	assert.True(t, src.Empty())
	assert.Equal(t, 0, src.Cap())
	assert.Same(t, &data[0], dst.Ptr(0))

	src.PushBack("d")
	assert.Equal(t, []string{"d"}, forward(src))
	assert.Equal(t, 3, dst.Len())
}

func TestMoveFromReleasesDestination(t *testing.T) {
	dst := Of(1, 2, 3)
	src := Of(4)
	dst.MoveFrom(src)

	assert.Equal(t, []int{4}, forward(dst))
	assert.True(t, src.Empty())

	dst.MoveFrom(dst)
	assert.Equal(t, []int{4}, forward(dst))
}

func TestSwapExchangesStorage(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(9)
	idA, idB := a.ID(), b.ID()

	a.Swap(b)
	assert.Equal(t, []int{9}, forward(a))
	assert.Equal(t, []int{1, 2, 3}, forward(b))
	assert.Equal(t, 3, b.Stats().Constructions)
	assert.Equal(t, idA, a.ID())
	assert.Equal(t, idB, b.ID())

	a.Swap(a)
	assert.Equal(t, []int{9}, forward(a))
}

func TestDestroyLeavesUsableEmptyVector(t *testing.T) {
	v := Of(1, 2, 3)
	v.Destroy()

	assert.True(t, v.Empty())
	assert.Equal(t, 0, v.Cap())
	assert.Equal(t, 3, v.Stats().Destructions)

	v.PushBack(4)
	assert.Equal(t, []int{4}, forward(v))
}

func TestIDIsStable(t *testing.T) {
	v := New[int]()
	id := v.ID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, v.ID())
	assert.NotEqual(t, id, New[int]().ID())
}

func TestReserveKeepsContents(t *testing.T) {
	v := Of(1, 2, 3)
	v.Reserve(100)

	assert.GreaterOrEqual(t, v.Cap(), 100)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int{1, 2, 3}, forward(v))
}

func TestRandomOperationsKeepCapacityAboveSize(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	v := New[int]()
	var model []int

	for i := 0; i < 2000; i++ {
		switch op := rng.IntN(6); {
		case op <= 2:
			v.PushBack(i)
			model = append(model, i)
		case op == 3 && len(model) > 0:
			v.PopBack()
			model = model[:len(model)-1]
		case op == 4:
			at := rng.IntN(len(model) + 1)
			v.Insert(v.CBegin().Add(at), -i)
			model = append(model[:at], append([]int{-i}, model[at:]...)...)
		case op == 5 && len(model) > 0:
			from := rng.IntN(len(model))
			to := from + rng.IntN(len(model)-from+1)
			v.Erase(v.Begin().Add(from), v.Begin().Add(to))
			model = append(model[:from], model[to:]...)
		}
		require.GreaterOrEqual(t, v.Cap(), v.Len())
		require.Equal(t, len(model), v.Len())
	}
	if len(model) == 0 {
		model = []int{}
	}
	assert.Equal(t, model, forward(v))
}

type tracked struct {
	label  *string
	clones *int
}

func (t tracked) Clone() tracked {
	*t.clones++
	label := *t.label
	return tracked{label: &label, clones: t.clones}
}

func TestClonerRunsOnEveryCopy(t *testing.T) {
	clones := 0
	label := "a"
	item := tracked{label: &label, clones: &clones}

	v := New[tracked]()
	v.PushBack(item)
	assert.Equal(t, 1, clones)
	assert.NotSame(t, item.label, v.Front().label)

	copied := v.Clone()
	assert.Equal(t, 2, clones)
	*copied.Front().label = "b"
	assert.Equal(t, "a", *v.Front().label)

	v.Reserve(16)
	assert.Equal(t, 2, clones, "relocation moves elements")
}

func TestDeepCopyDuplicatesReferences(t *testing.T) {
	type record struct {
		Tags  []string
		Attrs map[string]int
	}
	src := record{Tags: []string{"a"}, Attrs: map[string]int{"n": 1}}

	deep := New[record](WithDeepCopy())
	deep.PushBack(src)
	src.Tags[0] = "changed"
	src.Attrs["n"] = 2

	assert.Equal(t, "a", deep.Front().Tags[0])
	assert.Equal(t, 1, deep.Front().Attrs["n"])

	shallow := New[record]()
	shallow.PushBack(src)
	src.Tags[0] = "again"
	assert.Equal(t, "again", shallow.Front().Tags[0])
}

type link struct {
	Label string
	Next  *link
}

func TestDeepCopyCyclicElement(t *testing.T) {
	n := &link{Label: "loop"}
	n.Next = n

	v := New[*link](WithDeepCopy())
	v.PushBack(n)

	stored := v.Front()
	require.NotSame(t, n, stored)
	assert.Same(t, stored, stored.Next)
	assert.Equal(t, "loop", stored.Label)
}
