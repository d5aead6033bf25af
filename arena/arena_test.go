package arena_test

import (
	"slices"
	"testing"

	"github.com/pwbh/unsafe-linked-list/arena"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestAllocGetFree(t *testing.T) {
	assert := assert.New(t)
	a := arena.New[string]()

	r1 := a.Alloc("a")
	r2 := a.Alloc("b")
	assert.NotEqual(arena.Nil, r1)
	assert.NotEqual(r1, r2)
	assert.Equal("a", *a.Get(r1))
	assert.Equal("b", *a.Get(r2))
	assert.Equal(uint64(2), a.Live())

	assert.Equal("a", a.Free(r1))
	assert.False(a.IsLive(r1))
	assert.True(a.IsLive(r2))
	assert.Equal(uint64(2), a.Allocs())
	assert.Equal(uint64(1), a.Frees())
	assert.Equal(uint64(1), a.Live())
}

func TestFreeListReuse(t *testing.T) {
	assert := assert.New(t)
	a := arena.New[uint64]()

	r := a.Alloc(1)
	a.Free(r)
	// the released slot is handed out again before the arena grows
	assert.Equal(r, a.Alloc(2))
	assert.Equal(uint64(2), *a.Get(r))
}

func TestPointerStableAcrossGrowth(t *testing.T) {
	assert := assert.New(t)
	a := arena.New[uint64]()

	r := a.Alloc(7)
	p := a.Get(r)
	for i := uint64(0); i < 4*arena.ChunkSize; i++ {
		a.Alloc(i)
	}
	*p = 8
	assert.Equal(uint64(8), *a.Get(r))
}

func TestIsLiveNil(t *testing.T) {
	a := arena.New[uint64]()
	assert.False(t, a.IsLive(arena.Nil))
	assert.False(t, a.IsLive(arena.Ref(3)), "never allocated")
}

func TestMisuse(t *testing.T) {
	assert := assert.New(t)
	a := arena.New[uint64]()
	r := a.Alloc(1)
	a.Free(r)

	assert.Panics(func() { a.Free(r) }, "double free")
	assert.Panics(func() { a.Get(r) }, "use after free")
	assert.Panics(func() { a.Get(arena.Nil) }, "nil dereference")
	assert.Panics(func() { a.Get(arena.Ref(100)) }, "out of range")
}

func TestArenaProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := arena.New[uint64]()
		model := make(map[arena.Ref]uint64)

		t.Repeat(map[string]func(*rapid.T){
			"alloc": func(t *rapid.T) {
				v := rapid.Uint64().Draw(t, "v")
				r := a.Alloc(v)
				_, dup := model[r]
				assert.False(t, dup, "live slot handed out twice")
				model[r] = v
			},
			"free": func(t *rapid.T) {
				if len(model) == 0 {
					t.Skip("nothing allocated")
				}
				refs := make([]arena.Ref, 0, len(model))
				for r := range model {
					refs = append(refs, r)
				}
				slices.Sort(refs)
				r := rapid.SampledFrom(refs).Draw(t, "r")
				assert.Equal(t, model[r], a.Free(r))
				delete(model, r)
			},
			"": func(t *rapid.T) {
				assert.Equal(t, uint64(len(model)), a.Live())
				for r, v := range model {
					assert.Equal(t, v, *a.Get(r))
				}
			},
		})
	})
}
