package tinyrng

import (
	"math"
	"testing"

	set3 "github.com/TomTonic/Set3"
	"github.com/stretchr/testify/assert"
)

func TestXorshift128Plus_SeedZeroState(t *testing.T) {
	rng := NewXorshift128Plus(0)
	x, y := rng.State()
	assert.Equal(t, uint64(0xf4dbdf2183dcefb7), x)
	assert.Equal(t, uint64(0x1ad5be0d6dd28e9b), y)
	assert.Equal(t, uint64(0), rng.Round)
}

func TestXorshift128Plus_FirstOutputs(t *testing.T) {
	rng := NewXorshift128Plus(0)
	assert.Equal(t, uint64(0x99a57b5e061d5cf4), rng.Uint64())
	assert.Equal(t, uint64(0xe17ca185389cd326), rng.Uint64())
	assert.Equal(t, uint64(0x16dbfb8f140c22a6), rng.Uint64())

	rng = NewXorshift128Plus(0)
	assert.Equal(t, uint32(0x99a57b5e), rng.Uint32(), "Uint32 must take the high word")
	assert.Equal(t, uint32(0xe17ca185), rng.Uint32())

	rng = NewXorshift128Plus(42)
	got := []uint32{rng.Uint32(), rng.Uint32(), rng.Uint32(), rng.Uint32()}
	assert.Equal(t, []uint32{0x99a57b5d, 0xe17ca185, 0x16d27b8f, 0x80fefd9a}, got)
}

func TestXorshift128Plus_NeverZeroState(t *testing.T) {
	seeds := []uint64{
		0, 1, 42, math.MaxUint64,
		0xf4dbdf2183dcefb7, // zeroes x
		0x1ad5be0d6dd28e9b, // zeroes y
	}
	for _, seed := range seeds {
		rng := NewXorshift128Plus(seed)
		for i := range 10_000 {
			x, y := rng.State()
			if x == 0 && y == 0 {
				t.Fatalf("seed %#x: all-zero state after %d steps", seed, i)
			}
			rng.Uint64()
		}
	}
}

func TestXorshift128Plus_Reseed(t *testing.T) {
	rng := NewXorshift128Plus(7)
	first := rng.Uint64()
	rng.Uint64()
	rng.Seed(7)
	assert.Equal(t, uint64(0), rng.Round)
	assert.Equal(t, first, rng.Uint64())
}

func TestXorshift128Plus_SeqLength(t *testing.T) {
	rng := NewXorshift128Plus(0x1234567890ABCDEF)
	limit := uint32(2_000_000)
	set := set3.EmptyWithCapacity[uint64](limit * 7 / 5)
	counter := uint32(0)
	for set.Size() < limit {
		set.Add(rng.Uint64())
		counter++
	}
	assert.True(t, counter == limit, "sequence < limit")
}

func TestXorshift128Plus_Determinism(t *testing.T) {
	state1 := NewXorshift128Plus(0x1234567890ABCDEF)
	state2 := NewXorshift128Plus(0x1234567890ABCDEF) // two different instances with the same seed
	limit := 100_000
	for i := range limit {
		v1 := state1.Uint64()
		v2 := state2.Uint64()
		if v1 != v2 {
			t.Fatalf("out of sync: values not equal in round %d", i)
		}
	}
	_ = state2.Uint64() // skip one value to get both prng out of sync
	for i := range limit {
		v1 := state1.Uint64()
		v2 := state2.Uint64()
		if v1 == v2 {
			t.Fatalf("in sync: values equal in round %d", i)
		}
	}
	_ = state1.Uint64() // get both prng back in sync
	for i := range limit {
		v1 := state1.Uint64()
		v2 := state2.Uint64()
		if v1 != v2 {
			t.Fatalf("out of sync: values not equal in round %d", i)
		}
	}
	assert.Equal(t, state1.Round, state2.Round)
}
