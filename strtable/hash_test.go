package strtable

import "testing"

// -----------------------------------------------------------------------------
// ░░ Known Placement Vectors ░░
// -----------------------------------------------------------------------------

// TestHashKnownVectors pins the DJB2 placements the bucket dump depends on.
// These must never drift: the demo's layout is derived from them.
func TestHashKnownVectors(t *testing.T) {
	vectors := []struct {
		key     string
		buckets int
		want    uint32
	}{
		{"Dennis", 11, 5},
		{"Mac", 11, 0},
		{"Charlie", 11, 2},
		{"Dee", 11, 2}, // collides with Charlie
		{"Frank", 11, 8},
		{"Agamemnon", 11, 0},
		{"Dennis", 101, 30},
		{"Mac", 101, 64},
		{"Charlie", 101, 68},
		{"Dee", 101, 93},
		{"", 11, 2}, // 5381 % 11
	}
	for _, v := range vectors {
		if got := Hash(v.key, v.buckets); got != v.want {
			t.Fatalf("Hash(%q, %d) = %d; want %d", v.key, v.buckets, got, v.want)
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Determinism and Range ░░
// -----------------------------------------------------------------------------

func TestHashDeterministic(t *testing.T) {
	keys := []string{"a", "ab", "abc", "Dennis", "", "日本語", "\x00\xff"}
	for _, k := range keys {
		first := Hash(k, 1009)
		for i := 0; i < 100; i++ {
			if got := Hash(k, 1009); got != first {
				t.Fatalf("Hash(%q) unstable: %d then %d", k, first, got)
			}
		}
	}
}

func TestHashInRange(t *testing.T) {
	for _, buckets := range []int{1, 2, 3, 11, 101, 4096} {
		for _, k := range []string{"", "x", "Charlie", "some longer key with spaces"} {
			if got := Hash(k, buckets); int(got) >= buckets {
				t.Fatalf("Hash(%q, %d) = %d out of range", k, buckets, got)
			}
		}
	}
}

// TestHashSingleBucket confirms every key maps to 0 when only one bucket
// exists — the degenerate table used by the chain-order tests.
func TestHashSingleBucket(t *testing.T) {
	for _, k := range []string{"", "a", "b", "Dennis", "Agamemnon"} {
		if got := Hash(k, 1); got != 0 {
			t.Fatalf("Hash(%q, 1) = %d; want 0", k, got)
		}
	}
}
