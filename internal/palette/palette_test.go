package palette

import (
	"image/color"
	"testing"
)

func TestBucketBoundaries(t *testing.T) {
	cases := []struct {
		v    float64
		want Bucket
	}{
		{0, BucketFree},
		{19.999, BucketFree},
		{20, BucketLight},
		{39.9, BucketLight},
		{40, BucketModerate},
		{59.9, BucketModerate},
		{60, BucketHeavy},
		{79.9, BucketHeavy},
		{80, BucketSevere},
		{100, BucketSevere},
	}
	for _, c := range cases {
		if got := BucketFor(c.v); got != c.want {
			t.Fatalf("BucketFor(%v) = %v, expected %v", c.v, got, c.want)
		}
	}
}

func TestPalettesAreOpaqueAndDistinct(t *testing.T) {
	for _, dark := range []bool{false, true} {
		colors := Colors(dark)
		if len(colors) != NumBuckets {
			t.Fatalf("dark=%v: expected %d colors, got %d", dark, NumBuckets, len(colors))
		}
		seen := map[color.RGBA]bool{}
		for i, c := range colors {
			if c.A != 255 {
				t.Fatalf("dark=%v: bucket %d not opaque: %+v", dark, i, c)
			}
			if seen[c] {
				t.Fatalf("dark=%v: bucket %d duplicates another bucket", dark, i)
			}
			seen[c] = true
		}
	}
	if Colors(true)[0] == Colors(false)[0] {
		t.Fatal("themes should composite over different backgrounds")
	}
}

func TestSevereIsMostlyRed(t *testing.T) {
	c := BucketSevere.Color(true)
	if c.R <= c.G || c.R <= c.B {
		t.Fatalf("expected red to dominate the severe bucket, got %+v", c)
	}
}

func TestColorClampsOutOfRangeBuckets(t *testing.T) {
	if Bucket(-2).Color(false) != BucketFree.Color(false) {
		t.Fatal("negative bucket should clamp to the first color")
	}
	if Bucket(99).Color(false) != BucketSevere.Color(false) {
		t.Fatal("oversized bucket should clamp to the last color")
	}
	if Bucket(99).String() != "bucket(99)" {
		t.Fatalf("unexpected name %q", Bucket(99).String())
	}
}

func TestBlendColorsEndpoints(t *testing.T) {
	a := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	b := color.NRGBA{R: 200, G: 100, B: 0, A: 255}
	if blendColors(a, b, 0) != a || blendColors(a, b, 1) != b {
		t.Fatal("blend endpoints must return the inputs")
	}
	mid := blendColors(a, b, 0.5)
	if mid.R != 105 || mid.G != 60 || mid.B != 15 {
		t.Fatalf("unexpected midpoint %+v", mid)
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{R: 255, G: 8, B: 0, A: 255}); got != "#ff0800" {
		t.Fatalf("unexpected hex %q", got)
	}
}

func TestLegend(t *testing.T) {
	l := Legend()
	if len(l) != 3 || l[0].Label != "Low" || l[2].Bucket != BucketSevere {
		t.Fatalf("unexpected legend %+v", l)
	}
}

func TestLevelFor(t *testing.T) {
	cases := []struct {
		value, max float64
		want       Level
	}{
		{10, 100, LevelGood},
		{29.9, 100, LevelGood},
		{30, 100, LevelModerate},
		{69, 100, LevelModerate},
		{70, 100, LevelPoor},
		{150, 300, LevelModerate},
		{5, 0, LevelPoor},
	}
	for _, c := range cases {
		if got := LevelFor(c.value, c.max); got != c.want {
			t.Fatalf("LevelFor(%v, %v) = %v, expected %v", c.value, c.max, got, c.want)
		}
	}
}
