package image

import (
	"testing"

	"github.com/ajroetker/go-stackblur/hwy"
)

func TestNewImage(t *testing.T) {
	img := NewImage[uint32](100, 50)

	if img.Width() != 100 {
		t.Errorf("Width: got %d, want 100", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Height: got %d, want 50", img.Height())
	}

	// Stride should be >= width and aligned to vector width
	lanes := hwy.MaxLanes[uint32]()
	if img.Stride() < 100 {
		t.Errorf("Stride: got %d, want >= 100", img.Stride())
	}
	if img.Stride()%lanes != 0 {
		t.Errorf("Stride not aligned: got %d, want multiple of %d", img.Stride(), lanes)
	}
	if img.BytesPerRow() != img.Stride()*4 {
		t.Errorf("BytesPerRow: got %d, want %d", img.BytesPerRow(), img.Stride()*4)
	}
}

func TestNewImage_ZeroDimensions(t *testing.T) {
	img := NewImage[uint32](0, 0)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", img.Width(), img.Height())
	}

	img = NewImage[uint32](-1, 10)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Negative width: got %dx%d, want 0x0", img.Width(), img.Height())
	}
}

func TestNewImage_StructPixels(t *testing.T) {
	type rgb struct{ r, g, b uint8 }

	img := NewImage[rgb](7, 3)
	img.Set(6, 2, rgb{1, 2, 3})
	if got := img.At(6, 2); got != (rgb{1, 2, 3}) {
		t.Errorf("At(6,2): got %v, want {1 2 3}", got)
	}
	if img.Stride() < 7 {
		t.Errorf("Stride: got %d, want >= 7", img.Stride())
	}
}

func TestFromSlice(t *testing.T) {
	data := []uint32{
		1, 2, 3, 99,
		4, 5, 6, 99,
		7, 8, 9,
	}
	img := FromSlice(data, 3, 3, 4)

	if got := img.At(2, 2); got != 9 {
		t.Errorf("At(2,2): got %d, want 9", got)
	}

	// Writes alias the caller's buffer
	img.Set(0, 1, 40)
	if data[4] != 40 {
		t.Errorf("data[4]: got %d, want 40", data[4])
	}

	// Last row is shorter than stride
	if row := img.Row(2); len(row) != 3 {
		t.Errorf("Row(2) length: got %d, want 3", len(row))
	}
}

func TestFromSlice_Panics(t *testing.T) {
	tests := []struct {
		name                  string
		size                  int
		width, height, stride int
	}{
		{"stride below width", 16, 4, 4, 3},
		{"buffer too short", 10, 4, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("FromSlice did not panic")
				}
			}()
			FromSlice(make([]uint32, tt.size), tt.width, tt.height, tt.stride)
		})
	}
}

func TestImage_Row(t *testing.T) {
	img := NewImage[uint32](10, 5)

	// Set values in first row
	row0 := img.Row(0)
	for i := range 10 {
		row0[i] = uint32(i)
	}

	// Read back
	for i := range 10 {
		if got := img.At(i, 0); got != uint32(i) {
			t.Errorf("At(%d,0): got %v, want %v", i, got, i)
		}
	}

	// Different row should be independent
	row1 := img.Row(1)
	row1[0] = 999
	if row0[0] == 999 {
		t.Error("Rows should be independent")
	}

	// Out of bounds
	if img.Row(-1) != nil {
		t.Error("Row(-1) should return nil")
	}
	if img.Row(5) != nil {
		t.Error("Row(5) should return nil")
	}
}

func TestImage_RowSlice(t *testing.T) {
	img := NewImage[uint32](10, 5)

	rowSlice := img.RowSlice(0)
	if len(rowSlice) != 10 {
		t.Errorf("RowSlice length: got %d, want 10", len(rowSlice))
	}

	fullRow := img.Row(0)
	if len(fullRow) < 10 {
		t.Errorf("Row length: got %d, want >= 10", len(fullRow))
	}
}

func TestImage_AtSet(t *testing.T) {
	img := NewImage[uint32](10, 10)

	img.Set(5, 7, 42)
	if got := img.At(5, 7); got != 42 {
		t.Errorf("At(5,7): got %v, want 42", got)
	}

	// Out of bounds should return zero
	if got := img.At(-1, 0); got != 0 {
		t.Errorf("At(-1,0): got %v, want 0", got)
	}
	if got := img.At(0, -1); got != 0 {
		t.Errorf("At(0,-1): got %v, want 0", got)
	}
	if got := img.At(10, 0); got != 0 {
		t.Errorf("At(10,0): got %v, want 0", got)
	}

	// Set out of bounds should be no-op
	img.Set(-1, 0, 999)
	img.Set(10, 0, 999)
}

func TestImage_Clone(t *testing.T) {
	img := NewImage[uint32](10, 10)
	img.Set(5, 5, 42)

	clone := img.Clone()

	if !SameSize(clone, img) {
		t.Error("Clone dimensions differ")
	}
	if clone.At(5, 5) != 42 {
		t.Errorf("Clone data: got %v, want 42", clone.At(5, 5))
	}

	// Should be independent
	clone.Set(5, 5, 100)
	if img.At(5, 5) != 42 {
		t.Error("Clone should be independent")
	}
}

func TestImage_ClearFill(t *testing.T) {
	img := NewImage[uint32](10, 10)

	img.Fill(42)
	for y := range 10 {
		for x := range 10 {
			if img.At(x, y) != 42 {
				t.Errorf("Fill: At(%d,%d) = %v, want 42", x, y, img.At(x, y))
			}
		}
	}

	img.Clear()
	for y := range 10 {
		for x := range 10 {
			if img.At(x, y) != 0 {
				t.Errorf("Clear: At(%d,%d) = %v, want 0", x, y, img.At(x, y))
			}
		}
	}
}

func TestImage_SubImage(t *testing.T) {
	img := NewImage[uint32](8, 6)
	sub := img.SubImage(Rect{X0: 2, Y0: 1, X1: 5, Y1: 4})

	if sub.Width() != 3 || sub.Height() != 3 {
		t.Fatalf("SubImage dimensions: got %dx%d, want 3x3", sub.Width(), sub.Height())
	}

	// Shares storage with the parent
	sub.Fill(7)
	for y := range 6 {
		for x := range 8 {
			want := uint32(0)
			if x >= 2 && x < 5 && y >= 1 && y < 4 {
				want = 7
			}
			if got := img.At(x, y); got != want {
				t.Errorf("At(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}

	// Clipped to the parent bounds
	clipped := img.SubImage(Rect{X0: 6, Y0: 4, X1: 100, Y1: 100})
	if clipped.Width() != 2 || clipped.Height() != 2 {
		t.Errorf("Clipped dimensions: got %dx%d, want 2x2", clipped.Width(), clipped.Height())
	}

	empty := img.SubImage(Rect{X0: 20, Y0: 20, X1: 30, Y1: 30})
	if empty.Width() != 0 || empty.Height() != 0 {
		t.Errorf("Disjoint SubImage: got %dx%d, want 0x0", empty.Width(), empty.Height())
	}
}

func TestImage_Bounds(t *testing.T) {
	img := NewImage[uint32](100, 50)
	bounds := img.Bounds()

	if bounds.X0 != 0 || bounds.Y0 != 0 {
		t.Errorf("Bounds origin: got (%d,%d), want (0,0)", bounds.X0, bounds.Y0)
	}
	if bounds.Width() != 100 || bounds.Height() != 50 {
		t.Errorf("Bounds dimensions: got %dx%d, want 100x50", bounds.Width(), bounds.Height())
	}
}

func TestRect_Intersect(t *testing.T) {
	a := Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}
	b := Rect{X0: 50, Y0: 50, X1: 150, Y1: 150}

	intersect := a.Intersect(b)

	if intersect.X0 != 50 || intersect.Y0 != 50 {
		t.Errorf("Intersect origin: got (%d,%d), want (50,50)", intersect.X0, intersect.Y0)
	}
	if intersect.X1 != 100 || intersect.Y1 != 100 {
		t.Errorf("Intersect end: got (%d,%d), want (100,100)", intersect.X1, intersect.Y1)
	}

	// Non-overlapping
	c := Rect{X0: 200, Y0: 200, X1: 300, Y1: 300}
	if !a.Intersect(c).IsEmpty() {
		t.Error("Non-overlapping rects should have empty intersection")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		index, size, want int
	}{
		{0, 10, 0},
		{5, 10, 5},
		{9, 10, 9},
		{10, 10, 9},  // Clamp high
		{100, 10, 9}, // Clamp very high
		{-1, 10, 0},  // Clamp low
		{-100, 10, 0},
	}

	for _, tt := range tests {
		got := Clamp(tt.index, tt.size)
		if got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.index, tt.size, got, tt.want)
		}
	}
}

// Benchmarks

func BenchmarkNewImage(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = NewImage[uint32](1920, 1080)
	}
}

func BenchmarkImage_Fill(b *testing.B) {
	img := NewImage[uint32](1920, 1080)

	b.ReportAllocs()

	for b.Loop() {
		img.Fill(42)
	}
}

func BenchmarkImage_Clone(b *testing.B) {
	img := NewImage[uint32](1920, 1080)
	img.Fill(42)

	b.ReportAllocs()

	for b.Loop() {
		_ = img.Clone()
	}
}
