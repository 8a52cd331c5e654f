package image

import (
	"slices"
	"testing"
)

// numbered returns a width x height image whose pixel (x, y) holds 100*y + x.
func numbered(width, height int) *Image[int] {
	img := NewImage[int](width, height)
	for y := range height {
		for x := range width {
			img.Set(x, y, 100*y+x)
		}
	}
	return img
}

func TestLines_Horizontal(t *testing.T) {
	img := numbered(3, 2)

	var got [][]int
	for line := range img.Lines(Horizontal) {
		got = append(got, slices.Collect(line.Values()))
	}

	want := [][]int{{0, 1, 2}, {100, 101, 102}}
	if !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestLines_Vertical(t *testing.T) {
	img := numbered(3, 2)

	var got [][]int
	for line := range img.Lines(Vertical) {
		got = append(got, slices.Collect(line.Values()))
	}

	want := [][]int{{0, 100}, {1, 101}, {2, 102}}
	if !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Errorf("columns = %v, want %v", got, want)
	}
}

func TestLine_Set(t *testing.T) {
	img := numbered(3, 3)

	for line := range img.Lines(Vertical) {
		if line.Len() != 3 {
			t.Fatalf("column length = %d, want 3", line.Len())
		}
		line.Set(1, -line.At(1))
	}

	for x := range 3 {
		if got, want := img.At(x, 1), -(100 + x); got != want {
			t.Errorf("At(%d,1) = %d, want %d", x, got, want)
		}
	}
}

func TestLines_EarlyStop(t *testing.T) {
	img := numbered(4, 4)

	count := 0
	for range img.Lines(Horizontal) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("visited %d lines, want 2", count)
	}
}

func TestLines_Empty(t *testing.T) {
	img := NewImage[int](0, 0)
	for range img.Lines(Horizontal) {
		t.Fatal("empty image yielded a row")
	}
	for range img.Bands(Vertical, 4) {
		t.Fatal("empty image yielded a band")
	}
}

func TestBands_Partition(t *testing.T) {
	tests := []struct {
		name   string
		axis   Axis
		width  int
		height int
		lanes  int
		want   []int // band widths in order
	}{
		{"rows exact", Horizontal, 5, 8, 4, []int{4, 4}},
		{"rows remainder", Horizontal, 5, 10, 4, []int{4, 4, 1, 1}},
		{"columns remainder", Vertical, 6, 2, 4, []int{4, 1, 1}},
		{"fewer lines than lanes", Vertical, 3, 2, 8, []int{1, 1, 1}},
		{"zero lanes", Horizontal, 2, 2, 0, []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := numbered(tt.width, tt.height)

			var widths []int
			for band := range img.Bands(tt.axis, tt.lanes) {
				widths = append(widths, band.Width())
			}
			if !slices.Equal(widths, tt.want) {
				t.Errorf("band widths = %v, want %v", widths, tt.want)
			}
		})
	}
}

func TestBands_CoverEveryPixelOnce(t *testing.T) {
	for _, axis := range []Axis{Horizontal, Vertical} {
		t.Run(axis.String(), func(t *testing.T) {
			img := NewImage[int](7, 5)
			for band := range img.Bands(axis, 4) {
				for k := range band.Width() {
					for i := range band.Len() {
						band.Set(k, i, band.At(k, i)+1)
					}
				}
			}
			for y := range 5 {
				for x := range 7 {
					if got := img.At(x, y); got != 1 {
						t.Errorf("pixel (%d,%d) visited %d times, want 1", x, y, got)
					}
				}
			}
		})
	}
}

func TestBand_GatherScatter(t *testing.T) {
	img := numbered(4, 3)

	// Vertical band of columns 0..3: element i is row i across 4 columns.
	var band Band[int]
	for b := range img.Bands(Vertical, 4) {
		band = b
	}
	if band.Width() != 4 || band.Len() != 3 {
		t.Fatalf("band = %dx%d, want 4x3", band.Width(), band.Len())
	}

	dst := make([]int, 4)
	band.Gather(2, dst)
	if want := []int{200, 201, 202, 203}; !slices.Equal(dst, want) {
		t.Errorf("Gather(2) = %v, want %v", dst, want)
	}

	band.Scatter(1, []int{-1, -2, -3, -4})
	if got, want := img.RowSlice(1), []int{-1, -2, -3, -4}; !slices.Equal(got, want) {
		t.Errorf("row 1 after Scatter = %v, want %v", got, want)
	}

	// Horizontal band of rows 0..2 does not exist with 4 lanes; rows are singles.
	for b := range img.Bands(Horizontal, 4) {
		if b.Width() != 1 {
			t.Errorf("band width = %d, want 1", b.Width())
		}
	}

	line := band.Line(3)
	if got, want := slices.Collect(line.Values()), []int{3, -4, 203}; !slices.Equal(got, want) {
		t.Errorf("Line(3) = %v, want %v", got, want)
	}
}

func TestLines_SubImage(t *testing.T) {
	img := numbered(5, 5)
	sub := img.SubImage(Rect{X0: 1, Y0: 1, X1: 3, Y1: 4})

	var cols [][]int
	for line := range sub.Lines(Vertical) {
		cols = append(cols, slices.Collect(line.Values()))
	}
	want := [][]int{{101, 201, 301}, {102, 202, 302}}
	if !slices.EqualFunc(cols, want, slices.Equal[[]int]) {
		t.Errorf("columns = %v, want %v", cols, want)
	}
}

func TestAxis_String(t *testing.T) {
	if Horizontal.String() != "horizontal" || Vertical.String() != "vertical" {
		t.Errorf("axis names = %q, %q", Horizontal, Vertical)
	}
	if Axis(5).String() != "unknown" {
		t.Errorf("Axis(5) = %q, want unknown", Axis(5))
	}
}
