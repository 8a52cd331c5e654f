// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	stdimage "image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ajroetker/go-stackblur/hwy"
	"github.com/ajroetker/go-stackblur/hwy/contrib/image"
	"github.com/ajroetker/go-stackblur/stackblur"
	"github.com/ajroetker/go-stackblur/stackblur/color"
)

// ErrRadius is returned for radii outside [0, stackblur.SafeRadius].
var ErrRadius = errors.New("radius out of range")

// ErrLanes is returned for unsupported -lanes values.
var ErrLanes = errors.New("unsupported lane count")

// Job describes one blur of one image file.
type Job struct {
	InputFile  string
	OutputFile string
	Radius     int
	Lanes      int // 0 auto, 1 scalar, or a supported lane width
	Quality    int // JPEG quality
}

// Stats reports what a Job did.
type Stats struct {
	Width, Height int
	Path          string // "scalar" or "N lanes"
	Elapsed       time.Duration
}

// Run reads, blurs and writes the image.
func (j *Job) Run() (Stats, error) {
	if j.Radius < 0 || j.Radius > stackblur.SafeRadius {
		return Stats{}, fmt.Errorf("%w: %d (want 0..%d)", ErrRadius, j.Radius, stackblur.SafeRadius)
	}
	blur, path, err := selectBlur(j.Lanes)
	if err != nil {
		return Stats{}, err
	}

	src, err := decodeFile(j.InputFile)
	if err != nil {
		return Stats{}, err
	}

	img := toARGB(src)
	start := time.Now()
	blur(img, j.Radius)
	elapsed := time.Since(start)

	if err := j.encodeFile(fromARGB(img)); err != nil {
		return Stats{}, err
	}
	return Stats{Width: img.Width(), Height: img.Height(), Path: path, Elapsed: elapsed}, nil
}

// selectBlur maps a -lanes value to a blur function and a description.
func selectBlur(lanes int) (func(*image.Image[uint32], int), string, error) {
	switch lanes {
	case 0:
		if hwy.CurrentLevel() == hwy.DispatchScalar {
			return stackblur.BlurARGB, "scalar", nil
		}
		return stackblur.BlurARGBAuto, fmt.Sprintf("%d lanes", autoLanes()), nil
	case 1:
		return stackblur.BlurARGB, "scalar", nil
	case 4:
		return stackblur.SIMDBlurARGB[[4]uint32], "4 lanes", nil
	case 8:
		return stackblur.SIMDBlurARGB[[8]uint32], "8 lanes", nil
	case 16:
		return stackblur.SIMDBlurARGB[[16]uint32], "16 lanes", nil
	case 32:
		return stackblur.SIMDBlurARGB[[32]uint32], "32 lanes", nil
	default:
		return nil, "", fmt.Errorf("%w: %d", ErrLanes, lanes)
	}
}

// autoLanes mirrors the choice BlurARGBAuto makes.
func autoLanes() int {
	switch lanes := hwy.MaxLanes[uint32](); {
	case lanes >= 16:
		return 16
	case lanes >= 8:
		return 8
	default:
		return 4
	}
}

func decodeFile(name string) (stdimage.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	img, _, err := stdimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// toARGB converts any image to packed, non-premultiplied 0xAARRGGBB pixels.
func toARGB(src stdimage.Image) *image.Image[uint32] {
	b := src.Bounds()
	nrgba := stdimage.NewNRGBA(stdimage.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)

	img := image.NewImage[uint32](b.Dx(), b.Dy())
	for y := range img.Height() {
		row := img.RowSlice(y)
		for x := range row {
			row[x] = color.FromNRGBA(nrgba.NRGBAAt(x, y))
		}
	}
	return img
}

func fromARGB(img *image.Image[uint32]) *stdimage.NRGBA {
	out := stdimage.NewNRGBA(stdimage.Rect(0, 0, img.Width(), img.Height()))
	for y := range img.Height() {
		for x, p := range img.RowSlice(y) {
			out.SetNRGBA(x, y, color.ToNRGBA(p))
		}
	}
	return out
}

func (j *Job) encodeFile(img stdimage.Image) (err error) {
	f, err := os.Create(j.OutputFile)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	switch strings.ToLower(filepath.Ext(j.OutputFile)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: j.Quality})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", j.OutputFile, err)
	}
	return nil
}
