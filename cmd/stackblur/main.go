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

// Command stackblur blurs an image file with Stackblur and writes the result.
//
// Usage:
//
//	stackblur -input photo.jpg -output blurred.png -radius 16
//	stackblur -input photo.webp -output blurred.jpg -radius 8 -lanes 1   # scalar path
//
// Any format registered with the standard image package can be read,
// including BMP, TIFF and WebP. The output format follows the output file
// extension: .jpg/.jpeg writes JPEG, anything else writes PNG.
//
// The -lanes flag selects how many lines are blurred together: 0 picks a
// width from the detected SIMD target, 1 forces the scalar path, and 4, 8,
// 16 or 32 force that lane width. HWY_NO_SIMD=1 makes -lanes 0 scalar.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ajroetker/go-stackblur/hwy"
)

var (
	inputFile  = flag.String("input", "", "Input image file (required)")
	outputFile = flag.String("output", "", "Output image file (required)")
	radius     = flag.Int("radius", 8, "Blur radius in pixels (0 to 4096)")
	lanes      = flag.Int("lanes", 0, "Lines blurred together: 0 (auto), 1 (scalar), 4, 8, 16 or 32")
	quality    = flag.Int("quality", 90, "JPEG quality for .jpg/.jpeg output")
	verbose    = flag.Bool("v", false, "Print the SIMD target and timing")
)

func main() {
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -input and -output flags are required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	job := &Job{
		InputFile:  *inputFile,
		OutputFile: *outputFile,
		Radius:     *radius,
		Lanes:      *lanes,
		Quality:    *quality,
	}

	stats, err := job.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("SIMD target: %s (%d bytes)\n", hwy.CurrentName(), hwy.CurrentWidth())
		fmt.Printf("Blurred %dx%d pixels with radius %d using %s in %v\n",
			stats.Width, stats.Height, job.Radius, stats.Path, stats.Elapsed)
	}
	fmt.Printf("Wrote %s\n", job.OutputFile)
}
