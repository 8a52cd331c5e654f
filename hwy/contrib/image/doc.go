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

// Package image provides a strided 2D pixel buffer and the row and column
// traversals used by separable filters.
//
// Image[T] holds pixels of any element type. Rows are aligned to the SIMD
// vector width when the image owns its storage; FromSlice and SubImage
// produce views over existing storage.
//
// # Traversal
//
// Lines yields each row or column as a Line, a strided view that reads and
// writes the image directly:
//
//	for line := range img.Lines(image.Horizontal) {
//	    for i := range line.Len() {
//	        line.Set(i, f(line.At(i)))
//	    }
//	}
//
// Bands groups adjacent lines so that a lane-packed filter can process
// several lines at once. Full bands hold exactly the requested number of
// lines; the lines left over are yielded one per band:
//
//	for band := range img.Bands(image.Vertical, 8) {
//	    if band.Width() == 8 {
//	        // eight columns in lockstep
//	    } else {
//	        // a single leftover column
//	    }
//	}
//
// A separable filter that writes in place must finish every write of its
// horizontal pass before it starts reading the vertical pass, because each
// column crosses every row.
package image
