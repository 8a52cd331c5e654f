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

package hwy

// ProcessWithTail splits [0, size) into groups of exactly lanes elements,
// followed by the remaining elements one at a time.
//
// It calls:
//   - fullFn(offset) for each full group (offset is the starting index)
//   - tailFn(offset) for each index of the remainder, in increasing order
//
// Example:
//
//	hwy.ProcessWithTail(len(rows), 8,
//	    func(offset int) {
//	        // Process rows[offset : offset+8] together
//	    },
//	    func(offset int) {
//	        // Process rows[offset] alone
//	    },
//	)
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset int)) {
	if size <= 0 {
		return
	}
	if lanes <= 0 {
		lanes = 1
	}

	// Process full groups
	fullGroups := size / lanes
	for i := range fullGroups {
		fullFn(i * lanes)
	}

	// Process tail, if any, element by element
	for offset := fullGroups * lanes; offset < size; offset++ {
		tailFn(offset)
	}
}

// AlignedSize rounds up size to the next multiple of lanes.
// This is useful for allocating buffers that will be processed with SIMD.
func AlignedSize(size, lanes int) int {
	if lanes <= 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of lanes.
func IsAligned(size, lanes int) bool {
	if lanes <= 0 {
		return true
	}
	return size%lanes == 0
}
