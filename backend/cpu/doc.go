// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the host-memory placement backend.
//
// # Overview
//
// Placing a host tensor on the CPU backend shares the source buffer through
// reference counting, so placement costs no copy. Stats reports how many
// placements were made and how many bytes they covered.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Counters are atomic and each
// placement owns its own reference to the buffer.
package cpu
