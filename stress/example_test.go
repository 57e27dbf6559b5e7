// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package stress_test

import (
	"context"
	"fmt"

	"github.com/born-ml/stress/backend/cpu"
	"github.com/born-ml/stress/stress"
	"github.com/born-ml/stress/tensor"
)

func ExampleGenerate() {
	rs, err := stress.Generate(context.Background(), 5, tensor.Int32, cpu.New(), stress.Options{Mode: stress.Parallel, Workers: 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range rs {
		fmt.Println(s)
	}
	// Output:
	// 1 [5]
	// 2 [5]
	// 3 [5]
	// 4 [5]
}

func ExampleRun() {
	buf := []float64{0, 1, 2}
	rs, err := stress.Run(context.Background(), buf, cpu.New(), stress.Options{Mode: stress.Sequential})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(rs), rs.Sorted())
	// Output: 2 true
}
