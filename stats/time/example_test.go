package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-ppg/stats/time"
)

func ExampleCalculate() {
	s := timestats.Calculate([]uint32{98, 102, 96, 104})
	fmt.Printf("dc=%.1f range=%d pi=%.1f%%\n", s.DC, s.Range, s.PerfusionIndex)

	// Output:
	// dc=100.0 range=8 pi=8.0%
}

func ExampleStreamingStats() {
	s := timestats.NewStreamingStats()
	s.Update([]uint32{10, 20})
	s.Update([]uint32{30, 40})
	m := s.Result()
	fmt.Printf("len=%d dc=%.1f\n", m.Length, m.DC)

	// Output:
	// len=4 dc=25.0
}
