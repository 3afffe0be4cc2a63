//nolint:revive
package time

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-ppg/internal/testutil"
)

func BenchmarkCalculate(b *testing.B) {
	sizes := []int{500, 5000, 50000}
	for _, n := range sizes {
		samples := testutil.SinePPG(75, 100000, 2000, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 4))

			for range b.N {
				Calculate(samples)
			}
		})
	}
}
