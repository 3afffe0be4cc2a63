package heartrate_test

import (
	"fmt"

	"github.com/cwbudde/algo-ppg/internal/testutil"
	"github.com/cwbudde/algo-ppg/measure/heartrate"
)

func ExampleEstimator_Estimate() {
	est, err := heartrate.New()
	if err != nil {
		fmt.Println(err)
		return
	}

	// Five seconds at 100 Hz with one pulse every 0.8 s.
	samples := testutil.PulsePPG(80, 10, 100000, 3000, 500)

	res, err := est.Estimate(samples)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("bpm=%d valid=%v peaks=%v\n", res.BPM, res.Valid, res.Peaks)

	// Output:
	// bpm=75 valid=true peaks=[80 160 240 320 400]
}

func ExampleEstimate_flat() {
	res, _ := heartrate.Estimate(testutil.ConstantWindow(50000, 500))
	fmt.Printf("bpm=%d valid=%v\n", res.BPM, res.Valid)

	// Output:
	// bpm=-999 valid=false
}
