package spatial_test

import (
	"fmt"

	"github.com/katalvlaran/spikelab/bins"
	"github.com/katalvlaran/spikelab/spatial"
)

// ExampleInformation walks the full pipeline: trace → occupancy, spikes →
// rate map, both → spatial information. The animal spends 1 s in each
// quadrant and every spike lands in the first one, so all the information
// sits in a single bin.
func ExampleInformation() {
	g, _ := bins.BuildGrid2D(0, 1, 0, 1, bins.ByCount(2), bins.ByCount(2))
	tr, _ := spatial.NewTrace(
		[]float64{0.25, 0.75, 0.25, 0.75, 0.75},
		[]float64{0.25, 0.25, 0.75, 0.75, 0.75},
		[]float64{0, 1, 2, 3, 4},
	)
	spikes := []float64{0.1, 0.2, 0.3, 0.4}

	occ, _ := spatial.Occupancy(tr, g, spatial.DefaultOccupancyOptions())
	rate, _ := spatial.RateMap(spikes, tr, g, spatial.DefaultOccupancyOptions())
	info, _ := spatial.Information(rate, occ)

	fmt.Println(rate.At(0, 0), "Hz in the spiking quadrant")
	fmt.Println(rate.At(1, 1), "Hz elsewhere")
	fmt.Println(info, "bits/spike")
	// Output:
	// 4 Hz in the spiking quadrant
	// 0 Hz elsewhere
	// 2 bits/spike
}
