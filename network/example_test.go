package network_test

import (
	"fmt"

	"github.com/katalvlaran/effres/network"
)

func ExampleTopology_Incident() {
	ref := network.Reference()
	fmt.Println(ref.Incident(1), ref.Incident(5))
	// Output: [2 9 10 11] [4 6 13]
}
