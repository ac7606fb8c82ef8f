package network

// Reference returns the canonical 15-node network. Each resistor is declared
// once; nodes 14 and 15 only appear as neighbors of others.
//
//	1: 2 9 10 11     6: 7 13 14    11: 13 15
//	2: 3 11          7: 8 15       12: 13
//	3: 4 11 12       8: 9 15       13: 14
//	4: 5 12 13       9: 10 14      14: -
//	5: 6 13         10: 13         15: -
func Reference() Topology {
	return Topology{
		1:  {2, 9, 10, 11},
		2:  {3, 11},
		3:  {4, 11, 12},
		4:  {5, 12, 13},
		5:  {6, 13},
		6:  {7, 13, 14},
		7:  {8, 15},
		8:  {9, 15},
		9:  {10, 14},
		10: {13},
		11: {13, 15},
		12: {13},
		13: {14},
		14: {},
		15: {},
	}
}
