package regression

// StarterBattery returns hand-traced cases for every built-in problem.
// `cpkit battery init` writes it as a template.
func StarterBattery() *Battery {
	return &Battery{
		Version: 1,
		Cases: []Case{
			{
				ID:      "coloring-basics",
				Problem: "coloring",
				Input:   "4\n4\n1 2 3 4\n4\n2 1 2 1\n4\n1 1 2 2\n1\n7\n",
				Expect:  "YES\nNO\nYES\nYES\n",
			},
			{
				ID:      "mex-basics",
				Problem: "mex",
				Input:   "4\n2\n0 1\n2\n0 0\n3\n2 0 0\n1\n0\n",
				Expect:  "YES\nNO\nNO\nYES\n",
			},
			{
				ID:      "sorting-game-sorted",
				Problem: "sorting-game",
				Input:   "2\n4\n0011\n1\n1\n",
				Expect:  "Bob\nBob\n",
			},
			{
				ID:      "sorting-game-witness",
				Problem: "sorting-game",
				Input:   "3\n4\n1010\n4\n0110\n6\n101010\n",
				Expect:  "Alice\n2\n1 4\nAlice\n2\n2 4\nBob\n",
			},
		},
	}
}
