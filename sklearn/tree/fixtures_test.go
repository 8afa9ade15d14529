package tree

import (
	"github.com/YuminosukeSato/simpledt/dataset"
)

// weather is the three-record example: class at 0, outlook at 1.
func weather() []dataset.Record {
	return []dataset.Record{
		{"yes", "sunny"},
		{"no", "rainy"},
		{"yes", "sunny"},
	}
}

// playTennis is Quinlan's data set: outlook, temperature, humidity, wind,
// with the class in the last position.
func playTennis() []dataset.Record {
	return []dataset.Record{
		{"sunny", "hot", "high", "weak", "no"},
		{"sunny", "hot", "high", "strong", "no"},
		{"overcast", "hot", "high", "weak", "yes"},
		{"rain", "mild", "high", "weak", "yes"},
		{"rain", "cool", "normal", "weak", "yes"},
		{"rain", "cool", "normal", "strong", "no"},
		{"overcast", "cool", "normal", "strong", "yes"},
		{"sunny", "mild", "high", "weak", "no"},
		{"sunny", "cool", "normal", "weak", "yes"},
		{"rain", "mild", "normal", "weak", "yes"},
		{"sunny", "mild", "normal", "strong", "yes"},
		{"overcast", "mild", "high", "strong", "yes"},
		{"overcast", "hot", "normal", "weak", "yes"},
		{"rain", "mild", "high", "strong", "no"},
	}
}

const tennisClass = 4
