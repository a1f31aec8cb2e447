package palette

// LegendEntry labels one bucket on the heat map legend.
type LegendEntry struct {
	Label  string
	Bucket Bucket
}

// Legend returns the three labelled samples shown under the heat map.
func Legend() []LegendEntry {
	return []LegendEntry{
		{Label: "Low", Bucket: BucketLight},
		{Label: "Medium", Bucket: BucketModerate},
		{Label: "High", Bucket: BucketSevere},
	}
}
