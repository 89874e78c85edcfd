package viz

type coord struct {
	Lat float64
	Lon float64
}

// The seven emirates and their map coordinates. Region values outside this
// table never appear on the geographic chart.
var emirateOrder = []string{
	"Abu Dhabi", "Dubai", "Sharjah", "Ajman",
	"Umm Al Quwain", "Ras Al Khaimah", "Fujairah",
}

var emirateCoords = map[string]coord{
	"Abu Dhabi":      {24.4539, 54.3773},
	"Dubai":          {25.2048, 55.2708},
	"Sharjah":        {25.3463, 55.4209},
	"Ajman":          {25.4111, 55.4354},
	"Umm Al Quwain":  {25.5647, 55.5534},
	"Ras Al Khaimah": {25.7895, 55.9432},
	"Fujairah":       {25.1288, 56.3265},
}
