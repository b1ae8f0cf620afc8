package analysis

// GDPPerCapitaIndicator is the WDI code for GDP per capita in current US$.
const GDPPerCapitaIndicator = "NY.GDP.PCAP.CD"

// GDPScale turns GDP per capita into the approximate total GDP used for the
// receipts ratio. It ignores population.
const GDPScale = 1e6

const (
	BaseYear       = "2019"
	ComparisonYear = "2020"
)

// Receipts holds international tourism receipts in US$.
type Receipts struct {
	Year2019 float64
	Year2020 float64
}

var topTourismCountries = [...]string{
	"France",
	"Spain",
	"United States",
	"China",
	"Italy",
	"Turkey",
	"Mexico",
	"Thailand",
	"Germany",
	"United Kingdom",
}

var tourismReceipts = map[string]Receipts{
	"France":         {Year2019: 65.0e9, Year2020: 32.0e9},
	"Spain":          {Year2019: 71.2e9, Year2020: 27.0e9},
	"United States":  {Year2019: 193.3e9, Year2020: 76.1e9},
	"China":          {Year2019: 45.0e9, Year2020: 35.0e9},
	"Italy":          {Year2019: 49.6e9, Year2020: 20.0e9},
	"Turkey":         {Year2019: 29.8e9, Year2020: 12.1e9},
	"Mexico":         {Year2019: 24.6e9, Year2020: 10.2e9},
	"Thailand":       {Year2019: 60.5e9, Year2020: 15.0e9},
	"Germany":        {Year2019: 58.0e9, Year2020: 40.0e9},
	"United Kingdom": {Year2019: 52.7e9, Year2020: 21.0e9},
}

// Countries returns the analysed countries in presentation order.
func Countries() []string {
	out := make([]string, len(topTourismCountries))
	copy(out, topTourismCountries[:])
	return out
}

// ReferenceReceipts looks up the embedded receipts for a country.
func ReferenceReceipts(country string) (Receipts, bool) {
	r, ok := tourismReceipts[country]
	return r, ok
}
