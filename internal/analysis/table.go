package analysis

type Field string

const (
	GDP2019             Field = "GDP_2019"
	GDP2020             Field = "GDP_2020"
	GDPChange           Field = "GDP_Change"
	Tourism2019         Field = "Tourism_2019"
	Tourism2020         Field = "Tourism_2020"
	TourismChange       Field = "Tourism_Change"
	TourismGDPRatio2019 Field = "Tourism_GDP_Ratio_2019"
	TourismGDPRatio2020 Field = "Tourism_GDP_Ratio_2020"
)

// Fields lists every derived column in export order.
var Fields = []Field{
	GDP2019, GDP2020, GDPChange,
	Tourism2019, Tourism2020, TourismChange,
	TourismGDPRatio2019, TourismGDPRatio2020,
}

// Record is one country's row. Fields that could not be derived are absent.
type Record struct {
	Country string
	values  map[Field]float64
}

func newRecord(country string) Record {
	return Record{Country: country, values: make(map[Field]float64, len(Fields))}
}

func (r Record) Get(f Field) (float64, bool) {
	v, ok := r.values[f]
	return v, ok
}

func (r Record) Has(f Field) bool {
	_, ok := r.values[f]
	return ok
}

func (r Record) set(f Field, v float64) {
	r.values[f] = v
}

// Point is a present value of one field, tagged with its country.
type Point struct {
	Country string
	Value   float64
}

// Table is the merged per-country result. It is built once by Merge and is
// read-only afterwards; accessors hand out copies.
type Table struct {
	records []Record
	index   map[string]int
}

func newTable(capacity int) *Table {
	return &Table{
		records: make([]Record, 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

func (t *Table) insert(rec Record) {
	if i, ok := t.index[rec.Country]; ok {
		t.records[i] = rec
		return
	}
	t.index[rec.Country] = len(t.records)
	t.records = append(t.records, rec)
}

func (t *Table) Len() int {
	return len(t.records)
}

func (t *Table) Countries() []string {
	out := make([]string, len(t.records))
	for i, rec := range t.records {
		out[i] = rec.Country
	}
	return out
}

func (t *Table) Record(country string) (Record, bool) {
	i, ok := t.index[country]
	if !ok {
		return Record{}, false
	}
	return t.records[i], true
}

func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Column returns the present values of f in table order.
func (t *Table) Column(f Field) []Point {
	var out []Point
	for _, rec := range t.records {
		if v, ok := rec.Get(f); ok {
			out = append(out, Point{Country: rec.Country, Value: v})
		}
	}
	return out
}
