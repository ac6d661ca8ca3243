package printer

import "fmt"

// Size is the size category a job's output counts towards.
type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

// Sizes lists the categories in display order.
var Sizes = []Size{Small, Medium, Large}

// Job is one entry of the job table.
type Job struct {
	ID       int
	Duration int // minutes
	Units    int
	Size     Size
}

func (j Job) String() string {
	return fmt.Sprintf("%2d: %3d min, %2d x %s", j.ID, j.Duration, j.Units, j.Size)
}

// Jobs is the fixed job table, indexed by ID-1.
var Jobs = [...]Job{
	{ID: 1, Duration: 15, Units: 4, Size: Small},
	{ID: 2, Duration: 20, Units: 6, Size: Small},
	{ID: 3, Duration: 25, Units: 8, Size: Small},
	{ID: 4, Duration: 30, Units: 10, Size: Small},
	{ID: 5, Duration: 45, Units: 2, Size: Medium},
	{ID: 6, Duration: 60, Units: 3, Size: Medium},
	{ID: 7, Duration: 75, Units: 4, Size: Medium},
	{ID: 8, Duration: 90, Units: 5, Size: Medium},
	{ID: 9, Duration: 120, Units: 1, Size: Large},
	{ID: 10, Duration: 150, Units: 1, Size: Large},
	{ID: 11, Duration: 180, Units: 2, Size: Large},
	{ID: 12, Duration: 240, Units: 3, Size: Large},
}

func LookupJob(id int) (Job, bool) {
	if id < 1 || id > len(Jobs) {
		return Job{}, false
	}
	return Jobs[id-1], true
}

// Temper is a printer's fixed behavioural category, 1 (gentle) to 5 (nasty).
type Temper int

// temperBands maps a uniform draw in [0,10) to a temper. Temper 2 gets the
// widest band, 4 and 5 the narrowest.
var temperBands = []struct {
	upper  float64
	temper Temper
}{
	{2, 1},
	{6, 2},
	{8, 3},
	{9, 4},
	{10, 5},
}

func TemperFromDraw(u float64) Temper {
	for _, b := range temperBands {
		if u < b.upper {
			return b.temper
		}
	}
	return temperBands[len(temperBands)-1].temper
}

// temperEffects holds the per-part wear coefficient of each temper. A
// retrieved job costs the full coefficient; a working minute costs up to a
// hundredth of it.
var temperEffects = map[Temper][NumParts]float64{
	1: {0.02, 0.03, 0.02, 0.01, 0.02, 0.01},
	2: {0.04, 0.05, 0.03, 0.03, 0.04, 0.02},
	3: {0.06, 0.07, 0.05, 0.04, 0.05, 0.03},
	4: {0.09, 0.10, 0.07, 0.06, 0.08, 0.05},
	5: {0.13, 0.15, 0.10, 0.09, 0.11, 0.08},
}

func (t Temper) Effects() [NumParts]float64 {
	return temperEffects[t]
}
