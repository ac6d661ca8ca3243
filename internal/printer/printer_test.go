package printer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/print-shop/internal/models"
)

func newTestPrinter(t *testing.T, temper Temper) *Printer {
	t.Helper()
	p := New("Ender-42", "A boxy printer", "It goes dark.", rand.New(rand.NewSource(1)))
	p.Temper = temper
	for i := range p.Parts {
		p.Parts[i] = 1
	}
	return p
}

func TestNewPrinter(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 50 {
		p := New("X", "", "", rng)
		assert.Equal(t, Empty, p.Status)
		assert.Zero(t, p.Work)
		assert.GreaterOrEqual(t, int(p.Temper), 1)
		assert.LessOrEqual(t, int(p.Temper), 5)
		for _, v := range p.Parts {
			assert.GreaterOrEqual(t, v, 0.5)
			assert.Less(t, v, 1.0)
		}
	}
}

func TestPrinterIsCharacter(t *testing.T) {
	var c models.Character = newTestPrinter(t, 1)
	c.(*Printer).SetWeaknesses("spatula")
	res, phrase := c.Fight("spatula")
	assert.Equal(t, models.FightWon, res)
	assert.Equal(t, "It goes dark.", phrase)
	assert.Contains(t, c.Describe(), "It is empty.")
}

func TestTemperFromDraw(t *testing.T) {
	cases := []struct {
		u    float64
		want Temper
	}{
		{0, 1}, {1.99, 1},
		{2, 2}, {5.99, 2},
		{6, 3}, {7.99, 3},
		{8, 4}, {8.99, 4},
		{9, 5}, {9.999, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TemperFromDraw(tc.u), "u=%v", tc.u)
	}
}

func TestJobTable(t *testing.T) {
	require.Len(t, Jobs, 12)
	for i, j := range Jobs {
		assert.Equal(t, i+1, j.ID)
		assert.Positive(t, j.Duration)
		assert.Positive(t, j.Units)
		assert.Contains(t, Sizes, j.Size)
	}
	_, ok := LookupJob(0)
	assert.False(t, ok)
	_, ok = LookupJob(13)
	assert.False(t, ok)
}

func TestStart(t *testing.T) {
	p := newTestPrinter(t, 2)
	require.NoError(t, p.Start(3))
	assert.Equal(t, Working, p.Status)
	assert.Equal(t, 3, p.Work)
	assert.Zero(t, p.Progress)

	assert.ErrorIs(t, p.Start(1), ErrBusy)
	assert.Equal(t, 3, p.Work)
}

func TestStartRejectsBrokenPrinter(t *testing.T) {
	p := newTestPrinter(t, 2)
	p.Parts[Belts] = 0
	assert.ErrorIs(t, p.Start(1), ErrBroken)
	assert.Equal(t, Empty, p.Status)
	assert.Zero(t, p.Work)
}

func TestStartRejectsUnknownJob(t *testing.T) {
	p := newTestPrinter(t, 2)
	assert.ErrorIs(t, p.Start(42), ErrUnknownJob)
	assert.Equal(t, Empty, p.Status)
}

func TestTickDegradesWhileWorking(t *testing.T) {
	p := newTestPrinter(t, 5)
	require.NoError(t, p.Start(12))
	rng := rand.New(rand.NewSource(3))

	prev := p.Parts
	for i := 1; i <= 100; i++ {
		p.Tick(rng)
		require.Equal(t, Working, p.Status)
		assert.Equal(t, i, p.Progress)
		for part := range p.Parts {
			assert.LessOrEqual(t, p.Parts[part], prev[part])
		}
		prev = p.Parts
	}
	assert.Less(t, p.Parts[Nozzle], 1.0)
}

func TestTickIgnoresIdlePrinters(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, status := range []Status{Empty, Finished, Unfinished} {
		p := newTestPrinter(t, 5)
		p.Status = status
		before := p.Parts
		p.Tick(rng)
		assert.Equal(t, before, p.Parts)
		assert.Equal(t, status, p.Status)
		assert.Zero(t, p.Progress)
	}
}

func TestTickFinishesJob(t *testing.T) {
	p := newTestPrinter(t, 1)
	require.NoError(t, p.Start(1))
	rng := rand.New(rand.NewSource(3))
	for range 14 {
		p.Tick(rng)
	}
	assert.Equal(t, Working, p.Status)
	p.Tick(rng)
	assert.Equal(t, Finished, p.Status)
	assert.Equal(t, 15, p.Progress)

	p.Tick(rng)
	assert.Equal(t, 15, p.Progress)
}

func TestTickSpoilsJobWhenPartBreaks(t *testing.T) {
	p := newTestPrinter(t, 3)
	require.NoError(t, p.Start(8))
	rng := rand.New(rand.NewSource(3))
	p.Tick(rng)
	p.Tick(rng)
	require.Equal(t, 2, p.Progress)

	p.Parts[Cooler] = 0
	p.Tick(rng)
	assert.Equal(t, Unfinished, p.Status)
	assert.Zero(t, p.Progress)
	assert.Equal(t, 8, p.Work)
}

func TestRetrieveFinished(t *testing.T) {
	p := newTestPrinter(t, 4)
	require.NoError(t, p.Start(6))
	p.Status = Finished
	p.Progress = 60

	job, ok, err := p.Retrieve()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Job{ID: 6, Duration: 60, Units: 3, Size: Medium}, job)
	assert.Equal(t, Empty, p.Status)
	assert.Zero(t, p.Progress)
	assert.Zero(t, p.Work)

	effects := Temper(4).Effects()
	for i := range p.Parts {
		assert.InDelta(t, 1-effects[i], p.Parts[i], 1e-9)
	}
}

func TestRetrieveUnfinishedYieldsNothing(t *testing.T) {
	p := newTestPrinter(t, 2)
	require.NoError(t, p.Start(6))
	p.Status = Unfinished

	_, ok, err := p.Retrieve()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Empty, p.Status)
	assert.InDelta(t, 1-Temper(2).Effects()[Extruder], p.Parts[Extruder], 1e-9)
}

func TestRetrieveEmptyIsNoop(t *testing.T) {
	p := newTestPrinter(t, 2)
	before := *p
	_, ok, err := p.Retrieve()
	assert.ErrorIs(t, err, ErrNothingToRetrieve)
	assert.False(t, ok)
	assert.Equal(t, before.Parts, p.Parts)
	assert.Equal(t, Empty, p.Status)
}

func TestRetrieveWorkingAndAbort(t *testing.T) {
	p := newTestPrinter(t, 2)
	require.NoError(t, p.Start(6))
	_, _, err := p.Retrieve()
	assert.ErrorIs(t, err, ErrStillWorking)
	assert.Equal(t, Working, p.Status)

	require.NoError(t, p.Abort())
	assert.Equal(t, Empty, p.Status)
	assert.Zero(t, p.Work)
	assert.Equal(t, 1.0, p.Parts[Board])

	assert.Error(t, p.Abort())
}

func TestRepairLeavesPartsAlone(t *testing.T) {
	p := newTestPrinter(t, 2)
	p.Parts[Heatbed] = 0.1
	require.NoError(t, p.Repair("screwdriver"))
	assert.Equal(t, 0.1, p.Parts[Heatbed])

	require.NoError(t, p.Start(1))
	assert.ErrorIs(t, p.Repair("screwdriver"), ErrNotIdle)
}

func TestReport(t *testing.T) {
	p := newTestPrinter(t, 3)
	p.Parts[Board] = -0.05
	r := p.Report()
	assert.Contains(t, r, "Ender-42: temper 3, empty")
	assert.Contains(t, r, "board")
	assert.Contains(t, r, "broken")
}
