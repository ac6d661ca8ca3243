// Package printer simulates the wear and job cycle of a 3D printer.
//
// A printer starts Empty, runs one job at a time while Working, and ends
// either Finished or Unfinished when a part gives out mid-job. Retrieving
// the output returns it to Empty and charges the temper's wear to every part.
package printer

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/tatianab/print-shop/internal/models"
)

var (
	ErrBroken            = errors.New("printer is broken")
	ErrBusy              = errors.New("printer is not empty")
	ErrUnknownJob        = errors.New("unknown job")
	ErrNothingToRetrieve = errors.New("nothing to retrieve")
	ErrStillWorking      = errors.New("printer is still working")
	ErrNotIdle           = errors.New("printer must be empty")
)

// Part indexes one of the six wearing parts.
type Part int

const (
	Extruder Part = iota
	Nozzle
	Heatbed
	Belts
	Cooler
	Board
	NumParts
)

var partNames = [NumParts]string{"extruder", "nozzle", "heatbed", "belts", "cooler", "board"}

func (p Part) String() string {
	if p < 0 || p >= NumParts {
		return fmt.Sprintf("Part(%d)", int(p))
	}
	return partNames[p]
}

// Status is the printer's position in its job cycle.
type Status int

const (
	Empty      Status = 1
	Unfinished Status = 2
	Working    Status = 3
	Finished   Status = 4
)

func (s Status) String() string {
	switch s {
	case Empty:
		return "empty"
	case Unfinished:
		return "spoiled"
	case Working:
		return "working"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Printer is an enemy with moving parts.
type Printer struct {
	*models.Enemy
	Parts    [NumParts]float64
	Temper   Temper
	Status   Status
	Work     int // active job id, 0 for none
	Progress int // minutes spent on Work
}

// New builds a printer with randomised part condition and temper.
func New(name, description, deathPhrase string, rng *rand.Rand) *Printer {
	p := &Printer{
		Enemy:  models.NewEnemy(name, description, deathPhrase),
		Temper: TemperFromDraw(rng.Float64() * 10),
		Status: Empty,
	}
	for i := range p.Parts {
		p.Parts[i] = 0.5 + 0.5*rng.Float64()
	}
	return p
}

// Broken reports whether any part has worn down to zero or below.
func (p *Printer) Broken() bool {
	for _, v := range p.Parts {
		if v <= 0 {
			return true
		}
	}
	return false
}

// Job returns the active job, if any.
func (p *Printer) Job() (Job, bool) {
	return LookupJob(p.Work)
}

// Start loads job id into an empty, unbroken printer.
func (p *Printer) Start(id int) error {
	job, ok := LookupJob(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownJob, id)
	}
	if p.Broken() {
		return ErrBroken
	}
	if p.Status != Empty {
		return ErrBusy
	}
	p.Status = Working
	p.Work = job.ID
	p.Progress = 0
	return nil
}

// Tick advances a working printer by one minute. Idle printers are untouched.
func (p *Printer) Tick(rng *rand.Rand) {
	if p.Status != Working {
		return
	}
	effects := p.Temper.Effects()
	for i := range p.Parts {
		p.Parts[i] -= effects[i] * rng.Float64() / 100
	}
	p.Progress++

	job, _ := p.Job()
	switch {
	case p.Progress >= job.Duration:
		p.Status = Finished
	case p.Broken():
		p.Status = Unfinished
		p.Progress = 0
	}
}

// Retrieve empties a Finished or Unfinished printer and applies the temper's
// wear to every part. Only a Finished printer yields its job.
func (p *Printer) Retrieve() (Job, bool, error) {
	switch p.Status {
	case Empty:
		return Job{}, false, ErrNothingToRetrieve
	case Working:
		return Job{}, false, ErrStillWorking
	}

	job, _ := p.Job()
	finished := p.Status == Finished
	p.wear()
	p.reset()
	if !finished {
		return Job{}, false, nil
	}
	return job, true, nil
}

// Abort stops a working printer. The job is lost and the parts keep
// whatever wear the ticks already did.
func (p *Printer) Abort() error {
	if p.Status != Working {
		return fmt.Errorf("abort: %w", ErrNothingToRetrieve)
	}
	p.reset()
	return nil
}

// Repair checks that the printer can be serviced with tool. Restoring part
// condition is not implemented; the parts are left as they are.
func (p *Printer) Repair(tool string) error {
	if p.Status != Empty {
		return ErrNotIdle
	}
	return nil
}

func (p *Printer) wear() {
	effects := p.Temper.Effects()
	for i := range p.Parts {
		p.Parts[i] -= effects[i]
	}
}

func (p *Printer) reset() {
	p.Status = Empty
	p.Work = 0
	p.Progress = 0
}

// Describe includes the printer's status line.
func (p *Printer) Describe() string {
	line := p.Enemy.Describe() + " It is " + p.Status.String()
	if job, ok := p.Job(); ok && p.Status == Working {
		line += fmt.Sprintf(" (job %d, %d/%d min)", job.ID, p.Progress, job.Duration)
	}
	return line + "."
}

// Report lists temper and every part condition.
func (p *Printer) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: temper %d, %s", p.Name(), p.Temper, p.Status)
	for i, v := range p.Parts {
		fmt.Fprintf(&b, "\n  %-9s %5.1f%%", Part(i), v*100)
	}
	if p.Broken() {
		b.WriteString("\n  broken")
	}
	return b.String()
}
