package engine

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tatianab/print-shop/internal/models"
	"github.com/tatianab/print-shop/internal/printer"
)

func (e *Engine) dispatch(cmd Command) {
	switch cmd.Kind {
	case CmdNone:
	case CmdMove:
		e.move(cmd.Direction)
	case CmdTalk:
		e.talk(cmd.Args)
	case CmdFight:
		e.fight(cmd.Args)
	case CmdTake:
		e.take()
	case CmdWait:
		e.wait(cmd.Args)
	case CmdPrint:
		e.startJob(cmd.Args)
	case CmdRetrieve:
		e.retrieve(cmd.Args)
	case CmdRepair:
		e.repair(cmd.Args)
	case CmdInspect:
		e.inspect(cmd.Args)
	case CmdJobs:
		for _, j := range printer.Jobs {
			e.say("%s", j)
		}
	case CmdBackpack:
		if len(e.backpack) == 0 {
			e.say("Your backpack is empty.")
			return
		}
		e.say("In your backpack: %s.", strings.Join(e.backpack, ", "))
	case CmdStatus:
		e.say("Time: %d/%d minutes. Defeated: %d. Results: %s.", e.time, e.limit, e.defeated, e.ResultsSummary())
	case CmdHelp:
		e.say("%s", helpText)
	default:
		e.say("I don't know what %q means.", cmd.Raw)
	}
}

func (e *Engine) answer(p pending, line string) {
	switch p.kind {
	case promptWeapon:
		e.resolveFight(p.target, line)
	case promptAbort:
		e.resolveAbort(p.target.(*printer.Printer), line)
	case promptTool:
		e.resolveRepair(p.target.(*printer.Printer), line)
	}
}

// target applies the shared disambiguation rule: with no name given the only
// inhabitant is chosen, with a name it is looked up.
func (e *Engine) target(args []string, verb string) (models.Character, bool) {
	if len(args) > 1 {
		e.say("Wrong format! Use: %s <name>", verb)
		return nil, false
	}
	chars := e.current.Characters
	if len(chars) == 0 {
		e.say("There is nobody here!")
		return nil, false
	}
	if len(args) == 0 {
		if len(chars) == 1 {
			return chars[0], true
		}
		e.say("Choose who to %s: %s <name>", verb, verb)
		return nil, false
	}
	c, ok := e.current.Character(args[0])
	if !ok {
		e.say("There is no such character here!")
		return nil, false
	}
	return c, true
}

func (e *Engine) targetPrinter(args []string, verb string) (*printer.Printer, bool) {
	c, ok := e.target(args, verb)
	if !ok {
		return nil, false
	}
	p, ok := c.(*printer.Printer)
	if !ok {
		e.say("%s is not a printer.", c.Name())
		return nil, false
	}
	return p, true
}

func (e *Engine) move(d models.Direction) {
	next, ok := e.current.Move(d)
	if !ok {
		e.say("There is no room in that direction!")
		return
	}
	e.current = next
}

func (e *Engine) talk(args []string) {
	if c, ok := e.target(args, "talk"); ok {
		e.say("%s", c.Talk())
	}
}

func (e *Engine) fight(args []string) {
	if c, ok := e.target(args, "fight"); ok {
		e.prompt = pending{kind: promptWeapon, target: c}
	}
}

func (e *Engine) resolveFight(c models.Character, weapon string) {
	if !e.backpack.Has(weapon) {
		e.say("You don't have %s.", weapon)
		return
	}
	result, phrase := c.Fight(weapon)
	if phrase != "" {
		e.say("%s", phrase)
	}
	switch result {
	case models.FightFriendly:
		e.say("That was a friend. Nothing happens.")
	case models.FightWon:
		e.current.RemoveCharacter(c)
		e.defeated++
		e.logger.Info("enemy defeated", "name", c.Name(), "weapon", weapon, "defeated", e.defeated)
		if e.defeated == defeatsToWin {
			e.say("Hooray, you won!")
			e.finish(Won)
		}
	case models.FightLost:
		e.say("Oh no, you lost!")
		e.say("Game over.")
		e.finish(Lost)
	}
}

func (e *Engine) take() {
	items := e.current.TakeItems()
	if len(items) == 0 {
		e.say("There are no items here!")
		return
	}
	for _, it := range items {
		e.say("You put %s in your backpack.", it.Name)
		e.backpack.Add(it.Name)
	}
}

func (e *Engine) wait(args []string) {
	if len(args) != 1 {
		e.say("Wrong format! Use: wait <minutes>")
		return
	}
	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		e.say("%q is not a number of minutes.", args[0])
		return
	}
	if minutes <= 0 {
		e.say("Wait at least one minute.")
		return
	}
	// Waiting past the budget ends the session anyway.
	minutes = min(minutes, e.limit-e.time)
	e.Advance(minutes)
	e.say("You waited %d minutes.", minutes)
}

func (e *Engine) startJob(args []string) {
	var name []string
	var jobArg string
	switch len(args) {
	case 1:
		jobArg = args[0]
	case 2:
		name, jobArg = args[:1], args[1]
	default:
		e.say("Wrong format! Use: print [printer] <job>")
		return
	}
	id, err := strconv.Atoi(jobArg)
	if err != nil {
		e.say("%q is not a job number. Type 'jobs' to see the list.", jobArg)
		return
	}
	p, ok := e.targetPrinter(name, "print")
	if !ok {
		return
	}

	switch err := p.Start(id); {
	case errors.Is(err, printer.ErrUnknownJob):
		e.say("There is no job %d. Type 'jobs' to see the list.", id)
	case errors.Is(err, printer.ErrBroken):
		e.say("%s is broken and can't print.", p.Name())
	case errors.Is(err, printer.ErrBusy):
		e.say("%s is %s. Retrieve it first.", p.Name(), p.Status)
	case err == nil:
		job, _ := p.Job()
		e.logger.Info("job started", "printer", p.Name(), "job", job.ID, "temper", int(p.Temper))
		e.say("%s starts job %d: %d x %s in %d minutes.", p.Name(), job.ID, job.Units, job.Size, job.Duration)
		e.Advance(handlingMinutes)
	}
}

func (e *Engine) retrieve(args []string) {
	p, ok := e.targetPrinter(args, "retrieve")
	if !ok {
		return
	}
	job, done, err := p.Retrieve()
	switch {
	case errors.Is(err, printer.ErrNothingToRetrieve):
		e.say("%s has nothing to retrieve.", p.Name())
		return
	case errors.Is(err, printer.ErrStillWorking):
		e.prompt = pending{kind: promptAbort, target: p}
		return
	}

	if done {
		e.results[job.Size] += job.Units
		e.logger.Info("job retrieved", "printer", p.Name(), "job", job.ID, "units", job.Units, "size", string(job.Size))
		e.say("You collect %d x %s from %s.", job.Units, job.Size, p.Name())
	} else {
		e.say("The job on %s is spoiled. Nothing to salvage.", p.Name())
	}
	e.Advance(handlingMinutes)
}

func (e *Engine) resolveAbort(p *printer.Printer, answer string) {
	switch strings.ToLower(answer) {
	case "y", "yes":
	default:
		e.say("%s keeps working.", p.Name())
		return
	}
	if err := p.Abort(); err != nil {
		e.say("%s has nothing to stop.", p.Name())
		return
	}
	e.say("You stop %s. The job is lost.", p.Name())
	e.Advance(handlingMinutes)
}

func (e *Engine) repair(args []string) {
	p, ok := e.targetPrinter(args, "repair")
	if !ok {
		return
	}
	if p.Status != printer.Empty {
		e.say("%s must be empty to repair.", p.Name())
		return
	}
	if len(e.backpack) == 0 {
		e.say("You have nothing to repair it with.")
		return
	}
	e.prompt = pending{kind: promptTool, target: p}
}

func (e *Engine) resolveRepair(p *printer.Printer, tool string) {
	if !e.backpack.Has(tool) {
		e.say("You don't have %s.", tool)
		return
	}
	if err := p.Repair(tool); err != nil {
		e.say("%s must be empty to repair.", p.Name())
		return
	}
	e.say("You tinker with %s using the %s, but nothing seems to change.", p.Name(), tool)
}

func (e *Engine) inspect(args []string) {
	if p, ok := e.targetPrinter(args, "inspect"); ok {
		e.out = append(e.out, strings.Split(p.Report(), "\n")...)
	}
}
