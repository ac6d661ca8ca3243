package engine

import (
	"strings"

	"github.com/tatianab/print-shop/internal/models"
)

// CommandKind tags a parsed player command.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdUnknown
	CmdMove
	CmdTalk
	CmdFight
	CmdTake
	CmdWait
	CmdPrint
	CmdRetrieve
	CmdRepair
	CmdInspect
	CmdJobs
	CmdBackpack
	CmdStatus
	CmdHelp
)

// Command is one tokenised line of input.
type Command struct {
	Kind      CommandKind
	Direction models.Direction
	Args      []string
	Raw       string
}

var verbs = map[string]CommandKind{
	"talk":      CmdTalk,
	"fight":     CmdFight,
	"take":      CmdTake,
	"wait":      CmdWait,
	"print":     CmdPrint,
	"retrieve":  CmdRetrieve,
	"repair":    CmdRepair,
	"inspect":   CmdInspect,
	"jobs":      CmdJobs,
	"backpack":  CmdBackpack,
	"inventory": CmdBackpack,
	"status":    CmdStatus,
	"help":      CmdHelp,
}

// Parse splits a line on whitespace and classifies it by its first token.
func Parse(line string) Command {
	fields := strings.Fields(line)
	cmd := Command{Raw: strings.TrimSpace(line)}
	if len(fields) == 0 {
		return cmd
	}
	cmd.Args = fields[1:]
	if d, ok := models.ParseDirection(fields[0]); ok {
		cmd.Kind = CmdMove
		cmd.Direction = d
		return cmd
	}
	if kind, ok := verbs[strings.ToLower(fields[0])]; ok {
		cmd.Kind = kind
		return cmd
	}
	cmd.Kind = CmdUnknown
	return cmd
}

const helpText = `Commands:
  north | south | east | west   move to the next room
  talk [name]                   talk to someone here
  fight [name]                  fight someone with an item from your backpack
  take                          pick up every item in the room
  wait <minutes>                let time pass
  print [printer] <job>         start a job on an empty printer
  retrieve [printer]            collect a finished or spoiled job
  repair [printer]              service an empty printer with a tool
  inspect [printer]             show a printer's parts
  jobs                          list the job table
  backpack                      list what you carry
  status                        show the clock and your results`
