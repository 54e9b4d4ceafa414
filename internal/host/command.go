package host

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pixil98/go-libram/internal/game"
)

// Verb is the first word of a client command.
type Verb string

const (
	VerbCast     Verb = "cast"
	VerbFamiliar Verb = "familiar"
	VerbUneffect Verb = "uneffect"
	VerbTerminal Verb = "terminal"
	VerbCLI      Verb = "cli"
)

// Command is a structured client command. String renders the text the
// client's command line understands.
type Command interface {
	Verb() Verb
	Args() []string
	String() string
}

// CastSkill casts a skill Times times (at least once).
type CastSkill struct {
	Skill game.Skill
	Times int
}

func Cast(s game.Skill) CastSkill {
	return CastSkill{Skill: s, Times: 1}
}

func (c CastSkill) Verb() Verb { return VerbCast }

func (c CastSkill) Args() []string {
	return []string{strconv.Itoa(max(c.Times, 1)), c.Skill.Name()}
}

func (c CastSkill) String() string {
	return fmt.Sprintf("cast %d %s", max(c.Times, 1), c.Skill)
}

// UseFamiliar takes a familiar out of the terrarium.
type UseFamiliar struct {
	Familiar game.Familiar
}

func (c UseFamiliar) Verb() Verb     { return VerbFamiliar }
func (c UseFamiliar) Args() []string { return []string{c.Familiar.Name()} }
func (c UseFamiliar) String() string { return fmt.Sprintf("familiar %s", c.Familiar) }

// Uneffect removes an active effect.
type Uneffect struct {
	Effect game.Effect
}

func (c Uneffect) Verb() Verb     { return VerbUneffect }
func (c Uneffect) Args() []string { return []string{c.Effect.Name()} }
func (c Uneffect) String() string { return fmt.Sprintf("uneffect %s", c.Effect) }

// TerminalAction selects one of the Source terminal's programs.
type TerminalAction int

const (
	TerminalEnhance TerminalAction = iota + 1
	TerminalEnquiry
	TerminalEducate
	TerminalExtrude
)

var terminalTokens = map[TerminalAction]string{
	TerminalEnhance: "enhance",
	TerminalEnquiry: "enquiry",
	TerminalEducate: "educate",
	TerminalExtrude: "extrude",
}

func (a TerminalAction) String() string {
	if tok, ok := terminalTokens[a]; ok {
		return tok
	}
	return fmt.Sprintf("TerminalAction(%d)", int(a))
}

func parseTerminalAction(s string) (TerminalAction, error) {
	for a, tok := range terminalTokens {
		if strings.EqualFold(tok, s) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown terminal action %q", s)
}

// TerminalCommand runs a terminal program against a file, e.g.
// "terminal enhance items.enh".
type TerminalCommand struct {
	Action TerminalAction
	File   string
}

func Terminal(action TerminalAction, file string) TerminalCommand {
	return TerminalCommand{Action: action, File: file}
}

func (c TerminalCommand) Verb() Verb     { return VerbTerminal }
func (c TerminalCommand) Args() []string { return []string{c.Action.String(), c.File} }
func (c TerminalCommand) String() string { return fmt.Sprintf("terminal %s %s", c.Action, c.File) }

// CLI passes free text through to the client unchanged.
type CLI struct {
	Text string
}

func (c CLI) Verb() Verb     { return VerbCLI }
func (c CLI) Args() []string { return []string{c.Text} }
func (c CLI) String() string { return c.Text }

// ParseCommand rebuilds a structured command from its verb and arguments.
func ParseCommand(verb Verb, args []string) (Command, error) {
	want := map[Verb]int{
		VerbCast:     2,
		VerbFamiliar: 1,
		VerbUneffect: 1,
		VerbTerminal: 2,
		VerbCLI:      1,
	}
	n, ok := want[verb]
	if !ok {
		return nil, fmt.Errorf("unknown verb %q", verb)
	}
	if len(args) != n {
		return nil, fmt.Errorf("%s: expected %d argument(s), got %d", verb, n, len(args))
	}

	switch verb {
	case VerbCast:
		times, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("cast: %q is not a valid number", args[0])
		}
		return CastSkill{Skill: game.Skill(args[1]), Times: times}, nil
	case VerbFamiliar:
		return UseFamiliar{Familiar: game.Familiar(args[0])}, nil
	case VerbUneffect:
		return Uneffect{Effect: game.Effect(args[0])}, nil
	case VerbTerminal:
		action, err := parseTerminalAction(args[0])
		if err != nil {
			return nil, err
		}
		return TerminalCommand{Action: action, File: args[1]}, nil
	default:
		return CLI{Text: args[0]}, nil
	}
}
