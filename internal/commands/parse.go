package commands

import (
	"strings"
	"time"
	"unicode"

	"ledger/internal/core"
	"ledger/internal/ledger"
)

// Verbs understood by the parser.
const (
	VerbAdd     = "add"
	VerbInsert  = "insert"
	VerbRemove  = "remove"
	VerbReplace = "replace"
	VerbList    = "list"
	VerbFilter  = "filter"
	VerbUndo    = "undo"
)

const (
	keywordTo      = "to"
	keywordWith    = "with"
	keywordBalance = "balance"
)

// SplitText splits a line into its verb (first whitespace-delimited token)
// and the trimmed remainder.
func SplitText(line string) (verb, params string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

// Parser builds commands from text. Today supplies the day used by add.
type Parser struct {
	Today func() int
}

// Parse validates line and returns the command it denotes. Unknown verbs
// fail with core.ErrUnknownCommand; malformed arguments with
// core.ErrValidation.
func (p Parser) Parse(line string) (Command, error) {
	verb, params := SplitText(line)
	args := strings.Fields(params)

	switch verb {
	case VerbAdd:
		return p.parseAdd(args)
	case VerbInsert:
		return parseInsert(args)
	case VerbRemove:
		return parseRemove(args)
	case VerbReplace:
		return parseReplace(args)
	case VerbList:
		return parseList(args)
	case VerbFilter:
		return parseFilter(args)
	case VerbUndo:
		if len(args) != 0 {
			return nil, core.Validationf("invalid number of parameters for undo command")
		}
		return UndoCommand{}, nil
	default:
		return nil, core.UnknownCommandf("invalid command")
	}
}

func (p Parser) parseAdd(args []string) (Command, error) {
	if len(args) != 3 {
		return nil, core.Validationf("invalid number of parameters for add command")
	}
	amount, err := core.ParseAmount(args[0])
	if err != nil {
		return nil, err
	}
	kind, err := core.ParseKind(args[1])
	if err != nil {
		return nil, err
	}
	return AddCommand{Day: p.today(), Amount: amount, Kind: kind, Description: args[2]}, nil
}

// today falls back to the day of the month from the clock when no Today
// source is set.
func (p Parser) today() int {
	if p.Today == nil {
		return time.Now().Day()
	}
	return p.Today()
}

func parseInsert(args []string) (Command, error) {
	if len(args) != 4 {
		return nil, core.Validationf("invalid number of parameters for insert command")
	}
	day, err := core.ParseDay(args[0])
	if err != nil {
		return nil, err
	}
	amount, err := core.ParseAmount(args[1])
	if err != nil {
		return nil, err
	}
	kind, err := core.ParseKind(args[2])
	if err != nil {
		return nil, err
	}
	return InsertCommand{Day: day, Amount: amount, Kind: kind, Description: args[3]}, nil
}

func parseRemove(args []string) (Command, error) {
	switch len(args) {
	case 1:
		if core.IsDigits(args[0]) {
			day, err := core.ParseDay(args[0])
			if err != nil {
				return nil, err
			}
			return RemoveDayCommand{Day: day}, nil
		}
		kind, err := core.ParseKind(args[0])
		if err != nil {
			return nil, err
		}
		return RemoveTypeCommand{Kind: kind}, nil
	case 3:
		if args[1] != keywordTo {
			return nil, core.Validationf("remove command should contain to keyword")
		}
		start, err := core.ParseDay(args[0])
		if err != nil {
			return nil, err
		}
		end, err := core.ParseDay(args[2])
		if err != nil {
			return nil, err
		}
		if start > end {
			return nil, core.Validationf("start day should be smaller than end day")
		}
		return RemoveRangeCommand{Start: start, End: end}, nil
	default:
		return nil, core.Validationf("invalid number of parameters for any remove command")
	}
}

func parseReplace(args []string) (Command, error) {
	if len(args) != 5 {
		return nil, core.Validationf("invalid number of parameters for replace command")
	}
	if args[3] != keywordWith {
		return nil, core.Validationf("replace command should contain with keyword")
	}
	day, err := core.ParseDay(args[0])
	if err != nil {
		return nil, err
	}
	kind, err := core.ParseKind(args[1])
	if err != nil {
		return nil, err
	}
	amount, err := core.ParseAmount(args[4])
	if err != nil {
		return nil, err
	}
	return ReplaceCommand{Day: day, Kind: kind, Description: args[2], Amount: amount}, nil
}

func parseFilter(args []string) (Command, error) {
	switch len(args) {
	case 1:
		kind, err := core.ParseKind(args[0])
		if err != nil {
			return nil, err
		}
		return FilterTypeCommand{Kind: kind}, nil
	case 2:
		kind, err := core.ParseKind(args[0])
		if err != nil {
			return nil, err
		}
		amount, err := core.ParseAmount(args[1])
		if err != nil {
			return nil, err
		}
		return FilterTypeAmountCommand{Kind: kind, Amount: amount}, nil
	default:
		return nil, core.Validationf("invalid number of parameters for any filter command")
	}
}

func parseList(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return ListAllCommand{}, nil
	case 1:
		kind, err := core.ParseKind(args[0])
		if err != nil {
			return nil, err
		}
		return ListTypeCommand{Kind: kind}, nil
	case 2:
		if cond, ok := ledger.ParseCondition(args[0]); ok {
			amount, err := core.ParseAmount(args[1])
			if err != nil {
				return nil, err
			}
			return ListAmountCommand{Condition: cond, Amount: amount}, nil
		}
		if args[0] == keywordBalance {
			day, err := core.ParseDay(args[1])
			if err != nil {
				return nil, err
			}
			return BalanceCommand{Day: day}, nil
		}
		return nil, core.Validationf("list command should contain <, =, > or balance keyword")
	default:
		return nil, core.Validationf("invalid number of parameters for any list command")
	}
}
