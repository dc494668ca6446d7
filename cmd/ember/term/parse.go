package term

// This file contains the command-line parser. Parsing is separated from
// dispatch so the verb table can be tested without a model.

import "strings"

// Verb identifies a recognized top-level command.
type Verb int

const (
	VerbUnknown Verb = iota
	VerbHelp
	VerbList
	VerbCategories
	VerbStats
	VerbFilter
	VerbSearch
	VerbShow
	VerbOpen
	VerbCopy
	VerbDownload
	VerbNeofetch
	VerbClear
	VerbDev
)

var verbs = map[string]Verb{
	"help":       VerbHelp,
	"list":       VerbList,
	"ls":         VerbList,
	"categories": VerbCategories,
	"stats":      VerbStats,
	"filter":     VerbFilter,
	"search":     VerbSearch,
	"show":       VerbShow,
	"open":       VerbOpen,
	"copy":       VerbCopy,
	"download":   VerbDownload,
	"neofetch":   VerbNeofetch,
	"clear":      VerbClear,
	"dev":        VerbDev,
}

// Command is a parsed input line.
type Command struct {
	Verb Verb
	Args []string
	Raw  string
}

// parseLine splits a trimmed input line into a verb and arguments. The verb
// is matched case-insensitively; arguments keep their original case.
func parseLine(line string) Command {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{Verb: VerbUnknown, Raw: line}
	}
	verb, ok := verbs[strings.ToLower(parts[0])]
	if !ok {
		verb = VerbUnknown
	}
	return Command{Verb: verb, Args: parts[1:], Raw: line}
}
