package session

import (
	"strconv"
	"strings"
)

// Command is a recognized menu action. Anything that does not match the
// fixed vocabulary is either a vibe description or unknown input.
type Command int

const (
	CmdUnknown Command = iota
	CmdVibe
	CmdPreview
	CmdCreate
	CmdSettings
	CmdSetLimit
	CmdSetMarket
	CmdSetName
	CmdNewVibe
	CmdHelp
	CmdExit
)

// ParsedInput is the result of interpreting one line of user input.
type ParsedInput struct {
	Command Command
	Vibe    string
	Limit   int
	Market  string
	Name    string
}

var menuWords = map[string]Command{
	"1": CmdPreview, "preview": CmdPreview, "show": CmdPreview, "tracks": CmdPreview,
	"2": CmdCreate, "create": CmdCreate, "make": CmdCreate,
	"3": CmdSettings, "settings": CmdSettings, "adjust": CmdSettings, "change": CmdSettings,
	"4": CmdNewVibe, "new": CmdNewVibe, "another": CmdNewVibe, "different": CmdNewVibe,
	"5": CmdHelp, "help": CmdHelp, "?": CmdHelp,
	"6": CmdExit, "exit": CmdExit, "quit": CmdExit, "bye": CmdExit, "q": CmdExit,
}

// vibePrefixes are conversational lead-ins stripped before treating the rest
// of the line as a vibe description.
var vibePrefixes = []string{"i want", "make me", "make a", "create a", "create", "give me", "i need", "need"}

// minDirectVibeLen keeps short noise ("asdf", "7") from being sent to the LLM.
const minDirectVibeLen = 10

// Parse classifies one line of input. Menu words win over vibe text, so a
// bare "create" is the create action while "create a rainy jazz mood" is a
// vibe request. Classification happens on a lowered copy; the name payload
// keeps the user's casing.
func Parse(input string) ParsedInput {
	trimmed := strings.TrimSpace(input)
	lowered := strings.ToLower(trimmed)
	if lowered == "" {
		return ParsedInput{Command: CmdUnknown}
	}

	if cmd, ok := menuWords[lowered]; ok {
		return ParsedInput{Command: cmd}
	}

	if parsed, ok := parseSetting(trimmed, lowered); ok {
		return parsed
	}

	for _, prefix := range vibePrefixes {
		if strings.HasPrefix(lowered, prefix+" ") {
			rest := strings.TrimSpace(lowered[len(prefix):])
			if rest != "" {
				return ParsedInput{Command: CmdVibe, Vibe: rest}
			}
		}
	}

	if len(lowered) >= minDirectVibeLen && !isDigits(lowered) {
		return ParsedInput{Command: CmdVibe, Vibe: lowered}
	}

	return ParsedInput{Command: CmdUnknown}
}

// parseSetting handles the "limit <n>", "market <cc>" and "name <text>"
// adjustment forms. The field word is matched on the lowered line; the name
// payload is sliced from the trimmed original so its casing survives.
func parseSetting(trimmed, lowered string) (ParsedInput, bool) {
	field, rest, found := strings.Cut(lowered, " ")
	if !found {
		return ParsedInput{}, false
	}
	rest = strings.TrimSpace(rest)

	switch field {
	case "limit":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return ParsedInput{}, false
		}
		return ParsedInput{Command: CmdSetLimit, Limit: n}, true
	case "market":
		if len(rest) != 2 || !isLetters(rest) {
			return ParsedInput{}, false
		}
		return ParsedInput{Command: CmdSetMarket, Market: strings.ToUpper(rest)}, true
	case "name":
		_, name, _ := strings.Cut(trimmed, " ")
		name = strings.TrimSpace(name)
		if name == "" {
			return ParsedInput{}, false
		}
		return ParsedInput{Command: CmdSetName, Name: name}, true
	}

	return ParsedInput{}, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isLetters(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return len(s) > 0
}
