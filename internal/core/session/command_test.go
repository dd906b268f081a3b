package session

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParsedInput
	}{
		{"menu number preview", "1", ParsedInput{Command: CmdPreview}},
		{"word preview", "preview", ParsedInput{Command: CmdPreview}},
		{"word tracks", "tracks", ParsedInput{Command: CmdPreview}},
		{"menu number create", "2", ParsedInput{Command: CmdCreate}},
		{"bare create is the action", "create", ParsedInput{Command: CmdCreate}},
		{"settings word", "settings", ParsedInput{Command: CmdSettings}},
		{"adjust alias", "adjust", ParsedInput{Command: CmdSettings}},
		{"new vibe", "4", ParsedInput{Command: CmdNewVibe}},
		{"help question mark", "?", ParsedInput{Command: CmdHelp}},
		{"exit word", "quit", ParsedInput{Command: CmdExit}},
		{"exit q", "q", ParsedInput{Command: CmdExit}},
		{"limit setting", "limit 30", ParsedInput{Command: CmdSetLimit, Limit: 30}},
		{"market setting", "market de", ParsedInput{Command: CmdSetMarket, Market: "DE"}},
		{"name setting", "name midnight focus", ParsedInput{Command: CmdSetName, Name: "midnight focus"}},
		{"name setting keeps casing", "name Midnight Focus", ParsedInput{Command: CmdSetName, Name: "Midnight Focus"}},
		{"name setting uppercase field word", "NAME Midnight Focus", ParsedInput{Command: CmdSetName, Name: "Midnight Focus"}},
		{"bad limit falls through", "limit thirty", ParsedInput{Command: CmdVibe, Vibe: "limit thirty"}},
		{"direct vibe", "chill evening coding vibes", ParsedInput{Command: CmdVibe, Vibe: "chill evening coding vibes"}},
		{"prefixed i want", "I want upbeat workout music", ParsedInput{Command: CmdVibe, Vibe: "upbeat workout music"}},
		{"prefixed create a", "create a relaxing jazz playlist", ParsedInput{Command: CmdVibe, Vibe: "relaxing jazz playlist"}},
		{"prefixed give me", "give me rainy sunday blues", ParsedInput{Command: CmdVibe, Vibe: "rainy sunday blues"}},
		{"short noise", "xyz", ParsedInput{Command: CmdUnknown}},
		{"digits only", "123456789012", ParsedInput{Command: CmdUnknown}},
		{"empty", "   ", ParsedInput{Command: CmdUnknown}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.input)
			if got != tc.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}
