package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/soundcheck-labs/vibecraft/internal/core/session"
)

// runInteractive drives the conversation loop: read a line, hand it to the
// controller, render the reply, repeat until exit or EOF.
func runInteractive(ctx context.Context, deps Deps, renderer *Renderer) error {
	controller := session.NewController(deps.Interp, deps.Music, deps.History, session.Settings{
		Market: deps.Cfg.Spotify.Market,
	})

	renderer.Banner()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		renderer.Prompt()
		if !scanner.Scan() {
			break
		}

		reply := controller.HandleInput(ctx, scanner.Text())
		renderer.Reply(reply)

		if controller.State() == session.StateExited {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
