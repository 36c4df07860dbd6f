package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newGuessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guess <game-id> <word>",
		Short: "Submit a guess in an active game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.PlayerID == "" {
				return fmt.Errorf("no player id: register first")
			}

			gameID := args[0]
			word := strings.ToUpper(args[1])

			req := map[string]any{
				"player_id": cfg.PlayerID,
				"word":      word,
			}

			var result GuessResult
			if err := client.Post("/api/v1/games/"+gameID+"/guess", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	return cmd
}
