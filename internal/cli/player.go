package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerProgressCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	var nick string
	var length int

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a player session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"nick": nick}
			if cfg.PlayerID != "" {
				req["player_id"] = cfg.PlayerID
			}
			if length > 0 {
				req["preferred_length"] = length
			}

			var result RegisterResult
			if err := client.Post("/api/v1/players/register", req, &result); err != nil {
				return err
			}

			// Save the id so later commands act as this player
			if err := cfg.SavePlayerID(result.Player.ID); err != nil {
				return fmt.Errorf("failed to save player id: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&nick, "nick", "", "Display nick")
	cmd.Flags().IntVar(&length, "length", 0, "Preferred word length (4-7)")

	return cmd
}

func newPlayerProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress [player-id]",
		Short: "Show a player's progression",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := cfg.PlayerID
			if len(args) > 0 {
				id = args[0]
			}
			if id == "" {
				return fmt.Errorf("no player id: register first or pass one")
			}

			var result ProgressResult
			if err := client.Get("/api/v1/players/"+id+"/progress", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	return cmd
}
