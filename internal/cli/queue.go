package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQueueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Matchmaking queue commands",
	}

	cmd.AddCommand(newQueueJoinCmd())
	cmd.AddCommand(newQueueLeaveCmd())

	return cmd
}

func newQueueJoinCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join the matchmaking queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.PlayerID == "" {
				return fmt.Errorf("no player id: register first")
			}

			req := map[string]any{"player_id": cfg.PlayerID}
			if length > 0 {
				req["word_length"] = length
			}

			var result QueueJoinedResult
			if err := client.Post("/api/v1/queue/join", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 0, "Preferred word length (4-7)")

	return cmd
}

func newQueueLeaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Leave the matchmaking queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.PlayerID == "" {
				return fmt.Errorf("no player id: register first")
			}

			req := map[string]any{"player_id": cfg.PlayerID}
			if err := client.Post("/api/v1/queue/leave", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Left the queue")
			return nil
		},
	}

	return cmd
}
