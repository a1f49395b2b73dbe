package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLikeCmd создаёт CLI-команду для лайка карточки.
//
// Операция идемпотентна: повторный лайк той же карточки не является ошибкой.
//
// Пример использования:
//
//	mesto like --id 8a6e0804-2bd0-4672-b79d-d97027f9071a
func NewLikeCmd(app *App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:          "like",
		Short:        "Поставить лайк карточке",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return fmt.Errorf("no token, run: mesto signin")
			}

			c := NewAPIClient(app.ServerURL)
			card, err := c.LikeCard(app.Creds.Token, id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "card %s likes=%d\n", card.ID, len(card.Likes))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "card id (uuid)")
	cmd.MarkFlagRequired("id")

	return cmd
}

// NewDislikeCmd создаёт CLI-команду для снятия лайка с карточки.
//
// Операция идемпотентна: снятие несуществующего лайка — не ошибка.
//
// Пример использования:
//
//	mesto dislike --id 8a6e0804-2bd0-4672-b79d-d97027f9071a
func NewDislikeCmd(app *App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:          "dislike",
		Short:        "Снять лайк с карточки",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return fmt.Errorf("no token, run: mesto signin")
			}

			c := NewAPIClient(app.ServerURL)
			card, err := c.DislikeCard(app.Creds.Token, id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "card %s likes=%d\n", card.ID, len(card.Likes))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "card id (uuid)")
	cmd.MarkFlagRequired("id")

	return cmd
}
