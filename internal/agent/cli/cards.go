package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Julia-Rulova/mesto-api/internal/agent/api"
)

// NewCardsCmd создаёт CLI-команду для просмотра ленты карточек.
//
// Эндпоинт публичный: токен не требуется, но если он сохранён —
// передаётся, чтобы поведение совпадало с остальными командами.
//
// Пример использования:
//
//	mesto cards
func NewCardsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "cards",
		Short:        "Список всех карточек (свежие первыми)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			if app.Creds != nil {
				token = app.Creds.Token
			}

			c := api.NewClient(app.ServerURL)
			resp, err := c.ListCards(token)
			if err != nil {
				return err
			}

			for _, card := range resp.Data {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%q\towner=%s\tlikes=%d\n",
					card.ID, card.Name, card.Owner.Name, len(card.Likes))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d\n", len(resp.Data))
			return nil
		},
	}
}
