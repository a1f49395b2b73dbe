package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCardDeleteCmd создаёт CLI-команду для удаления карточки по ID.
//
// Пример использования:
//
//	mesto card-delete --id 8a6e0804-2bd0-4672-b79d-d97027f9071a
func NewCardDeleteCmd(app *App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:          "card-delete",
		Short:        "Удалить карточку по ID",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return fmt.Errorf("no token, run: mesto signin")
			}

			c := NewAPIClient(app.ServerURL)
			card, err := c.DeleteCard(app.Creds.Token, id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted card %s (%q)\n", card.ID, card.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "card id (uuid)")
	cmd.MarkFlagRequired("id")

	return cmd
}
