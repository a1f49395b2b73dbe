package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Julia-Rulova/mesto-api/internal/agent/api"
)

// NewUsersCmd создаёт CLI-команду для просмотра списка пользователей.
//
// Эндпоинт защищён, требуется действующий токен сессии.
//
// Пример использования:
//
//	mesto users
func NewUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "users",
		Short:        "Список всех пользователей",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return fmt.Errorf("no token, run: mesto signin")
			}

			c := api.NewClient(app.ServerURL)
			resp, err := c.ListUsers(app.Creds.Token)
			if err != nil {
				return err
			}

			for _, u := range resp.Data {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", u.ID, u.Email, u.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d\n", len(resp.Data))
			return nil
		},
	}
}
