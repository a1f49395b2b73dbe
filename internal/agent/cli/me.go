package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Julia-Rulova/mesto-api/internal/agent/api"
)

// NewMeCmd создаёт CLI-команду для просмотра профиля текущего пользователя.
//
// Команда проверяет сохранённый токен сессии: сервер вернёт профиль
// только если токен валиден и не истёк.
//
// Пример использования:
//
//	mesto me
func NewMeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "me",
		Short:        "Профиль текущего пользователя (проверка токена)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return fmt.Errorf("no token, run: mesto signin")
			}

			c := api.NewClient(app.ServerURL)
			user, err := c.Me(app.Creds.Token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "id=%s\nemail=%s\nname=%s\nabout=%s\navatar=%s\n",
				user.ID, user.Email, user.Name, user.About, user.Avatar)
			return nil
		},
	}
}
