package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Julia-Rulova/mesto-api/internal/agent/api"
	"github.com/Julia-Rulova/mesto-api/internal/agent/config"
)

// NewSigninCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере Mesto,
// получает токен сессии и сохраняет его в локальный конфигурационный файл.
// Токен живёт неделю; после истечения нужно войти заново.
//
// Email передаётся обязательным флагом --email, пароль запрашивается
// интерактивно (скрытый ввод) либо читается из STDIN при --password-stdin.
//
// Пример использования:
//
//	mesto signin --email test@example.com
//
// В случае успешного выполнения токен сохраняется локально, а пользователю
// выводится сообщение об успешном входе.
func NewSigninCmd(app *App) *cobra.Command {
	var (
		email             string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Вход пользователя (получить токен сессии)",
		Long: `Вход пользователя.

Пример:
  mesto signin --email test@example.com
  echo "StrongPass123" | mesto signin --email test@example.com --password-stdin
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordFromStdin)
			if err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := api.NewClient(app.ServerURL)
			// выполняем вход пользователя
			resp, err := c.Signin(email, password)
			if err != nil {
				return err
			}

			// сохраняем полученный токен в состоянии приложения
			app.Creds.Token = resp.Token

			// сохраняем токен в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "signin ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for signin")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.MarkFlagRequired("email")

	return cmd
}
