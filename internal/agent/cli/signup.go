package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Julia-Rulova/mesto-api/internal/agent/api"
)

// NewSignupCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере Mesto
// с использованием email и пароля. Email передаётся обязательным флагом
// --email, пароль запрашивается интерактивно (скрытый ввод) либо читается
// из STDIN при флаге --password-stdin.
//
// Имя, описание и аватар опциональны: если не заданы, сервер подставит
// профиль по умолчанию.
//
// Пример использования:
//
//	mesto signup --email test@example.com
//	mesto signup --email test@example.com --name "Иван" --about "Фотограф"
//
// В случае успешной регистрации выводится идентификатор созданного пользователя.
func NewSignupCmd(app *App) *cobra.Command {
	var (
		email             string
		name              string
		about             string
		avatar            string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пароль не передаётся флагом (чтобы не утекать в history).
По умолчанию пароль запрашивается интерактивно (скрытый ввод).
Для скриптов: --password-stdin читает пароль из STDIN.

Пример:
  mesto signup --email test@example.com
  echo "StrongPass123" | mesto signup --email test@example.com --password-stdin
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordFromStdin)
			if err != nil {
				return err
			}

			c := api.NewClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			user, err := c.Signup(email, password, name, about, avatar)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registration successful (user %s)\n", user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&name, "name", "", "profile name (optional)")
	cmd.Flags().StringVar(&about, "about", "", "profile about (optional)")
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar URL (optional)")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.MarkFlagRequired("email")

	return cmd
}
