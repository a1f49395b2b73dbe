// Package cli реализует командный интерфейс (CLI) клиентского приложения Mesto.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных учётных данных (токен сессии) из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Julia-Rulova/mesto-api/internal/agent/config"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу и загруженные учётные данные.
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера Mesto (например, "http://127.0.0.1:3000").
	ServerURL string

	// CredsPath — путь к файлу с сохранённым токеном сессии.
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	// Может быть nil, если загрузка не выполнялась или завершилась ошибкой.
	Creds *config.Credentials
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// определяется путь к файлу учётных данных и загружается сохранённый токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://127.0.0.1:3000",
	}

	cmd := &cobra.Command{
		Use:   "mesto",
		Short: "Mesto CLI — клиент API фотогалереи (пользователи/карточки/лайки)",
		Long: `Mesto CLI.

Команды:
  signup       Регистрация нового пользователя
  signin       Вход (получить токен сессии)
  me           Профиль текущего пользователя
  users        Список пользователей
  cards        Список карточек
  card-create  Создать карточку
  card-delete  Удалить карточку
  like         Поставить лайк карточке
  dislike      Снять лайк с карточки
  version      Версия и дата сборки

Примеры:

Регистрация:
  mesto signup --email test@example.com

Вход:
  mesto signin --email test@example.com
  (сохраняет токен сессии в локальном конфиге)

Проверка токена:
  mesto me
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "http://127.0.0.1:3000", "server base URL")

	cmd.AddCommand(NewSignupCmd(app))
	cmd.AddCommand(NewSigninCmd(app))
	cmd.AddCommand(NewMeCmd(app))
	cmd.AddCommand(NewUsersCmd(app))
	cmd.AddCommand(NewCardsCmd(app))
	cmd.AddCommand(NewCardCreateCmd(app))
	cmd.AddCommand(NewCardDeleteCmd(app))
	cmd.AddCommand(NewLikeCmd(app))
	cmd.AddCommand(NewDislikeCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
