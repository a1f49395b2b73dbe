package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCardCreateCmd создаёт CLI-команду для публикации новой карточки.
//
// Команда отправляет на сервер название и ссылку на изображение.
// Владельцем карточки становится владелец сохранённого токена.
//
// Обязательные флаги:
//
//	--name  — название карточки (2-30 символов)
//	--link  — URL изображения
//
// Пример использования:
//
//	mesto card-create --name "Байкал" --link https://example.com/baikal.jpg
//
// В случае успешного выполнения выводится идентификатор созданной карточки.
func NewCardCreateCmd(app *App) *cobra.Command {
	var (
		name string
		link string
	)

	cmd := &cobra.Command{
		Use:          "card-create",
		Short:        "Создать новую карточку",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return fmt.Errorf("no token, run: mesto signin")
			}

			c := NewAPIClient(app.ServerURL)
			card, err := c.CreateCard(app.Creds.Token, name, link)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created card %s\n", card.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "card name")
	cmd.Flags().StringVar(&link, "link", "", "card image URL")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("link")

	return cmd
}
