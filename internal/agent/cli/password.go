package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword читает пароль пользователя без эха в терминал.
//
// Пароль не передаётся флагом, чтобы не утекать в shell history.
// По умолчанию пароль запрашивается интерактивно (скрытый ввод).
// Для скриптов/CI доступен режим чтения из STDIN через fromStdin=true.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		r := bufio.NewReader(cmd.InOrStdin())
		b, err := r.ReadBytes('\n')
		if err != nil && len(b) == 0 {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		pw := bytes.TrimRight(b, "\r\n")
		if len(pw) == 0 {
			return "", errors.New("empty password on stdin")
		}
		return string(pw), nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password-stdin")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	pw := strings.TrimSpace(string(pwBytes))
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}
