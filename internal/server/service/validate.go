package service

import (
	"regexp"
	"unicode/utf8"
)

// Ограничения полей профиля и карточки. Совпадают со схемой фронтенда,
// но перепроверяются здесь независимо от валидации на границе.
const (
	fieldMinLen = 2
	fieldMaxLen = 30

	passwordMinLen = 6
)

// Дефолтные значения профиля нового пользователя.
const (
	defaultName   = "Жак-Ив Кусто"
	defaultAbout  = "Исследователь"
	defaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// ссылки на картинки и аватары
	urlRe = regexp.MustCompile(`^https?://(www\.)?[a-zA-Z\d-]+\.[\w\-.~:/?#\[\]@!$&'()*+,;=]{2,}#?$`)
)

// validField проверяет длину текстового поля профиля/карточки (2..30 символов).
func validField(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= fieldMinLen && n <= fieldMaxLen
}

// validURL проверяет ссылку на картинку/аватар.
func validURL(s string) bool {
	return urlRe.MatchString(s)
}

// validEmail проверяет адрес почты.
func validEmail(s string) bool {
	return emailRe.MatchString(s)
}
