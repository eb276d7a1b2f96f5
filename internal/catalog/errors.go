package catalog

import "errors"

var (
	// ErrRead возвращается, если файл каталога не удалось прочитать
	ErrRead = errors.New("catalog: failed to read messages")

	// ErrDecode возвращается при некорректном YAML
	ErrDecode = errors.New("catalog: failed to decode messages")

	// ErrMissingKey возвращается, если обязательный текст отсутствует или пуст
	ErrMissingKey = errors.New("catalog: required message is missing")
)
