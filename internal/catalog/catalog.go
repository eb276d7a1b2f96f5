package catalog

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/messages.yaml
var locales embed.FS

const defaultLocale = "locales/messages.yaml"

// FallbackText возвращается для неизвестного ключа
const FallbackText = "❌ An error occurred. Please try again later."

// Key идентификатор текста в каталоге
type Key string

const (
	KeyWelcome          Key = "welcome"
	KeyAbout            Key = "about"
	KeyContact          Key = "contact"
	KeyHelp             Key = "help"
	KeyUnknownCommand   Key = "unknown_command"
	KeyErrorGeneric     Key = "error_generic"
	KeyButtonSubscribe  Key = "button_subscribe"
	KeyButtonContact    Key = "button_contact"
	KeyButtonBack       Key = "button_back"
	KeyWebhookLocalMode Key = "webhook_local_mode"
)

// RequiredKeys ключи, без которых каталог не загружается
var RequiredKeys = []Key{
	KeyWelcome,
	KeyAbout,
	KeyContact,
	KeyHelp,
	KeyUnknownCommand,
	KeyErrorGeneric,
	KeyButtonSubscribe,
	KeyButtonContact,
	KeyButtonBack,
	KeyWebhookLocalMode,
}

// Params значения плейсхолдеров {email}, {website}, {registration_url}
type Params struct {
	Email           string
	Website         string
	RegistrationURL string
}

func (p Params) replacer() *strings.Replacer {
	return strings.NewReplacer(
		"{email}", p.Email,
		"{website}", p.Website,
		"{registration_url}", p.RegistrationURL,
	)
}

// Catalog неизменяемый набор текстов бота.
// Безопасен для конкурентного чтения.
type Catalog struct {
	messages map[Key]string
}

// Load загружает встроенные тексты и, если overridePath не пуст,
// перекрывает их значениями из внешнего YAML файла.
func Load(overridePath string) (*Catalog, error) {
	data, err := locales.ReadFile(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	messages, err := decode(data)
	if err != nil {
		return nil, err
	}

	if overridePath != "" {
		raw, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRead, err)
		}
		overrides, err := decode(raw)
		if err != nil {
			return nil, err
		}
		for k, v := range overrides {
			if strings.TrimSpace(v) != "" {
				messages[k] = v
			}
		}
	}

	return New(messages)
}

// New создаёт каталог из готового набора текстов
func New(messages map[Key]string) (*Catalog, error) {
	var missing []string
	for _, key := range RequiredKeys {
		if strings.TrimSpace(messages[key]) == "" {
			missing = append(missing, string(key))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, strings.Join(missing, ", "))
	}

	copied := make(map[Key]string, len(messages))
	for k, v := range messages {
		copied[k] = v
	}

	return &Catalog{messages: copied}, nil
}

func decode(data []byte) (map[Key]string, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	messages := make(map[Key]string, len(raw))
	for k, v := range raw {
		messages[Key(k)] = v
	}
	return messages, nil
}

// Render возвращает текст по ключу с подставленными параметрами.
// Для неизвестного ключа возвращается FallbackText.
func (c *Catalog) Render(key Key, params Params) string {
	text, ok := c.Text(key)
	if !ok {
		return FallbackText
	}
	return params.replacer().Replace(text)
}

// Text возвращает текст без подстановки
func (c *Catalog) Text(key Key) (string, bool) {
	if c == nil {
		return "", false
	}
	text, ok := c.messages[key]
	return text, ok
}

// Has проверяет наличие ключа
func (c *Catalog) Has(key Key) bool {
	_, ok := c.Text(key)
	return ok
}
