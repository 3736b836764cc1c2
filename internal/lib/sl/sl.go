// Package sl содержит вспомогательные функции для формирования
// структурированных полей лога slog.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и текстом ошибки.
// Для nil значение пустое.
//
// Пример:
//
//	log.Error("failed to create user", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Phone возвращает slog.Attr с ключом "phone", в котором видны только
// последние три цифры номера.
func Phone(phone string) slog.Attr {
	return slog.String("phone", maskPhone(phone))
}

func maskPhone(phone string) string {
	const visible = 3
	runes := []rune(phone)
	if len(runes) <= visible {
		return phone
	}
	masked := make([]rune, len(runes))
	for i, r := range runes {
		if i < len(runes)-visible {
			masked[i] = '*'
			continue
		}
		masked[i] = r
	}
	return string(masked)
}
