// Package callid генерирует идентификаторы симулированных звонков.
package callid

import (
	"strings"

	"github.com/google/uuid"
)

// Prefix — префикс всех идентификаторов симулированных звонков.
const Prefix = "SIM-"

const suffixLen = 8

// New возвращает идентификатор вида "SIM-" + 8 случайных символов [0-9a-f].
func New() string {
	return Prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLen]
}
