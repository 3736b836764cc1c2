package models

const (
	// CallStatusCompleted — единственный статус симулированного звонка.
	CallStatusCompleted = "completed"
	// CallProviderSimulated — провайдер, записываемый в note.
	CallProviderSimulated = "simulated"
	// DefaultCallMode — режим звонка, если клиент его не передал.
	DefaultCallMode = "precoded"
)

// Call — запись о совершённом (симулированном) звонке.
type Call struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	ClientNumber string `json:"client_number"`
	Status       string `json:"status"`
	Note         string `json:"note"`
	CallRef      string `json:"call_ref"`
	CreatedAt    int64  `json:"created_at"`
}

// CallNote — структура, сериализуемая в поле Note.
type CallNote struct {
	Provider string `json:"provider"`
	Mode     string `json:"mode"`
	Message  string `json:"message"`
}

// OriginateRequest — входные данные для инициации звонка.
type OriginateRequest struct {
	Phone        string `json:"phone" validate:"required"`
	ClientNumber string `json:"clientNumber" validate:"required"`
	Mode         string `json:"mode,omitempty"`
	Message      string `json:"message,omitempty"`
}
