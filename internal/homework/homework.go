package homework

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch  = errors.New("unexpected data type")
	ErrEmptyPayload  = errors.New("empty payload")
	ErrUnknownStatus = errors.New("unknown homework status")
)

const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)

var verdicts = map[string]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict возвращает текст вердикта для статуса.
func Verdict(status string) (string, bool) {
	v, ok := verdicts[status]
	return v, ok
}

// Extract достаёт список работ из ответа API.
func Extract(response any) ([]any, error) {
	m, ok := response.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: response is %T, not an object", ErrTypeMismatch, response)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("%w: response object is empty", ErrEmptyPayload)
	}
	works, ok := m["homeworks"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: homeworks is %T, not a list", ErrTypeMismatch, m["homeworks"])
	}
	return works, nil
}

// FormatStatusChange собирает текст уведомления по одной работе.
func FormatStatusChange(record any) (string, error) {
	m, ok := record.(map[string]any)
	if !ok {
		return "", fmt.Errorf("%w: homework is %T, not an object", ErrTypeMismatch, record)
	}
	if len(m) == 0 {
		return "", fmt.Errorf("%w: homework object is empty", ErrEmptyPayload)
	}

	status, _ := m["status"].(string)
	verdict, ok := Verdict(status)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	name, _ := m["homework_name"].(string)
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}
