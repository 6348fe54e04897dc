// internal/domain/homework/homework.go
package homework

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Status is the review state reported by the status endpoint.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Record validation errors
var (
	ErrMalformedRecord = errors.New("некорректная запись о домашней работе")
	ErrMissingName     = fmt.Errorf("%w: нет имени домашней работы", ErrMalformedRecord)
	ErrMissingStatus   = fmt.Errorf("%w: нет статуса домашней работы", ErrMalformedRecord)
	ErrUnknownStatus   = fmt.Errorf("%w: недокументированный статус домашней работы", ErrMalformedRecord)
)

// Homework is a single record from the "homeworks" list.
type Homework struct {
	Name   string `json:"homework_name"`
	Status Status `json:"status"`
}

// Decode unmarshals a raw homework record. Fields of the wrong JSON type are
// reported as ErrMalformedRecord.
func Decode(raw json.RawMessage) (Homework, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Homework{}, fmt.Errorf("%w: запись не является словарём", ErrMalformedRecord)
	}

	var hw Homework
	if v, ok := fields["homework_name"]; ok && string(v) != "null" {
		if err := json.Unmarshal(v, &hw.Name); err != nil {
			return Homework{}, fmt.Errorf("%w: homework_name не является строкой", ErrMalformedRecord)
		}
	}
	if v, ok := fields["status"]; ok && string(v) != "null" {
		if err := json.Unmarshal(v, &hw.Status); err != nil {
			return Homework{}, fmt.Errorf("%w: status не является строкой", ErrMalformedRecord)
		}
	}
	return hw, nil
}

// Verdict returns the fixed human-readable text for a known status.
func Verdict(s Status) (string, error) {
	v, ok := verdicts[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return v, nil
}

// ParseStatus validates the record and composes the notification text.
func ParseStatus(hw Homework) (string, error) {
	if hw.Name == "" {
		return "", ErrMissingName
	}
	if hw.Status == "" {
		return "", ErrMissingStatus
	}
	verdict, err := Verdict(hw.Status)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", hw.Name, verdict), nil
}
