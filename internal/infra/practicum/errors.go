package practicum

import (
	"errors"
	"fmt"
)

// Transport errors
var (
	ErrRequest = errors.New("ошибка доступа к эндпоинту")
	ErrDecode  = errors.New("эндпоинт вернул некорректный JSON")
)

// Response shape errors
var (
	ErrContract           = errors.New("ответ эндпоинта не соответствует ожидаемому")
	ErrEmptyResponse      = fmt.Errorf("%w: ответ содержит пустой словарь", ErrContract)
	ErrNotObject          = fmt.Errorf("%w: ответ не является словарём", ErrContract)
	ErrMissingHomeworks   = fmt.Errorf("%w: ключ \"homeworks\" отсутствует", ErrContract)
	ErrHomeworksNotList   = fmt.Errorf("%w: \"homeworks\" не является списком", ErrContract)
)

// HTTPStatusError is returned when the endpoint answers with anything but 200.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("ошибка ответа от эндпоинта: HTTP %d", e.StatusCode)
}
