package homework

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_KnownStatuses(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusApproved, `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`},
		{StatusReviewing, `Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`},
		{StatusRejected, `Изменился статус проверки работы "hw1". Работа проверена: у ревьюера есть замечания.`},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got, err := ParseStatus(Homework{Name: "hw1", Status: tt.status})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		hw      Homework
		wantErr error
	}{
		{"missing name", Homework{Status: StatusApproved}, ErrMissingName},
		{"missing status", Homework{Name: "hw1"}, ErrMissingStatus},
		{"unknown status", Homework{Name: "hw1", Status: "lost"}, ErrUnknownStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.hw)
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrMalformedRecord)
			assert.Empty(t, got)
		})
	}
}

func TestParseStatus_ErrorTextsRussian(t *testing.T) {
	_, err := ParseStatus(Homework{Status: StatusApproved})
	assert.EqualError(t, err, "некорректная запись о домашней работе: нет имени домашней работы")

	_, err = ParseStatus(Homework{Name: "hw1", Status: "lost"})
	assert.EqualError(t, err, `некорректная запись о домашней работе: недокументированный статус домашней работы: "lost"`)
}

func TestDecode(t *testing.T) {
	hw, err := Decode(json.RawMessage(`{"homework_name":"hw1","status":"approved","lesson_name":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, Homework{Name: "hw1", Status: StatusApproved}, hw)

	hw, err = Decode(json.RawMessage(`{"status":"approved"}`))
	require.NoError(t, err)
	_, err = ParseStatus(hw)
	assert.ErrorIs(t, err, ErrMissingName)

	for _, raw := range []string{`"hw1"`, `[]`, `null`, `{"homework_name":42}`, `{"status":true}`} {
		_, err := Decode(json.RawMessage(raw))
		assert.ErrorIs(t, err, ErrMalformedRecord, raw)
	}
}
