package shared_test

import (
	"net/http"
	"testing"

	"campusvisit/internal/domains/schools/model/dto"
	"campusvisit/shared"
	"campusvisit/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToBool(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name   string
		isRead string
		want   *bool
	}{
		{name: "filter unset", isRead: "", want: nil},
		{name: "read only", isRead: "true", want: &yes},
		{name: "unread only", isRead: "false", want: &no},
		{name: "numeric flag", isRead: "1", want: &yes},
		{name: "garbage ignored", isRead: "maybe", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.ConvertStringToBool(tt.isRead))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(7, 0))
	assert.Equal(t, 3, shared.CalculateTotalPage(21, 10))
}

func TestTransformFields(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateSchoolRequest
		want map[string]any
	}{
		{
			name: "both fields",
			req:  dto.UpdateSchoolRequest{Name: "Ata Lisesi", City: "Ankara"},
			want: map[string]any{"name": "Ata Lisesi", "city": "Ankara"},
		},
		{
			name: "city only",
			req:  dto.UpdateSchoolRequest{City: "Izmir"},
			want: map[string]any{"city": "Izmir"},
		},
		{
			name: "nothing",
			req:  dto.UpdateSchoolRequest{},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.TransformFields(tt.req))
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := shared.ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-3", "abc"} {
		_, err := shared.ParseID(raw)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err), raw)
	}
}
