package validator

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetJWSFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"missing header", "", "", ErrNoAuthHeader},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "", ErrInvalidAuthHeader},
		{"lowercase bearer", "bearer abc", "", ErrInvalidAuthHeader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/ranks", nil)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			got, err := GetJWSFromRequest(req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
