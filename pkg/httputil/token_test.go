package httputil

import (
	"net/http/httptest"
	"testing"
)

func TestGetTokenFromRequest(t *testing.T) {
	tt := []struct {
		name    string
		header  string
		target  string
		want    string
		wantErr bool
	}{
		{name: "bearer header", header: "Bearer abc.def", target: "/api/move", want: "abc.def"},
		{name: "raw header", header: "abc.def", target: "/api/move", want: "abc.def"},
		{name: "empty bearer", header: "Bearer  ", target: "/api/move", wantErr: true},
		{name: "query fallback", target: "/ws?token=xyz", want: "xyz"},
		{name: "header wins", header: "Bearer h", target: "/ws?token=q", want: "h"},
		{name: "missing", target: "/api/move", wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.target, nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			got, err := GetTokenFromRequest(r)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected error, got token %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}
