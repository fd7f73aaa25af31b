package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		name    string
		req     GenerateSquaresRequest
		want    [][]string
		wantErr string
	}{
		{
			name: "finds a square from request words",
			req: GenerateSquaresRequest{
				WordLength: 3,
				MaxSquares: 5,
				Words:      []string{"CAT", "are", " ten ", "dog"},
			},
			want: [][]string{{"cat", "are", "ten"}},
		},
		{
			name: "respects maxSquares",
			req: GenerateSquaresRequest{
				WordLength: 2,
				MaxSquares: 2,
				Words:      []string{"aa", "ab", "ba", "bb"},
			},
			want: [][]string{{"aa", "aa"}, {"aa", "ab"}},
		},
		{
			name: "uniqueOnly drops repeated rows",
			req: GenerateSquaresRequest{
				WordLength: 2,
				MaxSquares: 1,
				Words:      []string{"aa", "ab", "ba"},
				UniqueOnly: true,
			},
			want: [][]string{{"aa", "ab"}},
		},
		{
			name: "no squares is not an error",
			req: GenerateSquaresRequest{
				WordLength: 3,
				MaxSquares: 1,
				Words:      []string{"abc", "def"},
			},
			want: nil,
		},
		{
			name:    "rejects missing words",
			req:     GenerateSquaresRequest{WordLength: 3, MaxSquares: 1},
			wantErr: "no words provided",
		},
		{
			name: "rejects bad word length",
			req: GenerateSquaresRequest{
				WordLength: 0,
				MaxSquares: 1,
				Words:      []string{"cat"},
			},
			wantErr: "wordLength",
		},
		{
			name: "rejects excessive maxSquares",
			req: GenerateSquaresRequest{
				WordLength: 3,
				MaxSquares: 11,
				Words:      []string{"cat"},
			},
			wantErr: "maxSquares",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(context.Background(), tt.req)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSquaresHandler(t *testing.T) {
	t.Run("POST returns squares", func(t *testing.T) {
		body := `{"wordLength": 3, "maxSquares": 1, "words": ["cat", "are", "ten"]}`
		r := httptest.NewRequest(http.MethodPost, "/generate-squares", strings.NewReader(body))
		w := httptest.NewRecorder()

		generateSquares(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp GenerateSquaresResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, [][]string{{"cat", "are", "ten"}}, resp.Squares)
	})

	t.Run("no squares reports an empty result", func(t *testing.T) {
		body := `{"wordLength": 3, "maxSquares": 1, "words": ["abc", "def"]}`
		r := httptest.NewRequest(http.MethodPost, "/generate-squares", strings.NewReader(body))
		w := httptest.NewRecorder()

		generateSquares(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp GenerateSquaresResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Empty(t, resp.Squares)
		assert.Contains(t, resp.Error, "No squares found")
	})

	t.Run("invalid JSON is a 400", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/generate-squares", strings.NewReader("{"))
		w := httptest.NewRecorder()

		generateSquares(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/generate-squares", nil)
		w := httptest.NewRecorder()

		generateSquares(w, r)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("OPTIONS preflight succeeds with CORS headers", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodOptions, "/generate-squares", nil)
		w := httptest.NewRecorder()

		generateSquares(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
