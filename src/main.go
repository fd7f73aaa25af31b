package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"crosswarped.com/squareword"
	"crosswarped.com/squareword/internal/vocabulary"
	"crosswarped.com/squareword/pkg/primitives"
)

type GenerateSquaresRequest struct {
	WordLength int      `json:"wordLength"`
	TopN       int      `json:"topN"`
	MaxSquares int      `json:"maxSquares"`
	Words      []string `json:"words"`
	WordScope  string   `json:"wordScope"`
	UniqueOnly bool     `json:"uniqueOnly"`
}

type GenerateSquaresResponse struct {
	Success bool       `json:"success"`
	Squares [][]string `json:"squares"`
	Error   string     `json:"error,omitempty"`
}

// getWords loads a frequency-ranked word list for one scope from BigQuery.
func getWords(ctx context.Context, scope string, wordLength, topN int) ([]string, error) {
	client, err := bigquery.NewClient(ctx, "squareword-x")
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	query := fmt.Sprintf(
		"SELECT word FROM `squareword-x.FirestoreQuery.word_frequencies` "+
			"WHERE scope = %q AND LENGTH(word) = %d ORDER BY frequency DESC LIMIT %d",
		scope, wordLength, topN)
	q := client.Query(query)
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}

func execute(ctx context.Context, req GenerateSquaresRequest) ([][]string, error) {
	if req.WordLength < 1 {
		return nil, fmt.Errorf("wordLength must be at least 1")
	}
	if req.MaxSquares <= 0 {
		return nil, fmt.Errorf("maxSquares must be at least 1")
	}
	if req.MaxSquares > 10 {
		return nil, fmt.Errorf("maxSquares must be at most 10")
	}
	if req.TopN <= 0 {
		req.TopN = 5000
	}

	ranked := make([]string, 0, len(req.Words))
	for _, word := range req.Words {
		ranked = append(ranked, strings.ToLower(strings.TrimSpace(word)))
	}

	if req.WordScope != "" {
		remote, err := getWords(ctx, req.WordScope, req.WordLength, req.TopN)
		if err != nil {
			return nil, fmt.Errorf("getWords: %w", err)
		}
		log.Info().Int("count", len(remote)).Str("scope", req.WordScope).Msg("loaded remote words")
		ranked = append(ranked, remote...)
	}

	if len(ranked) == 0 {
		return nil, fmt.Errorf("no words provided: set words or wordScope")
	}

	// Request words are both the ranking and the dictionary; the filter
	// still enforces length, alphabet, and the top-N cap.
	dict := make(map[string]struct{}, len(ranked))
	for _, w := range ranked {
		dict[w] = struct{}{}
	}
	working := vocabulary.Filter(ranked, dict, req.WordLength, req.TopN)

	trie, err := primitives.NewTrie(working, req.WordLength)
	if err != nil {
		return nil, fmt.Errorf("building trie: %w", err)
	}

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
		log.Info().Dur("timeout", timeout).Msg("derived search timeout")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	gen := squareword.CreateGenerator(trie, 0, nil)

	var squares [][]string
	for sq := range gen.FindSquares(ctx) {
		if req.UniqueOnly && !sq.WordsAreUnique() {
			continue
		}
		squares = append(squares, sq.Rows())
		if len(squares) >= req.MaxSquares {
			break
		}
	}

	return squares, ctx.Err()
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func generateSquares(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight.
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req GenerateSquaresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("parsing JSON body")
		w.WriteHeader(http.StatusBadRequest)
		response := GenerateSquaresResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	squares, err := execute(r.Context(), req)

	response := GenerateSquaresResponse{
		Success: err == nil,
		Squares: squares,
	}

	if err != nil {
		response.Error = err.Error()
	} else if len(squares) == 0 {
		response.Error = "No squares found for the given parameters"
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("marshaling response")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/generate-squares", generateSquares)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatal().Err(err).Msg("funcframework.StartHostPort")
	}
}
