package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"gematria/internal/gematria"
)

const defaultBaseURL = "http://localhost:8080"

type wordResponse struct {
	Word       string `json:"word"`
	Normalized string `json:"normalized"`
	Gematria   int    `json:"gematria"`
}

type topResponse struct {
	Gematria int            `json:"gematria"`
	Count    int            `json:"count"`
	Words    []wordResponse `json:"words"`
}

func main() {
	global := flag.NewFlagSet("gematria", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	client := &http.Client{Timeout: 15 * time.Second}

	switch args[0] {
	case "health":
		handleHealth(ctx, client, *baseURL)
	case "calc":
		handleCalc(ctx, client, *baseURL, args[1:])
	case "top":
		handleTop(ctx, client, *baseURL, args[1:])
	case "breakdown":
		handleBreakdown(args[1:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleHealth(ctx context.Context, client *http.Client, baseURL string) {
	var resp map[string]any
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/", nil, &resp); err != nil {
		log.Fatalf("health check failed: %v", err)
	}
	fmt.Printf("%s %s (%s)\n", resp["service"], resp["version"], resp["method"])
}

func handleCalc(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("calc", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatal("usage: gematria calc <word>")
	}

	var resp wordResponse
	u := baseURL + "/gematria/word/" + url.PathEscape(fs.Arg(0))
	if err := doJSON(ctx, client, http.MethodGet, u, nil, &resp); err != nil {
		log.Fatalf("calc failed: %v", err)
	}
	fmt.Printf("%s → %s = %d\n", resp.Word, resp.Normalized, resp.Gematria)
}

func handleTop(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("top", flag.ExitOnError)
	value := fs.Int("value", -1, "gematria value to look up")
	limit := fs.Int("limit", 10, "max results (1-100)")
	_ = fs.Parse(args)

	if *value < 0 {
		log.Fatal("usage: gematria top -value <n> [-limit <n>]")
	}

	payload := map[string]int{"gematria": *value, "limit": *limit}
	var resp topResponse
	if err := doJSON(ctx, client, http.MethodPost, baseURL+"/gematria/top", payload, &resp); err != nil {
		log.Fatalf("top failed: %v", err)
	}

	fmt.Printf("%d words with gematria %d (showing %d)\n", resp.Count, resp.Gematria, len(resp.Words))
	for _, w := range resp.Words {
		fmt.Printf("  %s (%s)\n", w.Word, w.Normalized)
	}
}

// breakdown runs locally against the core, no server needed.
func handleBreakdown(args []string) {
	fs := flag.NewFlagSet("breakdown", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatal("usage: gematria breakdown <word>")
	}

	word := fs.Arg(0)
	parts := gematria.Breakdown(word)
	if len(parts) == 0 {
		log.Fatal("word contains no Hebrew letters")
	}
	for _, p := range parts {
		fmt.Printf("  %s = %d\n", p.Letter, p.Value)
	}
	fmt.Printf("total: %d\n", gematria.Value(word))
}

func doJSON(ctx context.Context, client *http.Client, method, u string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s: %s", resp.Status, bytes.TrimSpace(b))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func printUsage() {
	fmt.Println(`usage: gematria [-api URL] <command>

commands:
  health                         check the API is up
  calc <word>                    gematria of a Hebrew word
  top -value <n> [-limit <n>]    stored words with a given value
  breakdown <word>               per-letter values (runs locally)`)
}
