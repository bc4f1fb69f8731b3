// Command sparkpost previews and sends transmissions from the command line.
//
//	sparkpost format < payload.json           print the normalized payload
//	sparkpost send < payload.json             POST a transmission
//	sparkpost get <resource> [key=value ...]  GET any resource
//
// send and get read SPARKPOST_* variables from the environment or ./.env.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	sparkpost "github.com/sparkpost/client-go"
)

const commandTimeout = 60 * time.Second

// Config holds the I/O streams and client factory used by run.
type Config struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	NewClient func() (*sparkpost.Client, error)
}

// DefaultConfig returns a Config wired to the process streams and the
// environment.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewClient: func() (*sparkpost.Client, error) {
			return sparkpost.NewFromEnv()
		},
	}
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return errors.New("usage: sparkpost <format|send|get> [args]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if args[1] == "format" {
		return runFormat(cfg)
	}

	client, err := cfg.NewClient()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	switch args[1] {
	case "send":
		return runSend(ctx, client, cfg)
	case "get":
		if len(args) < 3 {
			return errors.New("usage: sparkpost get <resource> [key=value ...]")
		}
		return runGet(ctx, client, args[2], args[3:], cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func readPayload(r io.Reader) (sparkpost.Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	var p sparkpost.Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	return p, nil
}

func runFormat(cfg *Config) error {
	p, err := readPayload(cfg.Stdin)
	if err != nil {
		return err
	}

	formatted, err := sparkpost.FormatTransmission(p)
	if err != nil {
		return fmt.Errorf("format payload: %w", err)
	}
	return writeJSON(cfg.Stdout, formatted)
}

func runSend(ctx context.Context, client *sparkpost.Client, cfg *Config) error {
	p, err := readPayload(cfg.Stdin)
	if err != nil {
		return err
	}

	promise, err := client.Transmissions.Post(ctx, p, nil)
	if err != nil {
		return fmt.Errorf("send transmission: %w", err)
	}
	return printResult(promise, cfg)
}

func runGet(ctx context.Context, client *sparkpost.Client, resource string, params []string, cfg *Config) error {
	query := sparkpost.Payload{}
	for _, p := range params {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid parameter %q, want key=value", p)
		}
		query[key] = value
	}

	promise, err := client.Request(ctx, "GET", resource, query, nil)
	if err != nil {
		return fmt.Errorf("get %s: %w", resource, err)
	}
	return printResult(promise, cfg)
}

func printResult(promise *sparkpost.Promise, cfg *Config) error {
	resp, err := promise.Wait()
	if err != nil {
		var ce *sparkpost.ClientError
		if errors.As(err, &ce) && ce.Body != nil {
			_ = writeJSON(cfg.Stderr, ce.Body)
		}
		return fmt.Errorf("request failed: %w", err)
	}
	if body := resp.BodyDecoded(); body != nil {
		return writeJSON(cfg.Stdout, body)
	}
	_, err = cfg.Stdout.Write(resp.Body())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
