//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sparkpost "github.com/sparkpost/client-go"
)

var (
	apiKey    string
	recipient string
	sender    string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("SPARKPOST_API_KEY")
	sender = os.Getenv("SPARKPOST_FROM")
	recipient = os.Getenv("SPARKPOST_TO")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: SPARKPOST_API_KEY not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Exit(m.Run())
}

func newClient(t *testing.T, opts ...sparkpost.Option) *sparkpost.Client {
	t.Helper()

	client, err := sparkpost.NewFromEnv(append([]sparkpost.Option{sparkpost.WithRetries(2)}, opts...)...)
	require.NoError(t, err)
	return client
}

func TestIntegration_ListTemplates(t *testing.T) {
	for _, async := range []bool{true, false} {
		client := newClient(t, sparkpost.WithAsync(async))
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		promise, err := client.Resource("templates").Get(ctx, "", nil, nil)
		require.NoError(t, err)

		resp, err := promise.Wait()
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Contains(t, resp.BodyDecoded(), "results")
	}
}

func TestIntegration_InvalidKey(t *testing.T) {
	client := newClient(t, sparkpost.WithKey("not-a-real-key"))

	promise, err := client.Resource("templates").Get(context.Background(), "", nil, nil)
	require.NoError(t, err)

	_, err = promise.Wait()
	assert.True(t, errors.Is(err, sparkpost.ErrUnauthorized) || errors.Is(err, sparkpost.ErrForbidden), "got %v", err)
}

func TestIntegration_MissingTemplate(t *testing.T) {
	client := newClient(t, sparkpost.WithDebug(true))

	promise, err := client.Resource("templates").Get(context.Background(), "does-not-exist-go-client", nil, nil)
	require.NoError(t, err)

	_, err = promise.Wait()
	var ce *sparkpost.ClientError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, sparkpost.ErrNotFound)
	assert.NotNil(t, ce.Request)
}

func TestIntegration_SendTransmission(t *testing.T) {
	if sender == "" || recipient == "" {
		t.Skip("SPARKPOST_FROM and SPARKPOST_TO not set")
	}
	client := newClient(t)

	promise, err := client.Transmissions.Post(context.Background(), sparkpost.Payload{
		"options": map[string]any{"sandbox": true},
		"content": map[string]any{
			"from":    sender,
			"subject": "Go client integration test",
			"text":    "sent by the integration suite",
		},
		"recipients": []any{map[string]any{"address": recipient}},
		"cc":         []any{map[string]any{"address": recipient}},
	}, nil)
	require.NoError(t, err)

	resp, err := promise.Wait()
	require.NoError(t, err)
	results, ok := resp.BodyDecoded()["results"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, results["id"])
}
