// Package sparkpost provides a Go client for the SparkPost transactional
// email REST API.
//
// Basic usage:
//
//	client, err := sparkpost.New("your-api-key", sparkpost.WithRetries(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	promise, err := client.Transmissions.Post(ctx, sparkpost.Payload{
//	    "content": map[string]any{
//	        "from":    `"Sender" <sender@example.com>`,
//	        "subject": "Hello",
//	        "text":    "Hi there",
//	    },
//	    "recipients": []any{map[string]any{"address": "rcpt@example.com"}},
//	    "cc":         []any{map[string]any{"address": "cc@example.com"}},
//	}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := promise.Wait()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.StatusCode, resp.BodyDecoded())
//
// Requests are asynchronous by default: Request and the Resource verbs
// return a Promise. Disable the Async option to send synchronously; the
// returned Promise is then already settled.
//
// Failures after a request is built settle the promise with a *ClientError,
// which matches the status sentinels through errors.Is:
//
//	if errors.Is(err, sparkpost.ErrUnauthorized) {
//	    // Check the API key
//	}
package sparkpost
