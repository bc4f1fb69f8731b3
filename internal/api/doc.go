// Package api builds and dispatches requests against the versioned SparkPost
// REST API.
//
// # Request Building
//
// [Client.BuildValues] turns a method, a resource path, a payload and custom
// headers into immutable [RequestValues]. The URL has the form
//
//	{protocol}://{host}[:{port}]/api/{version}/{path}[?{query}]
//
// For GET the payload becomes the query string: keys are sorted, list values
// are joined with "," and pairs with "&". For every other method the payload
// is encoded as the JSON body. The Authorization, Content-Type and User-Agent
// headers always come from the client and cannot be overridden.
//
// # Dispatch
//
// [Client.Do] sends synchronously and [Client.DoAsync] returns a
// [future.Future]. Both re-send on a 5xx response while the retry budget in
// [RetryConfig] lasts, building a fresh *http.Request for every attempt.
// Transport failures are not retried.
//
// DoAsync requires an HTTP client implementing [AsyncDoer]; otherwise it
// returns ErrUnsupportedOperation without sending anything.
//
// # Thread Safety
//
// A [Client] is immutable after construction and safe for concurrent use.
package api
