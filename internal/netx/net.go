// Package netx provides the connectivity gate guarding remote operations
// and the HTTP upload helper for presigned object-storage URLs.
package netx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// NoConnectionMessage is the fixed user-facing text shown whenever an
// operation is short-circuited by the connectivity gate.
const NoConnectionMessage = "No internet connection. Please check your network and try again."

// ErrNoConnection is returned by Execute when the probe reports the backend
// unreachable. The wrapped operation is never invoked in that case.
var ErrNoConnection = errors.New(NoConnectionMessage)

// Prober answers whether the remote backend is currently reachable.
// Implementations must not block longer than their own internal timeout.
type Prober interface {
	IsReachable(ctx context.Context) bool
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(ctx context.Context) bool

func (f ProberFunc) IsReachable(ctx context.Context) bool { return f(ctx) }

// Execute runs op behind a pre-flight reachability check. When the probe
// reports unreachable it returns ErrNoConnection without invoking op;
// otherwise op's result is passed through unchanged.
func Execute[T any](ctx context.Context, p Prober, op func(ctx context.Context) (T, error)) (T, error) {
	if !p.IsReachable(ctx) {
		var zero T
		return zero, ErrNoConnection
	}
	return op(ctx)
}

// ExecuteErr is Execute for operations that return only an error.
func ExecuteErr(ctx context.Context, p Prober, op func(ctx context.Context) error) error {
	_, err := Execute(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// UploadToPresignedURL PUTs the payload to a presigned object-storage URL.
func UploadToPresignedURL(ctx context.Context, url string, payload []byte, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}
