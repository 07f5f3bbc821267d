package oss

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"github.com/ndavydov/storefront/internal/domain/model"
)

// PolicyProvider issues signed upload policies. Implemented by the backend
// client; stubbed in tests.
type PolicyProvider interface {
	UploadPolicy(ctx context.Context, token, fileName string) (model.UploadPolicy, error)
}

// UploadError indicates the direct post to the storage host failed, either at
// the transport level or with a non-success response.
type UploadError struct {
	Host string
	Code int
	Err  error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upload to %s failed: %v", e.Host, e.Err)
	}
	return fmt.Sprintf("upload to %s rejected: status %d", e.Host, e.Code)
}

func (e *UploadError) Unwrap() error { return e.Err }

// File is one queued upload.
type File struct {
	Name    string
	Content io.Reader
}

// Result is the outcome of a single file in a batch.
type Result struct {
	Name string
	URL  string
	Err  error
}

// Uploader posts files straight to the object storage host named by a signed
// policy. This deliberately does not go through the backend client: the signed
// policy fields are the credential, no bearer token is attached. The uploader
// keeps at most one prefetched policy; a policy is consumed by the upload it
// authorizes and never reused.
type Uploader struct {
	policies   PolicyProvider
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time

	mu     sync.Mutex
	cached *model.UploadPolicy
}

// NewUploader constructs an Uploader with its own transport and timeout.
func NewUploader(policies PolicyProvider, timeout time.Duration, logger *slog.Logger) *Uploader {
	return &Uploader{
		policies:   policies,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// Prefetch obtains a policy ahead of the actual upload, the way the admin UI
// does when a file is picked before the submit click.
func (u *Uploader) Prefetch(ctx context.Context, token, fileName string) error {
	policy, err := u.policies.UploadPolicy(ctx, token, fileName)
	if err != nil {
		return err
	}
	u.mu.Lock()
	u.cached = &policy
	u.mu.Unlock()
	return nil
}

// Upload sends one file and returns the final object URL. A cached policy is
// used if still valid; an expired one is discarded and re-fetched exactly once
// before any upload post goes out.
func (u *Uploader) Upload(ctx context.Context, token, fileName string, content io.Reader) (string, error) {
	u.mu.Lock()
	policy := u.cached
	u.cached = nil
	u.mu.Unlock()

	if policy == nil || policy.Expired(u.now()) {
		fresh, err := u.policies.UploadPolicy(ctx, token, fileName)
		if err != nil {
			return "", err
		}
		policy = &fresh
	}

	return u.post(ctx, *policy, fileName, content)
}

// UploadAll processes files strictly one after another: each file gets its own
// policy fetch and upload before the next file starts. One file's failure is
// recorded in its Result and does not stop the batch.
func (u *Uploader) UploadAll(ctx context.Context, token string, files []File) []Result {
	results := make([]Result, 0, len(files))
	for _, f := range files {
		objectURL, err := u.Upload(ctx, token, f.Name, f.Content)
		if err != nil {
			u.logger.Error("file upload failed",
				slog.String("file", f.Name),
				slog.String("error", err.Error()),
			)
			results = append(results, Result{Name: f.Name, Err: err})
			continue
		}
		results = append(results, Result{Name: f.Name, URL: objectURL})
	}
	return results
}

func (u *Uploader) post(ctx context.Context, policy model.UploadPolicy, fileName string, content io.Reader) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	fields := [][2]string{
		{"key", policy.Key},
		{"policy", policy.PolicyDocument},
		{"x-oss-signature", policy.Signature},
		{"x-oss-signature-version", policy.SignatureVersion},
		{"x-oss-credential", policy.Credential},
		{"x-oss-date", policy.Date},
		{"success_action_status", "200"},
		{"x-oss-security-token", policy.SecurityToken},
	}
	for _, field := range fields {
		if err := form.WriteField(field[0], field[1]); err != nil {
			return "", err
		}
	}

	part, err := form.CreateFormFile("file", fileName)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, policy.Host, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", &UploadError{Host: policy.Host, Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &UploadError{Host: policy.Host, Code: resp.StatusCode}
	}

	return policy.ObjectURL(), nil
}
