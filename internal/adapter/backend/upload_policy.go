package backend

import (
	"context"
	"fmt"
	"net/http"

	domainErrors "github.com/ndavydov/storefront/internal/domain/errors"
	"github.com/ndavydov/storefront/internal/domain/model"
)

type uploadPolicyRequest struct {
	FileName string `json:"file_name"`
}

// UploadPolicy requests a signed single-use policy for one file. Any failure
// here aborts the upload attempt for that file.
func (c *Client) UploadPolicy(ctx context.Context, token, fileName string) (model.UploadPolicy, error) {
	var policy model.UploadPolicy
	if err := c.do(ctx, http.MethodPost, "/file/upload", token, uploadPolicyRequest{FileName: fileName}, &policy); err != nil {
		return model.UploadPolicy{}, fmt.Errorf("%w: %w", domainErrors.ErrPolicyRequest, err)
	}
	return policy, nil
}
