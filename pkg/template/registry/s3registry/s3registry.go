/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination s3registry_mocks_test.go -package s3registry_test -source=s3registry.go -mock_names s3Getter=MockS3Getter

package s3registry

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3Getter interface {
	GetObject(
		ctx context.Context,
		input *s3.GetObjectInput,
		opts ...func(*s3.Options),
	) (*s3.GetObjectOutput, error)
}

// Registry serves templates from an S3 bucket.
type Registry struct {
	s3Client s3Getter
	bucket   string
	prefix   string
}

// New creates Registry. Template paths are resolved under prefix inside bucket.
func New(
	s3Client s3Getter,
	bucket string,
	prefix string,
) *Registry {
	return &Registry{
		s3Client: s3Client,
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
	}
}

// Fetch downloads the template object for the given registry path.
func (r *Registry) Fetch(ctx context.Context, templatePath string) ([]byte, error) {
	key := r.objectKey(templatePath)

	res, err := r.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}

	defer res.Body.Close() //nolint:errcheck

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", key, err)
	}

	return b, nil
}

func (r *Registry) objectKey(templatePath string) string {
	key := strings.TrimPrefix(path.Clean("/"+templatePath), "/")

	if r.prefix == "" {
		return key
	}

	return r.prefix + "/" + key
}
