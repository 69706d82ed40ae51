package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input   *s3.PutObjectInput
	body    []byte
	deleted *s3.DeleteObjectInput
	err     error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = params
	return &s3.DeleteObjectOutput{}, f.err
}

func TestS3Store_Put(t *testing.T) {
	fake := &fakeS3{}
	store := &S3Store{client: fake, cfg: S3Config{Bucket: "photos", Region: "eu-central-1"}}

	url, err := store.Put(context.Background(), "contacts/1.jpg", "image/jpeg", []byte("jpeg"))
	require.NoError(t, err)

	assert.Equal(t, "https://photos.s3.eu-central-1.amazonaws.com/contacts/1.jpg", url)
	assert.Equal(t, "photos", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "contacts/1.jpg", aws.ToString(fake.input.Key))
	assert.Equal(t, "image/jpeg", aws.ToString(fake.input.ContentType))
	assert.Equal(t, []byte("jpeg"), fake.body)
}

func TestS3Store_PutError(t *testing.T) {
	store := &S3Store{client: &fakeS3{err: errors.New("denied")}, cfg: S3Config{Bucket: "photos"}}

	_, err := store.Put(context.Background(), "k", "image/jpeg", nil)
	assert.Error(t, err)
}

func TestS3Store_Delete(t *testing.T) {
	fake := &fakeS3{}
	store := &S3Store{client: fake, cfg: S3Config{Bucket: "photos"}}

	require.NoError(t, store.Delete(context.Background(), "contacts/1.jpg"))
	assert.Equal(t, "photos", aws.ToString(fake.deleted.Bucket))
	assert.Equal(t, "contacts/1.jpg", aws.ToString(fake.deleted.Key))

	fake.err = errors.New("denied")
	assert.Error(t, store.Delete(context.Background(), "contacts/1.jpg"))
}

func TestS3Store_ObjectURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  S3Config
		want string
	}{
		{"public base", S3Config{PublicBaseURL: "https://cdn.example.com", Bucket: "b"}, "https://cdn.example.com/a.jpg"},
		{"custom endpoint", S3Config{Endpoint: "https://s3.wasabisys.com", Bucket: "b"}, "https://s3.wasabisys.com/b/a.jpg"},
		{"aws", S3Config{Bucket: "b", Region: "us-east-1"}, "https://b.s3.us-east-1.amazonaws.com/a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, (&S3Store{cfg: tt.cfg}).ObjectURL("/a.jpg"))
		})
	}
}
