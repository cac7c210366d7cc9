package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mwantia/cmdspec"
	"github.com/mwantia/cmdspec/registry/store"
)

// S3Store keeps spec documents as envelope objects in an S3 bucket.
type S3Store struct {
	mu sync.RWMutex

	client *minio.Client

	endpoint   string
	bucketName string
	accessKey  string
	secretKey  string
	useSSL     bool
	prefix     string
}

func NewS3Store(endpoint, bucketName, accessKey, secretKey string, useSSL bool) *S3Store {
	return &S3Store{
		endpoint:   endpoint,
		bucketName: bucketName,
		accessKey:  accessKey,
		secretKey:  secretKey,
		useSSL:     useSSL,
		prefix:     "cmdspec/",
	}
}

// Name returns the identifier name defined for this store.
func (*S3Store) Name() string {
	return "s3"
}

// Open is part of the lifecycle behaviour and prepares the store for use.
func (ss *S3Store) Open(ctx context.Context) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	client, err := minio.New(ss.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(ss.accessKey, ss.secretKey, ""),
		Secure: ss.useSSL,
	})
	if err != nil {
		return err
	}

	exists, err := client.BucketExists(ctx, ss.bucketName)
	if err != nil {
		return err
	}
	if !exists {
		return cmdspec.ErrNotConnected
	}

	ss.client = client
	return nil
}

// Close is part of the lifecycle behaviour and releases all resources.
func (ss *S3Store) Close(ctx context.Context) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.client = nil
	return nil
}

func (ss *S3Store) Put(ctx context.Context, name string, payload []byte) (*store.Record, error) {
	if name == "" || strings.Contains(name, "/") {
		return nil, cmdspec.ErrInvalidName
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.client == nil {
		return nil, cmdspec.ErrNotConnected
	}

	key := ss.buildKey(name)

	record, err := ss.readRecord(ctx, key)
	switch {
	case err == nil:
		record.Touch(int64(len(payload)))
	case errors.Is(err, cmdspec.ErrNotExist):
		record = store.NewRecord(name, int64(len(payload)))
	default:
		return nil, err
	}

	blob, err := store.EncodeEnvelope(record, payload)
	if err != nil {
		return nil, err
	}

	_, err = ss.client.PutObject(ctx, ss.bucketName, key,
		bytes.NewReader(blob), int64(len(blob)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (ss *S3Store) Get(ctx context.Context, name string) ([]byte, *store.Record, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	if ss.client == nil {
		return nil, nil, cmdspec.ErrNotConnected
	}

	blob, err := ss.readObject(ctx, ss.buildKey(name))
	if err != nil {
		return nil, nil, err
	}

	return store.DecodeEnvelope(blob)
}

func (ss *S3Store) List(ctx context.Context) ([]*store.Record, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	if ss.client == nil {
		return nil, cmdspec.ErrNotConnected
	}

	var records []*store.Record
	for object := range ss.client.ListObjects(ctx, ss.bucketName, minio.ListObjectsOptions{
		Prefix:    ss.prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, object.Err
		}

		blob, err := ss.readObject(ctx, object.Key)
		if err != nil {
			return nil, err
		}

		_, record, err := store.DecodeEnvelope(blob)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})

	return records, nil
}

func (ss *S3Store) Delete(ctx context.Context, name string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.client == nil {
		return cmdspec.ErrNotConnected
	}

	key := ss.buildKey(name)

	if _, err := ss.readRecord(ctx, key); err != nil {
		return err
	}

	return ss.client.RemoveObject(ctx, ss.bucketName, key, minio.RemoveObjectOptions{})
}

func (ss *S3Store) buildKey(name string) string {
	return ss.prefix + name
}

func (ss *S3Store) readObject(ctx context.Context, key string) ([]byte, error) {
	object, err := ss.client.GetObject(ctx, ss.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()

	blob, err := io.ReadAll(object)
	if err != nil {
		response := minio.ToErrorResponse(err)
		if response.Code == "NoSuchKey" {
			return nil, cmdspec.ErrNotExist
		}
		return nil, err
	}

	return blob, nil
}

func (ss *S3Store) readRecord(ctx context.Context, key string) (*store.Record, error) {
	blob, err := ss.readObject(ctx, key)
	if err != nil {
		return nil, err
	}

	_, record, err := store.DecodeEnvelope(blob)
	return record, err
}
