// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface used to
// store product images. Both AWS S3 and self-hosted MinIO are supported.
//
// # Client Interface
//
// The Client interface makes storage interactions easy to mock in unit tests
// (see core/storage/mocks).
//
//   - BucketExists / MakeBucket: used by EnsureBucket at startup
//   - PutObject: uploads an image
//   - GetObject: streams an image back
//   - RemoveObject: deletes an image when its item goes away
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
