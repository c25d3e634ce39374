// Package blob stores each route as one JSON object in a gocloud.dev bucket,
// so the same code serves a local directory (file://), GCS (gs://) and tests (mem://).
package blob

import (
	"context"
	"encoding/json"
	"io"
	"slices"
	"strings"

	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/repository"
	"trajmatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const objectSuffix = ".json"

// RouteRepository implements repository.RouteRepository on a blob bucket.
type RouteRepository struct {
	bucket *blob.Bucket
}

var _ repository.RouteRepository = (*RouteRepository)(nil)

// Open opens bucketURL and scopes every key under prefix.
func Open(ctx context.Context, bucketURL, prefix string) (*RouteRepository, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return New(bucket, prefix), nil
}

// New takes ownership of bucket; Close closes it.
func New(bucket *blob.Bucket, prefix string) *RouteRepository {
	if prefix != "" {
		bucket = blob.PrefixedBucket(bucket, prefix)
	}

	return &RouteRepository{bucket: bucket}
}

func (repo *RouteRepository) SaveRoute(ctx context.Context, route *entity.Route) error {
	data, err := json.Marshal(model.NewRouteDocument(route))
	if err != nil {
		return errors.WithStack(err)
	}

	if err := repo.bucket.WriteAll(ctx, objectKey(route.Name), data, &blob.WriterOptions{
		ContentType: "application/json",
	}); err != nil {
		return errors.Wrapf(err, "failed to write route %s", route.Name)
	}

	return nil
}

func (repo *RouteRepository) FindRouteByName(ctx context.Context, name string) (*entity.Route, error) {
	data, err := repo.bucket.ReadAll(ctx, objectKey(name))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrapf(err, "failed to read route %s", name)
	}

	var doc model.RouteDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "route %s is not valid JSON", name)
	}

	route, err := doc.ToDomain()
	if err != nil {
		return nil, errors.Wrapf(err, "route %s", name)
	}
	route.Name = name

	return route, nil
}

func (repo *RouteRepository) DeleteRoute(ctx context.Context, name string) error {
	if err := repo.bucket.Delete(ctx, objectKey(name)); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return repository.ErrRouteNotFound
		}

		return errors.Wrapf(err, "failed to delete route %s", name)
	}

	return nil
}

func (repo *RouteRepository) ListRouteNames(ctx context.Context) ([]string, error) {
	var names []string

	iter := repo.bucket.List(nil)
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list routes")
		}
		if obj.IsDir || !strings.HasSuffix(obj.Key, objectSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(obj.Key, objectSuffix))
	}

	// Key order is not name order once the suffix is involved.
	slices.Sort(names)

	return names, nil
}

// Close releases the bucket.
func (repo *RouteRepository) Close() error {
	return errors.WithStack(repo.bucket.Close())
}

func objectKey(name string) string {
	return name + objectSuffix
}
