// Package firestore stores routes as documents of one Firestore collection.
package firestore

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"trajmatch/config"
	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/repository"
	"trajmatch/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RouteRepository implements repository.RouteRepository on Firestore.
type RouteRepository struct {
	client     *firestore.Client
	collection string
}

var _ repository.RouteRepository = (*RouteRepository)(nil)

// NewRouteRepository initialises a Firebase app for cfg.ProjectID. An empty
// CredentialsPath falls back to application default credentials, which also
// covers FIRESTORE_EMULATOR_HOST.
func NewRouteRepository(ctx context.Context, cfg *config.FirebaseConfig) (*RouteRepository, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get firestore client: %w", err)
	}

	return &RouteRepository{client: client, collection: cfg.Collection}, nil
}

func (repo *RouteRepository) SaveRoute(ctx context.Context, route *entity.Route) error {
	if _, err := repo.doc(route.Name).Set(ctx, model.NewRouteDocument(route)); err != nil {
		return errors.Wrapf(err, "failed to save route %s", route.Name)
	}

	return nil
}

func (repo *RouteRepository) FindRouteByName(ctx context.Context, name string) (*entity.Route, error) {
	snap, err := repo.doc(name).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrapf(err, "failed to get route %s", name)
	}

	var doc model.RouteDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode route %s", name)
	}

	route, err := doc.ToDomain()
	if err != nil {
		return nil, errors.Wrapf(err, "route %s", name)
	}
	route.Name = name

	return route, nil
}

// DeleteRoute uses an Exists precondition; a plain delete of a missing document succeeds.
func (repo *RouteRepository) DeleteRoute(ctx context.Context, name string) error {
	if _, err := repo.doc(name).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrRouteNotFound
		}

		return errors.Wrapf(err, "failed to delete route %s", name)
	}

	return nil
}

func (repo *RouteRepository) ListRouteNames(ctx context.Context) ([]string, error) {
	iter := repo.client.Collection(repo.collection).Select("name").Documents(ctx)
	defer iter.Stop()

	var names []string
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list routes")
		}

		var doc model.RouteDocument
		if err := snap.DataTo(&doc); err != nil || doc.Name == "" {
			// Documents written by hand may lack the name field.
			if unescaped, uerr := url.PathUnescape(snap.Ref.ID); uerr == nil {
				doc.Name = unescaped
			}
		}
		names = append(names, doc.Name)
	}
	slices.Sort(names)

	return names, nil
}

// Close releases the Firestore client.
func (repo *RouteRepository) Close() error {
	return errors.WithStack(repo.client.Close())
}

// doc escapes the name because Firestore document IDs cannot contain '/'.
func (repo *RouteRepository) doc(name string) *firestore.DocumentRef {
	return repo.client.Collection(repo.collection).Doc(url.PathEscape(name))
}
