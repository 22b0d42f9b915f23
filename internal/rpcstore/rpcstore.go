// Package rpcstore implements the storage.Store contract over the REST
// API, so a Resource Controller can run in a process that has no
// database access (operator tools, remote surfaces).
package rpcstore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"
)

// RemoteStore talks to one resource collection, e.g. "/categories".
type RemoteStore[T any] struct {
	client   *resty.Client
	resource string
}

// New builds a RemoteStore for the named resource. The token, when set,
// is sent as a bearer credential on every request.
func New[T any](baseURL, token, resource string) *RemoteStore[T] {
	client := resty.New().SetBaseURL(baseURL)
	if token != "" {
		client.SetAuthToken(token)
	}
	return &RemoteStore[T]{client: client, resource: resource}
}

// listEnvelope mirrors the list response body:
// {"data": {"data": [...], "meta": {"total", "perPage", "currentPage"}}}.
type listEnvelope[T any] struct {
	Data struct {
		Data []T `json:"data"`
		Meta struct {
			Total       int64 `json:"total"`
			PerPage     int   `json:"perPage"`
			CurrentPage int   `json:"currentPage"`
		} `json:"meta"`
	} `json:"data"`
}

type entityEnvelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}

func (r *RemoteStore[T]) FindOne(ctx context.Context, id uint) (*T, error) {
	var body entityEnvelope[T]
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(r.itemPath(id))
	if err := remoteError(resp, err); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (r *RemoteStore[T]) FindPage(ctx context.Context, filter models.Filter) (*models.Page[T], error) {
	filter = filter.Normalized()
	var body listEnvelope[T]
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"search": filter.Search,
			"page":   strconv.Itoa(filter.Page),
			"limit":  strconv.Itoa(filter.Limit),
		}).
		SetResult(&body).
		Get("/" + r.resource)
	if err := remoteError(resp, err); err != nil {
		return nil, err
	}
	return &models.Page[T]{
		Items:   body.Data.Data,
		Total:   body.Data.Meta.Total,
		Page:    body.Data.Meta.CurrentPage,
		PerPage: body.Data.Meta.PerPage,
	}, nil
}

func (r *RemoteStore[T]) Create(ctx context.Context, entity *T) error {
	var body entityEnvelope[T]
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(entity).
		SetResult(&body).
		Post("/" + r.resource)
	if err := remoteError(resp, err); err != nil {
		return err
	}
	*entity = body.Data
	return nil
}

func (r *RemoteStore[T]) Update(ctx context.Context, id uint, entity *T) (*T, error) {
	var body entityEnvelope[T]
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(entity).
		SetResult(&body).
		Put(r.itemPath(id))
	if err := remoteError(resp, err); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (r *RemoteStore[T]) Delete(ctx context.Context, id uint) (*T, error) {
	var body entityEnvelope[T]
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&body).
		Delete(r.itemPath(id))
	if err := remoteError(resp, err); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

func (r *RemoteStore[T]) itemPath(id uint) string {
	return fmt.Sprintf("/%s/%d", r.resource, id)
}

// remoteError maps transport failures and HTTP statuses onto the store
// error taxonomy.
func remoteError(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrTransport, err)
	}
	if resp.IsSuccess() {
		return nil
	}
	switch resp.StatusCode() {
	case 404:
		return storage.ErrNotFound
	case 400, 422:
		return storage.ErrValidation
	case 409:
		return storage.ErrConflict
	default:
		return fmt.Errorf("%w: unexpected status %d", storage.ErrTransport, resp.StatusCode())
	}
}
