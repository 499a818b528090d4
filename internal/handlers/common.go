package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quisapi/quisapi/internal/jwt"
)

// Tokener defines the token methods handlers need to resolve a principal.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Pagination defaults recovered from the listing endpoints.
const (
	defaultPageSize = 10
	maxPageSize     = 1000
)

// parsePagination reads page and page_size query parameters and converts them
// to a LIMIT/OFFSET pair. Out-of-range values fall back to defaults.
func parsePagination(r *http.Request) (limit, offset int) {
	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	size := defaultPageSize
	if v := r.URL.Query().Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			size = n
			if size > maxPageSize {
				size = maxPageSize
			}
		}
	}

	return size, (page - 1) * size
}

// principalFromRequest resolves the optional principal on read endpoints. A
// missing or invalid token reads as anonymous, never as an error.
func principalFromRequest(tokener Tokener, r *http.Request) *uuid.UUID {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil
	}
	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		return nil
	}
	return &claims.UserID
}

// userIDFromRequest resolves the required principal on write endpoints.
func userIDFromRequest(tokener Tokener, r *http.Request) (uuid.UUID, error) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return uuid.Nil, err
	}
	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}
