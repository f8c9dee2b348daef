// Package api contains the HTTP handlers, request/response models and
// error-to-status mapping for the public deck endpoints.
package api
