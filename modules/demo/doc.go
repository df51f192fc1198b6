// Package demo is a small feature module that exercises the validation core
// at every layer: JSON body, path parameter, and query string binding at the
// HTTP boundary, plus direct service calls. All entry points share one
// constraint registry and surface failures in the same violations payload.
package demo
