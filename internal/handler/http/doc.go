// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, metrics and bearer token
// authentication are handled in this package before requests are delegated
// to the service layer. Every failure is rendered by a single error mapper so
// each request gets exactly one response.
package http
