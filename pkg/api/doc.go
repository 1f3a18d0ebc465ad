// Package api defines the request and response messages of the garage RPC
// services. Messages travel as JSON; numeric form fields use money.Amount so
// that blank or malformed input decodes as 0.
package api
