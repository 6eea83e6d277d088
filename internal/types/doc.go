/*
Package types defines the data structures shared between the state machine,
the dispatcher, the HTTP client and the CLI.

# Overview

  - Method: the fixed method set (GET, POST, PUT, DELETE) with parsing
  - Header: an ordered name/value pair
  - Request: method, URL, headers and optional body
  - Response: status code, headers, body and elapsed time

Methods decode from text (config files, env vars, flags) through
ParseMethod, which is case-insensitive and returns ErrUnknownMethod for
anything outside the set.
*/
package types
