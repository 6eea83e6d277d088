/*
Package executor sends HTTP requests.

# Overview

Client wraps a net/http client with a fixed timeout. Send builds the request
from a types.Request (method, URL, ordered headers, optional body), performs
it and returns the status, headers and body of the response. Redirects are
followed by the standard client policy.

# Error Handling

Send returns an error only when no response was received (DNS failure,
refused connection, timeout, cancelled context) or when the body could not
be read. Every HTTP status, including 4xx and 5xx, is a completed exchange:

	resp, err := client.Send(ctx, &types.Request{Method: types.MethodGet, URL: url})
	if err != nil {
		// transport failure
	}
	fmt.Println(resp.Status)

# Helpers

FormatDuration and the Is*Status helpers are used by the renderer to format
and colour log lines.
*/
package executor
