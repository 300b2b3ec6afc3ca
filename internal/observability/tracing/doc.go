// Package tracing provides OpenTelemetry tracing integration.
//
// Inbound requests get a server span from Middleware, continuing any W3C trace
// context the caller sent. Calls to the email alert API and the content store get
// client spans from StartClientSpan, and InjectHeaders forwards the trace context
// upstream.
//
// Example usage:
//
//	ctx, span := tracing.StartClientSpan(ctx, "email-alert-api", "get_subscriptions")
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
//	tracing.InjectHeaders(ctx, req.Header)
//	resp, err := client.Do(req)
//	tracing.EndClientSpan(span, resp.StatusCode, err)
package tracing
