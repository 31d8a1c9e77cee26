// Package http is the inbound HTTP adapter. Routes and request types come
// from the OpenAPI document in api/openapi.yaml through the generated
// servers package; Server maps them onto application commands and queries.
//
// Failures are answered with a JSON body {code, message, kind}:
//
//	400  malformed input and value object violations
//	404  unknown order, service request, offering or rating
//	409  illegal status transition, order already rated
//	422  offering not active, other rating rejections
package http
