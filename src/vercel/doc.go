// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package vercel is a thin client for the [Vercel REST API].
//
// Every method performs exactly one HTTP request and returns the upstream
// payload untouched: a [json.RawMessage] for JSON bodies, a string for
// anything else, or nil for an empty body. There is no retry, caching, or
// pagination. Callers pass a [Credentials] value on every call, so one
// [Client] can serve many tokens concurrently.
//
// Optional query parameters are modelled as typed option records
// (e.g. [GetDeploymentsOptions]) encoded with [go-querystring]. Each embeds a
// [Scope]; when a call sets neither teamId nor slug, the credential defaults
// are sent instead.
//
// Example:
//
//	c := vercel.New(vercel.WithTimeout(30 * time.Second))
//	creds := vercel.Credentials{Token: os.Getenv("VERCEL_API_TOKEN")}
//
//	limit := 5
//	out, err := c.GetDeployments(ctx, creds, &vercel.GetDeploymentsOptions{Limit: &limit})
//
// [Vercel REST API]: https://vercel.com/docs/rest-api
// [go-querystring]: https://github.com/google/go-querystring
package vercel
