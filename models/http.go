// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ReviewRequest is the body of review create/update requests.
//
// The text may be sent either as "text" or as "txt" (the stored column
// name); "text" wins when both are present.
type ReviewRequest struct {
	Text   string `json:"text"`
	Txt    string `json:"txt"`
	Rating int    `json:"rating"`
}

// Body returns the review text taken from whichever field was provided.
func (r ReviewRequest) Body() string {
	if r.Text != "" {
		return r.Text
	}
	return r.Txt
}

// CommentRequest is the body of comment create/update requests.
// Field precedence is the same as for [ReviewRequest].
type CommentRequest struct {
	Text string `json:"text"`
	Txt  string `json:"txt"`
}

// Body returns the comment text taken from whichever field was provided.
func (c CommentRequest) Body() string {
	if c.Text != "" {
		return c.Text
	}
	return c.Txt
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}
