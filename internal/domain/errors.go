// Package domain provides shared domain-level sentinel errors.
package domain

import "errors"

// ErrValidation indicates the request payload failed validation.
var ErrValidation = errors.New("validation failed")

// ErrUnknownToken indicates the presented bearer token is not configured.
var ErrUnknownToken = errors.New("unknown token")

// ErrDispatch indicates the mail relay rejected or failed the transmission.
var ErrDispatch = errors.New("dispatch failed")
