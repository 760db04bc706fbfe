package site

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeConfigInvalid   = "SITE_CONFIG_INVALID"
	codeTemplateMissing = "SITE_TEMPLATE_UNREADABLE"
	codePageInvalid     = "SITE_PAGE_INVALID"
	codePageIO          = "SITE_PAGE_IO_FAILED"
	codeStaticIO        = "SITE_STATIC_IO_FAILED"
	codeContextCanceled = "SITE_CONTEXT_CANCELED"
	codeContextTimeout  = "SITE_CONTEXT_TIMEOUT"
)

func wrapConfigError(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid site config").
		WithTextCode(codeConfigInvalid)
}

// wrapPageError categorizes a failure to produce the page at path. Content
// problems are validation errors, anything else is a command failure.
func wrapPageError(err error, path string) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	if isContentError(err) {
		return goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("page %s is invalid", path)).
			WithTextCode(codePageInvalid)
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf("page %s could not be generated", path)).
		WithTextCode(codePageIO)
}

func wrapStaticError(err error, msg string) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).
		WithTextCode(codeStaticIO)
}

func wrapTemplateError(err error, path string) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf("template %s could not be read", path)).
		WithTextCode(codeTemplateMissing)
}

func checkContext(ctx context.Context) error {
	err := ctx.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "build deadline exceeded").
			WithTextCode(codeContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "build cancelled").
			WithTextCode(codeContextCanceled)
	}
}

func isContentError(err error) bool {
	var fmErr *frontMatterError
	var rErr *renderError
	return errors.Is(err, ErrNoTitle) || errors.As(err, &fmErr) || errors.As(err, &rErr)
}

type frontMatterError struct{ err error }

func (e *frontMatterError) Error() string { return "parse front matter: " + e.err.Error() }
func (e *frontMatterError) Unwrap() error { return e.err }

type renderError struct{ err error }

func (e *renderError) Error() string { return "render markdown: " + e.err.Error() }
func (e *renderError) Unwrap() error { return e.err }
