package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/glossary/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "missing_term_argument",
			code:    errors.ErrInvalidInput,
			message: "glossary shortcode needs a term",
			wantStr: "[INVALID_INPUT] glossary shortcode needs a term",
		},
		{
			name:    "bad_shortcode",
			code:    errors.ErrShortcodeParse,
			message: "unterminated string",
			wantStr: "[SHORTCODE_PARSE] unterminated string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConfigValid, "option %q: %q is not a boolean", "show", "maybe")
	want := `option "show": "maybe" is not a boolean`
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(fs.ErrNotExist, errors.ErrFileNotFound, "cannot read glossary.yml")

		if err.Wrapped != fs.ErrNotExist {
			t.Error("Wrap() should preserve wrapped error")
		}
		want := "[FILE_NOT_FOUND] cannot read glossary.yml: file does not exist"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if !stderrors.Is(err, fs.ErrNotExist) {
			t.Error("errors.Is should reach the wrapped fs error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileNotFound, "missing").
		WithDetail("path", "glossary.yml").
		WithDetail("term", "cli")

	details := errors.GetErrorDetails(err)
	if details["path"] != "glossary.yml" || details["term"] != "cli" {
		t.Errorf("details = %v", details)
	}
}

func TestIs(t *testing.T) {
	a := errors.New(errors.ErrRender, "a")
	b := errors.New(errors.ErrRender, "b")
	c := errors.New(errors.ErrInternal, "c")

	if !stderrors.Is(a, b) {
		t.Error("errors.Is should match on code")
	}
	if a.Is(c) {
		t.Error("Is() should be false for different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrNotFound, "x"), errors.ErrNotFound, true},
		{"different_code", errors.New(errors.ErrNotFound, "x"), errors.ErrInternal, false},
		{"wrapped", errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"), errors.ErrFileAccess, true},
		{"standard_error", stderrors.New("plain"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrDefinitionsParse, "bad yaml")); got != errors.ErrDefinitionsParse {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v", got)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v", got)
	}
}

func TestErrorChaining(t *testing.T) {
	root := stderrors.New("permission denied")
	fileErr := errors.Wrap(root, errors.ErrFileAccess, "cannot read definitions")
	renderErr := errors.Wrap(fileErr, errors.ErrRender, "chapter1.md")

	if !errors.IsErrorCode(renderErr, errors.ErrRender) {
		t.Error("top level should carry ErrRender")
	}

	var inner *errors.GlossaryError
	if stderrors.As(renderErr.Unwrap(), &inner) && inner.Code != errors.ErrFileAccess {
		t.Errorf("inner code = %v, want FILE_ACCESS", inner.Code)
	}

	if !stderrors.Is(renderErr, root) {
		t.Error("should find root cause with errors.Is")
	}
}
