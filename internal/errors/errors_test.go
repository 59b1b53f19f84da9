package errors

import (
	stderrors "errors"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(New("boom"), ExitSystem),
			want: "boom",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	underlying := ErrStackDiscipline
	err := NewUserError(underlying, "check guard nesting")

	if !stderrors.Is(err, ErrStackDiscipline) {
		t.Error("errors.Is should find the underlying sentinel through ExitError")
	}

	var exitErr *ExitError
	if !stderrors.As(err, &exitErr) {
		t.Fatal("errors.As should recover the ExitError")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion != "check guard nesting" {
		t.Errorf("Suggestion = %q", exitErr.Suggestion)
	}
}

func TestMark_AdapterSentinel(t *testing.T) {
	cause := New("session bus unavailable")
	err := Mark(Wrap(cause, "applying effective state"), ErrAdapter)

	if !Is(err, ErrAdapter) {
		t.Error("marked error should satisfy Is(err, ErrAdapter)")
	}
	if Is(err, ErrStackDiscipline) {
		t.Error("marked error must not match unrelated sentinels")
	}
}

func TestWrap_NilPassthrough(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil, ...) should return nil")
	}
}
