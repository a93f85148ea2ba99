package errs

import (
	"encoding/json"
	"os"
	"testing"
)

func TestWrapAndJSON(t *testing.T) {
	err := Wrap(ErrParse, "could not parse header", os.ErrInvalid)
	ce, ok := err.(CLIError)
	if !ok {
		t.Fatalf("Wrap did not return a CLIError")
	}
	if ce.Error() != "could not parse header: "+os.ErrInvalid.Error() {
		t.Errorf("Error() = %q", ce.Error())
	}

	var decoded map[string]string
	if err := json.Unmarshal([]byte(ce.JSON()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["code"] != string(ErrParse) {
		t.Errorf("decoded code = %q", decoded["code"])
	}
}

func TestAsCLIError(t *testing.T) {
	ce := AsCLIError(os.ErrClosed)
	if ce.Code != ErrInternal || ce.Message != os.ErrClosed.Error() {
		t.Errorf("AsCLIError(os.ErrClosed) = %+v", ce)
	}

	original := CLIError{Code: ErrParse, Message: "bad token"}
	if got := AsCLIError(original); got != original {
		t.Errorf("AsCLIError(CLIError) = %+v, want %+v unchanged", got, original)
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Errorf("expected 0 for nil error")
	}
	if ExitCode(CLIError{Code: ErrMissingTemplate, Message: "x"}) != 2 {
		t.Errorf("expected 2 for ErrMissingTemplate")
	}
	if ExitCode(CLIError{Code: ErrInternal, Message: "x"}) != 1 {
		t.Errorf("expected 1 for every other code")
	}
}
