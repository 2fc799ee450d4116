package helper

import (
	"strings"
	"testing"
)

type sample struct {
	Email string  `validate:"required,email"`
	CGPA  float64 `validate:"gte=0,lte=10"`
	Phone string  `validate:"omitempty,len=10"`
	Role  string  `validate:"required,oneof=student company"`
}

func TestValidateStructPasses(t *testing.T) {
	ok := sample{Email: "a@b.c", CGPA: 8.5, Phone: "9876543210", Role: "student"}
	if err := ValidateStruct(ok); err != nil {
		t.Fatalf("valid struct rejected: %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	bad := sample{Email: "not-an-email", CGPA: 11, Phone: "123", Role: "alien"}
	err := ValidateStruct(bad)
	if err == nil {
		t.Fatal("invalid struct accepted")
	}

	msg := FormatValidationErrors(err)
	for _, want := range []string{
		"Email must be a valid email",
		"CGPA must be at most 10",
		"Phone must be exactly 10 characters",
		"Role must be one of: student company",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestOptionalFieldSkipped(t *testing.T) {
	noPhone := sample{Email: "a@b.c", CGPA: 8.5, Role: "company"}
	if err := ValidateStruct(noPhone); err != nil {
		t.Fatalf("omitempty field must not be validated when empty: %v", err)
	}
}
