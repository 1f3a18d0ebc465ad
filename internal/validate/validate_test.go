package validate

import (
	"errors"
	"testing"
)

type form struct {
	Name  string  `validate:"required"`
	Email string  `validate:"omitempty,email"`
	Kind  string  `validate:"required,oneof=Service Part"`
	Qty   float64 `validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name       string
		in         form
		wantFields []string
	}{
		{"valid", form{Name: "A", Kind: "Part"}, nil},
		{"missing name", form{Kind: "Part"}, []string{"form.Name"}},
		{"bad email and kind", form{Name: "A", Email: "nope", Kind: "Fee"}, []string{"form.Email", "form.Kind"}},
		{"negative quantity", form{Name: "A", Kind: "Service", Qty: -1}, []string{"form.Qty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.in)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Fatalf("Fields = %v, want %v", verr.Fields, tt.wantFields)
			}
			for i, f := range tt.wantFields {
				if verr.Fields[i] != f {
					t.Errorf("Fields[%d] = %q, want %q", i, verr.Fields[i], f)
				}
			}
		})
	}
}
