package character

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
)

func validCharacter() Character {
	return New(7000, "Albus Percival Wulfric Dumbledore",
		[]string{"Professor", "Headmaster"},
		[]string{"Richard Harris", "Michael Gambon"})
}

func TestNew_CopiesSlices(t *testing.T) {
	t.Parallel()

	titles := []string{"Professor"}
	c := New(1, "Minerva", titles, nil)
	titles[0] = "Mutated"

	if got := c.Titles()[0]; got != "Professor" {
		t.Errorf("Titles()[0] = %q, want %q", got, "Professor")
	}

	out := c.Titles()
	out[0] = "Mutated again"
	if got := c.Titles()[0]; got != "Professor" {
		t.Errorf("Titles()[0] after mutating returned slice = %q, want %q", got, "Professor")
	}
}

func TestCharacter_IsTitled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		titles []string
		want   bool
	}{
		{name: "one title", titles: []string{"Prince of Dorne"}, want: true},
		{name: "several titles", titles: []string{"Lord", "Warden"}, want: true},
		{name: "nil titles", titles: nil, want: false},
		{name: "empty titles", titles: []string{}, want: false},
		{name: "single empty title", titles: []string{""}, want: false},
		{name: "empty first title", titles: []string{"", "Lord"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := New(1, "Someone", tt.titles, nil)
			if got := c.IsTitled(); got != tt.want {
				t.Errorf("IsTitled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCharacter_TitleCount(t *testing.T) {
	t.Parallel()

	if got := New(1, "A", []string{""}, nil).TitleCount(); got != 1 {
		t.Errorf("TitleCount() with placeholder title = %d, want 1", got)
	}
	if got := validCharacter().TitleCount(); got != 2 {
		t.Errorf("TitleCount() = %d, want 2", got)
	}
}

func TestCharacter_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		character Character
		wantField string
	}{
		{name: "valid character passes", character: validCharacter()},
		{name: "id zero passes", character: New(0, "Zero", nil, nil)},
		{name: "empty name fails", character: New(1, "", nil, nil), wantField: "name"},
		{name: "whitespace name fails", character: New(1, "  ", nil, nil), wantField: "name"},
		{name: "negative id fails", character: New(-1, "Nobody", nil, nil), wantField: "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.character.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("errors.Is(err, ErrValidation) = false, got %v", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("ValidationError.Fields missing key %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}
