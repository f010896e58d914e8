package engine

import (
	"errors"
	"testing"
)

func TestParseActivity(t *testing.T) {
	got, err := ParseActivity("  Yoga ")
	if err != nil || got != ActivityYoga {
		t.Fatalf("ParseActivity = (%q, %v), want yoga", got, err)
	}

	_, err = ParseActivity("cooking")
	if !errors.Is(err, ErrUnknownActivity) {
		t.Fatalf("err=%v, want ErrUnknownActivity", err)
	}
	var uae UnknownActivityError
	if !errors.As(err, &uae) || uae.Input != "cooking" {
		t.Fatalf("err=%#v, want UnknownActivityError{cooking}", err)
	}
}

func TestParseAge(t *testing.T) {
	cases := map[string]int{
		"7":     7,
		" 42 ":  42,
		"12abc": 12,
		"+5":    5,
		"abc":   0,
		"":      0,
		"-3":    0,
		"3.9":   3,
	}
	for in, want := range cases {
		if got := ParseAge(in); got != want {
			t.Errorf("ParseAge(%q)=%d, want %d", in, got, want)
		}
	}
	if got := ParseAge("99999999999999999999999"); got != 0 {
		t.Errorf("ParseAge(overflow)=%d, want 0", got)
	}
}

func TestCatalog(t *testing.T) {
	if len(Activities) != 8 {
		t.Fatalf("catalog size=%d, want 8", len(Activities))
	}
	for _, a := range Activities {
		g, ok := GuideFor(a)
		if !ok {
			t.Fatalf("no guide for %s", a)
		}
		if len(g.Steps) == 0 || g.Title == "" {
			t.Fatalf("guide %s incomplete: %+v", a, g)
		}
	}
	if got := ActivityEating.DisplayName(); got != "Eating" {
		t.Fatalf("DisplayName=%q, want Eating", got)
	}

	g, _ := GuideFor(ActivityEating)
	g.Steps[0] = "changed"
	again, _ := GuideFor(ActivityEating)
	if again.Steps[0] == "changed" {
		t.Fatalf("GuideFor leaked the shared step slice")
	}
}

func TestProgressPercent(t *testing.T) {
	if got := ProgressPercent(0, 8); got != 0 {
		t.Fatalf("0/8=%d", got)
	}
	if got := ProgressPercent(2, 8); got != 25 {
		t.Fatalf("2/8=%d", got)
	}
	if got := ProgressPercent(8, 8); got != 100 {
		t.Fatalf("8/8=%d", got)
	}
	if got := ProgressPercent(1, 0); got != 0 {
		t.Fatalf("1/0=%d", got)
	}
}
